package handlers

import (
	"net/http"

	"handyhub/middleware"
	review "handyhub/services/review"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review submission and listing over HTTP.
type ReviewHandler struct {
	Svc review.ReviewService
}

// Submit handles POST /api/reviews.
func (h *ReviewHandler) Submit(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req review.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	r, err := h.Svc.SubmitReview(c.Request.Context(), principal, req)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ListByService handles GET /api/services/:id/reviews.
func (h *ReviewHandler) ListByService(c *gin.Context) {
	out, err := h.Svc.ListServiceReviews(c.Param("id"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": out})
}
