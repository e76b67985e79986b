package handlers

import (
	"net/http"
	"time"

	"handyhub/middleware"
	"handyhub/models"
	booking "handyhub/services/booking"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Svc booking.BookingService
}

// createBookingInput is the wire form of a booking request. Dates arrive as
// ISO-8601 strings and are parsed at this boundary.
type createBookingInput struct {
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Notes     string `json:"notes"`
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339, raw)
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		utils.JSONDomainError(c, utils.Validationf("date must be an ISO-8601 timestamp"))
		return
	}

	b, err := h.Svc.CreateBooking(c.Request.Context(), principal, booking.CreateBookingRequest{
		ServiceID: input.ServiceID,
		Date:      date,
		Notes:     input.Notes,
	})
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// CheckAvailability handles GET /api/services/:id/availability?date=...
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	serviceID := c.Param("id")
	raw := c.Query("date")
	if raw == "" {
		utils.JSONDomainError(c, utils.Validationf("date query parameter is required"))
		return
	}
	date, err := parseDate(raw)
	if err != nil {
		utils.JSONDomainError(c, utils.Validationf("date must be an ISO-8601 timestamp"))
		return
	}

	available, err := h.Svc.CheckAvailable(serviceID, date)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service_id": serviceID, "date": raw, "available": available})
}

// Transition handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) Transition(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	target, err := models.ParseBookingStatus(input.Status)
	if err != nil {
		utils.JSONDomainError(c, utils.Validationf("unknown booking status %q", input.Status))
		return
	}

	b, err := h.Svc.Transition(c.Request.Context(), principal, c.Param("id"), target)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /api/bookings/:id.
func (h *BookingHandler) Delete(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Svc.DeleteBooking(c.Request.Context(), principal, c.Param("id")); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	b, err := h.Svc.GetBooking(principal, c.Param("id"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMine handles GET /api/bookings (the principal's bookings as customer).
func (h *BookingHandler) ListMine(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	out, err := h.Svc.ListUserBookings(principal)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out})
}

// ListProvider handles GET /api/bookings/provider.
func (h *BookingHandler) ListProvider(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	out, err := h.Svc.ListProviderBookings(principal)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out})
}

// ListAll handles GET /api/admin/bookings.
func (h *BookingHandler) ListAll(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	out, err := h.Svc.ListAllBookings(principal)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out})
}
