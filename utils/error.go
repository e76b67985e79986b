package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Kind    ErrorKind `json:"kind,omitempty"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Kind:    KindInternal,
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONDomainError maps a service error onto its HTTP status and renders it.
// Internal details are logged but never echoed back.
func JSONDomainError(c *gin.Context, err error) {
	kind := KindOf(err)
	status := kind.HTTPStatus()

	message := "internal error"
	var de *DomainError
	if errors.As(err, &de) && de.Kind != KindInternal {
		message = de.Message
	}

	if kind == KindInternal {
		GetLogger().Error("Internal error", zap.Error(err), zap.String("path", c.FullPath()))
	} else {
		GetLogger().Warn("Request rejected", zap.String("kind", string(kind)), zap.Error(err))
	}

	c.JSON(status, ErrorResponse{Kind: kind, Message: message})
}
