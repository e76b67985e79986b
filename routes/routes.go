package routes

import (
	"net/http"
	"time"

	"handyhub/handlers"
	"handyhub/middleware"
	"handyhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers catalog reads. Browsing is public; only
// the availability probe is cheap enough to leave open as well.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Service.List)
		api.GET("/:id", hb.Service.Get)
		api.GET("/:id/availability", hb.Booking.CheckAvailability)
		api.GET("/:id/reviews", hb.Review.ListByService)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.PrincipalMiddleware())
		api.POST("", hb.Booking.Create)
		api.GET("", hb.Booking.ListMine)
		api.GET("/provider", hb.Booking.ListProvider)
		api.GET("/:id", hb.Booking.Get)
		api.PATCH("/:id/status", hb.Booking.Transition)
		api.DELETE("/:id", hb.Booking.Delete)
	}
}

// RegisterReviewRoutes registers review submission.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.PrincipalMiddleware())
		api.POST("", hb.Review.Submit)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.PrincipalMiddleware(), middleware.RequireAdmin())
		adminGroup.GET("/bookings", hb.Booking.ListAll)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
