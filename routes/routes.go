package routes

import (
	"net/http"
	"time"

	"inkstudio/handlers"
	"inkstudio/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the public availability and pricing
// endpoints the booking wizard reads from.
func RegisterAvailabilityRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/artists", handlers.ListArtists)
		api.GET("/availability", handlers.GetAvailability)
		api.GET("/availability/week", handlers.GetWeekAvailability)
		api.POST("/estimate", handlers.PostEstimate)
	}
}

// RegisterWizardRoutes registers the draft lifecycle. Everything past start
// requires the client token issued there.
func RegisterWizardRoutes(r *gin.Engine) {
	api := r.Group("/api/wizard")
	{
		api.POST("/start", handlers.StartWizard)

		api.Use(middleware.ClientAuthMiddleware())
		api.GET("/draft", handlers.GetDraft)
		api.PATCH("/draft", handlers.UpdateDraft)
		api.POST("/next", handlers.NextStep)
		api.POST("/back", handlers.BackStep)
		api.DELETE("/draft", handlers.ResetDraft)
		api.POST("/submit", handlers.SubmitBooking)
	}
}

// RegisterPaymentRoutes registers the Stripe webhook endpoint.
func RegisterPaymentRoutes(r *gin.Engine) {
	r.POST("/api/payments/webhook", handlers.StripeWebhook)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm InkStudio"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r)
	RegisterWizardRoutes(r)
	RegisterPaymentRoutes(r)
}
