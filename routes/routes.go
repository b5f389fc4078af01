package routes

import (
	"net/http"
	"time"

	"hireme/handlers"
	"hireme/middleware"
	"hireme/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers account and session endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/accounts")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
		api.GET("/session", hb.SessionHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
		api.POST("/become-provider", hb.BecomeProviderHandler)
		api.POST("/switch-role", hb.SwitchRoleHandler)
	}
}

// RegisterDirectoryRoutes registers the provider search surface. Browsing
// the directory requires no authentication.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/directory")
	{
		api.GET("/search", hb.SearchProvidersHandler)
		api.GET("/categories", hb.ListCategoriesHandler)
		api.GET("/providers/:id", hb.GetProviderHandler)
		api.GET("/providers/:id/reviews", hb.ListProviderReviewsHandler)
		api.POST("/interpret", hb.InterpretQueryHandler)
		api.POST("/enhance-bio", hb.EnhanceBioHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle
// engine, messaging and reviews.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.ActingRoleMiddleware())

		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
		api.GET("/:id/invoice", hb.GetInvoiceHandler)

		api.POST("/:id/messages", hb.SendMessageHandler)
		api.GET("/:id/messages", hb.GetThreadHandler)
		api.GET("/:id/unread", hb.GetUnreadCountHandler)

		api.POST("/:id/reviews", hb.AddReviewHandler)
	}

	threads := r.Group("/api/threads")
	{
		threads.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		threads.Use(middleware.ActingRoleMiddleware())
		threads.GET("", hb.ListThreadsHandler)
	}

	provider := r.Group("/api/provider")
	{
		provider.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		provider.GET("/earnings", hb.GetEarningsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Acting-Role"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAccountRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
