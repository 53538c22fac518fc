package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niceliubing/real-estate/internal/api/handlers"
	"github.com/niceliubing/real-estate/internal/api/middleware"
	"github.com/niceliubing/real-estate/internal/config"
	"github.com/niceliubing/real-estate/internal/email"
	"github.com/niceliubing/real-estate/internal/models"
	"github.com/niceliubing/real-estate/internal/services"
	"github.com/niceliubing/real-estate/internal/storage"
	"github.com/niceliubing/real-estate/internal/store"
)

// Stores bundles the flat-file collections the router serves.
type Stores struct {
	Properties *store.Store[models.Property]
	Users      *store.Store[models.User]
	Reviews    *store.Store[models.Review]
	Contacts   *store.Store[models.ContactMessage]
}

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(cfg *config.Config, stores Stores, images storage.ImageStorage, emailSender email.Sender) *gin.Engine {
	// Initialize services needed by API handlers here.
	propertyService := services.NewPropertyService(stores.Properties)
	userService := services.NewUserService(stores.Users)
	reviewService := services.NewReviewService(stores.Reviews)
	contactService := services.NewContactService(stores.Contacts, emailSender, cfg)

	r := gin.Default()

	// Apply global middleware first (order matters).
	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)
	r.Use(middleware.CORSMiddleware())
	r.Use(rateLimiter.Limit())

	// Initialize handlers.
	propertiesHandler := handlers.NewCollectionHandler("properties", stores.Properties)
	usersHandler := handlers.NewCollectionHandler("users", stores.Users)
	reviewsHandler := handlers.NewCollectionHandler("reviews", stores.Reviews)
	contactHandler := handlers.NewContactHandler(contactService)
	uploadHandler := handlers.NewUploadHandler(images)
	restAuthHandler := handlers.NewRestAuthHandler(userService, cfg)
	restPropertyHandler := handlers.NewRestPropertyHandler(propertyService)
	restReviewHandler := handlers.NewRestReviewHandler(reviewService, userService)

	// Flat-file API: each collection is served and replaced as raw CSV.
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/properties", propertiesHandler.Get)
		apiGroup.POST("/properties", propertiesHandler.Post)
		apiGroup.GET("/users", usersHandler.Get)
		apiGroup.POST("/users", usersHandler.Post)
		apiGroup.GET("/reviews", reviewsHandler.Get)
		apiGroup.POST("/reviews", reviewsHandler.Post)

		apiGroup.POST("/contacts", contactHandler.PostContact)
		apiGroup.POST("/upload-image", uploadHandler.UploadImage)
	}

	// Uploaded images are immutable (names embed a UUID and timestamp),
	// so they can be cached aggressively.
	uploads := r.Group("/uploads", func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=31536000")
		c.Next()
	})
	uploads.Static("/properties", cfg.UploadDir)

	v1 := r.Group("/v1")
	{
		// Public routes (rate limiting already applied globally).
		v1.POST("/auth/register", restAuthHandler.Register)
		v1.POST("/auth/login", restAuthHandler.Login)

		v1.GET("/property", restPropertyHandler.ListProperties)
		v1.GET("/property/:id", restPropertyHandler.GetPropertyByID)
		v1.GET("/property/:id/review", restReviewHandler.ListPropertyReviews)
		v1.GET("/property/:id/rating", restReviewHandler.GetPropertyRating)

		// Reviews accept guests; a valid token attaches the reviewer.
		v1.POST("/review", middleware.OptionalAuthMiddleware(cfg.JwtSecret), restReviewHandler.PostReview)

		v1.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		// Admin routes.
		adminRequired := v1.Group("/")
		adminRequired.Use(middleware.AuthMiddleware(cfg.JwtSecret), middleware.AdminMiddleware())
		{
			adminRequired.POST("/property", restPropertyHandler.CreateProperty)
			adminRequired.PUT("/property/:id", restPropertyHandler.UpdateProperty)
		}
	}

	return r
}
