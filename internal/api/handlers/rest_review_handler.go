package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niceliubing/real-estate/internal/api/middleware"
	"github.com/niceliubing/real-estate/internal/models"
	"github.com/niceliubing/real-estate/internal/services"
)

// RestReviewHandler handles REST requests for property reviews.
type RestReviewHandler struct {
	reviewService services.IReviewService
	userService   services.IUserService
}

// NewRestReviewHandler creates a new RestReviewHandler.
func NewRestReviewHandler(reviewService services.IReviewService, userService services.IUserService) *RestReviewHandler {
	return &RestReviewHandler{reviewService: reviewService, userService: userService}
}

type reviewRequest struct {
	PropertyID  string `json:"propertyId" binding:"required"`
	Rating      int    `json:"rating" binding:"required"`
	Comment     string `json:"comment"`
	IsAnonymous bool   `json:"isAnonymous"`
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail"`
}

// PostReview handles POST /v1/review. Works for guests (name/email in
// the body) and for authenticated users, whose identity comes from the
// JWT claims and overrides whatever the body claims.
func (h *RestReviewHandler) PostReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	review := models.Review{
		PropertyID:  req.PropertyID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		IsAnonymous: req.IsAnonymous,
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
	}

	if userID := c.GetString(middleware.ContextKeyUserID); userID != "" {
		review.UserID = userID
		if user, err := h.userService.FindByID(c.Request.Context(), userID); err == nil {
			review.UserEmail = user.Email
			if review.UserName == "" {
				review.UserName = user.Name
			}
		}
	}

	created, err := h.reviewService.AddReview(c.Request.Context(), review)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error saving review: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListPropertyReviews handles GET /v1/property/:id/review.
func (h *RestReviewHandler) ListPropertyReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListReviewsByProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reviews})
}

// GetPropertyRating handles GET /v1/property/:id/rating: the average
// rating over the property's reviews, 0 when there are none.
func (h *RestReviewHandler) GetPropertyRating(c *gin.Context) {
	average, err := h.reviewService.AverageRating(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("Error computing rating: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute rating"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"propertyId": c.Param("id"), "averageRating": average})
}
