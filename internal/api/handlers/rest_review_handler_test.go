package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/niceliubing/real-estate/internal/api/handlers"
	"github.com/niceliubing/real-estate/internal/api/middleware"
	"github.com/niceliubing/real-estate/internal/models"
)

func newReviewRouter(t *testing.T, reviewSvc *MockReviewService, userSvc *MockUserService, claims gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handler := handlers.NewRestReviewHandler(reviewSvc, userSvc)

	r := gin.New()
	if claims != nil {
		r.POST("/v1/review", claims, handler.PostReview)
	} else {
		r.POST("/v1/review", handler.PostReview)
	}
	r.GET("/v1/property/:id/review", handler.ListPropertyReviews)
	r.GET("/v1/property/:id/rating", handler.GetPropertyRating)
	return r
}

func TestRestReviewHandler_PostReview_Guest(t *testing.T) {
	reviewSvc := new(MockReviewService)
	userSvc := new(MockUserService)
	r := newReviewRouter(t, reviewSvc, userSvc, nil)

	created := &models.Review{ID: "1", PropertyID: "2", UserEmail: "guest@example.com", Rating: 5}
	reviewSvc.On("AddReview", mock.Anything, mock.MatchedBy(func(rv models.Review) bool {
		return rv.PropertyID == "2" && rv.UserID == "" && rv.UserEmail == "guest@example.com"
	})).Return(created, nil)

	body, _ := json.Marshal(gin.H{"propertyId": "2", "rating": 5, "userEmail": "guest@example.com"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/review", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	reviewSvc.AssertExpectations(t)
}

func TestRestReviewHandler_PostReview_AuthenticatedUserOverridesBody(t *testing.T) {
	reviewSvc := new(MockReviewService)
	userSvc := new(MockUserService)

	// Simulates OptionalAuthMiddleware having validated a token.
	claims := func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, "7")
		c.Next()
	}
	r := newReviewRouter(t, reviewSvc, userSvc, claims)

	userSvc.On("FindByID", mock.Anything, "7").Return(&models.User{ID: "7", Email: "jane@example.com", Name: "Jane"}, nil)
	created := &models.Review{ID: "1", PropertyID: "2", UserID: "7", Rating: 4}
	reviewSvc.On("AddReview", mock.Anything, mock.MatchedBy(func(rv models.Review) bool {
		return rv.UserID == "7" && rv.UserEmail == "jane@example.com" && rv.UserName == "Jane"
	})).Return(created, nil)

	body, _ := json.Marshal(gin.H{"propertyId": "2", "rating": 4, "userEmail": "spoofed@example.com"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/review", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	reviewSvc.AssertExpectations(t)
	userSvc.AssertExpectations(t)
}

func TestRestReviewHandler_PostReview_MissingPropertyID(t *testing.T) {
	reviewSvc := new(MockReviewService)
	r := newReviewRouter(t, reviewSvc, new(MockUserService), nil)

	body, _ := json.Marshal(gin.H{"rating": 4, "userEmail": "guest@example.com"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/review", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	reviewSvc.AssertNotCalled(t, "AddReview")
}

func TestRestReviewHandler_GetPropertyRating(t *testing.T) {
	reviewSvc := new(MockReviewService)
	r := newReviewRouter(t, reviewSvc, new(MockUserService), nil)

	reviewSvc.On("AverageRating", mock.Anything, "2").Return(3.5, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/property/2/rating", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		PropertyID    string  `json:"propertyId"`
		AverageRating float64 `json:"averageRating"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2", resp.PropertyID)
	assert.Equal(t, 3.5, resp.AverageRating)
	reviewSvc.AssertExpectations(t)
}

func TestRestReviewHandler_ListPropertyReviews(t *testing.T) {
	reviewSvc := new(MockReviewService)
	r := newReviewRouter(t, reviewSvc, new(MockUserService), nil)

	reviewSvc.On("ListReviewsByProperty", mock.Anything, "2").Return([]models.Review{
		{ID: "1", PropertyID: "2", Rating: 4},
		{ID: "2", PropertyID: "2", Rating: 5},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/property/2/review", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []models.Review `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	reviewSvc.AssertExpectations(t)
}
