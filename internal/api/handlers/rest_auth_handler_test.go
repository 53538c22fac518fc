package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/niceliubing/real-estate/internal/api/handlers"
	"github.com/niceliubing/real-estate/internal/auth"
	"github.com/niceliubing/real-estate/internal/config"
	"github.com/niceliubing/real-estate/internal/models"
	"github.com/niceliubing/real-estate/internal/services"
)

func newAuthRouter(t *testing.T, mockSvc *MockUserService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JwtSecret: "test-secret", JwtTTL: time.Hour}
	handler := handlers.NewRestAuthHandler(mockSvc, cfg)

	r := gin.New()
	r.POST("/v1/auth/register", handler.Register)
	r.POST("/v1/auth/login", handler.Login)
	return r
}

func postJSON(r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRestAuthHandler_Register_Success(t *testing.T) {
	mockSvc := new(MockUserService)
	r := newAuthRouter(t, mockSvc)

	user := &models.User{ID: "2", Email: "jane@example.com", Name: "Jane", Role: models.RoleUser}
	mockSvc.On("Register", mock.Anything, "jane@example.com", "hunter22", "Jane").Return(user, nil)

	w := postJSON(r, "/v1/auth/register", gin.H{
		"email":           "jane@example.com",
		"password":        "hunter22",
		"confirmPassword": "hunter22",
		"name":            "Jane",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	// The bcrypt hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "password")
	mockSvc.AssertExpectations(t)
}

func TestRestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	mockSvc := new(MockUserService)
	r := newAuthRouter(t, mockSvc)

	w := postJSON(r, "/v1/auth/register", gin.H{
		"email":           "jane@example.com",
		"password":        "hunter22",
		"confirmPassword": "other",
		"name":            "Jane",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Register")
}

func TestRestAuthHandler_Register_EmailTaken(t *testing.T) {
	mockSvc := new(MockUserService)
	r := newAuthRouter(t, mockSvc)

	mockSvc.On("Register", mock.Anything, "jane@example.com", "hunter22", "Jane").Return(nil, services.ErrEmailTaken)

	w := postJSON(r, "/v1/auth/register", gin.H{
		"email":           "jane@example.com",
		"password":        "hunter22",
		"confirmPassword": "hunter22",
		"name":            "Jane",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestRestAuthHandler_Login_ReturnsValidJWT(t *testing.T) {
	mockSvc := new(MockUserService)
	r := newAuthRouter(t, mockSvc)

	admin := &models.User{ID: "1", Email: "admin@example.com", Role: models.RoleAdmin}
	mockSvc.On("Authenticate", mock.Anything, "admin@example.com", "admin-secret").Return(admin, nil)

	w := postJSON(r, "/v1/auth/login", gin.H{"email": "admin@example.com", "password": "admin-secret"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1", resp.User.ID)

	claims, err := auth.ValidateJWT(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.True(t, claims.IsAdmin)
	mockSvc.AssertExpectations(t)
}

func TestRestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockSvc := new(MockUserService)
	r := newAuthRouter(t, mockSvc)

	mockSvc.On("Authenticate", mock.Anything, "jane@example.com", "wrong").Return(nil, services.ErrInvalidCredentials)

	w := postJSON(r, "/v1/auth/login", gin.H{"email": "jane@example.com", "password": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSvc.AssertExpectations(t)
}
