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
	"github.com/niceliubing/real-estate/internal/models"
	"github.com/niceliubing/real-estate/internal/services"
)

func newContactRouter(t *testing.T, mockSvc *MockContactService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handler := handlers.NewContactHandler(mockSvc)
	r := gin.New()
	r.POST("/api/contacts", handler.PostContact)
	return r
}

func TestContactHandler_PostContact_EchoesSavedMessage(t *testing.T) {
	mockSvc := new(MockContactService)
	r := newContactRouter(t, mockSvc)

	saved := &models.ContactMessage{
		ID:        "e2b1c7ab-0000-4000-8000-000000000001",
		FirstName: "Jane",
		Email:     "jane@example.com",
		Message:   "Call me",
	}
	mockSvc.On("SaveMessage", mock.Anything, mock.AnythingOfType("models.ContactMessage")).Return(saved, nil)

	body, _ := json.Marshal(gin.H{"firstName": "Jane", "email": "jane@example.com", "message": "Call me"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/contacts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var got models.ContactMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, saved.ID, got.ID)
	mockSvc.AssertExpectations(t)
}

func TestContactHandler_PostContact_ValidationError(t *testing.T) {
	mockSvc := new(MockContactService)
	r := newContactRouter(t, mockSvc)

	mockSvc.On("SaveMessage", mock.Anything, mock.AnythingOfType("models.ContactMessage")).Return(nil, services.ErrValidation)

	body, _ := json.Marshal(gin.H{"firstName": "Jane"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/contacts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertExpectations(t)
}
