package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niceliubing/real-estate/internal/models"
	"github.com/niceliubing/real-estate/internal/services"
)

// ContactHandler accepts contact-form submissions.
type ContactHandler struct {
	contactService services.IContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService services.IContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// PostContact handles POST /api/contacts: a JSON contact message is
// appended to the store and echoed back with its assigned id.
func (h *ContactHandler) PostContact(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	saved, err := h.contactService.SaveMessage(c.Request.Context(), msg)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error saving contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact message"})
		return
	}

	c.JSON(http.StatusCreated, saved)
}
