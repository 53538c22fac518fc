package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/niceliubing/real-estate/internal/models"
	"github.com/niceliubing/real-estate/internal/services"
	"github.com/niceliubing/real-estate/internal/store"
)

// RestPropertyHandler handles REST requests for property listings.
type RestPropertyHandler struct {
	propertyService services.IPropertyService
}

// NewRestPropertyHandler creates a new RestPropertyHandler.
func NewRestPropertyHandler(propertyService services.IPropertyService) *RestPropertyHandler {
	return &RestPropertyHandler{propertyService: propertyService}
}

// ListProperties handles GET /v1/property with optional filter query
// parameters: minPrice, maxPrice, bedrooms, type, status. Unparseable
// numeric filters are ignored rather than rejected.
func (h *RestPropertyHandler) ListProperties(c *gin.Context) {
	var filters models.PropertyFilters

	if v := c.Query("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MinPrice = &f
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MaxPrice = &f
		}
	}
	if v := c.Query("bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filters.Bedrooms = &n
		}
	}
	if v := c.Query("type"); v != "" {
		t := models.ParsePropertyType(v)
		filters.Type = &t
	}
	if v := c.Query("status"); v != "" {
		s := models.ParsePropertyStatus(v)
		filters.Status = &s
	}

	properties, err := h.propertyService.ListProperties(c.Request.Context(), filters)
	if err != nil {
		log.Printf("Error listing properties: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list properties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": properties})
}

// GetPropertyByID handles GET /v1/property/:id.
func (h *RestPropertyHandler) GetPropertyByID(c *gin.Context) {
	property, err := h.propertyService.FindPropertyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		} else {
			log.Printf("Error retrieving property: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve property"})
		}
		return
	}
	c.JSON(http.StatusOK, property)
}

// CreateProperty handles POST /v1/property (admin only). The id and
// timestamps are assigned server-side.
func (h *RestPropertyHandler) CreateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	created, err := h.propertyService.CreateProperty(c.Request.Context(), property)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating property: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateProperty handles PUT /v1/property/:id (admin only). The path
// id wins over any id in the body; ids are immutable.
func (h *RestPropertyHandler) UpdateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	property.ID = c.Param("id")

	updated, err := h.propertyService.UpdateProperty(c.Request.Context(), property)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error updating property: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
