package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RawCollection is the slice of the entity store the file-based API
// needs: whole-file reads and whole-file overwrites.
type RawCollection interface {
	RawCSV() (string, error)
	ReplaceRaw(body string) error
}

// CollectionHandler serves one collection's backing CSV file over
// HTTP: GET returns the file verbatim, POST overwrites it with the
// request body. This is the legacy file-based surface the site's
// client data-access layer speaks; no structural validation happens
// here, by contract.
type CollectionHandler struct {
	name       string
	collection RawCollection
}

// NewCollectionHandler creates a handler for one named collection.
func NewCollectionHandler(name string, collection RawCollection) *CollectionHandler {
	return &CollectionHandler{name: name, collection: collection}
}

// Get handles GET /api/<collection>: the whole backing file as CSV,
// with caching disabled so the client cache stays the source of truth
// for freshness. A missing file yields just the header row.
func (h *CollectionHandler) Get(c *gin.Context) {
	body, err := h.collection.RawCSV()
	if err != nil {
		log.Printf("Error reading %s file: %v", h.name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "text/csv", []byte(body))
}

// Post handles POST /api/<collection>: the request body becomes the
// new file contents byte-for-byte. A malformed body corrupts the
// store; the entity store recovers by falling back to its default
// seed on the next load.
func (h *CollectionHandler) Post(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}
	if err := h.collection.ReplaceRaw(string(body)); err != nil {
		log.Printf("Error writing %s file: %v", h.name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
