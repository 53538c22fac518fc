package handlers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/niceliubing/real-estate/internal/storage"
)

// UploadHandler accepts property image uploads.
type UploadHandler struct {
	images storage.ImageStorage
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(images storage.ImageStorage) *UploadHandler {
	return &UploadHandler{images: images}
}

// UploadImage handles POST /api/upload-image. The multipart body must
// carry a "fileName" field and an "image" file part with an image/*
// content type. The stored name is server-generated (the client name
// only contributes the extension) and the public URL is returned.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content type"})
		return
	}

	fileName := c.PostForm("fileName")
	fileHeader, err := c.FormFile("image")
	if err != nil || fileName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file name or image data"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is not an image"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image data"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image data"})
		return
	}

	imageURL, err := h.images.Save(c.Request.Context(), fileName, contentType, data)
	if err != nil {
		log.Printf("Error storing uploaded image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}
