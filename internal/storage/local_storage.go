package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/niceliubing/real-estate/internal/config"
)

// localStorage implements ImageStorage on the local filesystem. This
// is the default backend: images land in the public uploads directory
// and are served back by the static file handler.
type localStorage struct {
	dir            string
	baseURL        string
	thumbnailWidth int
}

// NewLocalStorage creates a local-disk image store rooted at the
// configured upload directory.
func NewLocalStorage(cfg *config.Config) (ImageStorage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory '%s': %w", cfg.UploadDir, err)
	}
	return &localStorage{
		dir:            cfg.UploadDir,
		baseURL:        strings.TrimSuffix(cfg.UploadBaseURL, "/"),
		thumbnailWidth: cfg.ThumbnailWidth,
	}, nil
}

// Save writes the image under a unique generated name: a UUID plus a
// millisecond timestamp, preserving the original extension. A bounded-
// width thumbnail is written next to the original for JPEG and PNG
// uploads; thumbnail failures are logged, never fatal.
func (s *localStorage) Save(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
	name := GenerateImageName(originalName)
	filePath := filepath.Join(s.dir, name)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image '%s': %w", filePath, err)
	}

	if s.thumbnailWidth > 0 {
		if err := s.writeThumbnail(filePath, data); err != nil {
			log.Printf("Thumbnail generation for %s skipped: %v", name, err)
		}
	}

	return s.baseURL + "/" + name, nil
}

// writeThumbnail decodes the uploaded image and writes a resized copy
// alongside it as <name>_thumb<ext>. Only JPEG and PNG are attempted.
func (s *localStorage) writeThumbnail(filePath string, data []byte) error {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not a decodable image: %w", err)
	}
	if format != "jpeg" && format != "png" {
		return fmt.Errorf("unsupported thumbnail format %q", format)
	}

	thumb := resize.Resize(uint(s.thumbnailWidth), 0, img, resize.Lanczos3)

	ext := filepath.Ext(filePath)
	thumbPath := strings.TrimSuffix(filePath, ext) + "_thumb" + ext
	out, err := os.Create(thumbPath)
	if err != nil {
		return fmt.Errorf("failed to create thumbnail file: %w", err)
	}
	defer out.Close()

	switch format {
	case "jpeg":
		err = jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85})
	case "png":
		err = png.Encode(out, thumb)
	}
	if err != nil {
		return fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return nil
}

// GenerateImageName builds the server-side unique filename for an
// upload: <uuid>-<unix-millis><ext>. The client-supplied name only
// contributes its extension, which avoids path traversal and name
// collisions in one step.
func GenerateImageName(originalName string) string {
	ext := strings.ToLower(path.Ext(path.Base(originalName)))
	return fmt.Sprintf("%s-%d%s", uuid.NewString(), time.Now().UnixMilli(), ext)
}
