package storage

import "context"

// ImageStorage defines the interface for persisting uploaded property
// images. Save stores the image bytes under a server-generated unique
// name derived from originalName's extension and returns the public
// URL of the stored image.
type ImageStorage interface {
	Save(ctx context.Context, originalName, contentType string, data []byte) (string, error)
}
