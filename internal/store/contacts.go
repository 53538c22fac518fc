package store

import (
	"time"

	"github.com/niceliubing/real-estate/internal/models"
)

// NewContactStore creates the contact-messages store. Contact messages
// are append-only and carry caller-assigned UUID ids, so the store's
// sequential allocator only fires when a message arrives without one.
func NewContactStore(path string) *Store[models.ContactMessage] {
	return New(path, Codec[models.ContactMessage]{
		Header:  models.ContactHeader,
		ToRow:   models.ContactToRow,
		FromRow: models.RowToContact,
		ID:      func(m models.ContactMessage) string { return m.ID },
		SetID:   func(m *models.ContactMessage, id string) { m.ID = id },
		Touch: func(m *models.ContactMessage, now time.Time, created bool) {
			if created && m.CreatedAt.IsZero() {
				m.CreatedAt = now
			}
		},
	}, nil)
}
