package store

import (
	"time"

	"github.com/niceliubing/real-estate/internal/models"
)

// NewUserStore creates the users store. seedAdmin is persisted as the
// bootstrapped administrator account when the file is missing or
// empty; its password hash is computed by the caller so this package
// stays free of credential handling.
func NewUserStore(path string, seedAdmin models.User) *Store[models.User] {
	return New(path, Codec[models.User]{
		Header:  models.UserHeader,
		ToRow:   models.UserToRow,
		FromRow: models.RowToUser,
		ID:      func(u models.User) string { return u.ID },
		SetID:   func(u *models.User, id string) { u.ID = id },
		Touch: func(u *models.User, now time.Time, created bool) {
			if created {
				u.CreatedAt = now
			}
			u.UpdatedAt = now
		},
	}, func() []models.User {
		admin := seedAdmin
		if admin.ID == "" {
			admin.ID = "1"
		}
		admin.Role = models.RoleAdmin
		now := time.Now().UTC()
		if admin.CreatedAt.IsZero() {
			admin.CreatedAt = now
		}
		if admin.UpdatedAt.IsZero() {
			admin.UpdatedAt = now
		}
		return []models.User{admin}
	})
}
