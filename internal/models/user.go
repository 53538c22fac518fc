package models

import "time"

// UserRole defines the access level of an account.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User represents an account on the site. PasswordHash holds a bcrypt
// hash; plaintext passwords are never written to disk.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserHeader is the CSV column order for the users file. The password
// column stores the bcrypt hash.
var UserHeader = []string{"id", "email", "password", "name", "role", "createdAt", "updatedAt"}

// UserToRow maps a user onto a CSV row.
func UserToRow(u User) map[string]string {
	return map[string]string{
		"id":        u.ID,
		"email":     u.Email,
		"password":  u.PasswordHash,
		"name":      u.Name,
		"role":      string(u.Role),
		"createdAt": FormatTime(u.CreatedAt),
		"updatedAt": FormatTime(u.UpdatedAt),
	}
}

// RowToUser maps a decoded CSV row back onto a user. Any role other
// than "admin" coerces to "user".
func RowToUser(row map[string]string) User {
	role := RoleUser
	if row["role"] == string(RoleAdmin) {
		role = RoleAdmin
	}
	return User{
		ID:           row["id"],
		Email:        row["email"],
		PasswordHash: row["password"],
		Name:         row["name"],
		Role:         role,
		CreatedAt:    ParseTime(row["createdAt"]),
		UpdatedAt:    ParseTime(row["updatedAt"]),
	}
}
