package models

import "time"

// ContactMessage is a message submitted through the contact form.
// Messages are append-only; there is no update or delete lifecycle.
type ContactMessage struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactHeader is the CSV column order for the contacts file.
var ContactHeader = []string{"id", "firstName", "lastName", "email", "phone", "message", "createdAt"}

// ContactToRow maps a contact message onto a CSV row.
func ContactToRow(m ContactMessage) map[string]string {
	return map[string]string{
		"id":        m.ID,
		"firstName": m.FirstName,
		"lastName":  m.LastName,
		"email":     m.Email,
		"phone":     m.Phone,
		"message":   m.Message,
		"createdAt": FormatTime(m.CreatedAt),
	}
}

// RowToContact maps a decoded CSV row back onto a contact message.
func RowToContact(row map[string]string) ContactMessage {
	return ContactMessage{
		ID:        row["id"],
		FirstName: row["firstName"],
		LastName:  row["lastName"],
		Email:     row["email"],
		Phone:     row["phone"],
		Message:   row["message"],
		CreatedAt: ParseTime(row["createdAt"]),
	}
}
