package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/niceliubing/real-estate/internal/config"
	"github.com/niceliubing/real-estate/internal/email"
	"github.com/niceliubing/real-estate/internal/models"
	"github.com/niceliubing/real-estate/internal/store"
)

// IContactService defines the interface for contact-message operations.
type IContactService interface {
	SaveMessage(ctx context.Context, m models.ContactMessage) (*models.ContactMessage, error)
}

// contactService implements IContactService. Stored messages also
// trigger a notification email to the agent through the email sender.
type contactService struct {
	contacts *store.Store[models.ContactMessage]
	sender   email.Sender
	cfg      *config.Config
}

// NewContactService creates a new ContactService.
func NewContactService(contacts *store.Store[models.ContactMessage], sender email.Sender, cfg *config.Config) IContactService {
	return &contactService{contacts: contacts, sender: sender, cfg: cfg}
}

// SaveMessage validates and appends a contact message, then notifies
// the agent by email. Notification failures are logged, not returned:
// the message is already durable and the visitor should not resubmit.
func (s *contactService) SaveMessage(ctx context.Context, m models.ContactMessage) (*models.ContactMessage, error) {
	if m.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if m.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	saved, err := s.contacts.Append(m)
	if err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	if s.sender != nil && s.cfg.ContactToEmail != "" {
		subject := fmt.Sprintf("New contact message from %s %s", saved.FirstName, saved.LastName)
		raw := buildContactEmail(s.cfg.SmtpFromAddress, s.cfg.ContactToEmail, subject, saved)
		if err := s.sender.Send(ctx, []string{s.cfg.ContactToEmail}, subject, raw); err != nil {
			log.Printf("Failed to send contact notification for message %s: %v", saved.ID, err)
		}
	}

	return &saved, nil
}

// buildContactEmail assembles a plain-text RFC 5322 message.
func buildContactEmail(from, to, subject string, m models.ContactMessage) []byte {
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n"+
			"Name: %s %s\nEmail: %s\nPhone: %s\nReceived: %s\n\n%s\n",
		from, to, subject,
		m.FirstName, m.LastName, m.Email, m.Phone,
		m.CreatedAt.Format(time.RFC3339), m.Message,
	)
	return []byte(body)
}
