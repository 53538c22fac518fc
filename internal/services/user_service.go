package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/niceliubing/real-estate/internal/auth"
	"github.com/niceliubing/real-estate/internal/models"
	"github.com/niceliubing/real-estate/internal/store"
)

// IUserService defines the interface for user-related operations.
type IUserService interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// userService implements IUserService over the CSV-backed store.
type userService struct {
	users *store.Store[models.User]
}

// NewUserService creates a new UserService.
func NewUserService(users *store.Store[models.User]) IUserService {
	return &userService{users: users}
}

// Register creates a new account with the user role. Email addresses
// are unique (case-insensitive); passwords are stored as bcrypt hashes.
func (s *userService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}

	existing, err := s.users.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, u := range existing {
		if strings.EqualFold(u.Email, email) {
			return nil, ErrEmailTaken
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Append(models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         models.RoleUser, // new accounts are never admins
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	log.Printf("Registered new user %s (%s)", user.ID, user.Email)
	return &user, nil
}

// Authenticate verifies an email/password pair against the stored
// bcrypt hash. The same error is returned for an unknown email and a
// wrong password so responses don't leak which one was wrong.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// FindByID returns the user with the given id.
func (s *userService) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user with the given email (case-insensitive).
func (s *userService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	all, err := s.users.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, u := range all {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("email %q: %w", email, store.ErrNotFound)
}
