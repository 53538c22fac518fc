package services

import (
	"context"
	"fmt"

	"github.com/niceliubing/real-estate/internal/models"
	"github.com/niceliubing/real-estate/internal/store"
)

// IPropertyService defines the interface for property-related operations.
type IPropertyService interface {
	ListProperties(ctx context.Context, filters models.PropertyFilters) ([]models.Property, error)
	FindPropertyByID(ctx context.Context, id string) (*models.Property, error)
	CreateProperty(ctx context.Context, p models.Property) (*models.Property, error)
	UpdateProperty(ctx context.Context, p models.Property) (*models.Property, error)
	AddImageToProperty(ctx context.Context, id string, imageURL string) (*models.Property, error)
}

// propertyService implements IPropertyService over the CSV-backed store.
type propertyService struct {
	properties *store.Store[models.Property]
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(properties *store.Store[models.Property]) IPropertyService {
	return &propertyService{properties: properties}
}

// ListProperties returns all properties matching the filters.
func (s *propertyService) ListProperties(ctx context.Context, filters models.PropertyFilters) ([]models.Property, error) {
	all, err := s.properties.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}
	matched := make([]models.Property, 0, len(all))
	for _, p := range all {
		if p.Matches(filters) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// FindPropertyByID returns the property with the given id.
func (s *propertyService) FindPropertyByID(ctx context.Context, id string) (*models.Property, error) {
	p, err := s.properties.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProperty validates and persists a new listing. The id and
// timestamps are assigned at save time; any caller-supplied id is
// discarded.
func (s *propertyService) CreateProperty(ctx context.Context, p models.Property) (*models.Property, error) {
	if err := validateProperty(p); err != nil {
		return nil, err
	}
	p.ID = ""
	p.Type = models.ParsePropertyType(string(p.Type))
	p.Status = models.ParsePropertyStatus(string(p.Status))

	created, err := s.properties.Append(p)
	if err != nil {
		return nil, fmt.Errorf("failed to save property: %w", err)
	}
	return &created, nil
}

// UpdateProperty replaces an existing listing. The id is immutable and
// selects the record; updatedAt is refreshed by the store.
func (s *propertyService) UpdateProperty(ctx context.Context, p models.Property) (*models.Property, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("property id is required for update")
	}
	if err := validateProperty(p); err != nil {
		return nil, err
	}
	existing, err := s.properties.FindByID(p.ID)
	if err != nil {
		return nil, err
	}
	// createdAt is preserved from the stored record.
	p.CreatedAt = existing.CreatedAt
	p.Type = models.ParsePropertyType(string(p.Type))
	p.Status = models.ParsePropertyStatus(string(p.Status))

	updated, err := s.properties.Update(p)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddImageToProperty appends an image URL to a listing's gallery.
func (s *propertyService) AddImageToProperty(ctx context.Context, id string, imageURL string) (*models.Property, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("image URL cannot be empty")
	}
	p, err := s.properties.FindByID(id)
	if err != nil {
		return nil, err
	}
	p.Images = append(p.Images, imageURL)
	updated, err := s.properties.Update(p)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func validateProperty(p models.Property) error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if p.Address == "" {
		return fmt.Errorf("%w: address is required", ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if p.Bedrooms < 0 || p.Bathrooms < 0 || p.SquareFeet < 0 {
		return fmt.Errorf("%w: room counts and area cannot be negative", ErrValidation)
	}
	if len(p.Images) == 0 {
		return fmt.Errorf("%w: a listing needs at least one image", ErrValidation)
	}
	return nil
}
