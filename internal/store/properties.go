package store

import (
	"time"

	"github.com/niceliubing/real-estate/internal/models"
)

// seedTime is the timestamp carried by the built-in sample listings.
var seedTime = time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

// NewPropertyStore creates the properties store. An empty or missing
// file seeds two sample listings so a fresh installation has content.
func NewPropertyStore(path string) *Store[models.Property] {
	return New(path, Codec[models.Property]{
		Header:  models.PropertyHeader,
		ToRow:   models.PropertyToRow,
		FromRow: models.RowToProperty,
		ID:      func(p models.Property) string { return p.ID },
		SetID:   func(p *models.Property, id string) { p.ID = id },
		Touch: func(p *models.Property, now time.Time, created bool) {
			if created {
				p.CreatedAt = now
			}
			p.UpdatedAt = now
		},
	}, DefaultProperties)
}

// DefaultProperties returns the sample listings used to seed a new
// installation.
func DefaultProperties() []models.Property {
	return []models.Property{
		{
			ID:         "1",
			Title:      "Luxury Modern Home",
			Address:    "123 Maple Street, Toronto, ON",
			Price:      1299000,
			Bedrooms:   4,
			Bathrooms:  3,
			SquareFeet: 2500,
			Description: "Beautiful modern home with open concept living space, gourmet kitchen, " +
				"and luxurious master suite. Features include hardwood floors throughout, high ceilings, " +
				"and a finished basement.",
			Images: []string{
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6",
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750",
			},
			Features: []string{
				"Hardwood floors",
				"Gourmet kitchen",
				"Finished basement",
				"Double garage",
				"Smart home features",
			},
			Type:      models.PropertyTypeHouse,
			Status:    models.PropertyStatusForSale,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:         "2",
			Title:      "Downtown Luxury Condo",
			Address:    "456 Bay Street, Toronto, ON",
			Price:      899000,
			Bedrooms:   2,
			Bathrooms:  2,
			SquareFeet: 1200,
			Description: "Stunning downtown condo with spectacular city views. Features floor-to-ceiling " +
				"windows, modern finishes, and high-end appliances. Building amenities include gym, pool, " +
				"and 24/7 concierge.",
			Images: []string{
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688",
			},
			Features: []string{
				"Floor-to-ceiling windows",
				"Granite countertops",
				"Stainless steel appliances",
				"Building gym",
				"Concierge service",
			},
			Type:      models.PropertyTypeCondo,
			Status:    models.PropertyStatusForSale,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
	}
}
