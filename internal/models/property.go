package models

import (
	"strconv"
	"time"

	"github.com/niceliubing/real-estate/internal/csvio"
)

// PropertyType defines the kinds of properties that can be listed.
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeCondo     PropertyType = "condo"
	PropertyTypeTownhouse PropertyType = "townhouse"
	PropertyTypeApartment PropertyType = "apartment"
)

// PropertyStatus defines the listing status of a property.
type PropertyStatus string

const (
	PropertyStatusForSale PropertyStatus = "for-sale"
	PropertyStatusForRent PropertyStatus = "for-rent"
	PropertyStatusSold    PropertyStatus = "sold"
)

// Property represents a single listing on the agent's site.
type Property struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Address     string         `json:"address"`
	Price       float64        `json:"price"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   float64        `json:"bathrooms"`
	SquareFeet  int            `json:"squareFeet"`
	Description string         `json:"description"`
	Images      []string       `json:"images"`
	Features    []string       `json:"features"`
	Type        PropertyType   `json:"type"`
	Status      PropertyStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// PropertyFilters narrows a property listing query. Nil fields are ignored.
type PropertyFilters struct {
	MinPrice *float64
	MaxPrice *float64
	Bedrooms *int
	Type     *PropertyType
	Status   *PropertyStatus
}

// PropertyHeader is the CSV column order for the properties file.
var PropertyHeader = []string{
	"id", "title", "address", "price", "bedrooms", "bathrooms", "squareFeet",
	"description", "images", "features", "type", "status", "createdAt", "updatedAt",
}

// PropertyToRow maps a property onto a CSV row. List fields are
// pipe-packed; numbers use the shortest exact representation.
func PropertyToRow(p Property) map[string]string {
	return map[string]string{
		"id":          p.ID,
		"title":       p.Title,
		"address":     p.Address,
		"price":       strconv.FormatFloat(p.Price, 'f', -1, 64),
		"bedrooms":    strconv.Itoa(p.Bedrooms),
		"bathrooms":   strconv.FormatFloat(p.Bathrooms, 'f', -1, 64),
		"squareFeet":  strconv.Itoa(p.SquareFeet),
		"description": p.Description,
		"images":      csvio.JoinList(p.Images),
		"features":    csvio.JoinList(p.Features),
		"type":        string(p.Type),
		"status":      string(p.Status),
		"createdAt":   FormatTime(p.CreatedAt),
		"updatedAt":   FormatTime(p.UpdatedAt),
	}
}

// RowToProperty maps a decoded CSV row back onto a property. Bad or
// missing cells coerce to zero values rather than failing the row;
// unknown enum values fall back to their defaults.
func RowToProperty(row map[string]string) Property {
	return Property{
		ID:          row["id"],
		Title:       row["title"],
		Address:     row["address"],
		Price:       parseFloat(row["price"]),
		Bedrooms:    parseInt(row["bedrooms"]),
		Bathrooms:   parseFloat(row["bathrooms"]),
		SquareFeet:  parseInt(row["squareFeet"]),
		Description: row["description"],
		Images:      csvio.SplitList(row["images"]),
		Features:    csvio.SplitList(row["features"]),
		Type:        ParsePropertyType(row["type"]),
		Status:      ParsePropertyStatus(row["status"]),
		CreatedAt:   ParseTime(row["createdAt"]),
		UpdatedAt:   ParseTime(row["updatedAt"]),
	}
}

// ParsePropertyType validates a raw type cell, defaulting to "house".
func ParsePropertyType(s string) PropertyType {
	switch PropertyType(s) {
	case PropertyTypeHouse, PropertyTypeCondo, PropertyTypeTownhouse, PropertyTypeApartment:
		return PropertyType(s)
	}
	return PropertyTypeHouse
}

// ParsePropertyStatus validates a raw status cell, defaulting to "for-sale".
func ParsePropertyStatus(s string) PropertyStatus {
	switch PropertyStatus(s) {
	case PropertyStatusForSale, PropertyStatusForRent, PropertyStatusSold:
		return PropertyStatus(s)
	}
	return PropertyStatusForSale
}

// Matches reports whether the property satisfies the filter.
// Nil filter fields always match.
func (p Property) Matches(f PropertyFilters) bool {
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms < *f.Bedrooms {
		return false
	}
	if f.Type != nil && p.Type != *f.Type {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	return true
}
