package models

import (
	"strconv"
	"time"
)

// Review is a visitor's rating of a property. Reviews may be submitted
// by authenticated users or by guests supplying a name and email.
// IsAnonymous suppresses the display name in the UI.
type Review struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	UserID      string    `json:"userId"`
	UserEmail   string    `json:"userEmail"`
	UserName    string    `json:"userName"`
	IsAnonymous bool      `json:"isAnonymous"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ReviewHeader is the CSV column order for the reviews file.
var ReviewHeader = []string{
	"id", "propertyId", "userId", "userEmail", "userName",
	"isAnonymous", "rating", "comment", "createdAt", "updatedAt",
}

// ReviewToRow maps a review onto a CSV row.
func ReviewToRow(r Review) map[string]string {
	return map[string]string{
		"id":          r.ID,
		"propertyId":  r.PropertyID,
		"userId":      r.UserID,
		"userEmail":   r.UserEmail,
		"userName":    r.UserName,
		"isAnonymous": formatBool(r.IsAnonymous),
		"rating":      strconv.Itoa(r.Rating),
		"comment":     r.Comment,
		"createdAt":   FormatTime(r.CreatedAt),
		"updatedAt":   FormatTime(r.UpdatedAt),
	}
}

// RowToReview maps a decoded CSV row back onto a review. A missing
// userName falls back to the email, matching how guest reviews were
// historically recorded.
func RowToReview(row map[string]string) Review {
	name := row["userName"]
	if name == "" {
		name = row["userEmail"]
	}
	return Review{
		ID:          row["id"],
		PropertyID:  row["propertyId"],
		UserID:      row["userId"],
		UserEmail:   row["userEmail"],
		UserName:    name,
		IsAnonymous: parseBool(row["isAnonymous"]),
		Rating:      parseInt(row["rating"]),
		Comment:     row["comment"],
		CreatedAt:   ParseTime(row["createdAt"]),
		UpdatedAt:   ParseTime(row["updatedAt"]),
	}
}
