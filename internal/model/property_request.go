package model

import (
	"time"

	"github.com/google/uuid"
)

// Moderation statuses of a submitted request. A request that has left
// pending is terminal.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// PropertyRequest is an owner-submitted draft listing awaiting moderation.
type PropertyRequest struct {
	ID           string    `db:"id" json:"id"`
	OwnerID      string    `db:"owner_id" json:"owner_id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	PropertyType string    `db:"property_type" json:"property_type"`
	Address      string    `db:"address" json:"address"`
	City         string    `db:"city" json:"city"`
	Area         float64   `db:"area" json:"area"`
	Bedrooms     int       `db:"bedrooms" json:"bedrooms"`
	Bathrooms    int       `db:"bathrooms" json:"bathrooms"`
	Price        float64   `db:"price" json:"price"`
	Status       string    `db:"status" json:"status"`
	AdminNotes   string    `db:"admin_notes" json:"admin_notes"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// PropertyRequestImage references a GridFS blob attached to a draft request.
// Rows are cascade-deleted with their request.
type PropertyRequestImage struct {
	ID        string    `db:"id" json:"id"`
	RequestID string    `db:"request_id" json:"request_id"`
	FileID    string    `db:"file_id" json:"file_id"`
	IsMain    bool      `db:"is_main" json:"is_main"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewImageFromRequestImage copies a draft image onto the promoted catalog
// entry. The GridFS blob itself is shared, only the row is duplicated, and
// the main flag is preserved.
func NewImageFromRequestImage(img *PropertyRequestImage, propertyID string) *PropertyImage {
	return &PropertyImage{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		FileID:     img.FileID,
		IsMain:     img.IsMain,
		CreatedAt:  time.Now().UTC(),
	}
}
