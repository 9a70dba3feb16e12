package model

import (
	"time"

	"github.com/google/uuid"
)

// Property types accepted on submission.
const (
	TypeApartment = "apartment"
	TypeVilla     = "villa"
	TypeOffice    = "office"
	TypeShop      = "shop"
	TypeWarehouse = "warehouse"
)

// Availability statuses of a catalog entry.
const (
	StatusAvailable   = "available"
	StatusRented      = "rented"
	StatusMaintenance = "maintenance"
)

// Property is a publicly browsable catalog entry. Rows are created only by
// promoting an approved PropertyRequest, never by owners directly.
type Property struct {
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
	IsApproved   bool      `db:"is_approved" json:"is_approved"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// PropertyImage references a GridFS blob attached to a catalog entry.
type PropertyImage struct {
	ID         string    `db:"id" json:"id"`
	PropertyID string    `db:"property_id" json:"property_id"`
	FileID     string    `db:"file_id" json:"file_id"`
	IsMain     bool      `db:"is_main" json:"is_main"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// NewPropertyFromRequest builds the catalog entry a moderation approval
// creates: every descriptive field is copied from the request, the approval
// flag is forced true and the entry starts out available.
func NewPropertyFromRequest(req *PropertyRequest) *Property {
	now := time.Now().UTC()
	return &Property{
		ID:           uuid.NewString(),
		OwnerID:      req.OwnerID,
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: req.PropertyType,
		Address:      req.Address,
		City:         req.City,
		Area:         req.Area,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Price:        req.Price,
		Status:       StatusAvailable,
		IsApproved:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
