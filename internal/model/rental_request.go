package model

import "time"

// Moderation statuses of a rental inquiry.
const (
	RentalPending   = "pending"
	RentalApproved  = "approved"
	RentalRejected  = "rejected"
	RentalCompleted = "completed"
)

// RentalRequest is a client's inquiry to rent an approved, available
// catalog entry. Approving one does not change the target property's
// availability.
type RentalRequest struct {
	ID                 string    `db:"id" json:"id"`
	ClientID           string    `db:"client_id" json:"client_id"`
	PropertyID         string    `db:"property_id" json:"property_id"`
	Message            string    `db:"message" json:"message"`
	PreferredStartDate time.Time `db:"preferred_start_date" json:"preferred_start_date"`
	DurationMonths     int       `db:"duration_months" json:"duration_months"`
	Status             string    `db:"status" json:"status"`
	AdminNotes         string    `db:"admin_notes" json:"admin_notes"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}
