package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"estate-service/internal/model"
)

// CatalogGetter resolves a public catalog entry; unapproved entries are
// invisible through it.
type CatalogGetter interface {
	GetApprovedByID(ctx context.Context, id string) (*model.Property, error)
}

// RentalCreator persists new rental inquiries.
type RentalCreator interface {
	Create(ctx context.Context, req *model.RentalRequest) error
}

// RentalService handles client rental inquiries against the catalog.
type RentalService struct {
	catalog CatalogGetter
	rentals RentalCreator
}

func NewRentalService(catalog CatalogGetter, rentals RentalCreator) *RentalService {
	return &RentalService{catalog: catalog, rentals: rentals}
}

// SubmitRentalInput carries the client-supplied fields of an inquiry.
type SubmitRentalInput struct {
	Message            string
	PreferredStartDate time.Time
	DurationMonths     int
}

// Submit creates a pending rental request against an approved, available
// catalog entry. A rented or under-maintenance target is refused outright;
// duplicate requests from the same client are allowed.
func (s *RentalService) Submit(ctx context.Context, clientID, propertyID string, in SubmitRentalInput) (*model.RentalRequest, error) {
	property, err := s.catalog.GetApprovedByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.Status != model.StatusAvailable {
		return nil, ErrNotAvailable
	}

	now := time.Now().UTC()
	req := &model.RentalRequest{
		ID:                 uuid.NewString(),
		ClientID:           clientID,
		PropertyID:         property.ID,
		Message:            in.Message,
		PreferredStartDate: in.PreferredStartDate,
		DurationMonths:     in.DurationMonths,
		Status:             model.RentalPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.rentals.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("RentalService.Submit: %w", err)
	}
	return req, nil
}
