package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"estate-service/internal/model"
)

// PropertyRequestStore is the slice of the request repository the moderation
// workflow needs.
type PropertyRequestStore interface {
	Promote(ctx context.Context, id, notes string) (*model.Property, error)
	Reject(ctx context.Context, id, notes string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// RentalRequestStore is the slice of the rental repository the moderation
// workflow needs.
type RentalRequestStore interface {
	SetStatusIfPending(ctx context.Context, id, status, notes string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// CatalogCounter reports the size of the approved catalog for the dashboard.
type CatalogCounter interface {
	CountApproved(ctx context.Context) (int64, error)
}

// FeaturedInvalidator drops the cached featured listings after the catalog
// changes.
type FeaturedInvalidator interface {
	Invalidate(ctx context.Context) error
}

// ModerationService is the single authoritative implementation of the
// approve/reject transitions. Every admin entry point goes through it.
type ModerationService struct {
	requests PropertyRequestStore
	rentals  RentalRequestStore
	catalog  CatalogCounter
	cache    FeaturedInvalidator
	log      logrus.FieldLogger
}

func NewModerationService(
	requests PropertyRequestStore,
	rentals RentalRequestStore,
	catalog CatalogCounter,
	cache FeaturedInvalidator,
	log logrus.FieldLogger,
) *ModerationService {
	return &ModerationService{
		requests: requests,
		rentals:  rentals,
		catalog:  catalog,
		cache:    cache,
		log:      log,
	}
}

// ApproveProperty promotes a pending property request into a catalog entry.
// The store guarantees the transition and the derived writes happen in one
// transaction and that a request that already left pending is left untouched.
func (s *ModerationService) ApproveProperty(ctx context.Context, requestID, notes string) (*model.Property, error) {
	property, err := s.requests.Promote(ctx, requestID, notes)
	if err != nil {
		return nil, err
	}

	// The new entry is browsable, so the cached featured page is stale.
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.WithError(err).Warn("featured cache invalidation failed")
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"property_id": property.ID,
	}).Info("property request approved")
	return property, nil
}

// RejectProperty marks a pending property request rejected. There is no
// un-reject path.
func (s *ModerationService) RejectProperty(ctx context.Context, requestID, notes string) error {
	if err := s.requests.Reject(ctx, requestID, notes); err != nil {
		return err
	}
	s.log.WithField("request_id", requestID).Info("property request rejected")
	return nil
}

// ApproveRental marks a pending rental request approved. The target
// property's availability is deliberately left unchanged.
func (s *ModerationService) ApproveRental(ctx context.Context, requestID, notes string) error {
	if err := s.rentals.SetStatusIfPending(ctx, requestID, model.RentalApproved, notes); err != nil {
		return err
	}
	s.log.WithField("rental_request_id", requestID).Info("rental request approved")
	return nil
}

// RejectRental marks a pending rental request rejected.
func (s *ModerationService) RejectRental(ctx context.Context, requestID, notes string) error {
	if err := s.rentals.SetStatusIfPending(ctx, requestID, model.RentalRejected, notes); err != nil {
		return err
	}
	s.log.WithField("rental_request_id", requestID).Info("rental request rejected")
	return nil
}

// DashboardStats are the counters shown on the admin dashboard.
type DashboardStats struct {
	PendingPropertyRequests int64 `json:"pending_property_requests"`
	PendingRentalRequests   int64 `json:"pending_rental_requests"`
	TotalProperties         int64 `json:"total_properties"`
}

func (s *ModerationService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	pendingProps, err := s.requests.CountByStatus(ctx, model.RequestPending)
	if err != nil {
		return nil, err
	}
	pendingRentals, err := s.rentals.CountByStatus(ctx, model.RentalPending)
	if err != nil {
		return nil, err
	}
	total, err := s.catalog.CountApproved(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		PendingPropertyRequests: pendingProps,
		PendingRentalRequests:   pendingRentals,
		TotalProperties:         total,
	}, nil
}
