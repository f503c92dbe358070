package ports

import (
	"context"
	"time"

	"github.com/pllumaj/results/internal/core/domain"
)

// OfferRepository defines persistence operations for offers.
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	FindByID(ctx context.Context, id string) (*domain.Offer, error)
	// ListByNeed returns all offers for a need, newest first.
	ListByNeed(ctx context.Context, needID string) ([]*domain.Offer, error)
	// ListByExpert returns all offers made by an expert, newest first.
	ListByExpert(ctx context.Context, expertID string) ([]*domain.Offer, error)
	// UpdateStatus sets the offer's status and updated_at, returning the
	// updated record. Returns domain.ErrOfferNotFound when absent.
	UpdateStatus(ctx context.Context, id string, status domain.OfferStatus, updatedAt time.Time) (*domain.Offer, error)
}
