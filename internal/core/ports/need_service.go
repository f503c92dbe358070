package ports

import (
	"context"
	"time"

	"github.com/pllumaj/results/internal/core/domain"
)

// CreateNeedInput carries all data needed to post a new need.
// CategoryID and CityID are hints: unknown or empty ids fall back to the
// first existing record, then to a created default.
type CreateNeedInput struct {
	Title          string
	Description    string
	BudgetAmount   *float64
	BudgetCurrency string
	CategoryID     string
	CityID         string
	TimeEarliest   *time.Time
	TimeLatest     *time.Time
}

// NeedSummary is a need joined with its owning client's email, as shown on
// the public listing.
type NeedSummary struct {
	Need        domain.Need
	ClientEmail string
}

// NeedService defines use-case operations for needs.
type NeedService interface {
	// List returns the most recent 20 needs, newest first.
	List(ctx context.Context) ([]NeedSummary, error)
	// Create posts a new need owned by the caller. The caller must resolve
	// to an existing user.
	Create(ctx context.Context, callerID string, input CreateNeedInput) (*domain.Need, error)
}
