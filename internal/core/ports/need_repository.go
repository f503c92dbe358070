package ports

import (
	"context"

	"github.com/pllumaj/results/internal/core/domain"
)

// NeedRepository defines persistence operations for needs.
type NeedRepository interface {
	Create(ctx context.Context, need *domain.Need) (*domain.Need, error)
	FindByID(ctx context.Context, id string) (*domain.Need, error)
	// ListRecent returns up to limit needs ordered by creation descending.
	ListRecent(ctx context.Context, limit int) ([]*domain.Need, error)
}

// CategoryRepository defines persistence operations for categories.
// FindFirst backs the fallback resolution policy and returns (nil, nil)
// when the store is empty.
type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindFirst(ctx context.Context) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

// CityRepository defines persistence operations for cities. FindFirst
// returns (nil, nil) when the store is empty.
type CityRepository interface {
	FindByID(ctx context.Context, id string) (*domain.City, error)
	FindFirst(ctx context.Context) (*domain.City, error)
	Create(ctx context.Context, city *domain.City) (*domain.City, error)
}
