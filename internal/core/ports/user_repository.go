package ports

import (
	"context"

	"github.com/pllumaj/results/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailTaken when the
	// email is already registered (unique index on email).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs returns the users matching ids, keyed by id. Missing ids
	// are simply absent from the map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
}
