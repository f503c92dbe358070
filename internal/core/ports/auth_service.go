package ports

import (
	"context"

	"github.com/pllumaj/results/internal/core/domain"
)

// AuthService implements registration and login. Token verification lives
// in the HTTP middleware; the service only issues tokens.
type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
