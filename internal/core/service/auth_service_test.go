package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pllumaj/results/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub user repository (shared by the service tests)
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID map[string]*domain.User
	seq  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) add(email, role string) *domain.User {
	r.seq++
	u := &domain.User{ID: fmt.Sprintf("user_%d", r.seq), Email: email, Role: role}
	r.byID[u.ID] = u
	return cloneUser(u)
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("user_%d", r.seq)
	r.byID[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.byID[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	found := make(map[string]*domain.User)
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			found[id] = cloneUser(u)
		}
	}
	return found, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "Alice@Example.com ", "pass123", "client")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalised email, got %q", user.Email)
	}
	if user.Role != domain.RoleClient {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "pass", "client"); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob@example.com", "", "client"); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials for empty password, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob@example.com", "pass", "admin"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "bob@example.com", "pass", "client"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), " BOB@example.COM", "pass2", "expert"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", 7*24*time.Hour)

	registered, err := svc.Register(context.Background(), "carol@example.com", "s3cret", "expert")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "Carol@Example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != registered.ID || claims["email"] != "carol@example.com" || claims["role"] != "expert" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("missing exp claim")
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining < 6*24*time.Hour || remaining > 8*24*time.Hour {
		t.Fatalf("expected ~7 day expiry, got %v", remaining)
	}
}

func TestAuthService_Login_NoCredentialLeak(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "dave@example.com", "right", "client"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, _, wrongPass := svc.Login(context.Background(), "dave@example.com", "wrong")
	_, _, unknown := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if unknown != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknown)
	}
}
