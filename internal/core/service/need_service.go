package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pllumaj/results/internal/core/domain"
	"github.com/pllumaj/results/internal/core/ports"
)

const recentNeedsLimit = 20

// NeedService implements need listing and creation, including the
// category/city fallback resolution policy.
type NeedService struct {
	needs      ports.NeedRepository
	users      ports.UserRepository
	categories ports.CategoryRepository
	cities     ports.CityRepository
	logger     zerolog.Logger
}

func NewNeedService(
	needs ports.NeedRepository,
	users ports.UserRepository,
	categories ports.CategoryRepository,
	cities ports.CityRepository,
	logger zerolog.Logger,
) *NeedService {
	return &NeedService{
		needs:      needs,
		users:      users,
		categories: categories,
		cities:     cities,
		logger:     logger,
	}
}

// List returns the most recent needs, newest first, each joined with the
// owning client's email.
func (s *NeedService) List(ctx context.Context) ([]ports.NeedSummary, error) {
	needs, err := s.needs.ListRecent(ctx, recentNeedsLimit)
	if err != nil {
		return nil, err
	}

	clientIDs := make([]string, 0, len(needs))
	for _, n := range needs {
		clientIDs = append(clientIDs, n.ClientID)
	}
	clients, err := s.users.FindByIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.NeedSummary, 0, len(needs))
	for _, n := range needs {
		summary := ports.NeedSummary{Need: *n}
		if client, ok := clients[n.ClientID]; ok {
			summary.ClientEmail = client.Email
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Create posts a new need owned by callerID.
func (s *NeedService) Create(ctx context.Context, callerID string, input ports.CreateNeedInput) (*domain.Need, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domain.ErrNeedFieldsRequired
	}

	category, err := s.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	city, err := s.resolveCity(ctx, input.CityID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	earliest := now
	if input.TimeEarliest != nil {
		earliest = *input.TimeEarliest
	}
	currency := input.BudgetCurrency
	if currency == "" {
		currency = "USD"
	}

	need := &domain.Need{
		Title:          input.Title,
		Description:    input.Description,
		BudgetAmount:   input.BudgetAmount,
		BudgetCurrency: currency,
		CategoryID:     category.ID,
		CityID:         city.ID,
		ClientID:       caller.ID,
		Status:         domain.NeedStatusPosted,
		TimeEarliest:   earliest,
		TimeLatest:     input.TimeLatest,
		CreatedAt:      now,
	}

	created, err := s.needs.Create(ctx, need)
	if err != nil {
		s.logger.Error().Err(err).Str("client_id", caller.ID).Msg("failed to create need")
		return nil, err
	}

	s.logger.Info().Str("need_id", created.ID).Str("client_id", caller.ID).Msg("need created")
	return created, nil
}

// resolveCategory applies the fallback policy: the given id when it
// exists, else the first stored category, else a created default.
// Concurrent requests against an empty store can race and create more
// than one default record; no guard is taken against that.
func (s *NeedService) resolveCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	if categoryID != "" {
		existing, err := s.categories.FindByID(ctx, categoryID)
		if err == nil {
			return existing, nil
		}
	}

	fallback, err := s.categories.FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if fallback != nil {
		return fallback, nil
	}

	return s.categories.Create(ctx, &domain.Category{
		Name: "General",
		Slug: "general",
	})
}

// resolveCity mirrors resolveCategory for cities.
func (s *NeedService) resolveCity(ctx context.Context, cityID string) (*domain.City, error) {
	if cityID != "" {
		existing, err := s.cities.FindByID(ctx, cityID)
		if err == nil {
			return existing, nil
		}
	}

	fallback, err := s.cities.FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if fallback != nil {
		return fallback, nil
	}

	return s.cities.Create(ctx, &domain.City{
		Name:      "Default City",
		State:     "N/A",
		Country:   "N/A",
		Timezone:  "UTC",
		Latitude:  0,
		Longitude: 0,
	})
}
