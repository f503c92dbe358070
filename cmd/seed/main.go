// Command seed inserts a small demo data set: one city, one category, one
// client account, and one posted need.
package main

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pllumaj/results/internal/core/domain"
	mongodb "github.com/pllumaj/results/internal/infrastructure/db/mongo"
	"github.com/pllumaj/results/internal/pkg/config"
	"github.com/pllumaj/results/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer client.Disconnect(ctx)

	cities := mongodb.NewCityRepository(db)
	categories := mongodb.NewCategoryRepository(db)
	users := mongodb.NewUserRepository(db)
	needs := mongodb.NewNeedRepository(db)

	city, err := cities.Create(ctx, &domain.City{
		Name:      "Shkodër",
		Country:   "Albania",
		Timezone:  "Europe/Tirane",
		Latitude:  42.0683,
		Longitude: 19.5126,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed city")
	}

	category, err := categories.Create(ctx, &domain.Category{
		Name: "Plumbing",
		Slug: "plumbing",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed category")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash seed password")
	}

	now := time.Now().UTC()
	user, err := users.Create(ctx, &domain.User{
		Email:        "client@test.com",
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed user")
	}

	budget := 50.0
	if _, err := needs.Create(ctx, &domain.Need{
		Title:          "Fix leaking sink",
		Description:    "My kitchen sink is leaking and needs urgent repair",
		BudgetAmount:   &budget,
		BudgetCurrency: "USD",
		CategoryID:     category.ID,
		CityID:         city.ID,
		ClientID:       user.ID,
		Status:         domain.NeedStatusPosted,
		TimeEarliest:   now,
		CreatedAt:      now,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed need")
	}

	log.Info().Msg("seed data inserted")
}
