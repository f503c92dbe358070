package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pllumaj/results/internal/core/domain"
)

const (
	categoryCollection = "categories"
	cityCollection     = "cities"
)

// MongoCategoryRepository persists need categories. FindFirst backs the
// fallback resolution policy and returns (nil, nil) on an empty store.
type MongoCategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{coll: db.Collection(categoryCollection)}
}

type mongoCategory struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Slug string             `bson:"slug"`
}

func (r *MongoCategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	res, err := r.coll.InsertOne(ctx, mongoCategory{Name: category.Name, Slug: category.Slug})
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	created := *category
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var mc mongoCategory
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &domain.Category{ID: mc.ID.Hex(), Name: mc.Name, Slug: mc.Slug}, nil
}

func (r *MongoCategoryRepository) FindFirst(ctx context.Context) (*domain.Category, error) {
	var mc mongoCategory
	if err := r.coll.FindOne(ctx, bson.M{}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find first category: %w", err)
	}
	return &domain.Category{ID: mc.ID.Hex(), Name: mc.Name, Slug: mc.Slug}, nil
}

// MongoCityRepository persists cities, with the same FindFirst contract
// as categories.
type MongoCityRepository struct {
	coll *mongo.Collection
}

func NewCityRepository(db *mongo.Database) *MongoCityRepository {
	return &MongoCityRepository{coll: db.Collection(cityCollection)}
}

type mongoCity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	State     string             `bson:"state,omitempty"`
	Country   string             `bson:"country"`
	Timezone  string             `bson:"timezone"`
	Latitude  float64            `bson:"latitude"`
	Longitude float64            `bson:"longitude"`
}

func (r *MongoCityRepository) Create(ctx context.Context, city *domain.City) (*domain.City, error) {
	doc := mongoCity{
		Name:      city.Name,
		State:     city.State,
		Country:   city.Country,
		Timezone:  city.Timezone,
		Latitude:  city.Latitude,
		Longitude: city.Longitude,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert city: %w", err)
	}
	created := *city
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoCityRepository) FindByID(ctx context.Context, id string) (*domain.City, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var mc mongoCity
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("find city: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *MongoCityRepository) FindFirst(ctx context.Context) (*domain.City, error) {
	var mc mongoCity
	if err := r.coll.FindOne(ctx, bson.M{}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find first city: %w", err)
	}
	return mc.toDomain(), nil
}

func (mc mongoCity) toDomain() *domain.City {
	return &domain.City{
		ID:        mc.ID.Hex(),
		Name:      mc.Name,
		State:     mc.State,
		Country:   mc.Country,
		Timezone:  mc.Timezone,
		Latitude:  mc.Latitude,
		Longitude: mc.Longitude,
	}
}
