package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pllumaj/results/internal/core/domain"
)

const needCollection = "needs"

type MongoNeedRepository struct {
	coll *mongo.Collection
}

func NewNeedRepository(db *mongo.Database) *MongoNeedRepository {
	return &MongoNeedRepository{coll: db.Collection(needCollection)}
}

type mongoNeed struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	Description    string             `bson:"description"`
	BudgetAmount   *float64           `bson:"budget_amount,omitempty"`
	BudgetCurrency string             `bson:"budget_currency"`
	CategoryID     string             `bson:"category_id"`
	CityID         string             `bson:"city_id"`
	ClientID       string             `bson:"client_id"`
	Status         string             `bson:"status"`
	TimeEarliest   time.Time          `bson:"time_earliest"`
	TimeLatest     *time.Time         `bson:"time_latest,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (r *MongoNeedRepository) Create(ctx context.Context, need *domain.Need) (*domain.Need, error) {
	doc := mongoNeed{
		Title:          need.Title,
		Description:    need.Description,
		BudgetAmount:   need.BudgetAmount,
		BudgetCurrency: need.BudgetCurrency,
		CategoryID:     need.CategoryID,
		CityID:         need.CityID,
		ClientID:       need.ClientID,
		Status:         need.Status,
		TimeEarliest:   need.TimeEarliest,
		TimeLatest:     need.TimeLatest,
		CreatedAt:      need.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert need: %w", err)
	}

	created := *need
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoNeedRepository) FindByID(ctx context.Context, id string) (*domain.Need, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNeedNotFound
	}

	var mn mongoNeed
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mn); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNeedNotFound
		}
		return nil, fmt.Errorf("find need: %w", err)
	}
	return mn.toDomain(), nil
}

func (r *MongoNeedRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Need, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list needs: %w", err)
	}
	defer cursor.Close(ctx)

	var needs []*domain.Need
	for cursor.Next(ctx) {
		var mn mongoNeed
		if err := cursor.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode need: %w", err)
		}
		needs = append(needs, mn.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate needs: %w", err)
	}
	return needs, nil
}

func (mn mongoNeed) toDomain() *domain.Need {
	need := &domain.Need{
		ID:             mn.ID.Hex(),
		Title:          mn.Title,
		Description:    mn.Description,
		BudgetAmount:   mn.BudgetAmount,
		BudgetCurrency: mn.BudgetCurrency,
		CategoryID:     mn.CategoryID,
		CityID:         mn.CityID,
		ClientID:       mn.ClientID,
		Status:         mn.Status,
		TimeEarliest:   mn.TimeEarliest.UTC(),
		CreatedAt:      mn.CreatedAt.UTC(),
	}
	if mn.TimeLatest != nil {
		latest := mn.TimeLatest.UTC()
		need.TimeLatest = &latest
	}
	return need
}
