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

const offerCollection = "offers"

type MongoOfferRepository struct {
	coll *mongo.Collection
}

func NewOfferRepository(db *mongo.Database) *MongoOfferRepository {
	return &MongoOfferRepository{coll: db.Collection(offerCollection)}
}

type mongoOffer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Amount    float64            `bson:"amount"`
	Currency  string             `bson:"currency"`
	Message   string             `bson:"message"`
	Status    string             `bson:"status"`
	ExpertID  string             `bson:"expert_id"`
	NeedID    string             `bson:"need_id"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *MongoOfferRepository) Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	doc := mongoOffer{
		Amount:    offer.Amount,
		Currency:  offer.Currency,
		Message:   offer.Message,
		Status:    string(offer.Status),
		ExpertID:  offer.ExpertID,
		NeedID:    offer.NeedID,
		CreatedAt: offer.CreatedAt,
		UpdatedAt: offer.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert offer: %w", err)
	}

	created := *offer
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoOfferRepository) FindByID(ctx context.Context, id string) (*domain.Offer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOfferNotFound
	}

	var mo mongoOffer
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("find offer: %w", err)
	}
	return mo.toDomain(), nil
}

func (r *MongoOfferRepository) ListByNeed(ctx context.Context, needID string) ([]*domain.Offer, error) {
	return r.list(ctx, bson.M{"need_id": needID})
}

func (r *MongoOfferRepository) ListByExpert(ctx context.Context, expertID string) ([]*domain.Offer, error) {
	return r.list(ctx, bson.M{"expert_id": expertID})
}

func (r *MongoOfferRepository) UpdateStatus(ctx context.Context, id string, status domain.OfferStatus, updatedAt time.Time) (*domain.Offer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOfferNotFound
	}

	update := bson.M{"$set": bson.M{"status": string(status), "updated_at": updatedAt}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mo mongoOffer
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("update offer status: %w", err)
	}
	return mo.toDomain(), nil
}

func (r *MongoOfferRepository) list(ctx context.Context, filter bson.M) ([]*domain.Offer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer cursor.Close(ctx)

	var offers []*domain.Offer
	for cursor.Next(ctx) {
		var mo mongoOffer
		if err := cursor.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode offer: %w", err)
		}
		offers = append(offers, mo.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate offers: %w", err)
	}
	return offers, nil
}

func (mo mongoOffer) toDomain() *domain.Offer {
	return &domain.Offer{
		ID:        mo.ID.Hex(),
		Amount:    mo.Amount,
		Currency:  mo.Currency,
		Message:   mo.Message,
		Status:    domain.OfferStatus(mo.Status),
		ExpertID:  mo.ExpertID,
		NeedID:    mo.NeedID,
		CreatedAt: mo.CreatedAt.UTC(),
		UpdatedAt: mo.UpdatedAt.UTC(),
	}
}
