package ports

import (
	"context"

	"github.com/pllumaj/results/internal/core/domain"
)

// CreateOfferInput carries all data needed to send an offer on a need.
type CreateOfferInput struct {
	NeedID   string
	Amount   float64
	Message  string
	Currency string // optional, defaults to USD
}

// ExpertRef is the nested expert view embedded in offer payloads.
type ExpertRef struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// NeedRef is the nested need view embedded in offer payloads.
type NeedRef struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
}

// NeedTitleRef is the nested need view used when an expert lists their
// own offers.
type NeedTitleRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// OfferView is the full offer payload returned by create/respond and
// broadcast on realtime channels.
type OfferView struct {
	domain.Offer
	Expert ExpertRef `json:"expert"`
	Need   NeedRef   `json:"need"`
}

// OfferForNeed is a list item for offers on a given need.
type OfferForNeed struct {
	domain.Offer
	Expert ExpertRef `json:"expert"`
}

// OfferMine is a list item for an expert's own offers.
type OfferMine struct {
	domain.Offer
	Need NeedTitleRef `json:"need"`
}

// OfferService defines the offer lifecycle: creation by experts,
// listing, and accept/decline by the need's owning client.
type OfferService interface {
	Create(ctx context.Context, callerID string, input CreateOfferInput) (*OfferView, error)
	ListForNeed(ctx context.Context, callerID, needID string) ([]OfferForNeed, error)
	ListMine(ctx context.Context, callerID string) ([]OfferMine, error)
	// Respond normalizes action (accept/accepted/decline/declined, any
	// case) and transitions the offer.
	Respond(ctx context.Context, callerID, offerID, action string) (*OfferView, error)
}
