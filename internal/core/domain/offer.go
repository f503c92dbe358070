package domain

import (
	"errors"
	"time"
)

// OfferStatus represents the lifecycle state of an offer.
type OfferStatus string

const (
	OfferPending  OfferStatus = "PENDING"
	OfferAccepted OfferStatus = "ACCEPTED"
	OfferDeclined OfferStatus = "DECLINED"
	// OfferExpired is a declared terminal state; no expiry job transitions
	// offers into it yet.
	OfferExpired OfferStatus = "EXPIRED"
)

// MaxOfferMessageLength bounds the trimmed offer message.
const MaxOfferMessageLength = 500

// validTransitions defines the allowed state machine transitions.
// Every state except PENDING is terminal.
var validTransitions = map[OfferStatus][]OfferStatus{
	OfferPending: {OfferAccepted, OfferDeclined},
}

var ErrOfferNotFound = errors.New("offer not found")
var ErrOfferResolved = errors.New("offer has already been resolved")
var ErrNeedIDRequired = errors.New("needId is required")
var ErrInvalidAmount = errors.New("amount must be a valid number greater than 0")
var ErrInvalidMessage = errors.New("message must be between 1 and 500 characters")
var ErrInvalidAction = errors.New("action must be accept or decline")

var ErrOnlyExpertsSend = errors.New("only experts can send offers")
var ErrOnlyExpertsView = errors.New("only experts can view their offers")
var ErrOnlyClientsRespond = errors.New("only clients can respond to offers")
var ErrOffersViewerRole = errors.New("only clients or experts can view offers")
var ErrNotNeedOwner = errors.New("not authorized to view offers for this need")
var ErrNotOfferOwner = errors.New("not authorized to update this offer")

// CanTransitionTo reports whether a transition from s to next is valid.
func (s OfferStatus) CanTransitionTo(next OfferStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Offer is an expert's priced proposal against a need. Need and expert
// references are immutable after creation; only status may change.
type Offer struct {
	ID        string      `json:"id"`
	Amount    float64     `json:"amount"`
	Currency  string      `json:"currency"`
	Message   string      `json:"message"`
	Status    OfferStatus `json:"status"`
	ExpertID  string      `json:"expertId"`
	NeedID    string      `json:"needId"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
