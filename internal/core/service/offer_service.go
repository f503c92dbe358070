package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/pllumaj/results/internal/core/domain"
	"github.com/pllumaj/results/internal/core/ports"
)

// Realtime event names broadcast on offer mutations.
const (
	EventOfferCreated = "offer:created"
	EventOfferUpdated = "offer:updated"
)

// OfferService implements the offer lifecycle: creation by experts,
// listing, and accept/decline responses by the need's owning client.
// Every mutation fans out realtime events; fan-out failures are logged
// and swallowed, never failing the request.
type OfferService struct {
	offers   ports.OfferRepository
	needs    ports.NeedRepository
	users    ports.UserRepository
	notifier ports.Notifier
	logger   zerolog.Logger

	// strictTransitions enforces the PENDING precondition on Respond.
	// Off by default: the original behaviour lets a client overwrite an
	// already-resolved offer (last write wins).
	strictTransitions bool
}

func NewOfferService(
	offers ports.OfferRepository,
	needs ports.NeedRepository,
	users ports.UserRepository,
	notifier ports.Notifier,
	logger zerolog.Logger,
	strictTransitions bool,
) *OfferService {
	return &OfferService{
		offers:            offers,
		needs:             needs,
		users:             users,
		notifier:          notifier,
		logger:            logger,
		strictTransitions: strictTransitions,
	}
}

// Create sends a new offer on a need. The caller must be an expert.
func (s *OfferService) Create(ctx context.Context, callerID string, input ports.CreateOfferInput) (*ports.OfferView, error) {
	// 1. Resolve the caller and check the role.
	expert, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if expert.Role != domain.RoleExpert {
		return nil, domain.ErrOnlyExpertsSend
	}

	// 2. Validate the input.
	if input.NeedID == "" {
		return nil, domain.ErrNeedIDRequired
	}
	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) || input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	message := strings.TrimSpace(input.Message)
	if length := utf8.RuneCountInString(message); length == 0 || length > domain.MaxOfferMessageLength {
		return nil, domain.ErrInvalidMessage
	}
	currency := strings.TrimSpace(input.Currency)
	if currency == "" {
		currency = "USD"
	}

	// 3. Resolve the need.
	need, err := s.needs.FindByID(ctx, input.NeedID)
	if err != nil {
		return nil, err
	}

	// 4. Persist the offer in its initial state.
	now := time.Now().UTC()
	offer, err := s.offers.Create(ctx, &domain.Offer{
		Amount:    input.Amount,
		Currency:  currency,
		Message:   message,
		Status:    domain.OfferPending,
		ExpertID:  expert.ID,
		NeedID:    need.ID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("need_id", need.ID).Str("expert_id", expert.ID).Msg("failed to create offer")
		return nil, err
	}

	view := &ports.OfferView{
		Offer:  *offer,
		Expert: ports.ExpertRef{ID: expert.ID, Email: expert.Email},
		Need:   ports.NeedRef{ID: need.ID, ClientID: need.ClientID},
	}

	// 5. Fan out to the need's and the client's channels.
	s.fanOut(ctx, EventOfferCreated, view,
		needChannel(need.ID),
		clientChannel(need.ClientID),
	)

	s.logger.Info().
		Str("offer_id", offer.ID).
		Str("need_id", need.ID).
		Str("expert_id", expert.ID).
		Msg("offer created")

	return view, nil
}

// ListForNeed returns all offers on a need, newest first. Client callers
// must own the need; experts may view offers on any need.
func (s *OfferService) ListForNeed(ctx context.Context, callerID, needID string) ([]ports.OfferForNeed, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if needID == "" {
		return nil, domain.ErrNeedIDRequired
	}

	need, err := s.needs.FindByID(ctx, needID)
	if err != nil {
		return nil, err
	}

	if caller.Role == domain.RoleClient && need.ClientID != caller.ID {
		return nil, domain.ErrNotNeedOwner
	}
	if caller.Role != domain.RoleClient && caller.Role != domain.RoleExpert {
		return nil, domain.ErrOffersViewerRole
	}

	offers, err := s.offers.ListByNeed(ctx, needID)
	if err != nil {
		return nil, err
	}

	expertIDs := make([]string, 0, len(offers))
	for _, o := range offers {
		expertIDs = append(expertIDs, o.ExpertID)
	}
	experts, err := s.users.FindByIDs(ctx, expertIDs)
	if err != nil {
		return nil, err
	}

	items := make([]ports.OfferForNeed, 0, len(offers))
	for _, o := range offers {
		item := ports.OfferForNeed{Offer: *o}
		if expert, ok := experts[o.ExpertID]; ok {
			item.Expert = ports.ExpertRef{ID: expert.ID, Email: expert.Email}
		}
		items = append(items, item)
	}
	return items, nil
}

// ListMine returns all offers made by the calling expert, newest first.
func (s *OfferService) ListMine(ctx context.Context, callerID string) ([]ports.OfferMine, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != domain.RoleExpert {
		return nil, domain.ErrOnlyExpertsView
	}

	offers, err := s.offers.ListByExpert(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	items := make([]ports.OfferMine, 0, len(offers))
	for _, o := range offers {
		item := ports.OfferMine{Offer: *o}
		if need, err := s.needs.FindByID(ctx, o.NeedID); err == nil {
			item.Need = ports.NeedTitleRef{ID: need.ID, Title: need.Title}
		}
		items = append(items, item)
	}
	return items, nil
}

// Respond transitions an offer to ACCEPTED or DECLINED on behalf of the
// need's owning client.
func (s *OfferService) Respond(ctx context.Context, callerID, offerID, action string) (*ports.OfferView, error) {
	// 1. Resolve the caller and check the role.
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != domain.RoleClient {
		return nil, domain.ErrOnlyClientsRespond
	}

	// 2. Normalize the requested action.
	next, err := normalizeAction(action)
	if err != nil {
		return nil, err
	}

	// 3. Resolve the offer and its need/expert references.
	offer, err := s.offers.FindByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	need, err := s.needs.FindByID(ctx, offer.NeedID)
	if err != nil {
		return nil, err
	}
	expert, err := s.users.FindByID(ctx, offer.ExpertID)
	if err != nil {
		return nil, err
	}

	// 4. Only the need's owning client may respond.
	if need.ClientID != caller.ID {
		return nil, domain.ErrNotOfferOwner
	}

	// 5. Optional state-machine guard. Without it the update is
	// unconditional and a resolved offer can be overwritten.
	if s.strictTransitions && !offer.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (status %s)", domain.ErrOfferResolved, offer.Status)
	}

	updated, err := s.offers.UpdateStatus(ctx, offer.ID, next, time.Now().UTC())
	if err != nil {
		s.logger.Error().Err(err).Str("offer_id", offer.ID).Msg("failed to update offer")
		return nil, err
	}

	view := &ports.OfferView{
		Offer:  *updated,
		Expert: ports.ExpertRef{ID: expert.ID, Email: expert.Email},
		Need:   ports.NeedRef{ID: need.ID, ClientID: need.ClientID},
	}

	// 6. Fan out to every interested party.
	s.fanOut(ctx, EventOfferUpdated, view,
		offerChannel(offer.ID),
		needChannel(need.ID),
		expertChannel(expert.ID),
		clientChannel(need.ClientID),
	)

	s.logger.Info().
		Str("offer_id", offer.ID).
		Str("status", string(updated.Status)).
		Str("client_id", caller.ID).
		Msg("offer responded")

	return view, nil
}

// fanOut publishes one event to every channel concurrently and waits for
// all publishes to settle. Failures are logged and swallowed.
func (s *OfferService) fanOut(ctx context.Context, event string, payload any, channels ...string) {
	var wg sync.WaitGroup
	for _, channel := range channels {
		wg.Add(1)
		go func(channel string) {
			defer wg.Done()
			if err := s.notifier.Publish(ctx, channel, event, payload); err != nil {
				s.logger.Warn().Err(err).
					Str("channel", channel).
					Str("event", event).
					Msg("notification publish failed")
			}
		}(channel)
	}
	wg.Wait()
}

func normalizeAction(action string) (domain.OfferStatus, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "accept", "accepted":
		return domain.OfferAccepted, nil
	case "decline", "declined":
		return domain.OfferDeclined, nil
	default:
		return "", domain.ErrInvalidAction
	}
}

func needChannel(id string) string   { return fmt.Sprintf("need-%s", id) }
func clientChannel(id string) string { return fmt.Sprintf("client-%s", id) }
func expertChannel(id string) string { return fmt.Sprintf("expert-%s", id) }
func offerChannel(id string) string  { return fmt.Sprintf("offer-%s", id) }
