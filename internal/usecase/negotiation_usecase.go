package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"nlistplanet/internal/adapter/backend"
	"nlistplanet/internal/domain/entity"
	"nlistplanet/internal/negotiation"
	"nlistplanet/pkg/errors"
	"nlistplanet/pkg/logger"
)

// NegotiationUseCase drives the four user-invoked actions against a
// listing's negotiation records: place, accept, reject, counter. Each
// action runs the local state machine checks first so obviously invalid
// input never costs a round-trip, then submits to the backend and
// adopts the returned record wholesale. The local checks are a UX hint,
// not a security boundary: the backend revalidates everything and its
// answer is authoritative, so a CONFLICT here means the caller must
// refetch, never retry.
type NegotiationUseCase struct {
	gateway  NegotiationGateway
	validate *validator.Validate
}

func NewNegotiationUseCase(gateway NegotiationGateway) *NegotiationUseCase {
	return &NegotiationUseCase{
		gateway:  gateway,
		validate: validator.New(),
	}
}

type PlaceBidInput struct {
	ListingID string  `validate:"required"`
	Price     float64 `validate:"required,gt=0"`
	Quantity  int     `validate:"required,gt=0"`
}

// PlaceBid opens a new bid or offer against a listing. The listing is
// fetched first so the lot-size checks run against current terms.
func (uc *NegotiationUseCase) PlaceBid(ctx context.Context, currentUserID string, input PlaceBidInput) (*entity.Negotiation, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, errors.Validation(err.Error())
	}

	listing, err := uc.gateway.GetListing(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}

	if err := negotiation.CheckPlace(listing, currentUserID, input.Price, input.Quantity); err != nil {
		return nil, err
	}

	record, err := uc.gateway.PlaceNegotiation(ctx, input.ListingID, backend.TermsInput{
		Price:    input.Price,
		Quantity: input.Quantity,
	})
	logger.LogNegotiationAction(input.ListingID, "place", err)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Accept accepts the terms currently on the table. The caller passes
// its last-known listing and record snapshots; the turn check runs on
// those, and the backend's copy settles any staleness.
func (uc *NegotiationUseCase) Accept(ctx context.Context, currentUserID string, listing *entity.Listing, record *entity.Negotiation) (*entity.Negotiation, error) {
	actor := negotiation.PartyRole(listing, currentUserID)
	if err := negotiation.CheckAccept(record, actor); err != nil {
		return nil, err
	}

	updated, err := uc.gateway.AcceptNegotiation(ctx, record.ID)
	logger.LogNegotiationAction(record.ID, "accept", err)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Reject rejects the record. Either party may do this at any point
// before a terminal state.
func (uc *NegotiationUseCase) Reject(ctx context.Context, record *entity.Negotiation) (*entity.Negotiation, error) {
	if err := negotiation.CheckReject(record); err != nil {
		return nil, err
	}

	updated, err := uc.gateway.RejectNegotiation(ctx, record.ID)
	logger.LogNegotiationAction(record.ID, "reject", err)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

type CounterInput struct {
	Price    float64 `validate:"required,gt=0"`
	Quantity int     `validate:"required,gt=0"`
}

// Counter proposes new terms on the record.
func (uc *NegotiationUseCase) Counter(ctx context.Context, currentUserID string, listing *entity.Listing, record *entity.Negotiation, input CounterInput) (*entity.Negotiation, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, errors.Validation(err.Error())
	}

	actor := negotiation.PartyRole(listing, currentUserID)
	if err := negotiation.CheckCounter(listing, record, actor, input.Price, input.Quantity); err != nil {
		return nil, err
	}

	updated, err := uc.gateway.CounterNegotiation(ctx, record.ID, backend.TermsInput{
		Price:    input.Price,
		Quantity: input.Quantity,
	})
	logger.LogNegotiationAction(record.ID, "counter", err)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Refresh refetches the authoritative record, the recovery path after a
// CONFLICT.
func (uc *NegotiationUseCase) Refresh(ctx context.Context, negotiationID string) (*entity.Negotiation, error) {
	return uc.gateway.GetNegotiation(ctx, negotiationID)
}

// Listing refetches a record's parent listing.
func (uc *NegotiationUseCase) Listing(ctx context.Context, listingID string) (*entity.Listing, error) {
	return uc.gateway.GetListing(ctx, listingID)
}

// NegotiationView is the render-ready projection of one record for one
// viewer: the resolved price on the table and whether it is the
// viewer's move. Every screen that lists records derives these through
// this one function so the turn and price rules cannot drift apart
// between the dashboard, the bids list and my-posts.
type NegotiationView struct {
	Record         *entity.Negotiation
	ViewerRole     entity.Role
	Display        negotiation.DisplayPrice
	ActionRequired bool
	CanAccept      bool
	CanCounter     bool
	CanReject      bool
}

// View projects a record for the given viewer.
func View(listing *entity.Listing, record *entity.Negotiation, currentUserID string) NegotiationView {
	role := negotiation.PartyRole(listing, currentUserID)
	return NegotiationView{
		Record:         record,
		ViewerRole:     role,
		Display:        negotiation.ResolveLatestPrice(record, role),
		ActionRequired: negotiation.ActionRequired(record, role),
		CanAccept:      negotiation.CanAccept(record, role),
		CanCounter:     negotiation.CanCounter(record, role),
		CanReject:      negotiation.CanReject(record),
	}
}

// MyBids lists the current user's bids and offers, optionally filtered
// by status.
func (uc *NegotiationUseCase) MyBids(ctx context.Context, status entity.NegotiationStatus, page, limit int) ([]*entity.Negotiation, int64, error) {
	return uc.gateway.MyNegotiations(ctx, status, page, limit)
}
