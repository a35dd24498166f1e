package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nlistplanet/internal/adapter/backend"
	"nlistplanet/internal/domain/entity"
	"nlistplanet/pkg/errors"
)

// fakeGateway records calls and plays back canned results.
type fakeGateway struct {
	listing *entity.Listing
	record  *entity.Negotiation
	err     error
	calls   []string
}

func (f *fakeGateway) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	f.calls = append(f.calls, "GetListing")
	return f.listing, f.err
}

func (f *fakeGateway) GetNegotiation(ctx context.Context, id string) (*entity.Negotiation, error) {
	f.calls = append(f.calls, "GetNegotiation")
	return f.record, f.err
}

func (f *fakeGateway) MyNegotiations(ctx context.Context, status entity.NegotiationStatus, page, limit int) ([]*entity.Negotiation, int64, error) {
	f.calls = append(f.calls, "MyNegotiations")
	return []*entity.Negotiation{f.record}, 1, f.err
}

func (f *fakeGateway) PlaceNegotiation(ctx context.Context, listingID string, terms backend.TermsInput) (*entity.Negotiation, error) {
	f.calls = append(f.calls, "PlaceNegotiation")
	return f.record, f.err
}

func (f *fakeGateway) AcceptNegotiation(ctx context.Context, id string) (*entity.Negotiation, error) {
	f.calls = append(f.calls, "AcceptNegotiation")
	return f.record, f.err
}

func (f *fakeGateway) RejectNegotiation(ctx context.Context, id string) (*entity.Negotiation, error) {
	f.calls = append(f.calls, "RejectNegotiation")
	return f.record, f.err
}

func (f *fakeGateway) CounterNegotiation(ctx context.Context, id string, terms backend.TermsInput) (*entity.Negotiation, error) {
	f.calls = append(f.calls, "CounterNegotiation")
	return f.record, f.err
}

func activeListing() *entity.Listing {
	return &entity.Listing{
		ID:       "lst-1",
		OwnerID:  "seller-1",
		Type:     entity.ListingTypeSell,
		Price:    100,
		Quantity: 100,
		MinLot:   10,
		Status:   entity.ListingStatusActive,
	}
}

func pendingRecord() *entity.Negotiation {
	return &entity.Negotiation{
		ID:             "neg-1",
		ListingID:      "lst-1",
		CounterpartyID: "buyer-9",
		ProposerRole:   entity.RoleBuyer,
		Price:          100,
		Quantity:       20,
		Status:         entity.NegotiationStatusPending,
		CreatedAt:      time.Now(),
	}
}

func TestPlaceBid(t *testing.T) {
	gw := &fakeGateway{listing: activeListing(), record: pendingRecord()}
	uc := NewNegotiationUseCase(gw)

	record, err := uc.PlaceBid(context.Background(), "buyer-9", PlaceBidInput{
		ListingID: "lst-1", Price: 100, Quantity: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "neg-1", record.ID)
	assert.Equal(t, []string{"GetListing", "PlaceNegotiation"}, gw.calls)
}

func TestPlaceBidFailsFastOnBadInput(t *testing.T) {
	gw := &fakeGateway{listing: activeListing()}
	uc := NewNegotiationUseCase(gw)

	_, err := uc.PlaceBid(context.Background(), "buyer-9", PlaceBidInput{
		ListingID: "lst-1", Price: -4, Quantity: 20,
	})
	assert.True(t, errors.IsValidation(err), "got %v", err)
	// Invalid input must never reach the network.
	assert.Empty(t, gw.calls)
}

func TestPlaceBidRespectsLotSize(t *testing.T) {
	gw := &fakeGateway{listing: activeListing()}
	uc := NewNegotiationUseCase(gw)

	_, err := uc.PlaceBid(context.Background(), "buyer-9", PlaceBidInput{
		ListingID: "lst-1", Price: 100, Quantity: 9,
	})
	assert.True(t, errors.IsValidation(err), "got %v", err)
	// Listing fetch is allowed; the mutation is not.
	assert.Equal(t, []string{"GetListing"}, gw.calls)
}

func TestAcceptWrongTurnFailsLocally(t *testing.T) {
	gw := &fakeGateway{record: pendingRecord()}
	uc := NewNegotiationUseCase(gw)

	// The buyer proposed last, so the buyer cannot accept.
	_, err := uc.Accept(context.Background(), "buyer-9", activeListing(), pendingRecord())
	assert.True(t, errors.IsInvalidTransition(err), "got %v", err)
	assert.Empty(t, gw.calls)
}

func TestAcceptReplacesRecordWholesale(t *testing.T) {
	server := pendingRecord()
	server.Status = entity.NegotiationStatusAccepted
	gw := &fakeGateway{record: server}
	uc := NewNegotiationUseCase(gw)

	local := pendingRecord()
	updated, err := uc.Accept(context.Background(), "seller-1", activeListing(), local)
	require.NoError(t, err)
	assert.Equal(t, entity.NegotiationStatusAccepted, updated.Status)
	// The local snapshot is never mutated; the server copy replaces it.
	assert.Equal(t, entity.NegotiationStatusPending, local.Status)
}

func TestAcceptSurfacesConflict(t *testing.T) {
	gw := &fakeGateway{err: errors.Conflict("negotiation was updated")}
	uc := NewNegotiationUseCase(gw)

	_, err := uc.Accept(context.Background(), "seller-1", activeListing(), pendingRecord())
	assert.True(t, errors.IsConflict(err), "got %v", err)
	// Exactly one submission: conflicts are never retried.
	assert.Equal(t, []string{"AcceptNegotiation"}, gw.calls)
}

func TestRejectTerminalRecord(t *testing.T) {
	gw := &fakeGateway{}
	uc := NewNegotiationUseCase(gw)

	record := pendingRecord()
	record.Status = entity.NegotiationStatusRejected
	_, err := uc.Reject(context.Background(), record)
	assert.True(t, errors.IsInvalidTransition(err), "got %v", err)
	assert.Empty(t, gw.calls)
}

func TestCounter(t *testing.T) {
	server := pendingRecord()
	server.Status = entity.NegotiationStatusCountered
	server.History = []entity.CounterEntry{{By: entity.RoleSeller, Price: 105, Quantity: 20, Round: 2}}
	gw := &fakeGateway{record: server}
	uc := NewNegotiationUseCase(gw)

	updated, err := uc.Counter(context.Background(), "seller-1", activeListing(), pendingRecord(), CounterInput{
		Price: 105, Quantity: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.NegotiationStatusCountered, updated.Status)
	assert.Equal(t, []string{"CounterNegotiation"}, gw.calls)
}

func TestCounterOutOfTurn(t *testing.T) {
	gw := &fakeGateway{}
	uc := NewNegotiationUseCase(gw)

	_, err := uc.Counter(context.Background(), "buyer-9", activeListing(), pendingRecord(), CounterInput{
		Price: 99, Quantity: 20,
	})
	assert.True(t, errors.IsInvalidTransition(err), "got %v", err)
	assert.Empty(t, gw.calls)
}

func TestViewIsConsistentAcrossViewers(t *testing.T) {
	listing := activeListing()
	record := pendingRecord()

	sellerView := View(listing, record, "seller-1")
	assert.True(t, sellerView.ActionRequired)
	assert.True(t, sellerView.CanAccept)
	assert.InDelta(t, 98.0, sellerView.Display.Amount, 1e-9)

	buyerView := View(listing, record, "buyer-9")
	assert.False(t, buyerView.ActionRequired)
	assert.False(t, buyerView.CanAccept)
	assert.True(t, buyerView.CanReject)
	assert.InDelta(t, 100.0, buyerView.Display.Amount, 1e-9)
}
