package negotiation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nlistplanet/internal/domain/entity"
)

func sellListing() *entity.Listing {
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

func buyListing() *entity.Listing {
	return &entity.Listing{
		ID:       "lst-2",
		OwnerID:  "buyer-1",
		Type:     entity.ListingTypeBuy,
		Price:    200,
		Quantity: 50,
		MinLot:   5,
		Status:   entity.ListingStatusActive,
	}
}

func TestPartyRole(t *testing.T) {
	sell := sellListing()
	assert.Equal(t, entity.RoleSeller, PartyRole(sell, "seller-1"))
	assert.Equal(t, entity.RoleBuyer, PartyRole(sell, "someone-else"))

	buy := buyListing()
	assert.Equal(t, entity.RoleBuyer, PartyRole(buy, "buyer-1"))
	assert.Equal(t, entity.RoleSeller, PartyRole(buy, "someone-else"))
}

func TestProposerRole(t *testing.T) {
	assert.Equal(t, entity.RoleBuyer, ProposerRole(entity.ListingTypeSell))
	assert.Equal(t, entity.RoleSeller, ProposerRole(entity.ListingTypeBuy))
}

func TestResolveListingPrice(t *testing.T) {
	tests := []struct {
		name     string
		listing  *entity.Listing
		viewerID string
		amount   float64
		label    string
	}{
		{"owner sees quoted price", sellListing(), "seller-1", 100, LabelYourPrice},
		{"buyer pays fee on sell listing", sellListing(), "visitor", 102, LabelYouPay},
		{"owner of buy listing sees quoted", buyListing(), "buyer-1", 200, LabelYourPrice},
		{"seller receives net on buy listing", buyListing(), "visitor", 196, LabelYouReceive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveListingPrice(tt.listing, tt.viewerID)
			assert.InDelta(t, tt.amount, got.Amount, 1e-9)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}

func TestResolveEntryPrice(t *testing.T) {
	sellerEntry := entity.CounterEntry{By: entity.RoleSeller, Price: 105, Quantity: 20, Round: 2}
	buyerEntry := entity.CounterEntry{By: entity.RoleBuyer, Price: 100, Quantity: 20, Round: 1}

	got := ResolveEntryPrice(sellerEntry, entity.RoleBuyer)
	assert.InDelta(t, 107.10, got.Amount, 1e-9)
	assert.Equal(t, LabelYouPay, got.Label)

	got = ResolveEntryPrice(buyerEntry, entity.RoleSeller)
	assert.InDelta(t, 98.0, got.Amount, 1e-9)
	assert.Equal(t, LabelYouReceive, got.Label)

	// An entry proposed by the viewer's own role is already in their frame.
	got = ResolveEntryPrice(sellerEntry, entity.RoleSeller)
	assert.InDelta(t, 105.0, got.Amount, 1e-9)
	assert.Equal(t, LabelYourPrice, got.Label)

	got = ResolveEntryPrice(buyerEntry, entity.RoleBuyer)
	assert.InDelta(t, 100.0, got.Amount, 1e-9)
}

// A record without counters must resolve to the same value as the same
// terms expressed as an explicit history entry, so the displayed price
// does not jump when the first counter arrives with identical terms.
func TestResolveLatestPriceContinuity(t *testing.T) {
	n := &entity.Negotiation{
		ListingID:    "lst-1",
		ProposerRole: entity.RoleBuyer,
		Price:        100,
		Quantity:     20,
		Status:       entity.NegotiationStatusPending,
	}

	bare := ResolveLatestPrice(n, entity.RoleSeller)

	withEntry := *n
	withEntry.History = []entity.CounterEntry{{
		By: entity.RoleBuyer, Price: 100, Quantity: 20, Round: 1, At: time.Now(),
	}}
	explicit := ResolveLatestPrice(&withEntry, entity.RoleSeller)

	assert.Equal(t, bare, explicit)
	assert.InDelta(t, 98.0, bare.Amount, 1e-9)
}
