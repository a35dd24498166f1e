package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nlistplanet/internal/adapter/backend"
	"nlistplanet/internal/domain/entity"
	"nlistplanet/pkg/errors"
)

type fakeListingGateway struct {
	listings []*entity.Listing
	records  []*entity.Negotiation
	created  *backend.CreateListingInput
	calls    []string
}

func (f *fakeListingGateway) ListListings(ctx context.Context, filter backend.ListingFilter) ([]*entity.Listing, int64, error) {
	f.calls = append(f.calls, "ListListings")
	return f.listings, int64(len(f.listings)), nil
}

func (f *fakeListingGateway) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	f.calls = append(f.calls, "GetListing")
	for _, l := range f.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, errors.NotFound("listing", nil)
}

func (f *fakeListingGateway) CreateListing(ctx context.Context, input backend.CreateListingInput) (*entity.Listing, error) {
	f.calls = append(f.calls, "CreateListing")
	f.created = &input
	return &entity.Listing{ID: "lst-new", OwnerID: "usr-1", Type: entity.ListingType(input.Type), Price: input.Price, Quantity: input.Quantity, MinLot: input.MinLot, Status: entity.ListingStatusActive}, nil
}

func (f *fakeListingGateway) CancelListing(ctx context.Context, id string) (*entity.Listing, error) {
	f.calls = append(f.calls, "CancelListing")
	return &entity.Listing{ID: id, Status: entity.ListingStatusCancelled}, nil
}

func (f *fakeListingGateway) MyListings(ctx context.Context, page, limit int) ([]*entity.Listing, int64, error) {
	f.calls = append(f.calls, "MyListings")
	return f.listings, int64(len(f.listings)), nil
}

func (f *fakeListingGateway) ListNegotiations(ctx context.Context, listingID string) ([]*entity.Negotiation, error) {
	f.calls = append(f.calls, "ListNegotiations")
	return f.records, nil
}

func TestBrowseResolvesViewerPrices(t *testing.T) {
	gw := &fakeListingGateway{listings: []*entity.Listing{
		{ID: "lst-1", OwnerID: "seller-1", Type: entity.ListingTypeSell, Price: 100, Quantity: 100, MinLot: 10, Status: entity.ListingStatusActive},
		{ID: "lst-2", OwnerID: "visitor", Type: entity.ListingTypeSell, Price: 50, Quantity: 10, MinLot: 1, Status: entity.ListingStatusActive},
	}}
	uc := NewListingUseCase(gw)

	views, total, err := uc.Browse(context.Background(), "visitor", backend.ListingFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	// A stranger's sell-listing shows the fee-added buyer price.
	assert.InDelta(t, 102.0, views[0].Display.Amount, 1e-9)
	assert.False(t, views[0].IsOwner)

	// The viewer's own listing shows the quoted number.
	assert.InDelta(t, 50.0, views[1].Display.Amount, 1e-9)
	assert.True(t, views[1].IsOwner)
}

func TestDetailOmitsRecordsForNonOwner(t *testing.T) {
	gw := &fakeListingGateway{
		listings: []*entity.Listing{{ID: "lst-1", OwnerID: "seller-1", Type: entity.ListingTypeSell, Price: 100, Quantity: 100, MinLot: 10, Status: entity.ListingStatusActive}},
		records:  []*entity.Negotiation{{ID: "neg-1", ListingID: "lst-1", ProposerRole: entity.RoleBuyer, Price: 95, Quantity: 20, Status: entity.NegotiationStatusPending}},
	}
	uc := NewListingUseCase(gw)

	detail, err := uc.Detail(context.Background(), "visitor", "lst-1")
	require.NoError(t, err)
	assert.Empty(t, detail.Negotiations)
	assert.NotContains(t, gw.calls, "ListNegotiations")

	detail, err = uc.Detail(context.Background(), "seller-1", "lst-1")
	require.NoError(t, err)
	require.Len(t, detail.Negotiations, 1)
	assert.True(t, detail.Negotiations[0].ActionRequired)
}

func TestCreateListingValidation(t *testing.T) {
	gw := &fakeListingGateway{}
	uc := NewListingUseCase(gw)

	_, err := uc.Create(context.Background(), CreateListingInput{
		CompanyID: "cmp-1", Type: "sell", Price: 100, Quantity: 10, MinLot: 20,
	})
	assert.True(t, errors.IsValidation(err), "got %v", err)

	_, err = uc.Create(context.Background(), CreateListingInput{
		CompanyID: "cmp-1", Type: "short", Price: 100, Quantity: 100, MinLot: 10,
	})
	assert.True(t, errors.IsValidation(err), "got %v", err)
	assert.Empty(t, gw.calls)

	listing, err := uc.Create(context.Background(), CreateListingInput{
		CompanyID: "cmp-1", Type: "sell", Price: 100, Quantity: 100, MinLot: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusActive, listing.Status)
	require.NotNil(t, gw.created)
	assert.Equal(t, 10, gw.created.MinLot)
}

func TestCancelRequiresOwnership(t *testing.T) {
	gw := &fakeListingGateway{listings: []*entity.Listing{
		{ID: "lst-1", OwnerID: "seller-1", Status: entity.ListingStatusActive},
	}}
	uc := NewListingUseCase(gw)

	_, err := uc.Cancel(context.Background(), "visitor", "lst-1")
	assert.True(t, errors.Is(err, "FORBIDDEN"), "got %v", err)

	listing, err := uc.Cancel(context.Background(), "seller-1", "lst-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusCancelled, listing.Status)
}

func TestCancelClosedListing(t *testing.T) {
	gw := &fakeListingGateway{listings: []*entity.Listing{
		{ID: "lst-1", OwnerID: "seller-1", Status: entity.ListingStatusSold},
	}}
	uc := NewListingUseCase(gw)

	_, err := uc.Cancel(context.Background(), "seller-1", "lst-1")
	assert.True(t, errors.IsInvalidTransition(err), "got %v", err)
}
