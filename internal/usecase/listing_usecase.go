package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"nlistplanet/internal/adapter/backend"
	"nlistplanet/internal/domain/entity"
	"nlistplanet/internal/negotiation"
	"nlistplanet/pkg/errors"
)

type ListingUseCase struct {
	gateway  ListingGateway
	validate *validator.Validate
}

func NewListingUseCase(gateway ListingGateway) *ListingUseCase {
	return &ListingUseCase{
		gateway:  gateway,
		validate: validator.New(),
	}
}

// ListingView pairs a listing with the price the current viewer should
// see for it.
type ListingView struct {
	Listing *entity.Listing
	Display negotiation.DisplayPrice
	IsOwner bool
}

func newListingView(listing *entity.Listing, currentUserID string) ListingView {
	return ListingView{
		Listing: listing,
		Display: negotiation.ResolveListingPrice(listing, currentUserID),
		IsOwner: negotiation.IsOwner(listing, currentUserID),
	}
}

// Browse fetches a page of listings with viewer-resolved prices.
func (uc *ListingUseCase) Browse(ctx context.Context, currentUserID string, filter backend.ListingFilter) ([]ListingView, int64, error) {
	listings, total, err := uc.gateway.ListListings(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	views := make([]ListingView, 0, len(listings))
	for _, l := range listings {
		views = append(views, newListingView(l, currentUserID))
	}
	return views, total, nil
}

// ListingDetail is a listing together with its negotiation records,
// each projected for the current viewer.
type ListingDetail struct {
	ListingView
	Negotiations []NegotiationView
}

// Detail fetches one listing and, for its owner, the records attached
// to it. Counterparties only ever see their own records through MyBids.
func (uc *ListingUseCase) Detail(ctx context.Context, currentUserID, listingID string) (*ListingDetail, error) {
	listing, err := uc.gateway.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	detail := &ListingDetail{ListingView: newListingView(listing, currentUserID)}
	if !detail.IsOwner {
		return detail, nil
	}

	records, err := uc.gateway.ListNegotiations(ctx, listingID)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		detail.Negotiations = append(detail.Negotiations, View(listing, r, currentUserID))
	}
	return detail, nil
}

type CreateListingInput struct {
	CompanyID string  `validate:"required"`
	Type      string  `validate:"required,oneof=sell buy"`
	Price     float64 `validate:"required,gt=0"`
	Quantity  int     `validate:"required,gte=1"`
	MinLot    int     `validate:"required,gte=1"`
	Notes     string  `validate:"max=500"`
}

// Create posts a new listing after validating its terms locally.
func (uc *ListingUseCase) Create(ctx context.Context, input CreateListingInput) (*entity.Listing, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, errors.Validation(err.Error())
	}
	if input.MinLot > input.Quantity {
		return nil, errors.Validation("minimum lot cannot exceed the listed quantity")
	}

	return uc.gateway.CreateListing(ctx, backend.CreateListingInput{
		CompanyID: input.CompanyID,
		Type:      input.Type,
		Price:     input.Price,
		Quantity:  input.Quantity,
		MinLot:    input.MinLot,
		Notes:     input.Notes,
	})
}

// Cancel withdraws the current user's own listing.
func (uc *ListingUseCase) Cancel(ctx context.Context, currentUserID, listingID string) (*entity.Listing, error) {
	listing, err := uc.gateway.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !negotiation.IsOwner(listing, currentUserID) {
		return nil, errors.Forbidden("only the listing owner can cancel it", nil)
	}
	if listing.Status.Terminal() {
		return nil, errors.InvalidTransition("listing is already closed")
	}
	return uc.gateway.CancelListing(ctx, listingID)
}

// MyPosts lists the current user's own listings, each with the records
// awaiting a response flagged.
func (uc *ListingUseCase) MyPosts(ctx context.Context, currentUserID string, page, limit int) ([]ListingDetail, int64, error) {
	listings, total, err := uc.gateway.MyListings(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	details := make([]ListingDetail, 0, len(listings))
	for _, l := range listings {
		detail := ListingDetail{ListingView: newListingView(l, currentUserID)}
		records, err := uc.gateway.ListNegotiations(ctx, l.ID)
		if err != nil {
			return nil, 0, err
		}
		for _, r := range records {
			detail.Negotiations = append(detail.Negotiations, View(l, r, currentUserID))
		}
		details = append(details, detail)
	}
	return details, total, nil
}
