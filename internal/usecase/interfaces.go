package usecase

import (
	"context"

	"nlistplanet/internal/adapter/backend"
	"nlistplanet/internal/domain/entity"
)

// ListingGateway is the slice of the backend API the listing flows use.
type ListingGateway interface {
	ListListings(ctx context.Context, filter backend.ListingFilter) ([]*entity.Listing, int64, error)
	GetListing(ctx context.Context, listingID string) (*entity.Listing, error)
	CreateListing(ctx context.Context, input backend.CreateListingInput) (*entity.Listing, error)
	CancelListing(ctx context.Context, listingID string) (*entity.Listing, error)
	MyListings(ctx context.Context, page, limit int) ([]*entity.Listing, int64, error)
	ListNegotiations(ctx context.Context, listingID string) ([]*entity.Negotiation, error)
}

// NegotiationGateway is the slice of the backend API the action
// orchestrator uses.
type NegotiationGateway interface {
	GetListing(ctx context.Context, listingID string) (*entity.Listing, error)
	GetNegotiation(ctx context.Context, negotiationID string) (*entity.Negotiation, error)
	MyNegotiations(ctx context.Context, status entity.NegotiationStatus, page, limit int) ([]*entity.Negotiation, int64, error)
	PlaceNegotiation(ctx context.Context, listingID string, terms backend.TermsInput) (*entity.Negotiation, error)
	AcceptNegotiation(ctx context.Context, negotiationID string) (*entity.Negotiation, error)
	RejectNegotiation(ctx context.Context, negotiationID string) (*entity.Negotiation, error)
	CounterNegotiation(ctx context.Context, negotiationID string, terms backend.TermsInput) (*entity.Negotiation, error)
}

// AccountGateway is the slice of the backend API the account, portfolio
// and notification flows use.
type AccountGateway interface {
	Me(ctx context.Context) (*entity.User, error)
	SubmitKYC(ctx context.Context, input backend.KYCInput) (*entity.User, error)
	Portfolio(ctx context.Context) ([]*entity.Holding, error)
	Deals(ctx context.Context) ([]*entity.Deal, error)
	Watchlist(ctx context.Context) ([]*entity.WatchlistItem, error)
	AddToWatchlist(ctx context.Context, companyID string) (*entity.WatchlistItem, error)
	RemoveFromWatchlist(ctx context.Context, itemID string) error
	Notifications(ctx context.Context, unreadOnly bool, page, limit int) ([]*entity.Notification, int64, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
}
