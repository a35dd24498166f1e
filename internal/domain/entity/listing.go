package entity

import (
	"time"
)

type ListingType string

const (
	ListingTypeSell ListingType = "sell"
	ListingTypeBuy  ListingType = "buy"
)

type ListingStatus string

const (
	ListingStatusActive      ListingStatus = "active"
	ListingStatusNegotiating ListingStatus = "negotiating"
	ListingStatusSold        ListingStatus = "sold"
	ListingStatusBought      ListingStatus = "bought"
	ListingStatusCancelled   ListingStatus = "cancelled"
	ListingStatusExpired     ListingStatus = "expired"
)

// Terminal reports whether no further negotiation records may attach
// to a listing in this status.
func (s ListingStatus) Terminal() bool {
	switch s {
	case ListingStatusSold, ListingStatusBought, ListingStatusCancelled, ListingStatusExpired:
		return true
	}
	return false
}

// Open reports whether new bids/offers may be placed against the listing.
func (s ListingStatus) Open() bool {
	return s == ListingStatusActive || s == ListingStatusNegotiating
}

// Listing is a sell-post or buy-post for a quantity of unlisted shares
// at a quoted per-share price. The quoted price is the owner's native
// number; fee adjustment applies only to the counterparty's view.
type Listing struct {
	ID        string        `json:"id"`
	CompanyID string        `json:"company_id"`
	OwnerID   string        `json:"owner_id"`
	Type      ListingType   `json:"type"`
	Price     float64       `json:"price"`
	Quantity  int           `json:"quantity"`
	MinLot    int           `json:"min_lot"`
	Status    ListingStatus `json:"status"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	ExpiresAt *time.Time    `json:"expires_at,omitempty"`
}

type Company struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Sector     string    `json:"sector,omitempty"`
	ISIN       string    `json:"isin,omitempty"`
	LogoURL    string    `json:"logo_url,omitempty"`
	LastTraded float64   `json:"last_traded,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
