package negotiation

import (
	"nlistplanet/internal/domain/entity"
)

// Price display labels. The UI renders these next to the resolved
// amount so each party always knows which frame a number is in.
const (
	LabelYourPrice  = "Your Price"
	LabelYouPay     = "You Pay"
	LabelYouReceive = "You Receive"
)

// DisplayPrice is a resolved amount plus the label it should carry for
// the viewer it was resolved for.
type DisplayPrice struct {
	Amount float64
	Label  string
}

// IsOwner reports whether userID owns the listing. Every screen must
// derive ownership through this one function rather than comparing IDs
// inline, so the turn and display rules stay consistent everywhere.
func IsOwner(listing *entity.Listing, userID string) bool {
	return listing.OwnerID == userID
}

// PartyRole returns the trade-side role a user takes on a listing: the
// owner of a sell-listing is the seller and their counterparty the
// buyer, and the reverse for a buy-listing.
func PartyRole(listing *entity.Listing, userID string) entity.Role {
	ownerRole := entity.RoleSeller
	if listing.Type == entity.ListingTypeBuy {
		ownerRole = entity.RoleBuyer
	}
	if IsOwner(listing, userID) {
		return ownerRole
	}
	return ownerRole.Other()
}

// ProposerRole returns the role of whoever opens a negotiation against
// a listing: a buyer bids on a sell-listing, a seller offers on a
// buy-listing.
func ProposerRole(listingType entity.ListingType) entity.Role {
	if listingType == entity.ListingTypeSell {
		return entity.RoleBuyer
	}
	return entity.RoleSeller
}

// ResolveListingPrice returns the amount and label the given viewer
// should see for a listing's quoted price. Owners always see their own
// quoted number; the counterparty sees the fee-adjusted amount for
// their side.
func ResolveListingPrice(listing *entity.Listing, viewerID string) DisplayPrice {
	if IsOwner(listing, viewerID) {
		return DisplayPrice{Amount: listing.Price, Label: LabelYourPrice}
	}
	if listing.Type == entity.ListingTypeSell {
		return DisplayPrice{Amount: BuyerPays(listing.Price), Label: LabelYouPay}
	}
	return DisplayPrice{Amount: SellerGets(listing.Price), Label: LabelYouReceive}
}

// ResolveEntryPrice returns the amount and label the viewer should see
// for one counter-history entry. The adjustment is keyed off which role
// proposed the entry, not off listing ownership: an entry proposed by
// the viewer's own role is already in their native frame and is shown
// unmodified.
func ResolveEntryPrice(entry entity.CounterEntry, viewer entity.Role) DisplayPrice {
	if entry.By == viewer {
		return DisplayPrice{Amount: entry.Price, Label: LabelYourPrice}
	}
	if viewer == entity.RoleBuyer {
		return DisplayPrice{Amount: BuyerPays(entry.Price), Label: LabelYouPay}
	}
	return DisplayPrice{Amount: SellerGets(entry.Price), Label: LabelYouReceive}
}

// ResolveLatestPrice resolves the terms currently on the table for the
// viewer. When no counters have been exchanged yet, the record's
// original proposal is treated as a synthetic round-zero entry so the
// displayed value stays continuous once real counters start arriving.
func ResolveLatestPrice(n *entity.Negotiation, viewer entity.Role) DisplayPrice {
	entry := n.LatestEntry()
	if entry == nil {
		entry = &entity.CounterEntry{
			By:       n.ProposerRole,
			Price:    n.Price,
			Quantity: n.Quantity,
			Round:    1,
		}
	}
	return ResolveEntryPrice(*entry, viewer)
}
