package entity

import (
	"time"
)

// Role identifies which side of the trade an actor is on. Whether a
// given user is buyer or seller depends on the listing type: the owner
// of a sell-listing is the seller, the owner of a buy-listing is the
// buyer.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// Other returns the opposite side.
func (r Role) Other() Role {
	if r == RoleBuyer {
		return RoleSeller
	}
	return RoleBuyer
}

type NegotiationStatus string

const (
	NegotiationStatusPending   NegotiationStatus = "pending"
	NegotiationStatusCountered NegotiationStatus = "countered"
	NegotiationStatusAccepted  NegotiationStatus = "accepted"
	NegotiationStatusRejected  NegotiationStatus = "rejected"
	NegotiationStatusExpired   NegotiationStatus = "expired"
	NegotiationStatusCancelled NegotiationStatus = "cancelled"
	NegotiationStatusConfirmed NegotiationStatus = "confirmed"
	NegotiationStatusSold      NegotiationStatus = "sold"
)

// Terminal reports whether the counter-history is frozen and no further
// user action may mutate the record. "accepted" is not terminal here:
// the backend still progresses it to confirmed/sold once both sides
// agree, but the client refuses further counters on it all the same.
func (s NegotiationStatus) Terminal() bool {
	switch s {
	case NegotiationStatusRejected, NegotiationStatusExpired,
		NegotiationStatusCancelled, NegotiationStatusConfirmed, NegotiationStatusSold:
		return true
	}
	return false
}

// Negotiable reports whether accept/reject/counter are still possible.
func (s NegotiationStatus) Negotiable() bool {
	return s == NegotiationStatusPending || s == NegotiationStatusCountered
}

// CounterEntry is one round of proposed terms. Price is per-unit, in
// the proposing actor's native frame (unadjusted for fees).
type CounterEntry struct {
	By       Role      `json:"by"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
	Round    int       `json:"round"`
	At       time.Time `json:"at"`
}

// Negotiation is a bid against a sell-listing or an offer against a
// buy-listing, together with its ordered counter-history.
type Negotiation struct {
	ID             string            `json:"id"`
	ListingID      string            `json:"listing_id"`
	CounterpartyID string            `json:"counterparty_id"`
	ProposerRole   Role              `json:"proposer_role"`
	Price          float64           `json:"price"`
	Quantity       int               `json:"quantity"`
	Status         NegotiationStatus `json:"status"`
	History        []CounterEntry    `json:"history,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// LatestEntry returns the most recent counter-history entry, or nil if
// no counters have been exchanged yet.
func (n *Negotiation) LatestEntry() *CounterEntry {
	if len(n.History) == 0 {
		return nil
	}
	return &n.History[len(n.History)-1]
}

// LatestTerms returns the price and quantity currently on the table:
// the last counter's terms, or the original proposal when no counter
// exists.
func (n *Negotiation) LatestTerms() (float64, int) {
	if e := n.LatestEntry(); e != nil {
		return e.Price, e.Quantity
	}
	return n.Price, n.Quantity
}
