package entity

import (
	"time"
)

type DealStatus string

const (
	DealStatusPendingRMContact DealStatus = "pending_rm_contact"
	DealStatusRMContacted      DealStatus = "rm_contacted"
	DealStatusConfirmed        DealStatus = "confirmed"
)

// Deal is the post-acceptance artifact created by the backend once both
// parties agree on terms. The client only reads it: settlement is
// coordinated offline through a relationship manager, keyed by the
// per-party verification codes.
type Deal struct {
	ID                     string     `json:"id"`
	NegotiationID          string     `json:"negotiation_id"`
	ListingID              string     `json:"listing_id"`
	CompanyID              string     `json:"company_id"`
	BuyerID                string     `json:"buyer_id"`
	SellerID               string     `json:"seller_id"`
	Price                  float64    `json:"price"`
	Quantity               int        `json:"quantity"`
	BuyerVerificationCode  string     `json:"buyer_verification_code,omitempty"`
	SellerVerificationCode string     `json:"seller_verification_code,omitempty"`
	Status                 DealStatus `json:"status"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// VerificationCodeFor returns the code the given user should quote to
// the relationship manager, or an empty string for non-parties.
func (d *Deal) VerificationCodeFor(userID string) string {
	switch userID {
	case d.BuyerID:
		return d.BuyerVerificationCode
	case d.SellerID:
		return d.SellerVerificationCode
	}
	return ""
}
