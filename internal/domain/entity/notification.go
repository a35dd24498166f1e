package entity

import (
	"time"
)

type NotificationKind string

const (
	NotificationKindBidReceived  NotificationKind = "bid_received"
	NotificationKindCountered    NotificationKind = "countered"
	NotificationKindAccepted     NotificationKind = "accepted"
	NotificationKindRejected     NotificationKind = "rejected"
	NotificationKindDealCreated  NotificationKind = "deal_created"
	NotificationKindListingState NotificationKind = "listing_state"
	NotificationKindKYC          NotificationKind = "kyc"
)

type Notification struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	Kind          NotificationKind `json:"kind"`
	Title         string           `json:"title"`
	Body          string           `json:"body"`
	ListingID     string           `json:"listing_id,omitempty"`
	NegotiationID string           `json:"negotiation_id,omitempty"`
	Read          bool             `json:"read"`
	CreatedAt     time.Time        `json:"created_at"`
}
