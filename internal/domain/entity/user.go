package entity

import (
	"time"
)

type KYCStatus string

const (
	KYCStatusPending   KYCStatus = "pending"
	KYCStatusSubmitted KYCStatus = "submitted"
	KYCStatusVerified  KYCStatus = "verified"
	KYCStatusRejected  KYCStatus = "rejected"
)

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Phone    string `json:"phone,omitempty"`

	FullName  string    `json:"full_name,omitempty"`
	PAN       string    `json:"pan,omitempty"`
	KYCStatus KYCStatus `json:"kyc_status"`
	KYCNote   string    `json:"kyc_note,omitempty"`

	DematAccount string `json:"demat_account,omitempty"`
	BankVerified bool   `json:"bank_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanTrade reports whether the user may place or respond to bids and
// offers. The backend enforces this too; the client checks it up front
// to avoid a guaranteed rejection.
func (u *User) CanTrade() bool {
	return u.KYCStatus == KYCStatusVerified
}
