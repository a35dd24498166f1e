package entity

import (
	"time"
)

// Holding is one portfolio line: the user's position in a single
// company, as reported by the backend.
type Holding struct {
	CompanyID    string    `json:"company_id"`
	CompanyName  string    `json:"company_name"`
	Quantity     int       `json:"quantity"`
	AvgBuyPrice  float64   `json:"avg_buy_price"`
	LastTraded   float64   `json:"last_traded,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MarketValue values the holding at the company's last traded price,
// falling back to the average buy price when no trade data exists.
func (h *Holding) MarketValue() float64 {
	price := h.LastTraded
	if price == 0 {
		price = h.AvgBuyPrice
	}
	return price * float64(h.Quantity)
}

type WatchlistItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CompanyID string    `json:"company_id"`
	Company   *Company  `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
