package backend

import (
	"time"

	"nlistplanet/internal/domain/entity"
	"nlistplanet/pkg/logger"
)

// The API still serves rows written by older backend versions, so some
// fields arrive under more than one name or not at all. This file is
// the only place those fallbacks are resolved; everything past it works
// on fully-populated entity values.

type listingPayload struct {
	ID        string  `json:"id"`
	CompanyID string  `json:"company_id"`
	OwnerID   string  `json:"owner_id"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	MinLot    int     `json:"min_lot"`
	// Older rows spell the minimum lot differently and omit min_lot.
	LotSize   int        `json:"lot_size,omitempty"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (p *listingPayload) toEntity() *entity.Listing {
	minLot := p.MinLot
	if minLot == 0 {
		minLot = p.LotSize
	}
	if minLot == 0 {
		minLot = 1
	}
	return &entity.Listing{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		OwnerID:   p.OwnerID,
		Type:      entity.ListingType(p.Type),
		Price:     p.Price,
		Quantity:  p.Quantity,
		MinLot:    minLot,
		Status:    entity.ListingStatus(p.Status),
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		ExpiresAt: p.ExpiresAt,
	}
}

type counterPayload struct {
	By       string    `json:"by,omitempty"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
	Round    int       `json:"round"`
	At       time.Time `json:"at"`
}

type negotiationPayload struct {
	ID             string `json:"id"`
	ListingID      string `json:"listing_id"`
	ListingType    string `json:"listing_type,omitempty"`
	CounterpartyID string `json:"counterparty_id"`
	ProposerRole   string `json:"proposer_role,omitempty"`
	// Older rows carry the opening terms as original_price, newer ones
	// as price. original_price wins when both are set.
	OriginalPrice float64          `json:"original_price,omitempty"`
	Price         float64          `json:"price"`
	Quantity      int              `json:"quantity"`
	Status        string           `json:"status"`
	History       []counterPayload `json:"counter_history,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func (p *negotiationPayload) toEntity() *entity.Negotiation {
	price := p.Price
	if p.OriginalPrice != 0 {
		price = p.OriginalPrice
	}

	proposer := entity.Role(p.ProposerRole)
	if proposer != entity.RoleBuyer && proposer != entity.RoleSeller {
		// Derivable from the listing type: a sell-listing is always
		// opened by a buyer and a buy-listing by a seller.
		proposer = entity.RoleBuyer
		if entity.ListingType(p.ListingType) == entity.ListingTypeBuy {
			proposer = entity.RoleSeller
		}
	}

	n := &entity.Negotiation{
		ID:             p.ID,
		ListingID:      p.ListingID,
		CounterpartyID: p.CounterpartyID,
		ProposerRole:   proposer,
		Price:          price,
		Quantity:       p.Quantity,
		Status:         entity.NegotiationStatus(p.Status),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	// Counter rounds alternate starting from the party answering the
	// original proposal. Entries missing the actor role are a
	// data-quality problem on the backend; reconstruct the role from
	// the alternation and flag the record.
	expected := proposer.Other()
	for i, e := range p.History {
		by := entity.Role(e.By)
		if by != entity.RoleBuyer && by != entity.RoleSeller {
			logger.Warn("Counter entry missing actor role: negotiationID=%s round=%d, inferring %s", p.ID, e.Round, expected)
			by = expected
		}
		round := e.Round
		if round == 0 {
			round = i + 2
		}
		n.History = append(n.History, entity.CounterEntry{
			By:       by,
			Price:    e.Price,
			Quantity: e.Quantity,
			Round:    round,
			At:       e.At,
		})
		expected = by.Other()
	}

	return n
}
