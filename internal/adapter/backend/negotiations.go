package backend

import (
	"context"
	"net/url"
	"strconv"

	"nlistplanet/internal/domain/entity"
)

// TermsInput carries proposed per-unit price and quantity for a new bid
// or a counter.
type TermsInput struct {
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// PlaceNegotiation opens a new bid (sell-listing) or offer
// (buy-listing) against the given listing. The backend returns the
// authoritative record.
func (c *Client) PlaceNegotiation(ctx context.Context, listingID string, terms TermsInput) (*entity.Negotiation, error) {
	var payload negotiationPayload
	if err := c.post(ctx, "/listings/"+listingID+"/negotiations", terms, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(), nil
}

// GetNegotiation fetches one record by ID.
func (c *Client) GetNegotiation(ctx context.Context, negotiationID string) (*entity.Negotiation, error) {
	var payload negotiationPayload
	if err := c.get(ctx, "/negotiations/"+negotiationID, nil, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(), nil
}

// ListNegotiations fetches all records attached to a listing.
func (c *Client) ListNegotiations(ctx context.Context, listingID string) ([]*entity.Negotiation, error) {
	var payloads []negotiationPayload
	if err := c.get(ctx, "/listings/"+listingID+"/negotiations", nil, &payloads); err != nil {
		return nil, err
	}

	records := make([]*entity.Negotiation, 0, len(payloads))
	for i := range payloads {
		records = append(records, payloads[i].toEntity())
	}
	return records, nil
}

// MyNegotiations fetches the current user's bids and offers.
func (c *Client) MyNegotiations(ctx context.Context, status entity.NegotiationStatus, page, limit int) ([]*entity.Negotiation, int64, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var result struct {
		Items []negotiationPayload `json:"items"`
		Total int64                `json:"total"`
	}
	if err := c.get(ctx, "/me/negotiations", query, &result); err != nil {
		return nil, 0, err
	}

	records := make([]*entity.Negotiation, 0, len(result.Items))
	for i := range result.Items {
		records = append(records, result.Items[i].toEntity())
	}
	return records, result.Total, nil
}

// AcceptNegotiation accepts the terms currently on the table.
func (c *Client) AcceptNegotiation(ctx context.Context, negotiationID string) (*entity.Negotiation, error) {
	var payload negotiationPayload
	if err := c.post(ctx, "/negotiations/"+negotiationID+"/accept", nil, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(), nil
}

// RejectNegotiation rejects the record outright.
func (c *Client) RejectNegotiation(ctx context.Context, negotiationID string) (*entity.Negotiation, error) {
	var payload negotiationPayload
	if err := c.post(ctx, "/negotiations/"+negotiationID+"/reject", nil, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(), nil
}

// CounterNegotiation proposes new terms on the record.
func (c *Client) CounterNegotiation(ctx context.Context, negotiationID string, terms TermsInput) (*entity.Negotiation, error) {
	var payload negotiationPayload
	if err := c.post(ctx, "/negotiations/"+negotiationID+"/counter", terms, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(), nil
}
