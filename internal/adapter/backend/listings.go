package backend

import (
	"context"
	"net/url"
	"strconv"

	"nlistplanet/internal/domain/entity"
)

// ListingFilter narrows a listing browse request.
type ListingFilter struct {
	CompanyID string
	Type      entity.ListingType
	Status    entity.ListingStatus
	Page      int
	Limit     int
}

type listingPage struct {
	Items []listingPayload `json:"items"`
	Total int64            `json:"total"`
}

// ListListings fetches a page of listings matching the filter.
func (c *Client) ListListings(ctx context.Context, filter ListingFilter) ([]*entity.Listing, int64, error) {
	query := url.Values{}
	if filter.CompanyID != "" {
		query.Set("company_id", filter.CompanyID)
	}
	if filter.Type != "" {
		query.Set("type", string(filter.Type))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var page listingPage
	if err := c.get(ctx, "/listings", query, &page); err != nil {
		return nil, 0, err
	}

	listings := make([]*entity.Listing, 0, len(page.Items))
	for i := range page.Items {
		listings = append(listings, page.Items[i].toEntity())
	}
	return listings, page.Total, nil
}

// GetListing fetches one listing by ID.
func (c *Client) GetListing(ctx context.Context, listingID string) (*entity.Listing, error) {
	var payload listingPayload
	if err := c.get(ctx, "/listings/"+listingID, nil, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(), nil
}

// CreateListingInput carries the terms for a new sell-post or buy-post.
type CreateListingInput struct {
	CompanyID string  `json:"company_id"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	MinLot    int     `json:"min_lot"`
	Notes     string  `json:"notes,omitempty"`
}

// CreateListing posts a new listing owned by the current user.
func (c *Client) CreateListing(ctx context.Context, input CreateListingInput) (*entity.Listing, error) {
	var payload listingPayload
	if err := c.post(ctx, "/listings", input, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(), nil
}

// CancelListing withdraws the current user's own listing.
func (c *Client) CancelListing(ctx context.Context, listingID string) (*entity.Listing, error) {
	var payload listingPayload
	if err := c.post(ctx, "/listings/"+listingID+"/cancel", nil, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(), nil
}

// MyListings fetches the current user's own posts.
func (c *Client) MyListings(ctx context.Context, page, limit int) ([]*entity.Listing, int64, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var result listingPage
	if err := c.get(ctx, "/me/listings", query, &result); err != nil {
		return nil, 0, err
	}

	listings := make([]*entity.Listing, 0, len(result.Items))
	for i := range result.Items {
		listings = append(listings, result.Items[i].toEntity())
	}
	return listings, result.Total, nil
}

// GetCompany fetches company reference data.
func (c *Client) GetCompany(ctx context.Context, companyID string) (*entity.Company, error) {
	var company entity.Company
	if err := c.get(ctx, "/companies/"+companyID, nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}
