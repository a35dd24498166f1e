package backend

import (
	"context"
	"net/url"
	"strconv"

	"nlistplanet/internal/domain/entity"
)

// Me fetches the current user's profile, including KYC status.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := c.get(ctx, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// KYCInput carries the identity details submitted for verification.
// Document images are uploaded through a separate channel; this call
// only registers the textual details.
type KYCInput struct {
	FullName     string `json:"full_name"`
	PAN          string `json:"pan"`
	DematAccount string `json:"demat_account"`
}

// SubmitKYC registers the user's identity details for verification and
// returns the refreshed profile.
func (c *Client) SubmitKYC(ctx context.Context, input KYCInput) (*entity.User, error) {
	var user entity.User
	if err := c.post(ctx, "/me/kyc", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Portfolio fetches the current user's holdings.
func (c *Client) Portfolio(ctx context.Context) ([]*entity.Holding, error) {
	var holdings []*entity.Holding
	if err := c.get(ctx, "/me/portfolio", nil, &holdings); err != nil {
		return nil, err
	}
	return holdings, nil
}

// Deals fetches the current user's post-acceptance deals.
func (c *Client) Deals(ctx context.Context) ([]*entity.Deal, error) {
	var deals []*entity.Deal
	if err := c.get(ctx, "/me/deals", nil, &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

// Watchlist fetches the companies the user follows.
func (c *Client) Watchlist(ctx context.Context) ([]*entity.WatchlistItem, error) {
	var items []*entity.WatchlistItem
	if err := c.get(ctx, "/me/watchlist", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToWatchlist starts following a company.
func (c *Client) AddToWatchlist(ctx context.Context, companyID string) (*entity.WatchlistItem, error) {
	body := map[string]string{"company_id": companyID}
	var item entity.WatchlistItem
	if err := c.post(ctx, "/me/watchlist", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFromWatchlist stops following a company.
func (c *Client) RemoveFromWatchlist(ctx context.Context, itemID string) error {
	return c.delete(ctx, "/me/watchlist/"+itemID)
}

// Notifications fetches a page of the user's notification inbox.
func (c *Client) Notifications(ctx context.Context, unreadOnly bool, page, limit int) ([]*entity.Notification, int64, error) {
	query := url.Values{}
	if unreadOnly {
		query.Set("unread", "true")
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var result struct {
		Items []*entity.Notification `json:"items"`
		Total int64                  `json:"total"`
	}
	if err := c.get(ctx, "/me/notifications", query, &result); err != nil {
		return nil, 0, err
	}
	return result.Items, result.Total, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return c.post(ctx, "/me/notifications/"+notificationID+"/read", nil, nil)
}
