package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"nlistplanet/internal/adapter/backend"
	"nlistplanet/internal/domain/entity"
	"nlistplanet/pkg/errors"
)

type AccountUseCase struct {
	gateway  AccountGateway
	validate *validator.Validate
}

func NewAccountUseCase(gateway AccountGateway) *AccountUseCase {
	return &AccountUseCase{
		gateway:  gateway,
		validate: validator.New(),
	}
}

// Me fetches the current user's profile.
func (uc *AccountUseCase) Me(ctx context.Context) (*entity.User, error) {
	return uc.gateway.Me(ctx)
}

type SubmitKYCInput struct {
	FullName     string `validate:"required,min=2,max=100"`
	PAN          string `validate:"required,len=10,alphanum"`
	DematAccount string `validate:"required,min=8,max=20"`
}

// SubmitKYC registers identity details for verification. Resubmission
// after a rejection is allowed; resubmitting while already verified or
// under review is not.
func (uc *AccountUseCase) SubmitKYC(ctx context.Context, input SubmitKYCInput) (*entity.User, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, errors.Validation(err.Error())
	}

	user, err := uc.gateway.Me(ctx)
	if err != nil {
		return nil, err
	}
	switch user.KYCStatus {
	case entity.KYCStatusVerified:
		return nil, errors.InvalidTransition("KYC is already verified")
	case entity.KYCStatusSubmitted:
		return nil, errors.InvalidTransition("KYC is already under review")
	}

	return uc.gateway.SubmitKYC(ctx, backend.KYCInput{
		FullName:     input.FullName,
		PAN:          input.PAN,
		DematAccount: input.DematAccount,
	})
}

// Watchlist fetches the companies the user follows.
func (uc *AccountUseCase) Watchlist(ctx context.Context) ([]*entity.WatchlistItem, error) {
	return uc.gateway.Watchlist(ctx)
}

// Follow starts following a company.
func (uc *AccountUseCase) Follow(ctx context.Context, companyID string) (*entity.WatchlistItem, error) {
	if companyID == "" {
		return nil, errors.Validation("company id is required")
	}
	return uc.gateway.AddToWatchlist(ctx, companyID)
}

// Unfollow stops following a company.
func (uc *AccountUseCase) Unfollow(ctx context.Context, itemID string) error {
	if itemID == "" {
		return errors.Validation("watchlist item id is required")
	}
	return uc.gateway.RemoveFromWatchlist(ctx, itemID)
}

// Inbox fetches a page of the user's notifications.
func (uc *AccountUseCase) Inbox(ctx context.Context, unreadOnly bool, page, limit int) ([]*entity.Notification, int64, error) {
	return uc.gateway.Notifications(ctx, unreadOnly, page, limit)
}

// MarkRead marks one notification as read.
func (uc *AccountUseCase) MarkRead(ctx context.Context, notificationID string) error {
	if notificationID == "" {
		return errors.Validation("notification id is required")
	}
	return uc.gateway.MarkNotificationRead(ctx, notificationID)
}
