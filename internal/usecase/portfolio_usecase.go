package usecase

import (
	"context"

	"nlistplanet/internal/domain/entity"
)

type PortfolioUseCase struct {
	gateway AccountGateway
}

func NewPortfolioUseCase(gateway AccountGateway) *PortfolioUseCase {
	return &PortfolioUseCase{gateway: gateway}
}

// PortfolioSummary is the holdings list with its aggregate value.
type PortfolioSummary struct {
	Holdings   []*entity.Holding
	TotalValue float64
}

// Summary fetches the user's holdings and totals their market value.
func (uc *PortfolioUseCase) Summary(ctx context.Context) (*PortfolioSummary, error) {
	holdings, err := uc.gateway.Portfolio(ctx)
	if err != nil {
		return nil, err
	}

	summary := &PortfolioSummary{Holdings: holdings}
	for _, h := range holdings {
		summary.TotalValue += h.MarketValue()
	}
	return summary, nil
}

// DealView is a deal projected for the current user: their own
// verification code and which side of the trade they are on.
type DealView struct {
	Deal     *entity.Deal
	Role     entity.Role
	YourCode string
}

// Deals fetches the user's post-acceptance deals with their side of
// each resolved.
func (uc *PortfolioUseCase) Deals(ctx context.Context, currentUserID string) ([]DealView, error) {
	deals, err := uc.gateway.Deals(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]DealView, 0, len(deals))
	for _, d := range deals {
		role := entity.RoleSeller
		if d.BuyerID == currentUserID {
			role = entity.RoleBuyer
		}
		views = append(views, DealView{
			Deal:     d,
			Role:     role,
			YourCode: d.VerificationCodeFor(currentUserID),
		})
	}
	return views, nil
}
