package usecase

import (
	"context"
	"log/slog"

	"fundraise/internal/core/domain"
	"fundraise/internal/core/port"
)

const defaultPageSize = 50

// CampaignUseCase provides the business logic for campaign creation,
// donations and the one-time withdrawal. It orchestrates the repository,
// the treasury and the notification sink to implement the CampaignUseCase
// interface. The operator identity is fixed at construction and never
// changes afterwards.
type CampaignUseCase struct {
	repo     port.CampaignRepository
	treasury port.Treasury
	notifier port.Notifier
	operator string
	logger   *slog.Logger
}

// NewCampaignUseCase creates a usecase with the provided collaborators.
// operator is the single identity allowed to withdraw funds.
func NewCampaignUseCase(repo port.CampaignRepository, treasury port.Treasury, notifier port.Notifier, operator string, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{
		repo:     repo,
		treasury: treasury,
		notifier: notifier,
		operator: operator,
		logger:   logger,
	}
}

// CreateCampaign opens a campaign on behalf of call.Caller. Any caller may
// create a campaign; the goal must be positive. On success a
// CampaignCreated notification is emitted.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, call domain.CallContext, title string, goal int64) (int64, error) {
	if goal <= 0 {
		return 0, port.ErrInvalidGoal
	}
	id, err := u.repo.Create(ctx, domain.NewCampaign(call.Caller, title, goal))
	if err != nil {
		return 0, err
	}
	u.logger.Info("campaign created",
		slog.Int64("id", id),
		slog.String("creator", call.Caller),
		slog.Int64("goal", goal))
	u.notifier.Notify(ctx, domain.CampaignCreated{ID: id, Title: title, Goal: goal})
	return id, nil
}

// GetCampaign returns the current state of a campaign.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (*port.CampaignView, error) {
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toView(c)
	return &view, nil
}

// ListCampaigns returns a page of campaigns ordered by id.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, limit, offset int64) ([]port.CampaignView, error) {
	if limit <= 0 || limit > defaultPageSize {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	campaigns, err := u.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	views := make([]port.CampaignView, len(campaigns))
	for i := range campaigns {
		views[i] = toView(&campaigns[i])
	}
	return views, nil
}

// Donate credits amount from call.Caller to the campaign. The repository
// checks preconditions in order (unknown id, completed campaign, zero
// amount) and applies the ledger update atomically. On success a
// DonationReceived notification is emitted.
func (u *CampaignUseCase) Donate(ctx context.Context, call domain.CallContext, id, amount int64) (int64, error) {
	balance, err := u.repo.Donate(ctx, id, call.Caller, amount)
	if err != nil {
		return 0, err
	}
	u.logger.Info("donation received",
		slog.Int64("id", id),
		slog.String("donor", call.Caller),
		slog.Int64("amount", amount),
		slog.Int64("balance", balance))
	u.notifier.Notify(ctx, domain.DonationReceived{ID: id, Donor: call.Caller, Amount: amount, NewBalance: balance})
	return balance, nil
}

// Withdraw pays the full balance out to the operator and completes the
// campaign. The authorization check runs before the campaign is even
// looked up; the remaining preconditions and the terminal transition are
// handled inside the repository transaction, with the treasury credit
// executed before commit so a failed transfer leaves the campaign open.
func (u *CampaignUseCase) Withdraw(ctx context.Context, call domain.CallContext, id int64) (int64, error) {
	if call.Caller != u.operator {
		return 0, port.ErrUnauthorized
	}
	amount, err := u.repo.Withdraw(ctx, id, func(ctx context.Context, amount int64) error {
		return u.treasury.Credit(ctx, u.operator, amount)
	})
	if err != nil {
		return 0, err
	}
	u.logger.Info("funds withdrawn",
		slog.Int64("id", id),
		slog.Int64("amount", amount))
	u.notifier.Notify(ctx, domain.FundsWithdrawn{ID: id, Amount: amount})
	return amount, nil
}

// DonationHistory returns donors in first-contribution order with their
// cumulative totals.
func (u *CampaignUseCase) DonationHistory(ctx context.Context, id int64) (*port.DonationHistory, error) {
	donors, amounts, err := u.repo.History(ctx, id)
	if err != nil {
		return nil, err
	}
	return &port.DonationHistory{Donors: donors, Amounts: amounts}, nil
}

func toView(c *domain.Campaign) port.CampaignView {
	return port.CampaignView{
		ID:        c.ID,
		Creator:   c.Creator,
		Title:     c.Title,
		Goal:      c.Goal,
		Balance:   c.Balance,
		Completed: c.Completed,
	}
}
