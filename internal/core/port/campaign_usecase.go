package port

import (
	"context"

	"fundraise/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the service.
// This interface is the primary port into the application domain. Mock
// implementations are used for handler tests.
type CampaignUseCase interface {
	// CreateCampaign opens a new campaign with the given title and goal on
	// behalf of call.Caller. Creation is open to any caller; a non-positive
	// goal fails with ErrInvalidGoal.
	CreateCampaign(ctx context.Context, call domain.CallContext, title string, goal int64) (int64, error)

	// GetCampaign returns the current state of a campaign. Pure read.
	GetCampaign(ctx context.Context, id int64) (*CampaignView, error)

	// ListCampaigns returns a page of campaigns ordered by id. Pure read.
	ListCampaigns(ctx context.Context, limit, offset int64) ([]CampaignView, error)

	// Donate credits amount from call.Caller to the campaign and returns
	// the new balance. Donations may exceed the goal; the excess is kept.
	Donate(ctx context.Context, call domain.CallContext, id, amount int64) (int64, error)

	// Withdraw pays the full balance out to the operator and completes the
	// campaign, exactly once. Only the operator may call it.
	Withdraw(ctx context.Context, call domain.CallContext, id int64) (int64, error)

	// DonationHistory returns donors in first-contribution order with
	// their cumulative totals. Pure read.
	DonationHistory(ctx context.Context, id int64) (*DonationHistory, error)
}

// CampaignView is the read model returned to clients. It is a DTO used by
// the HTTP layer and carries no domain behaviour.
type CampaignView struct {
	ID        int64  `json:"id"`
	Creator   string `json:"creator"`
	Title     string `json:"title"`
	Goal      int64  `json:"goal"`
	Balance   int64  `json:"balance"`
	Completed bool   `json:"completed"`
}

// DonationHistory lists donor identities and cumulative amounts aligned by
// index: Amounts[k] is the total contributed by Donors[k].
type DonationHistory struct {
	Donors  []string `json:"donors"`
	Amounts []int64  `json:"amounts"`
}
