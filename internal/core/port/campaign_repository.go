package port

import (
	"context"
	"errors"

	"fundraise/internal/core/domain"
)

// Operation errors surfaced verbatim to callers. Every error aborts the
// current operation in full; a failed call leaves the campaign table in
// exactly its pre-call state.
var (
	ErrInvalidGoal       = errors.New("invalid goal")
	ErrInvalidCampaignID = errors.New("invalid campaign id")
	ErrCampaignCompleted = errors.New("campaign completed")
	ErrZeroDonation      = errors.New("zero donation")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrAlreadyWithdrawn  = errors.New("already withdrawn")
	ErrGoalNotReached    = errors.New("goal not reached")
	ErrTransferFailed    = errors.New("transfer failed")
)

// CreditFunc moves the withdrawn amount to the beneficiary. The repository
// invokes it inside the open transaction; an error rolls the whole
// withdrawal back.
type CreditFunc func(ctx context.Context, amount int64) error

// CampaignRepository is the persistence port for the campaign table. Each
// method is a single transactional boundary: either every one of its state
// mutations commits or none do. Implementations must serialize mutations
// per campaign (or globally) so that the balance always equals the sum of
// the donor ledger.
type CampaignRepository interface {
	// Create stores c under the next sequential id (dense, starting at 0)
	// and returns the assigned id.
	Create(ctx context.Context, c *domain.Campaign) (int64, error)
	// Get returns the campaign or ErrInvalidCampaignID for an unknown id.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	// List returns up to limit campaigns ordered by id, starting at offset.
	List(ctx context.Context, limit, offset int64) ([]domain.Campaign, error)
	// Donate credits amount to donor on the campaign and returns the new
	// balance. Preconditions are checked in order: unknown id
	// (ErrInvalidCampaignID), completed campaign (ErrCampaignCompleted),
	// non-positive amount (ErrZeroDonation).
	Donate(ctx context.Context, id int64, donor string, amount int64) (int64, error)
	// Withdraw closes the campaign and returns the paid-out amount.
	// Preconditions in order: unknown id (ErrInvalidCampaignID), already
	// completed (ErrAlreadyWithdrawn), balance below goal
	// (ErrGoalNotReached). The credit callback runs before commit; its
	// failure aborts the transition and surfaces as ErrTransferFailed.
	Withdraw(ctx context.Context, id int64, credit CreditFunc) (int64, error)
	// History returns donor identities in first-contribution order and the
	// index-aligned cumulative amounts.
	History(ctx context.Context, id int64) ([]string, []int64, error)
}
