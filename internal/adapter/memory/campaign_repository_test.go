package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"fundraise/internal/core/domain"
	"fundraise/internal/core/port"
)

func newCampaign(t *testing.T, repo *CampaignRepository, goal int64) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), domain.NewCampaign("creator", "Save the bees", goal))
	require.NoError(t, err)
	return id
}

// balance must always equal the sum of the donor ledger.
func requireLedgerConsistent(t *testing.T, repo *CampaignRepository, id int64) {
	t.Helper()
	c, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	var sum int64
	for _, total := range c.Donors {
		sum += total
	}
	require.Equal(t, c.Balance, sum)
	require.Len(t, c.DonorOrder, len(c.Donors))
	seen := make(map[string]bool)
	for _, donor := range c.DonorOrder {
		require.False(t, seen[donor], "duplicate donor %q in order list", donor)
		seen[donor] = true
		require.Positive(t, c.Donors[donor])
	}
}

func TestCreateAssignsDenseIDs(t *testing.T) {
	repo := NewCampaignRepository()
	for want := int64(0); want < 4; want++ {
		require.Equal(t, want, newCampaign(t, repo, 100))
	}

	c, err := repo.Get(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, "Save the bees", c.Title)
	require.Equal(t, int64(100), c.Goal)
	require.Zero(t, c.Balance)
	require.False(t, c.Completed)
}

func TestGetUnknownID(t *testing.T) {
	repo := NewCampaignRepository()
	newCampaign(t, repo, 100)

	_, err := repo.Get(context.Background(), 1)
	require.ErrorIs(t, err, port.ErrInvalidCampaignID)
	_, err = repo.Get(context.Background(), -1)
	require.ErrorIs(t, err, port.ErrInvalidCampaignID)
}

func TestDonateAccumulatesPerDonor(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	id := newCampaign(t, repo, 1_200_000)

	balance, err := repo.Donate(ctx, id, "alice", 500_000)
	require.NoError(t, err)
	require.Equal(t, int64(500_000), balance)

	balance, err = repo.Donate(ctx, id, "bob", 700_000)
	require.NoError(t, err)
	require.Equal(t, int64(1_200_000), balance)

	// second donation from an existing donor must not re-append to the order
	balance, err = repo.Donate(ctx, id, "alice", 1)
	require.NoError(t, err)
	require.Equal(t, int64(1_200_001), balance)

	donors, amounts, err := repo.History(ctx, id)
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "bob"}, donors)
	require.Equal(t, []int64{500_001, 700_000}, amounts)
	requireLedgerConsistent(t, repo, id)
}

func TestDonatePreconditionOrder(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	id := newCampaign(t, repo, 100)

	// unknown id wins over zero amount
	_, err := repo.Donate(ctx, 99, "alice", 0)
	require.ErrorIs(t, err, port.ErrInvalidCampaignID)

	_, err = repo.Donate(ctx, id, "alice", 0)
	require.ErrorIs(t, err, port.ErrZeroDonation)
	_, err = repo.Donate(ctx, id, "alice", -5)
	require.ErrorIs(t, err, port.ErrZeroDonation)

	// a failed donation leaves the ledger untouched
	c, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Zero(t, c.Balance)
	require.Empty(t, c.DonorOrder)

	_, err = repo.Donate(ctx, id, "alice", 100)
	require.NoError(t, err)
	_, err = repo.Withdraw(ctx, id, func(context.Context, int64) error { return nil })
	require.NoError(t, err)

	// completed campaign rejects donations, zero or not
	_, err = repo.Donate(ctx, id, "bob", 0)
	require.ErrorIs(t, err, port.ErrCampaignCompleted)
	_, err = repo.Donate(ctx, id, "bob", 10)
	require.ErrorIs(t, err, port.ErrCampaignCompleted)
}

func TestWithdrawLifecycle(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	id := newCampaign(t, repo, 1000)

	noCredit := func(context.Context, int64) error { return nil }

	_, err := repo.Withdraw(ctx, 42, noCredit)
	require.ErrorIs(t, err, port.ErrInvalidCampaignID)

	_, err = repo.Withdraw(ctx, id, noCredit)
	require.ErrorIs(t, err, port.ErrGoalNotReached)

	_, err = repo.Donate(ctx, id, "alice", 1500) // over the goal, excess kept
	require.NoError(t, err)

	var credited int64
	amount, err := repo.Withdraw(ctx, id, func(_ context.Context, a int64) error {
		credited = a
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(1500), amount)
	require.Equal(t, int64(1500), credited)

	c, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, c.Completed)
	require.Zero(t, c.Balance)
	// the ledger survives as a closed record
	require.Equal(t, []string{"alice"}, c.DonorOrder)
	require.Equal(t, int64(1500), c.Donors["alice"])

	_, err = repo.Withdraw(ctx, id, noCredit)
	require.ErrorIs(t, err, port.ErrAlreadyWithdrawn)
}

func TestWithdrawRollsBackOnTransferFailure(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	id := newCampaign(t, repo, 100)
	_, err := repo.Donate(ctx, id, "alice", 100)
	require.NoError(t, err)

	_, err = repo.Withdraw(ctx, id, func(context.Context, int64) error {
		return errors.New("payout service down")
	})
	require.ErrorIs(t, err, port.ErrTransferFailed)

	// campaign stays open with its balance intact
	c, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.False(t, c.Completed)
	require.Equal(t, int64(100), c.Balance)
	requireLedgerConsistent(t, repo, id)

	// retry after the collaborator recovers behaves as if it were the first call
	amount, err := repo.Withdraw(ctx, id, func(context.Context, int64) error { return nil })
	require.NoError(t, err)
	require.Equal(t, int64(100), amount)
}

func TestGetReturnsCopy(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	id := newCampaign(t, repo, 100)
	_, err := repo.Donate(ctx, id, "alice", 10)
	require.NoError(t, err)

	c, err := repo.Get(ctx, id)
	require.NoError(t, err)
	c.Balance = 9999
	c.Donors["mallory"] = 1
	c.DonorOrder = append(c.DonorOrder, "mallory")

	fresh, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, int64(10), fresh.Balance)
	require.Equal(t, []string{"alice"}, fresh.DonorOrder)
}

func TestList(t *testing.T) {
	repo := NewCampaignRepository()
	for i := 0; i < 5; i++ {
		newCampaign(t, repo, 100)
	}

	page, err := repo.List(context.Background(), 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, int64(1), page[0].ID)
	require.Equal(t, int64(2), page[1].ID)

	empty, err := repo.List(context.Background(), 10, 99)
	require.NoError(t, err)
	require.Empty(t, empty)
}
