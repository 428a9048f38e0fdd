package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fundraise/internal/core/domain"
	"fundraise/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository on an in-process
// table. Mutations are staged on a clone of the campaign and swapped in
// only after every precondition and external effect has succeeded, so a
// failed operation leaves the table untouched. All access is serialized by
// a single mutex.
type CampaignRepository struct {
	mu        sync.Mutex
	campaigns []*domain.Campaign
}

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{}
}

// Create assigns the next sequential id and stores the campaign.
func (r *CampaignRepository) Create(_ context.Context, c *domain.Campaign) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := c.Clone()
	stored.ID = int64(len(r.campaigns))
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.campaigns = append(r.campaigns, stored)
	return stored.ID, nil
}

// Get returns a copy of the campaign so callers cannot mutate the table.
func (r *CampaignRepository) Get(_ context.Context, id int64) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// List returns up to limit campaigns ordered by id, starting at offset.
func (r *CampaignRepository) List(_ context.Context, limit, offset int64) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if offset >= int64(len(r.campaigns)) || limit <= 0 {
		return nil, nil
	}
	end := offset + limit
	if end > int64(len(r.campaigns)) {
		end = int64(len(r.campaigns))
	}
	out := make([]domain.Campaign, 0, end-offset)
	for _, c := range r.campaigns[offset:end] {
		out = append(out, *c.Clone())
	}
	return out, nil
}

// Donate credits amount to donor and returns the new balance.
func (r *CampaignRepository) Donate(_ context.Context, id int64, donor string, amount int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.lookup(id)
	if err != nil {
		return 0, err
	}
	if c.Completed {
		return 0, port.ErrCampaignCompleted
	}
	if amount <= 0 {
		return 0, port.ErrZeroDonation
	}

	staged := c.Clone()
	balance := staged.RecordDonation(donor, amount)
	staged.UpdatedAt = time.Now().UTC()
	r.campaigns[id] = staged
	return balance, nil
}

// Withdraw closes the campaign after the credit callback succeeds.
func (r *CampaignRepository) Withdraw(ctx context.Context, id int64, credit port.CreditFunc) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.lookup(id)
	if err != nil {
		return 0, err
	}
	if c.Completed {
		return 0, port.ErrAlreadyWithdrawn
	}
	if c.Balance < c.Goal {
		return 0, port.ErrGoalNotReached
	}

	staged := c.Clone()
	amount := staged.Close()
	staged.UpdatedAt = time.Now().UTC()
	if err := credit(ctx, amount); err != nil {
		// staged copy is discarded; the campaign stays open
		return 0, fmt.Errorf("%w: %v", port.ErrTransferFailed, err)
	}
	r.campaigns[id] = staged
	return amount, nil
}

// History returns donors in first-contribution order with cumulative totals.
func (r *CampaignRepository) History(_ context.Context, id int64) ([]string, []int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.lookup(id)
	if err != nil {
		return nil, nil, err
	}
	donors := append([]string(nil), c.DonorOrder...)
	amounts := make([]int64, len(donors))
	for i, donor := range donors {
		amounts[i] = c.Donors[donor]
	}
	return donors, amounts, nil
}

func (r *CampaignRepository) lookup(id int64) (*domain.Campaign, error) {
	if id < 0 || id >= int64(len(r.campaigns)) {
		return nil, port.ErrInvalidCampaignID
	}
	return r.campaigns[id], nil
}
