package domain

import "time"

// Campaign represents a single fund-raising effort. Amounts are stored in
// integer units (e.g. cents). Donors holds the cumulative contribution per
// donor identity and DonorOrder lists distinct donors in first-contribution
// order; the two collections are always mutated together so that DonorOrder
// membership equals the positive keys of Donors.
type Campaign struct {
	ID         int64
	Creator    string
	Title      string
	Goal       int64
	Balance    int64
	Completed  bool
	Donors     map[string]int64
	DonorOrder []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewCampaign returns an open campaign with an empty ledger. The id is
// assigned by the repository at insertion time.
func NewCampaign(creator, title string, goal int64) *Campaign {
	return &Campaign{
		Creator: creator,
		Title:   title,
		Goal:    goal,
		Donors:  make(map[string]int64),
	}
}

// RecordDonation credits amount to donor and returns the new balance. A
// donor is appended to DonorOrder the first time its cumulative total
// becomes positive. Callers are responsible for precondition checks; this
// method only performs the bookkeeping.
func (c *Campaign) RecordDonation(donor string, amount int64) int64 {
	if c.Donors == nil {
		c.Donors = make(map[string]int64)
	}
	if c.Donors[donor] == 0 {
		c.DonorOrder = append(c.DonorOrder, donor)
	}
	c.Donors[donor] += amount
	c.Balance += amount
	return c.Balance
}

// Close marks the campaign completed and zeroes the balance, returning the
// amount that was held. The transition is terminal; callers must not invoke
// Close on an already completed campaign.
func (c *Campaign) Close() int64 {
	amount := c.Balance
	c.Completed = true
	c.Balance = 0
	return amount
}

// Clone returns a deep copy of the campaign. Repositories stage mutations
// on a clone and swap it in only after every effect has succeeded.
func (c *Campaign) Clone() *Campaign {
	cp := *c
	cp.Donors = make(map[string]int64, len(c.Donors))
	for donor, total := range c.Donors {
		cp.Donors[donor] = total
	}
	cp.DonorOrder = append([]string(nil), c.DonorOrder...)
	return &cp
}
