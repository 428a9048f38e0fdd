package domain

// Notification is a structured event handed to the notification sink after
// a successful mutation. Concrete types carry exactly the fields observers
// are promised; Kind is the type tag used for demultiplexing.
type Notification interface {
	Kind() string
}

// CampaignCreated is emitted once per successful campaign creation.
type CampaignCreated struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Goal  int64  `json:"goal"`
}

// DonationReceived is emitted once per accepted donation.
type DonationReceived struct {
	ID         int64  `json:"id"`
	Donor      string `json:"donor"`
	Amount     int64  `json:"amount"`
	NewBalance int64  `json:"new_balance"`
}

// FundsWithdrawn is emitted once per campaign, when the payout commits.
type FundsWithdrawn struct {
	ID     int64 `json:"id"`
	Amount int64 `json:"amount"`
}

func (CampaignCreated) Kind() string  { return "campaign_created" }
func (DonationReceived) Kind() string { return "donation_received" }
func (FundsWithdrawn) Kind() string   { return "funds_withdrawn" }
