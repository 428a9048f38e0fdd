package configs

import "time"

// Payout configures the external payout service that receives withdrawn
// funds on behalf of the operator. Withdrawals block on this service: the
// campaign transition only commits after the payout call succeeds.
type Payout struct {
	// URL is the endpoint credited with withdrawn amounts. When empty,
	// payouts are recorded in the log only (local development).
	URL string `env:"URL"`
	// Timeout bounds a single payout call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
