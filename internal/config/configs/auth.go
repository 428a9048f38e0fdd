package configs

// Auth configures caller authentication and the privileged operator. The
// Secret signs and verifies the HS256 bearer tokens whose subject claim is
// the caller identity. Operator is the single identity allowed to withdraw
// campaign funds; it is read once at startup and immutable afterwards.
type Auth struct {
	// Secret is the HMAC key for bearer tokens. Must be overridden in
	// production.
	Secret string `env:"SECRET" envDefault:"dev-secret-change-me"`
	// Operator is the identity authorized to execute withdrawals and the
	// beneficiary of every payout.
	Operator string `env:"OPERATOR" envDefault:"operator"`
}
