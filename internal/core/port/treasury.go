package port

import "context"

// Treasury is the value-transfer collaborator. Credit moves amount to the
// beneficiary's account and reports success or failure synchronously; the
// withdrawal transaction commits only after Credit returns nil.
type Treasury interface {
	Credit(ctx context.Context, beneficiary string, amount int64) error
}
