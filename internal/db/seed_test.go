package db

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedPlanBalanceMatchesLedger(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		plan := newSeedPlan(r)
		require.NotEmpty(t, plan.totals)
		var sum int64
		for _, total := range plan.totals {
			require.Positive(t, total)
			sum += total
		}
		require.Equal(t, sum, plan.balance)
	}
}
