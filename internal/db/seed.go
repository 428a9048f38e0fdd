package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seedPlan describes one demo campaign. Balance always equals the sum of
// the donor totals so seeded rows satisfy the same ledger invariant the
// service maintains.
type seedPlan struct {
	totals  []int64
	balance int64
}

func newSeedPlan(r *rand.Rand) seedPlan {
	var p seedPlan
	donorCount := r.Intn(8) + 2
	p.totals = make([]int64, donorCount)
	for j := range p.totals {
		p.totals[j] = int64(r.Intn(200_000) + 10_000)
		p.balance += p.totals[j]
	}
	return p
}

// Seed inserts demo campaigns and donations for local development. Ids are
// assigned densely from 0. A campaign that already exists is left alone
// entirely: its donor rows are skipped too, so re-seeding never detaches a
// balance from its ledger.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < 5; i++ {
		title := fmt.Sprintf("Demo campaign %d", i)
		creator := fmt.Sprintf("creator-%d", i)
		goal := int64(1_000_000)
		plan := newSeedPlan(r)

		ct, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, creator, title, goal, balance, completed, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,FALSE,now(),now()) ON CONFLICT DO NOTHING`,
			i, creator, title, goal, plan.balance)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			continue
		}

		for j, total := range plan.totals {
			donor := "donor-" + uuid.NewString()
			_, err = db.Exec(ctx, `INSERT INTO campaign_donors (campaign_id, donor, total, position)
VALUES ($1,$2,$3,$4)`, i, donor, total, j)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
