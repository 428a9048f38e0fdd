package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundraise/internal/core/domain"
	"fundraise/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Every mutation runs in a single serializable transaction with
// the campaign row locked, which gives each operation its all-or-nothing
// boundary and keeps the balance equal to the sum of the donor ledger.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create inserts the campaign under the next sequential id. Ids are
// allocated as MAX(id)+1 inside the transaction rather than from a
// sequence, because sequences leave gaps on rollback and ids must stay
// dense.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var id int64
	err = tx.QueryRow(ctx, `INSERT INTO campaigns (id, creator, title, goal, balance, completed, created_at, updated_at)
VALUES ((SELECT COALESCE(MAX(id)+1, 0) FROM campaigns), $1, $2, $3, 0, FALSE, now(), now())
RETURNING id`, c.Creator, c.Title, c.Goal).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Get returns the campaign with its donor ledger.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT id, creator, title, goal, balance, completed, created_at, updated_at
FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Creator, &c.Title, &c.Goal, &c.Balance, &c.Completed, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrInvalidCampaignID
	}
	if err != nil {
		return nil, err
	}

	c.Donors = make(map[string]int64)
	rows, err := r.pool.Query(ctx, `SELECT donor, total FROM campaign_donors WHERE campaign_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var donor string
		var total int64
		if err = rows.Scan(&donor, &total); err != nil {
			return nil, err
		}
		c.Donors[donor] = total
		c.DonorOrder = append(c.DonorOrder, donor)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns a page of campaigns ordered by id. The donor ledger is not
// loaded; list views only need the headline fields.
func (r *CampaignRepository) List(ctx context.Context, limit, offset int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, creator, title, goal, balance, completed, created_at, updated_at
FROM campaigns ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.Creator, &c.Title, &c.Goal, &c.Balance, &c.Completed, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
}

// Donate credits amount to donor and returns the new balance. The campaign
// row lock serializes concurrent donations, so the donor position can be
// derived from the current ledger size.
func (r *CampaignRepository) Donate(ctx context.Context, id int64, donor string, amount int64) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var completed bool
	err = tx.QueryRow(ctx, `SELECT completed FROM campaigns WHERE id = $1 FOR UPDATE`, id).Scan(&completed)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrInvalidCampaignID
		return 0, err
	}
	if err != nil {
		return 0, err
	}
	if completed {
		err = port.ErrCampaignCompleted
		return 0, err
	}
	if amount <= 0 {
		err = port.ErrZeroDonation
		return 0, err
	}

	var balance int64
	err = tx.QueryRow(ctx, `UPDATE campaigns SET balance = balance + $1, updated_at = now() WHERE id = $2 RETURNING balance`, amount, id).Scan(&balance)
	if err != nil {
		return 0, err
	}
	_, err = tx.Exec(ctx, `INSERT INTO campaign_donors (campaign_id, donor, total, position)
VALUES ($1, $2, $3, (SELECT COUNT(*) FROM campaign_donors WHERE campaign_id = $1))
ON CONFLICT (campaign_id, donor) DO UPDATE SET total = campaign_donors.total + EXCLUDED.total`, id, donor, amount)
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// Withdraw completes the campaign and zeroes its balance. The credit
// callback runs before commit; its failure rolls the transition back and
// the campaign stays open with its balance intact.
func (r *CampaignRepository) Withdraw(ctx context.Context, id int64, credit port.CreditFunc) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var completed bool
	var balance, goal int64
	err = tx.QueryRow(ctx, `SELECT completed, balance, goal FROM campaigns WHERE id = $1 FOR UPDATE`, id).
		Scan(&completed, &balance, &goal)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrInvalidCampaignID
		return 0, err
	}
	if err != nil {
		return 0, err
	}
	if completed {
		err = port.ErrAlreadyWithdrawn
		return 0, err
	}
	if balance < goal {
		err = port.ErrGoalNotReached
		return 0, err
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns SET completed = TRUE, balance = 0, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	if err = credit(ctx, balance); err != nil {
		err = fmt.Errorf("%w: %v", port.ErrTransferFailed, err)
		return 0, err
	}
	return balance, nil
}

// History returns donors in first-contribution order with cumulative totals.
func (r *CampaignRepository) History(ctx context.Context, id int64) ([]string, []int64, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return nil, nil, err
	}
	if !exists {
		return nil, nil, port.ErrInvalidCampaignID
	}

	rows, err := r.pool.Query(ctx, `SELECT donor, total FROM campaign_donors WHERE campaign_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var donors []string
	var amounts []int64
	for rows.Next() {
		var donor string
		var total int64
		if err = rows.Scan(&donor, &total); err != nil {
			return nil, nil, err
		}
		donors = append(donors, donor)
		amounts = append(amounts, total)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}
	return donors, amounts, nil
}
