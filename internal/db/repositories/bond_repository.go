package repositories

import (
	"context"
	"fmt"

	"consent_governance_system/internal/db/models"
	"consent_governance_system/internal/engine"
	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type bondRepository struct {
	repository
}

// NewBondRepository returns a BondLedger that records every lock as a row in
// bonds. A receipt is released at most once.
func NewBondRepository(db *pg.DB) engine.BondLedger {
	return &bondRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *bondRepository) Lock(ctx context.Context, account string, amount uint64) (string, error) {
	bond := &models.Bond{
		ID:      uuid.NewString(),
		Account: account,
		Amount:  amount,
	}

	_, err := r.db.ModelContext(ctx, bond).Insert()
	if err != nil {
		return "", err
	}

	return bond.ID, nil
}

func (r *bondRepository) Release(ctx context.Context, receipt, destination string) error {
	result, err := r.db.ModelContext(ctx, (*models.Bond)(nil)).
		Set("released_to = ?", destination).
		Set("released_at = now()").
		Where("id = ?", receipt).
		Where("released_at IS NULL").
		Update()
	if err != nil {
		return err
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	exists, err := r.db.ModelContext(ctx, (*models.Bond)(nil)).
		Where("id = ?", receipt).
		Exists()
	if err != nil {
		return err
	}
	if exists {
		return engine.ErrBondReleased
	}

	return fmt.Errorf("bond %s: %w", receipt, pg.ErrNoRows)
}
