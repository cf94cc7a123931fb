package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type AccountRepository struct {
	db TxDB
}

func NewAccountRepository(db TxDB) *AccountRepository {
	return &AccountRepository{db: db}
}

// DeleteUserData removes every row owned by userID in one transaction,
// children before parents.
func (r *AccountRepository) DeleteUserData(ctx context.Context, userID string) error {
	statements := []struct {
		table string
		query string
	}{
		{"workout_sessions", `DELETE FROM workout_sessions WHERE user_id = $1`},
		{"workout_plans", `DELETE FROM workout_plans WHERE user_id = $1`},
		{"goals", `DELETE FROM goals WHERE user_id = $1`},
		{"onboarding_records", `DELETE FROM onboarding_records WHERE user_id = $1`},
		{"user_profiles", `DELETE FROM user_profiles WHERE user_id = $1`},
	}

	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt.query, userID); err != nil {
				return fmt.Errorf("delete %s: %w", stmt.table, err)
			}
		}
		return nil
	})
}
