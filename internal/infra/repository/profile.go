package repository

import (
	"context"
	"time"

	"flyerboard/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Ensure(ctx context.Context, tx pgx.Tx, userID uuid.UUID, displayName string, weekStart time.Time) error {
	const query = `
		INSERT INTO user_profiles (user_id, display_name, flyers_posted_this_week, week_window_start)
		VALUES ($1, $2, 0, $3)
		ON CONFLICT (user_id) DO UPDATE SET display_name = EXCLUDED.display_name, updated_at = now()
	`

	if _, err := tx.Exec(ctx, query, userID, displayName, weekStart); err != nil {
		return infra.WrapRepoErr("failed to ensure user profile", err)
	}
	return nil
}

// ConsumeQuotaSlot performs the quota check-and-increment as one guarded
// UPDATE. The row lock serializes concurrent posts by the same user, so two
// requests can never both take the last slot. A stale window (started
// before this calendar week) resets to the new week before counting.
func (r *ProfileRepository) ConsumeQuotaSlot(ctx context.Context, tx pgx.Tx, userID uuid.UUID, weekStart time.Time, limit int) (bool, error) {
	const query = `
		UPDATE user_profiles
		SET flyers_posted_this_week = CASE
				WHEN week_window_start < $2 THEN 1
				ELSE flyers_posted_this_week + 1
			END,
			week_window_start = CASE
				WHEN week_window_start < $2 THEN $2
				ELSE week_window_start
			END,
			updated_at = now()
		WHERE user_id = $1
		  AND (week_window_start < $2 OR flyers_posted_this_week < $3)
	`

	tag, err := tx.Exec(ctx, query, userID, weekStart, limit)
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume quota slot", err)
	}
	return tag.RowsAffected() > 0, nil
}
