package readstore

import (
	"context"
	"errors"

	"flyerboard/internal/infra"
	"flyerboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileReadStore struct {
	db *pgxpool.Pool
}

func NewProfileReadStore(db *pgxpool.Pool) *ProfileReadStore {
	return &ProfileReadStore{db: db}
}

func (r *ProfileReadStore) FindByID(ctx context.Context, userID uuid.UUID) (*queries.ProfileView, error) {
	const query = `
		SELECT user_id, display_name, flyers_posted_this_week, week_window_start
		FROM user_profiles
		WHERE user_id = $1
	`

	var view queries.ProfileView
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&view.UserID, &view.DisplayName, &view.FlyersPostedThisWeek, &view.WeekWindowStart,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user profile", err)
	}
	return &view, nil
}
