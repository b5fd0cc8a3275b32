package repository

import (
	"context"
	"time"

	"flyerboard/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ModerationRepository persists report hooks for the external moderation
// collaborator to drain; the engine never reads them back.
type ModerationRepository struct {
	db *pgxpool.Pool
}

func NewModerationRepository(db *pgxpool.Pool) *ModerationRepository {
	return &ModerationRepository{db: db}
}

func (r *ModerationRepository) CreateReport(ctx context.Context, flyerID, reporterID uuid.UUID, reason string, now time.Time) error {
	const query = `
		INSERT INTO moderation_reports (id, flyer_id, reporter_id, reason, status, created_at)
		VALUES ($1, $2, $3, $4, 'pending', $5)
	`

	if _, err := r.db.Exec(ctx, query, uuid.New(), flyerID, reporterID, reason, now); err != nil {
		return infra.WrapRepoErr("failed to create moderation report", err)
	}
	return nil
}
