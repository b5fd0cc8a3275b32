package commands

import (
	"context"
	"time"

	"flyerboard/internal/domain/flyer"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FlyerRepository interface {
	Create(ctx context.Context, tx pgx.Tx, f *flyer.Flyer) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	IncrementReaction(ctx context.Context, id uuid.UUID, kind flyer.ReactionKind) error
}

type ProfileRepository interface {
	// Ensure upserts the profile row so the quota update always has a row to
	// lock. No-op when the profile already exists.
	Ensure(ctx context.Context, tx pgx.Tx, userID uuid.UUID, displayName string, weekStart time.Time) error

	// ConsumeQuotaSlot is the atomic check-and-increment: in one guarded
	// UPDATE it resets a stale window, increments the count and advances the
	// window start. Returns false when the weekly limit is already spent.
	ConsumeQuotaSlot(ctx context.Context, tx pgx.Tx, userID uuid.UUID, weekStart time.Time, limit int) (bool, error)
}

// ModerationRepository records report hooks for the external moderation
// collaborator; the engine itself performs no moderation.
type ModerationRepository interface {
	CreateReport(ctx context.Context, flyerID, reporterID uuid.UUID, reason string, now time.Time) error
}
