package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"flyerboard/internal/domain/flyer"
	"flyerboard/internal/infra"
	"flyerboard/internal/pkg/clock"
	"flyerboard/internal/pkg/errs"
	"flyerboard/internal/pkg/metrics"
	"flyerboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// maxRetries bounds how often a transient store conflict is retried before
// the failure is surfaced to the caller.
const maxRetries = 3

type FlyerCommands interface {
	PostFlyer(ctx context.Context, userID uuid.UUID, displayName string, draft flyer.Draft) (*queries.FlyerView, error)
	IncrementViews(ctx context.Context, flyerID uuid.UUID) error
	AddReaction(ctx context.Context, flyerID uuid.UUID, kind flyer.ReactionKind) error
	ReportFlyer(ctx context.Context, flyerID, reporterID uuid.UUID, reason string) error
}

type flyerCommandsImpl struct {
	flyerRepo      FlyerRepository
	profileRepo    ProfileRepository
	moderationRepo ModerationRepository
	flyerQueries   queries.FlyerQueries
	db             *pgxpool.Pool
	clock          clock.Clock
	loc            *time.Location
	weeklyLimit    int
}

func NewFlyerCommands(
	flyerRepo FlyerRepository,
	profileRepo ProfileRepository,
	moderationRepo ModerationRepository,
	flyerQueries queries.FlyerQueries,
	db *pgxpool.Pool,
	clk clock.Clock,
	loc *time.Location,
	weeklyLimit int,
) FlyerCommands {
	return &flyerCommandsImpl{
		flyerRepo:      flyerRepo,
		profileRepo:    profileRepo,
		moderationRepo: moderationRepo,
		flyerQueries:   flyerQueries,
		db:             db,
		clock:          clk,
		loc:            loc,
		weeklyLimit:    weeklyLimit,
	}
}

// PostFlyer validates the draft, consumes a quota slot and persists the
// flyer in one transaction. The quota check-and-increment and the insert
// commit together or not at all.
func (c *flyerCommandsImpl) PostFlyer(
	ctx context.Context,
	userID uuid.UUID,
	displayName string,
	draft flyer.Draft,
) (*queries.FlyerView, error) {
	start := time.Now()
	status := "failed"
	defer func() {
		metrics.RecordPostFlyerDuration(status, time.Since(start).Seconds())
	}()

	now := c.clock.Now()
	entity, err := flyer.NewFlyer(userID, draft, now, c.loc)
	if err != nil {
		status = "validation_error"
		return nil, err
	}

	weekStart := clock.WeekStart(now, c.loc)

	err = c.withRetry(ctx, func() error {
		return c.postInTransaction(ctx, entity, userID, displayName, weekStart)
	})
	if err != nil {
		if errors.Is(err, errs.ErrQuotaExceeded) {
			status = "quota_exceeded"
		}
		return nil, err
	}

	view, err := c.flyerQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	status = "success"
	return view, nil
}

func (c *flyerCommandsImpl) postInTransaction(
	ctx context.Context,
	entity *flyer.Flyer,
	userID uuid.UUID,
	displayName string,
	weekStart time.Time,
) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := c.profileRepo.Ensure(ctx, tx, userID, displayName, weekStart); err != nil {
		return err
	}

	granted, err := c.profileRepo.ConsumeQuotaSlot(ctx, tx, userID, weekStart, c.weeklyLimit)
	if err != nil {
		return err
	}
	if !granted {
		return errs.ErrQuotaExceeded
	}

	if err := c.flyerRepo.Create(ctx, tx, entity); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// IncrementViews applies a single +1 to the view counter. The increment is
// a one-statement atomic update in the store; N concurrent calls net +N.
func (c *flyerCommandsImpl) IncrementViews(ctx context.Context, flyerID uuid.UUID) error {
	err := c.withRetry(ctx, func() error {
		return c.flyerRepo.IncrementViews(ctx, flyerID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrFlyerNotFound
		}
		return err
	}

	metrics.RecordCounterMutation("views")
	return nil
}

// AddReaction applies a single +1 to one reaction counter. Repeated
// reactions from the same viewer are not deduplicated.
func (c *flyerCommandsImpl) AddReaction(ctx context.Context, flyerID uuid.UUID, kind flyer.ReactionKind) error {
	if !kind.IsValid() {
		return errs.ErrInvalidReaction
	}

	err := c.withRetry(ctx, func() error {
		return c.flyerRepo.IncrementReaction(ctx, flyerID, kind)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrFlyerNotFound
		}
		return err
	}

	metrics.RecordCounterMutation(kind.String())
	return nil
}

// ReportFlyer records a report for the external moderation collaborator.
func (c *flyerCommandsImpl) ReportFlyer(ctx context.Context, flyerID, reporterID uuid.UUID, reason string) error {
	if _, err := c.flyerQueries.GetByID(ctx, flyerID); err != nil {
		return err
	}

	err := c.moderationRepo.CreateReport(ctx, flyerID, reporterID, reason, c.clock.Now())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// withRetry re-runs fn on transient store conflicts up to maxRetries
// attempts, then surfaces a transient failure. All other errors pass
// through untouched.
func (c *flyerCommandsImpl) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			metrics.StoreRetries.Inc()
			select {
			case <-ctx.Done():
				return errs.Mark(ctx.Err(), errs.ErrTransientFailure)
			case <-time.After(time.Duration(attempt) * 10 * time.Millisecond):
			}
		}

		err = fn()
		if err == nil || !infra.IsKind(err, infra.KindConflict) {
			return err
		}
	}
	return errs.Mark(err, errs.ErrTransientFailure)
}
