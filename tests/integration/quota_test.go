//go:build integration

package integration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"flyerboard/internal/domain/flyer"
	"flyerboard/internal/infra/readstore"
	"flyerboard/internal/infra/repository"
	"flyerboard/internal/pkg/clock"
	"flyerboard/internal/pkg/errs"
	"flyerboard/internal/usecase/commands"
	"flyerboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const weeklyLimit = 2

type EngineTestSuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	clock    *clock.MockClock
	commands commands.FlyerCommands
	queries  queries.FlyerQueries
}

func (s *EngineTestSuite) SetupSuite() {
	s.pool = setupDatabase(s.T())
}

func (s *EngineTestSuite) SetupTest() {
	ctx := context.Background()
	_, err := s.pool.Exec(ctx, "TRUNCATE moderation_reports, flyers, user_profiles CASCADE")
	require.NoError(s.T(), err)

	// Wednesday noon, UTC
	s.clock = clock.NewMockClock(time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC))

	flyerStore := readstore.NewFlyerReadStore(s.pool)
	profileStore := readstore.NewProfileReadStore(s.pool)
	s.queries = queries.NewFlyerQueries(flyerStore, profileStore, s.clock, time.UTC, weeklyLimit)
	s.commands = commands.NewFlyerCommands(
		repository.NewFlyerRepository(s.pool),
		repository.NewProfileRepository(s.pool),
		repository.NewModerationRepository(s.pool),
		s.queries,
		s.pool, s.clock, time.UTC, weeklyLimit,
	)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) draft() flyer.Draft {
	return flyer.Draft{
		Title:       "Half price dosa weekend",
		Description: "Two for one on all dosas this weekend only.",
		Category:    "food",
		ImageURL:    "https://example.com/flyers/dosa.jpg",
		ExpiryDate:  time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

func (s *EngineTestSuite) TestWeeklyQuotaUnderConcurrency() {
	ctx := context.Background()
	userID := uuid.New()

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.commands.PostFlyer(ctx, userID, "Asha", s.draft())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, quotaRejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, errs.ErrQuotaExceeded):
			quotaRejected++
		default:
			s.FailNowf("unexpected error", "%v", err)
		}
	}

	s.Equal(weeklyLimit, succeeded, "exactly the weekly limit of posts must succeed")
	s.Equal(attempts-weeklyLimit, quotaRejected)

	flyers, err := s.queries.ByOwner(ctx, userID)
	s.NoError(err)
	s.Len(flyers, weeklyLimit, "stored flyer count must match granted slots")
}

func (s *EngineTestSuite) TestQuotaResetsOnWeekBoundary() {
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < weeklyLimit; i++ {
		_, err := s.commands.PostFlyer(ctx, userID, "Asha", s.draft())
		s.NoError(err)
	}

	_, err := s.commands.PostFlyer(ctx, userID, "Asha", s.draft())
	s.ErrorIs(err, errs.ErrQuotaExceeded)

	// Next Monday 00:01 in the quota zone
	s.clock.Set(time.Date(2024, 6, 10, 0, 1, 0, 0, time.UTC))

	_, err = s.commands.PostFlyer(ctx, userID, "Asha", s.draft())
	s.NoError(err, "a new calendar week must grant a fresh quota")

	stats, err := s.queries.UserStats(ctx, userID)
	s.NoError(err)
	s.Equal(1, stats.FlyersPostedThisWeek)
	s.Equal(weeklyLimit-1, stats.Remaining)
	s.Equal(int64(weeklyLimit+1), stats.FlyerCount)
}

func (s *EngineTestSuite) TestCategoryListingsAreIsolated() {
	ctx := context.Background()
	foodOwner := uuid.New()
	groceryOwner := uuid.New()

	first, err := s.commands.PostFlyer(ctx, foodOwner, "Asha", s.draft())
	s.Require().NoError(err)
	second, err := s.commands.PostFlyer(ctx, foodOwner, "Asha", s.draft())
	s.Require().NoError(err)

	grocery := s.draft()
	grocery.Category = "groceries"
	grocery.Title = "Fresh curry leaves in stock"
	_, err = s.commands.PostFlyer(ctx, groceryOwner, "Ravi", grocery)
	s.Require().NoError(err)

	food, err := s.queries.ByCategory(ctx, flyer.CategoryFood, queries.SortNewest)
	s.NoError(err)
	s.Len(food, 2)

	foodIDs := make(map[uuid.UUID]bool, len(food))
	for _, v := range food {
		s.Equal(flyer.CategoryFood, v.Category)
		foodIDs[v.ID] = true
	}
	s.True(foodIDs[first.ID])
	s.True(foodIDs[second.ID])

	groceries, err := s.queries.ByCategory(ctx, flyer.CategoryGroceries, queries.SortNewest)
	s.NoError(err)
	s.Len(groceries, 1)
	s.Equal(flyer.CategoryGroceries, groceries[0].Category)
}

func (s *EngineTestSuite) TestCountersLoseNoIncrements() {
	ctx := context.Background()
	userID := uuid.New()

	view, err := s.commands.PostFlyer(ctx, userID, "Asha", s.draft())
	s.Require().NoError(err)

	const viewers = 50
	var wg sync.WaitGroup
	for i := 0; i < viewers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.NoError(s.commands.IncrementViews(ctx, view.ID))
			if n%2 == 0 {
				s.NoError(s.commands.AddReaction(ctx, view.ID, flyer.ReactionFire))
			} else {
				s.NoError(s.commands.AddReaction(ctx, view.ID, flyer.ReactionLikes))
			}
		}(i)
	}
	wg.Wait()

	got, err := s.queries.GetByID(ctx, view.ID)
	s.NoError(err)
	s.Equal(int64(viewers), got.Views)
	s.Equal(int64(viewers/2), got.Reactions.Fire)
	s.Equal(int64(viewers/2), got.Reactions.Likes)
	s.Equal(int64(0), got.Reactions.Heart)
}

func (s *EngineTestSuite) TestReportFlyerPersistsForModeration() {
	ctx := context.Background()
	userID := uuid.New()
	reporterID := uuid.New()

	view, err := s.commands.PostFlyer(ctx, userID, "Asha", s.draft())
	s.Require().NoError(err)

	s.NoError(s.commands.ReportFlyer(ctx, view.ID, reporterID, "misleading offer"))

	var count int
	err = s.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM moderation_reports WHERE flyer_id = $1 AND status = 'pending'",
		view.ID,
	).Scan(&count)
	s.NoError(err)
	s.Equal(1, count)
}

func (s *EngineTestSuite) TestMissingFlyerCounterReturnsNotFound() {
	ctx := context.Background()

	err := s.commands.IncrementViews(ctx, uuid.New())
	s.ErrorIs(err, errs.ErrFlyerNotFound)

	err = s.commands.AddReaction(ctx, uuid.New(), flyer.ReactionHeart)
	s.ErrorIs(err, errs.ErrFlyerNotFound)
}
