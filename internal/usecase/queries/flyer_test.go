//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"flyerboard/internal/domain/flyer"
	"flyerboard/internal/infra"
	"flyerboard/internal/pkg/clock"
	"flyerboard/internal/pkg/errs"
	"flyerboard/internal/usecase/queries"
	"flyerboard/tests/common/builder"
	queriesmock "flyerboard/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FlyerQueriesTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	store        *queriesmock.MockFlyerReadStore
	profileStore *queriesmock.MockProfileReadStore
	clock        *clock.MockClock
	queries      queries.FlyerQueries
}

func (s *FlyerQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockFlyerReadStore(s.mockCtrl)
	s.profileStore = queriesmock.NewMockProfileReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC))
	s.queries = queries.NewFlyerQueries(s.store, s.profileStore, s.clock, time.UTC, 2)
}

func (s *FlyerQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFlyerQueriesSuite(t *testing.T) {
	suite.Run(t, new(FlyerQueriesTestSuite))
}

func (s *FlyerQueriesTestSuite) TestGetByID() {
	s.Run("classifies expiry at read time", func() {
		testCases := []struct {
			name       string
			expiryDate time.Time
			expected   flyer.ExpiryStatus
		}{
			{name: "far expiry is active", expiryDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), expected: flyer.StatusActive},
			{name: "within three days is expiring soon", expiryDate: time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC), expected: flyer.StatusExpiringSoon},
			{name: "expiry day itself is expiring soon", expiryDate: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), expected: flyer.StatusExpiringSoon},
			{name: "past expiry date is expired", expiryDate: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), expected: flyer.StatusExpired},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				view := builder.NewFlyerBuilder().WithExpiryDate(tc.expiryDate).BuildView()
				s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

				got, err := s.queries.GetByID(context.Background(), view.ID)
				s.NoError(err)
				s.Equal(tc.expected, got.Status)
			})
		}
	})

	s.Run("error: missing flyer maps to not found", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("flyer not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.queries.GetByID(context.Background(), id)
		s.ErrorIs(err, errs.ErrFlyerNotFound)
	})
}

func (s *FlyerQueriesTestSuite) TestByCategory() {
	s.Run("error: unknown category", func() {
		_, err := s.queries.ByCategory(context.Background(), flyer.Category("plumbing"), queries.SortNewest)
		s.ErrorIs(err, errs.ErrInvalidCategory)
	})

	s.Run("includes expired flyers with expired status", func() {
		expired := builder.NewFlyerBuilder().
			WithExpiryDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)).BuildView()
		active := builder.NewFlyerBuilder().
			WithExpiryDate(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)).BuildView()
		s.store.EXPECT().FindByCategory(gomock.Any(), flyer.CategoryFood).
			Return([]*queries.FlyerView{expired, active}, nil).Times(1)

		views, err := s.queries.ByCategory(context.Background(), flyer.CategoryFood, queries.SortMostViewed)
		s.NoError(err)
		s.Len(views, 2)
		statuses := map[uuid.UUID]flyer.ExpiryStatus{}
		for _, v := range views {
			statuses[v.ID] = v.Status
		}
		s.Equal(flyer.StatusExpired, statuses[expired.ID])
		s.Equal(flyer.StatusActive, statuses[active.ID])
	})

	s.Run("most_viewed sort is stable for equal view counts", func() {
		day := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		first := builder.NewFlyerBuilder().WithViews(10).WithCreatedAt(day).BuildView()
		second := builder.NewFlyerBuilder().WithViews(10).WithCreatedAt(day.Add(time.Hour)).BuildView()
		top := builder.NewFlyerBuilder().WithViews(50).WithCreatedAt(day.Add(2 * time.Hour)).BuildView()

		// Insertion order from the store: first, second, top.
		s.store.EXPECT().FindByCategory(gomock.Any(), flyer.CategoryFood).
			Return([]*queries.FlyerView{first, second, top}, nil).Times(1)

		views, err := s.queries.ByCategory(context.Background(), flyer.CategoryFood, queries.SortMostViewed)
		s.NoError(err)

		gotIDs := []uuid.UUID{views[0].ID, views[1].ID, views[2].ID}
		wantIDs := []uuid.UUID{top.ID, first.ID, second.ID}
		s.Empty(cmp.Diff(wantIDs, gotIDs))
	})

	s.Run("newest sort orders by creation time descending", func() {
		older := builder.NewFlyerBuilder().WithCreatedAt(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).BuildView()
		newer := builder.NewFlyerBuilder().WithCreatedAt(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)).BuildView()
		s.store.EXPECT().FindByCategory(gomock.Any(), flyer.CategoryFood).
			Return([]*queries.FlyerView{older, newer}, nil).Times(1)

		views, err := s.queries.ByCategory(context.Background(), flyer.CategoryFood, queries.SortNewest)
		s.NoError(err)
		s.Equal(newer.ID, views[0].ID)
		s.Equal(older.ID, views[1].ID)
	})

	s.Run("most_reactions sort uses combined reaction total", func() {
		light := builder.NewFlyerBuilder().WithReactions(1, 0, 0).BuildView()
		heavy := builder.NewFlyerBuilder().WithReactions(2, 3, 4).BuildView()
		s.store.EXPECT().FindByCategory(gomock.Any(), flyer.CategoryFood).
			Return([]*queries.FlyerView{light, heavy}, nil).Times(1)

		views, err := s.queries.ByCategory(context.Background(), flyer.CategoryFood, queries.SortMostReactions)
		s.NoError(err)
		s.Equal(heavy.ID, views[0].ID)
	})
}

func (s *FlyerQueriesTestSuite) TestTrending() {
	s.Run("ranks by engagement with recency tiebreak and caps at ten", func() {
		day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		var stored []*queries.FlyerView
		for i := 0; i < 12; i++ {
			v := builder.NewFlyerBuilder().
				WithViews(int64(i)).
				WithCreatedAt(day.Add(time.Duration(i) * time.Hour)).
				WithExpiryDate(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)).
				BuildView()
			stored = append(stored, v)
		}
		// Two flyers tied on engagement; the newer one must rank higher.
		tiedOld := builder.NewFlyerBuilder().WithViews(100).WithCreatedAt(day).
			WithExpiryDate(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)).BuildView()
		tiedNew := builder.NewFlyerBuilder().WithViews(100).WithCreatedAt(day.Add(48 * time.Hour)).
			WithExpiryDate(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)).BuildView()
		stored = append(stored, tiedOld, tiedNew)

		s.store.EXPECT().FindUnexpired(gomock.Any(), time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)).
			Return(stored, nil).Times(1)

		views, err := s.queries.Trending(context.Background())
		s.NoError(err)
		s.Len(views, 10)
		s.Equal(tiedNew.ID, views[0].ID)
		s.Equal(tiedOld.ID, views[1].ID)
		for i := 1; i < len(views); i++ {
			s.GreaterOrEqual(views[i-1].Engagement(), views[i].Engagement())
		}
	})

	s.Run("returns fewer than ten when little is posted", func() {
		only := builder.NewFlyerBuilder().
			WithExpiryDate(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)).BuildView()
		s.store.EXPECT().FindUnexpired(gomock.Any(), gomock.Any()).
			Return([]*queries.FlyerView{only}, nil).Times(1)

		views, err := s.queries.Trending(context.Background())
		s.NoError(err)
		s.Len(views, 1)
	})
}

func (s *FlyerQueriesTestSuite) TestUserStats() {
	userID := uuid.New()
	totals := &queries.OwnerTotals{FlyerCount: 4, Views: 120, Likes: 10, Fire: 5, Heart: 2}

	s.Run("no profile yet means full quota", func() {
		s.store.EXPECT().TotalsByOwner(gomock.Any(), userID).Return(totals, nil).Times(1)
		s.profileStore.EXPECT().FindByID(gomock.Any(), userID).
			Return(nil, infra.WrapRepoErr("user profile not found", nil, infra.KindNotFound)).Times(1)

		stats, err := s.queries.UserStats(context.Background(), userID)
		s.NoError(err)
		s.Equal(int64(4), stats.FlyerCount)
		s.Equal(int64(120), stats.TotalViews)
		s.Equal(0, stats.FlyersPostedThisWeek)
		s.Equal(2, stats.Remaining)
	})

	s.Run("current week window counts against the quota", func() {
		s.store.EXPECT().TotalsByOwner(gomock.Any(), userID).Return(totals, nil).Times(1)
		s.profileStore.EXPECT().FindByID(gomock.Any(), userID).
			Return(&queries.ProfileView{
				UserID:               userID,
				DisplayName:          "Asha",
				FlyersPostedThisWeek: 2,
				// Monday of the week containing 2024-06-05
				WeekWindowStart: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			}, nil).Times(1)

		stats, err := s.queries.UserStats(context.Background(), userID)
		s.NoError(err)
		s.Equal("Asha", stats.DisplayName)
		s.Equal(2, stats.FlyersPostedThisWeek)
		s.Equal(0, stats.Remaining)
	})

	s.Run("stale window reads as a fresh quota", func() {
		s.store.EXPECT().TotalsByOwner(gomock.Any(), userID).Return(totals, nil).Times(1)
		s.profileStore.EXPECT().FindByID(gomock.Any(), userID).
			Return(&queries.ProfileView{
				UserID:               userID,
				DisplayName:          "Asha",
				FlyersPostedThisWeek: 2,
				WeekWindowStart:      time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC),
			}, nil).Times(1)

		stats, err := s.queries.UserStats(context.Background(), userID)
		s.NoError(err)
		s.Equal(0, stats.FlyersPostedThisWeek)
		s.Equal(2, stats.Remaining)
	})
}

func (s *FlyerQueriesTestSuite) TestParseSortKey() {
	testCases := []struct {
		raw      string
		expected queries.SortKey
		ok       bool
	}{
		{raw: "", expected: queries.SortNewest, ok: true},
		{raw: "newest", expected: queries.SortNewest, ok: true},
		{raw: "most_viewed", expected: queries.SortMostViewed, ok: true},
		{raw: "most_reactions", expected: queries.SortMostReactions, ok: true},
		{raw: "oldest", ok: false},
	}

	for _, tc := range testCases {
		key, ok := queries.ParseSortKey(tc.raw)
		s.Equal(tc.ok, ok, "raw=%q", tc.raw)
		if tc.ok {
			s.Equal(tc.expected, key)
		}
	}
}
