//go:build unit

package profile_test

import (
	"testing"
	"time"

	"flyerboard/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Monday of an arbitrary week.
var weekStart = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func TestCanPost(t *testing.T) {
	tests := []struct {
		name   string
		posted int
		window time.Time
		now    time.Time
		want   bool
	}{
		{
			name:   "fresh profile",
			posted: 0,
			window: weekStart,
			now:    weekStart.Add(2 * time.Hour),
			want:   true,
		},
		{
			name:   "one slot left",
			posted: 1,
			window: weekStart,
			now:    weekStart.AddDate(0, 0, 3),
			want:   true,
		},
		{
			name:   "quota full within window",
			posted: 2,
			window: weekStart,
			now:    weekStart.AddDate(0, 0, 6).Add(23 * time.Hour),
			want:   false,
		},
		{
			name:   "stale window counts as zero",
			posted: 2,
			window: weekStart,
			now:    weekStart.AddDate(0, 0, 7), // next Monday
			want:   true,
		},
		{
			name:   "window several weeks stale",
			posted: 2,
			window: weekStart,
			now:    weekStart.AddDate(0, 0, 21),
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profile.ReconstructUserProfile(uuid.New(), "Priya", tt.posted, tt.window)
			assert.Equal(t, tt.want, p.CanPost(tt.now, time.UTC, profile.DefaultWeeklyLimit))
		})
	}
}

func TestRecordPost(t *testing.T) {
	t.Run("increments within the window", func(t *testing.T) {
		p := profile.ReconstructUserProfile(uuid.New(), "Priya", 1, weekStart)

		p.RecordPost(weekStart.AddDate(0, 0, 2), time.UTC)

		assert.Equal(t, 2, p.FlyersPostedThisWeek())
		assert.True(t, p.WeekWindowStart().Equal(weekStart))
	})

	t.Run("boundary crossing resets before incrementing", func(t *testing.T) {
		p := profile.ReconstructUserProfile(uuid.New(), "Priya", 2, weekStart)
		nextMonday := weekStart.AddDate(0, 0, 7)

		p.RecordPost(nextMonday.Add(time.Hour), time.UTC)

		// Count is 1, not 3: the stale window was discarded first.
		assert.Equal(t, 1, p.FlyersPostedThisWeek())
		assert.True(t, p.WeekWindowStart().Equal(nextMonday))
	})
}

func TestRemaining(t *testing.T) {
	p := profile.ReconstructUserProfile(uuid.New(), "Priya", 2, weekStart)

	assert.Equal(t, 0, p.Remaining(weekStart.AddDate(0, 0, 1), time.UTC, profile.DefaultWeeklyLimit))
	assert.Equal(t, 2, p.Remaining(weekStart.AddDate(0, 0, 8), time.UTC, profile.DefaultWeeklyLimit))
}

func TestNewUserProfile(t *testing.T) {
	now := weekStart.AddDate(0, 0, 4).Add(9 * time.Hour) // Friday
	p := profile.NewUserProfile(uuid.New(), "Arjun", now, time.UTC)

	assert.Equal(t, 0, p.FlyersPostedThisWeek())
	assert.True(t, p.WeekWindowStart().Equal(weekStart))
	assert.Equal(t, "Arjun", p.DisplayName())
}
