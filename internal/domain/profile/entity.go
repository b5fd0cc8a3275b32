package profile

import (
	"time"

	"flyerboard/internal/pkg/clock"

	"github.com/google/uuid"
)

// DefaultWeeklyLimit is the number of flyers a user may post per calendar
// week (Monday-aligned).
const DefaultWeeklyLimit = 2

// UserProfile is owned by the auth collaborator; the engine reads and
// mutates only the quota window pair (count + window start), always together.
type UserProfile struct {
	userID               uuid.UUID
	displayName          string
	flyersPostedThisWeek int
	weekWindowStart      time.Time
}

func NewUserProfile(userID uuid.UUID, displayName string, now time.Time, loc *time.Location) *UserProfile {
	return &UserProfile{
		userID:          userID,
		displayName:     displayName,
		weekWindowStart: clock.WeekStart(now, loc),
	}
}

func ReconstructUserProfile(userID uuid.UUID, displayName string, flyersPostedThisWeek int, weekWindowStart time.Time) *UserProfile {
	return &UserProfile{
		userID:               userID,
		displayName:          displayName,
		flyersPostedThisWeek: flyersPostedThisWeek,
		weekWindowStart:      weekWindowStart,
	}
}

func (p *UserProfile) UserID() uuid.UUID          { return p.userID }
func (p *UserProfile) DisplayName() string        { return p.displayName }
func (p *UserProfile) FlyersPostedThisWeek() int  { return p.flyersPostedThisWeek }
func (p *UserProfile) WeekWindowStart() time.Time { return p.weekWindowStart }

// EffectiveCount is the posting count after accounting for any week-boundary
// crossing since weekWindowStart: a stale window counts as zero.
func (p *UserProfile) EffectiveCount(now time.Time, loc *time.Location) int {
	if clock.WeekStart(now, loc).After(p.weekWindowStart) {
		return 0
	}
	return p.flyersPostedThisWeek
}

// CanPost reports whether a post at now is within the weekly limit.
func (p *UserProfile) CanPost(now time.Time, loc *time.Location, limit int) bool {
	return p.EffectiveCount(now, loc) < limit
}

// RecordPost advances the quota window. On a boundary crossing the counter
// resets before incrementing, so the first post of a new week yields 1.
// The persistent equivalent of this transition runs as a single atomic
// UPDATE; this method exists for in-memory reasoning and tests.
func (p *UserProfile) RecordPost(now time.Time, loc *time.Location) {
	weekStart := clock.WeekStart(now, loc)
	if weekStart.After(p.weekWindowStart) {
		p.weekWindowStart = weekStart
		p.flyersPostedThisWeek = 0
	}
	p.flyersPostedThisWeek++
}

// Remaining returns how many posts are left in the current window.
func (p *UserProfile) Remaining(now time.Time, loc *time.Location, limit int) int {
	remaining := limit - p.EffectiveCount(now, loc)
	if remaining < 0 {
		return 0
	}
	return remaining
}
