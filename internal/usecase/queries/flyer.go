package queries

import (
	"context"
	"sort"
	"time"

	"flyerboard/internal/domain/flyer"
	"flyerboard/internal/domain/profile"
	"flyerboard/internal/infra"
	"flyerboard/internal/pkg/clock"
	"flyerboard/internal/pkg/errs"

	"github.com/google/uuid"
)

// trendingLimit bounds the trending view; it is recomputed on every call.
const trendingLimit = 10

type SortKey string

const (
	SortNewest        SortKey = "newest"
	SortMostViewed    SortKey = "most_viewed"
	SortMostReactions SortKey = "most_reactions"
)

// ParseSortKey maps a request parameter onto a sort key, defaulting to
// newest for the empty string.
func ParseSortKey(raw string) (SortKey, bool) {
	switch SortKey(raw) {
	case SortNewest, "":
		return SortNewest, true
	case SortMostViewed:
		return SortMostViewed, true
	case SortMostReactions:
		return SortMostReactions, true
	default:
		return "", false
	}
}

// Read models (DTO for read side)
type FlyerView struct {
	ID           uuid.UUID          `json:"id"`
	OwnerID      uuid.UUID          `json:"owner_id"`
	OwnerName    string             `json:"owner_name"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Category     flyer.Category     `json:"category"`
	DiscountCode *string            `json:"discount_code,omitempty"`
	RedeemCode   *string            `json:"redeem_code,omitempty"`
	ImageURL     string             `json:"image_url"`
	Views        int64              `json:"views"`
	Reactions    flyer.Reactions    `json:"reactions"`
	Status       flyer.ExpiryStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	ExpiryDate   time.Time          `json:"expiry_date"`
}

// Engagement is the combined view/reaction count used by trending and the
// most_reactions sort.
func (v *FlyerView) Engagement() int64 {
	return v.Views + v.Reactions.Total()
}

type UserStatsView struct {
	UserID               uuid.UUID `json:"user_id"`
	DisplayName          string    `json:"display_name"`
	FlyerCount           int64     `json:"flyer_count"`
	TotalViews           int64     `json:"total_views"`
	TotalLikes           int64     `json:"total_likes"`
	TotalFire            int64     `json:"total_fire"`
	TotalHeart           int64     `json:"total_heart"`
	FlyersPostedThisWeek int       `json:"flyers_posted_this_week"`
	WeeklyLimit          int       `json:"weekly_limit"`
	Remaining            int       `json:"remaining"`
}

type OwnerTotals struct {
	FlyerCount int64
	Views      int64
	Likes      int64
	Fire       int64
	Heart      int64
}

type ProfileView struct {
	UserID               uuid.UUID
	DisplayName          string
	FlyersPostedThisWeek int
	WeekWindowStart      time.Time
}

type FlyerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FlyerView, error)
	// FindByCategory and FindByOwner return rows in insertion order so the
	// stable sorts below can break ties deterministically.
	FindByCategory(ctx context.Context, category flyer.Category) ([]*FlyerView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*FlyerView, error)
	// FindUnexpired returns flyers whose expiry date is on or after the given
	// date, in insertion order.
	FindUnexpired(ctx context.Context, onOrAfter time.Time) ([]*FlyerView, error)
	TotalsByOwner(ctx context.Context, ownerID uuid.UUID) (*OwnerTotals, error)
}

type ProfileReadStore interface {
	FindByID(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
}

type FlyerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*FlyerView, error)
	ByCategory(ctx context.Context, category flyer.Category, key SortKey) ([]*FlyerView, error)
	ByOwner(ctx context.Context, ownerID uuid.UUID) ([]*FlyerView, error)
	Trending(ctx context.Context) ([]*FlyerView, error)
	UserStats(ctx context.Context, userID uuid.UUID) (*UserStatsView, error)
}

type flyerQueriesImpl struct {
	store        FlyerReadStore
	profileStore ProfileReadStore
	clock        clock.Clock
	loc          *time.Location
	weeklyLimit  int
}

func NewFlyerQueries(
	store FlyerReadStore,
	profileStore ProfileReadStore,
	clk clock.Clock,
	loc *time.Location,
	weeklyLimit int,
) FlyerQueries {
	return &flyerQueriesImpl{
		store:        store,
		profileStore: profileStore,
		clock:        clk,
		loc:          loc,
		weeklyLimit:  weeklyLimit,
	}
}

func (q *flyerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*FlyerView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrFlyerNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	q.classify(view)
	return view, nil
}

// ByCategory returns every flyer in the category, expired ones included;
// expiry is a display concern, not a filter.
func (q *flyerQueriesImpl) ByCategory(ctx context.Context, category flyer.Category, key SortKey) ([]*FlyerView, error) {
	if !category.IsValid() {
		return nil, errs.ErrInvalidCategory
	}

	views, err := q.store.FindByCategory(ctx, category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	q.classifyAll(views)
	SortFlyers(views, key)
	return views, nil
}

func (q *flyerQueriesImpl) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]*FlyerView, error) {
	views, err := q.store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	q.classifyAll(views)
	SortFlyers(views, SortNewest)
	return views, nil
}

// Trending ranks currently non-expired flyers by combined view/reaction
// count, ties broken by recency, bounded to trendingLimit entries.
func (q *flyerQueriesImpl) Trending(ctx context.Context) ([]*FlyerView, error) {
	today := flyer.DateOf(q.clock.Now(), q.loc)

	views, err := q.store.FindUnexpired(ctx, today)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	q.classifyAll(views)
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Engagement() != views[j].Engagement() {
			return views[i].Engagement() > views[j].Engagement()
		}
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})

	if len(views) > trendingLimit {
		views = views[:trendingLimit]
	}
	return views, nil
}

func (q *flyerQueriesImpl) UserStats(ctx context.Context, userID uuid.UUID) (*UserStatsView, error) {
	totals, err := q.store.TotalsByOwner(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	stats := &UserStatsView{
		UserID:      userID,
		FlyerCount:  totals.FlyerCount,
		TotalViews:  totals.Views,
		TotalLikes:  totals.Likes,
		TotalFire:   totals.Fire,
		TotalHeart:  totals.Heart,
		WeeklyLimit: q.weeklyLimit,
		Remaining:   q.weeklyLimit,
	}

	prof, err := q.profileStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// No profile yet means nothing posted: full quota remains.
			return stats, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := q.clock.Now()
	entity := profile.ReconstructUserProfile(prof.UserID, prof.DisplayName, prof.FlyersPostedThisWeek, prof.WeekWindowStart)
	stats.DisplayName = prof.DisplayName
	stats.FlyersPostedThisWeek = entity.EffectiveCount(now, q.loc)
	stats.Remaining = entity.Remaining(now, q.loc, q.weeklyLimit)
	return stats, nil
}

func (q *flyerQueriesImpl) classify(v *FlyerView) {
	v.Status = flyer.ClassifyExpiry(v.ExpiryDate, q.clock.Now(), q.loc)
}

func (q *flyerQueriesImpl) classifyAll(views []*FlyerView) {
	now := q.clock.Now()
	for _, v := range views {
		v.Status = flyer.ClassifyExpiry(v.ExpiryDate, now, q.loc)
	}
}

// SortFlyers orders views by the given key, descending. The sort is stable:
// equal keys keep the slice's existing (insertion) order.
func SortFlyers(views []*FlyerView, key SortKey) {
	switch key {
	case SortMostViewed:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Views > views[j].Views
		})
	case SortMostReactions:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Reactions.Total() > views[j].Reactions.Total()
		})
	default: // SortNewest
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].CreatedAt.After(views[j].CreatedAt)
		})
	}
}
