package response

import (
	"time"

	"flyerboard/internal/domain/flyer"
	"flyerboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReactionsResponse struct {
	Likes int64 `json:"likes"`
	Fire  int64 `json:"fire"`
	Heart int64 `json:"heart"`
}

type FlyerResponse struct {
	ID           uuid.UUID         `json:"id"`
	OwnerID      uuid.UUID         `json:"owner_id"`
	OwnerName    string            `json:"owner_name"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	DiscountCode *string           `json:"discount_code,omitempty"`
	RedeemCode   *string           `json:"redeem_code,omitempty"`
	ImageURL     string            `json:"image_url"`
	Views        int64             `json:"views"`
	Reactions    ReactionsResponse `json:"reactions"`
	Status       string            `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	ExpiryDate   string            `json:"expiry_date"`
}

func FromFlyerView(v *queries.FlyerView) *FlyerResponse {
	return &FlyerResponse{
		ID:           v.ID,
		OwnerID:      v.OwnerID,
		OwnerName:    v.OwnerName,
		Title:        v.Title,
		Description:  v.Description,
		Category:     v.Category.String(),
		DiscountCode: v.DiscountCode,
		RedeemCode:   v.RedeemCode,
		ImageURL:     v.ImageURL,
		Views:        v.Views,
		Reactions: ReactionsResponse{
			Likes: v.Reactions.Likes,
			Fire:  v.Reactions.Fire,
			Heart: v.Reactions.Heart,
		},
		Status:     v.Status.String(),
		CreatedAt:  v.CreatedAt,
		ExpiryDate: v.ExpiryDate.Format("2006-01-02"),
	}
}

func FromFlyerViews(views []*queries.FlyerView) []*FlyerResponse {
	out := make([]*FlyerResponse, len(views))
	for i, v := range views {
		out[i] = FromFlyerView(v)
	}
	return out
}

type UserStatsResponse struct {
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

func FromUserStatsView(v *queries.UserStatsView) *UserStatsResponse {
	return &UserStatsResponse{
		UserID:               v.UserID,
		DisplayName:          v.DisplayName,
		FlyerCount:           v.FlyerCount,
		TotalViews:           v.TotalViews,
		TotalLikes:           v.TotalLikes,
		TotalFire:            v.TotalFire,
		TotalHeart:           v.TotalHeart,
		FlyersPostedThisWeek: v.FlyersPostedThisWeek,
		WeeklyLimit:          v.WeeklyLimit,
		Remaining:            v.Remaining,
	}
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func FromCategoryCatalog() []CategoryResponse {
	out := make([]CategoryResponse, len(flyer.Categories))
	for i, c := range flyer.Categories {
		out[i] = CategoryResponse{
			ID:          c.ID.String(),
			Name:        c.Name,
			Description: c.Description,
		}
	}
	return out
}
