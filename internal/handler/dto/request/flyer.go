package request

import (
	"errors"
	"time"

	"flyerboard/internal/domain/flyer"
)

const expiryDateLayout = "2006-01-02"

var ErrInvalidExpiryDate = errors.New("expiry_date must be formatted as YYYY-MM-DD")

type PostFlyerRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	DiscountCode *string `json:"discount_code,omitempty"`
	RedeemCode   *string `json:"redeem_code,omitempty"`
	ImageURL     string  `json:"image_url"`
	ExpiryDate   string  `json:"expiry_date"`
}

// ToDraft converts the wire form into a domain draft. Only the date format
// is checked here; field invariants belong to the domain layer.
func (r *PostFlyerRequest) ToDraft(loc *time.Location) (flyer.Draft, error) {
	draft := flyer.Draft{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		DiscountCode: r.DiscountCode,
		RedeemCode:   r.RedeemCode,
		ImageURL:     r.ImageURL,
	}

	if r.ExpiryDate != "" {
		expiry, err := time.ParseInLocation(expiryDateLayout, r.ExpiryDate, loc)
		if err != nil {
			return flyer.Draft{}, ErrInvalidExpiryDate
		}
		draft.ExpiryDate = expiry
	}

	return draft, nil
}

type ReactionRequest struct {
	Kind string `json:"kind" binding:"required"`
}

type ReportRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}
