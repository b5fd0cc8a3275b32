package flyer

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// ValidationError enumerates every violated field so callers can render a
// field-by-field message, not just the first failure.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) add(field, msg string) {
	e.Fields[field] = msg
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

type Reactions struct {
	Likes int64
	Fire  int64
	Heart int64
}

func (r Reactions) Total() int64 {
	return r.Likes + r.Fire + r.Heart
}

type Draft struct {
	Title        string
	Description  string
	Category     string
	DiscountCode *string
	RedeemCode   *string
	ImageURL     string
	ExpiryDate   time.Time
}

type Flyer struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	title        string
	description  string
	category     Category
	discountCode *string
	redeemCode   *string
	imageURL     string
	views        int64
	reactions    Reactions
	createdAt    time.Time
	expiryDate   time.Time
}

// NewFlyer validates the draft against all field invariants at once and
// returns a *ValidationError naming every violated field on failure.
// The expiry check is date-granular in loc: the expiry date must be strictly
// after the posting date.
func NewFlyer(ownerID uuid.UUID, d Draft, now time.Time, loc *time.Location) (*Flyer, error) {
	verr := newValidationError()

	title := strings.TrimSpace(d.Title)
	switch {
	case title == "":
		verr.add("title", "Title is required")
	case utf8.RuneCountInString(title) > MaxTitleLength:
		verr.add("title", fmt.Sprintf("Title must be less than %d characters", MaxTitleLength))
	}

	description := strings.TrimSpace(d.Description)
	switch {
	case description == "":
		verr.add("description", "Description is required")
	case utf8.RuneCountInString(description) > MaxDescriptionLength:
		verr.add("description", fmt.Sprintf("Description must be less than %d characters", MaxDescriptionLength))
	}

	category := Category(d.Category)
	if !category.IsValid() {
		verr.add("category", "Please select a valid category")
	}

	imageURL := strings.TrimSpace(d.ImageURL)
	if imageURL == "" {
		verr.add("imageUrl", "Image URL is required")
	} else if !isWellFormedURL(imageURL) {
		verr.add("imageUrl", "Please enter a valid image URL")
	}

	if d.ExpiryDate.IsZero() {
		verr.add("expiryDate", "Expiry date is required")
	} else if !DateOf(d.ExpiryDate, loc).After(DateOf(now, loc)) {
		verr.add("expiryDate", "Expiry date must be in the future")
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}

	return &Flyer{
		id:           uuid.New(),
		ownerID:      ownerID,
		title:        title,
		description:  description,
		category:     category,
		discountCode: trimOptional(d.DiscountCode),
		redeemCode:   trimOptional(d.RedeemCode),
		imageURL:     imageURL,
		createdAt:    now,
		expiryDate:   d.ExpiryDate,
	}, nil
}

func (f *Flyer) ID() uuid.UUID          { return f.id }
func (f *Flyer) OwnerID() uuid.UUID     { return f.ownerID }
func (f *Flyer) Title() string          { return f.title }
func (f *Flyer) Description() string    { return f.description }
func (f *Flyer) Category() Category     { return f.category }
func (f *Flyer) DiscountCode() *string  { return f.discountCode }
func (f *Flyer) RedeemCode() *string    { return f.redeemCode }
func (f *Flyer) ImageURL() string       { return f.imageURL }
func (f *Flyer) Views() int64           { return f.views }
func (f *Flyer) Reactions() Reactions   { return f.reactions }
func (f *Flyer) CreatedAt() time.Time   { return f.createdAt }
func (f *Flyer) ExpiryDate() time.Time  { return f.expiryDate }

func isWellFormedURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
