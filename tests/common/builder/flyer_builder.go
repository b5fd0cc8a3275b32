//go:build unit || integration

package builder

import (
	"time"

	"flyerboard/internal/domain/flyer"
	reqdto "flyerboard/internal/handler/dto/request"
	"flyerboard/internal/usecase/queries"

	"github.com/google/uuid"
)

// FlyerBuilder builds request DTOs and read models with sensible defaults
// so tests only spell out the fields they care about.
type FlyerBuilder struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	ownerName    string
	title        string
	description  string
	category     flyer.Category
	discountCode *string
	imageURL     string
	views        int64
	reactions    flyer.Reactions
	createdAt    time.Time
	expiryDate   time.Time
}

func NewFlyerBuilder() *FlyerBuilder {
	return &FlyerBuilder{
		id:          uuid.New(),
		ownerID:     uuid.New(),
		ownerName:   "Test Poster",
		title:       "Half price dosa weekend",
		description: "Two for one on all dosas this weekend only.",
		category:    flyer.CategoryFood,
		imageURL:    "https://example.com/flyers/dosa.jpg",
		createdAt:   time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
		expiryDate:  time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

func (b *FlyerBuilder) WithID(id uuid.UUID) *FlyerBuilder {
	b.id = id
	return b
}

func (b *FlyerBuilder) WithOwnerID(id uuid.UUID) *FlyerBuilder {
	b.ownerID = id
	return b
}

func (b *FlyerBuilder) WithTitle(title string) *FlyerBuilder {
	b.title = title
	return b
}

func (b *FlyerBuilder) WithCategory(c flyer.Category) *FlyerBuilder {
	b.category = c
	return b
}

func (b *FlyerBuilder) WithDiscountCode(code string) *FlyerBuilder {
	b.discountCode = &code
	return b
}

func (b *FlyerBuilder) WithImageURL(u string) *FlyerBuilder {
	b.imageURL = u
	return b
}

func (b *FlyerBuilder) WithViews(n int64) *FlyerBuilder {
	b.views = n
	return b
}

func (b *FlyerBuilder) WithReactions(likes, fire, heart int64) *FlyerBuilder {
	b.reactions = flyer.Reactions{Likes: likes, Fire: fire, Heart: heart}
	return b
}

func (b *FlyerBuilder) WithCreatedAt(t time.Time) *FlyerBuilder {
	b.createdAt = t
	return b
}

func (b *FlyerBuilder) WithExpiryDate(t time.Time) *FlyerBuilder {
	b.expiryDate = t
	return b
}

func (b *FlyerBuilder) BuildPostRequestDTO() *reqdto.PostFlyerRequest {
	return &reqdto.PostFlyerRequest{
		Title:        b.title,
		Description:  b.description,
		Category:     b.category.String(),
		DiscountCode: b.discountCode,
		ImageURL:     b.imageURL,
		ExpiryDate:   b.expiryDate.Format("2006-01-02"),
	}
}

func (b *FlyerBuilder) BuildView() *queries.FlyerView {
	return &queries.FlyerView{
		ID:           b.id,
		OwnerID:      b.ownerID,
		OwnerName:    b.ownerName,
		Title:        b.title,
		Description:  b.description,
		Category:     b.category,
		DiscountCode: b.discountCode,
		ImageURL:     b.imageURL,
		Views:        b.views,
		Reactions:    b.reactions,
		CreatedAt:    b.createdAt,
		ExpiryDate:   b.expiryDate,
	}
}
