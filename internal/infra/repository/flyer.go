package repository

import (
	"context"

	"flyerboard/internal/domain/flyer"
	"flyerboard/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reactionColumns maps the closed reaction enum onto its counter column.
// Only values from this map ever reach the SQL text.
var reactionColumns = map[flyer.ReactionKind]string{
	flyer.ReactionLikes: "likes",
	flyer.ReactionFire:  "fire",
	flyer.ReactionHeart: "heart",
}

type FlyerRepository struct {
	db *pgxpool.Pool
}

func NewFlyerRepository(db *pgxpool.Pool) *FlyerRepository {
	return &FlyerRepository{db: db}
}

func (r *FlyerRepository) Create(ctx context.Context, tx pgx.Tx, f *flyer.Flyer) error {
	const query = `
		INSERT INTO flyers (
			id, owner_id, title, description, category,
			discount_code, redeem_code, image_url,
			views, likes, fire, heart, created_at, expiry_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, 0, 0, 0, $9, $10)
	`

	_, err := tx.Exec(ctx, query,
		f.ID(), f.OwnerID(), f.Title(), f.Description(), f.Category().String(),
		f.DiscountCode(), f.RedeemCode(), f.ImageURL(),
		f.CreatedAt(), f.ExpiryDate(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create flyer", err)
	}
	return nil
}

// IncrementViews is a single-statement atomic update; concurrent calls
// never lose increments.
func (r *FlyerRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE flyers SET views = views + 1 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment views", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("flyer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *FlyerRepository) IncrementReaction(ctx context.Context, id uuid.UUID, kind flyer.ReactionKind) error {
	column, ok := reactionColumns[kind]
	if !ok {
		return infra.WrapRepoErr("unknown reaction kind "+kind.String(), nil, infra.KindDBFailure)
	}

	query := `UPDATE flyers SET ` + column + ` = ` + column + ` + 1 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment reaction", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("flyer not found", nil, infra.KindNotFound)
	}
	return nil
}
