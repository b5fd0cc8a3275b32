package readstore

import (
	"context"
	"errors"
	"time"

	"flyerboard/internal/domain/flyer"
	"flyerboard/internal/infra"
	"flyerboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const flyerColumns = `
	f.id, f.owner_id, COALESCE(p.display_name, ''), f.title, f.description,
	f.category, f.discount_code, f.redeem_code, f.image_url,
	f.views, f.likes, f.fire, f.heart, f.created_at, f.expiry_date
`

type FlyerReadStore struct {
	db *pgxpool.Pool
}

func NewFlyerReadStore(db *pgxpool.Pool) *FlyerReadStore {
	return &FlyerReadStore{db: db}
}

func (r *FlyerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FlyerView, error) {
	query := `
		SELECT ` + flyerColumns + `
		FROM flyers f
		LEFT JOIN user_profiles p ON p.user_id = f.owner_id
		WHERE f.id = $1
	`

	view, err := scanFlyerView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("flyer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find flyer by ID", err)
	}
	return view, nil
}

// FindByCategory returns rows in insertion order (created_at, id ascending)
// so the query layer's stable sorts break ties deterministically.
func (r *FlyerReadStore) FindByCategory(ctx context.Context, category flyer.Category) ([]*queries.FlyerView, error) {
	query := `
		SELECT ` + flyerColumns + `
		FROM flyers f
		LEFT JOIN user_profiles p ON p.user_id = f.owner_id
		WHERE f.category = $1
		ORDER BY f.created_at, f.id
	`

	return r.queryFlyers(ctx, query, "failed to find flyers by category", category.String())
}

func (r *FlyerReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.FlyerView, error) {
	query := `
		SELECT ` + flyerColumns + `
		FROM flyers f
		LEFT JOIN user_profiles p ON p.user_id = f.owner_id
		WHERE f.owner_id = $1
		ORDER BY f.created_at, f.id
	`

	return r.queryFlyers(ctx, query, "failed to find flyers by owner", ownerID)
}

func (r *FlyerReadStore) FindUnexpired(ctx context.Context, onOrAfter time.Time) ([]*queries.FlyerView, error) {
	query := `
		SELECT ` + flyerColumns + `
		FROM flyers f
		LEFT JOIN user_profiles p ON p.user_id = f.owner_id
		WHERE f.expiry_date >= $1
		ORDER BY f.created_at, f.id
	`

	return r.queryFlyers(ctx, query, "failed to find unexpired flyers", onOrAfter)
}

func (r *FlyerReadStore) TotalsByOwner(ctx context.Context, ownerID uuid.UUID) (*queries.OwnerTotals, error) {
	const query = `
		SELECT COUNT(*),
		       COALESCE(SUM(views), 0),
		       COALESCE(SUM(likes), 0),
		       COALESCE(SUM(fire), 0),
		       COALESCE(SUM(heart), 0)
		FROM flyers
		WHERE owner_id = $1
	`

	var totals queries.OwnerTotals
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&totals.FlyerCount, &totals.Views, &totals.Likes, &totals.Fire, &totals.Heart,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate owner totals", err)
	}
	return &totals, nil
}

func (r *FlyerReadStore) queryFlyers(ctx context.Context, query, errMsg string, args ...any) ([]*queries.FlyerView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(errMsg, err)
	}
	defer rows.Close()

	var views []*queries.FlyerView
	for rows.Next() {
		view, err := scanFlyerView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(errMsg, err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(errMsg, err)
	}
	return views, nil
}

func scanFlyerView(row pgx.Row) (*queries.FlyerView, error) {
	var (
		view     queries.FlyerView
		category string
	)
	err := row.Scan(
		&view.ID, &view.OwnerID, &view.OwnerName, &view.Title, &view.Description,
		&category, &view.DiscountCode, &view.RedeemCode, &view.ImageURL,
		&view.Views, &view.Reactions.Likes, &view.Reactions.Fire, &view.Reactions.Heart,
		&view.CreatedAt, &view.ExpiryDate,
	)
	if err != nil {
		return nil, err
	}
	view.Category = flyer.Category(category)
	return &view, nil
}
