package repository

import (
	"context"

	"legalbook/internal/domain/cart"
	"legalbook/internal/infra"
	"legalbook/internal/infra/db"
	"legalbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(tx db.DBTX) *CartRepository {
	return &CartRepository{db: tx}
}

const getOrCreateCartSQL = `
WITH created AS (
    INSERT INTO carts (id, user_id)
    VALUES ($1, $2)
    ON CONFLICT (user_id) DO NOTHING
    RETURNING id, user_id, created_at, updated_at
)
SELECT id, user_id, created_at, updated_at FROM created
UNION ALL
SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $2
LIMIT 1
`

func (r *CartRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	var (
		id        pgtype.UUID
		owner     pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	row := r.db.QueryRow(ctx, getOrCreateCartSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		pgconv.UUIDToPgtype(userID),
	)
	if err := row.Scan(&id, &owner, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to get or create cart", err)
	}
	return cart.ReconstructCart(
		pgconv.UUIDFromPgtype(id),
		pgconv.UUIDFromPgtype(owner),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const insertCartItemSQL = `
INSERT INTO cart_items (id, cart_id, category_id, date, start_time, duration_minutes, added_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *CartRepository) InsertItem(ctx context.Context, item *cart.Item) error {
	slot := item.Slot()
	_, err := r.db.Exec(ctx, insertCartItemSQL,
		pgconv.UUIDToPgtype(item.ID()),
		pgconv.UUIDToPgtype(item.CartID()),
		pgconv.UUIDToPgtype(item.CategoryID()),
		pgconv.DateToPgtype(slot.Date()),
		pgconv.TimeOfDayToPgtype(slot.Start()),
		int32(slot.Duration()),
		pgconv.TimeToPgtype(item.AddedAt()),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("category does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert cart item", err)
	}
	return nil
}

const updateCartItemSQL = `
UPDATE cart_items
SET category_id = $2, date = $3, start_time = $4, duration_minutes = $5
WHERE id = $1
`

func (r *CartRepository) UpdateItem(ctx context.Context, item *cart.Item) error {
	slot := item.Slot()
	tag, err := r.db.Exec(ctx, updateCartItemSQL,
		pgconv.UUIDToPgtype(item.ID()),
		pgconv.UUIDToPgtype(item.CategoryID()),
		pgconv.DateToPgtype(slot.Date()),
		pgconv.TimeOfDayToPgtype(slot.Start()),
		int32(slot.Duration()),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("category does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to update cart item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, pgconv.UUIDToPgtype(itemID))
	if err != nil {
		return infra.WrapRepoErr("failed to delete cart item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound)
	}
	return nil
}

const clearCartSQL = `
DELETE FROM cart_items
WHERE cart_id IN (SELECT id FROM carts WHERE user_id = $1)
`

func (r *CartRepository) ClearByUserID(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, clearCartSQL, pgconv.UUIDToPgtype(userID)); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}
