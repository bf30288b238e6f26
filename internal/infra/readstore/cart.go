package readstore

import (
	"context"

	"legalbook/internal/infra"
	"legalbook/internal/infra/db"
	"legalbook/internal/pkg/pgconv"
	"legalbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(pool db.DBTX) *CartReadStore {
	return &CartReadStore{db: pool}
}

// ItemRows joins each line with the category's current price so the read
// side always reflects the latest catalog.
func (s *CartReadStore) ItemRows(ctx context.Context, userID uuid.UUID) ([]*queries.CartItemRow, error) {
	rows, err := s.db.Query(ctx,
		`SELECT ci.id, ci.cart_id, ci.category_id, cat.name, cat.price_per_15min_cents,
		        ci.date, ci.start_time, ci.duration_minutes, ci.added_at
		 FROM cart_items ci
		 JOIN carts c ON c.id = ci.cart_id
		 JOIN categories cat ON cat.id = ci.category_id
		 WHERE c.user_id = $1
		 ORDER BY ci.added_at`,
		pgconv.UUIDToPgtype(userID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	defer rows.Close()

	var result []*queries.CartItemRow
	for rows.Next() {
		var (
			id         pgtype.UUID
			cartID     pgtype.UUID
			categoryID pgtype.UUID
			name       string
			priceCents int64
			date       pgtype.Date
			start      pgtype.Time
			duration   int32
			addedAt    pgtype.Timestamptz
		)
		err := rows.Scan(&id, &cartID, &categoryID, &name, &priceCents, &date, &start, &duration, &addedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item", err)
		}
		result = append(result, &queries.CartItemRow{
			ID:             pgconv.UUIDFromPgtype(id),
			CartID:         pgconv.UUIDFromPgtype(cartID),
			CategoryID:     pgconv.UUIDFromPgtype(categoryID),
			CategoryName:   name,
			UnitPriceCents: priceCents,
			Date:           pgconv.DateFromPgtype(date),
			StartMinutes:   int(pgconv.TimeOfDayFromPgtype(start)),
			DurationMin:    int(duration),
			AddedAt:        pgconv.TimeFromPgtype(addedAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart items", err)
	}
	return result, nil
}

func (s *CartReadStore) CartID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id pgtype.UUID
	row := s.db.QueryRow(ctx, `SELECT id FROM carts WHERE user_id = $1`, pgconv.UUIDToPgtype(userID))
	if err := row.Scan(&id); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to get cart", err)
	}
	return pgconv.UUIDFromPgtype(id), nil
}
