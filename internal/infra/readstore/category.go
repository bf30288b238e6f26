package readstore

import (
	"context"

	"legalbook/internal/infra"
	"legalbook/internal/infra/db"
	"legalbook/internal/pkg/pgconv"
	"legalbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CategoryReadStore struct {
	db db.DBTX
}

func NewCategoryReadStore(pool db.DBTX) *CategoryReadStore {
	return &CategoryReadStore{db: pool}
}

func (s *CategoryReadStore) List(ctx context.Context) ([]*queries.CategoryView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, price_per_15min_cents, description FROM categories ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	var views []*queries.CategoryView
	for rows.Next() {
		var (
			id          pgtype.UUID
			name        string
			priceCents  int64
			description pgtype.Text
		)
		if err := rows.Scan(&id, &name, &priceCents, &description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category", err)
		}
		views = append(views, &queries.CategoryView{
			ID:                 pgconv.UUIDFromPgtype(id),
			Name:               name,
			PricePer15MinCents: priceCents,
			Description:        description.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read categories", err)
	}
	return views, nil
}
