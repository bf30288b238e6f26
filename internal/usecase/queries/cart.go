package queries

import (
	"context"

	"legalbook/internal/domain/consultation"
	"legalbook/internal/infra"

	"github.com/google/uuid"
)

type CartReadStore interface {
	// ItemRows returns the user's cart lines joined with each category's
	// current unit price; empty slice for a missing or empty cart.
	ItemRows(ctx context.Context, userID uuid.UUID) ([]*CartItemRow, error)
	CartID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

type CartQueries interface {
	// GetByUser materializes the cart with live prices: every read reprices
	// all items from the current catalog, so an admin price change shows up
	// immediately. Nothing here is cached or stored.
	GetByUser(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	store CartReadStore
}

func NewCartQueries(store CartReadStore) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) GetByUser(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	rows, err := q.store.ItemRows(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{
		UserID: userID,
		Items:  make([]*CartItemView, 0, len(rows)),
	}

	cartID, err := q.store.CartID(ctx, userID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		// No cart yet: present an empty one, creation stays lazy.
		return view, nil
	}
	view.ID = cartID

	for _, row := range rows {
		total := consultation.PriceCents(row.UnitPriceCents, consultation.Duration(row.DurationMin))
		view.Items = append(view.Items, &CartItemView{
			ID:              row.ID,
			CategoryID:      row.CategoryID,
			CategoryName:    row.CategoryName,
			Date:            row.Date.Format("2006-01-02"),
			Start:           consultation.TimeOfDay(row.StartMinutes).String(),
			DurationMin:     row.DurationMin,
			UnitPriceCents:  row.UnitPriceCents,
			TotalPriceCents: total,
			AddedAt:         row.AddedAt,
		})
		view.TotalCents += total
	}
	return view, nil
}
