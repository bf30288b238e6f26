//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"legalbook/internal/infra"
	"legalbook/internal/usecase/queries"
	"legalbook/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCartReadStore struct {
	rows   []*queries.CartItemRow
	cartID uuid.UUID
}

func (s *stubCartReadStore) ItemRows(context.Context, uuid.UUID) ([]*queries.CartItemRow, error) {
	return s.rows, nil
}

func (s *stubCartReadStore) CartID(context.Context, uuid.UUID) (uuid.UUID, error) {
	if s.cartID == uuid.Nil {
		return uuid.Nil, infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)
	}
	return s.cartID, nil
}

func TestCartGetByUser(t *testing.T) {
	userID := uuid.New()

	t.Run("totals are recomputed from current unit prices", func(t *testing.T) {
		cartID := uuid.New()
		store := &stubCartReadStore{
			cartID: cartID,
			rows: []*queries.CartItemRow{
				{
					ID:             uuid.New(),
					CartID:         cartID,
					CategoryID:     uuid.New(),
					CategoryName:   "Family Law",
					UnitPriceCents: 4500,
					Date:           builder.Tomorrow(),
					StartMinutes:   10 * 60,
					DurationMin:    60,
					AddedAt:        time.Now(),
				},
				{
					ID:             uuid.New(),
					CartID:         cartID,
					CategoryID:     uuid.New(),
					CategoryName:   "Commercial Law",
					UnitPriceCents: 9000,
					Date:           builder.Tomorrow(),
					StartMinutes:   14 * 60,
					DurationMin:    30,
					AddedAt:        time.Now(),
				},
			},
		}

		view, err := queries.NewCartQueries(store).GetByUser(context.Background(), userID)
		require.NoError(t, err)

		require.Len(t, view.Items, 2)
		want := &queries.CartItemView{
			ID:              store.rows[0].ID,
			CategoryID:      store.rows[0].CategoryID,
			CategoryName:    "Family Law",
			Date:            builder.Tomorrow().Format("2006-01-02"),
			Start:           "10:00",
			DurationMin:     60,
			UnitPriceCents:  4500,
			TotalPriceCents: 4500 * 4,
		}
		if diff := cmp.Diff(want, view.Items[0], cmpopts.IgnoreFields(queries.CartItemView{}, "AddedAt")); diff != "" {
			t.Errorf("item view mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, int64(9000*2), view.Items[1].TotalPriceCents)
		assert.Equal(t, int64(4500*4+9000*2), view.TotalCents)
		assert.Equal(t, cartID, view.ID)
	})

	t.Run("missing cart reads as an empty view", func(t *testing.T) {
		view, err := queries.NewCartQueries(&stubCartReadStore{}).GetByUser(context.Background(), userID)
		require.NoError(t, err)

		assert.Equal(t, uuid.Nil, view.ID)
		assert.Empty(t, view.Items)
		assert.Zero(t, view.TotalCents)
	})
}
