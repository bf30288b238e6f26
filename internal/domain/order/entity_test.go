//go:build unit

package order_test

import (
	"testing"
	"time"

	"legalbook/internal/domain/consultation"
	"legalbook/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T) consultation.Slot {
	t.Helper()
	today := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	slot, err := consultation.NewSlot(
		time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		consultation.NewTimeOfDay(10, 0),
		consultation.DurationHour,
		today,
	)
	require.NoError(t, err)
	return slot
}

func mustCategory(t *testing.T, name consultation.CategoryName, unitCents int64) *consultation.Category {
	t.Helper()
	cat, err := consultation.NewCategory(name, unitCents, "")
	require.NoError(t, err)
	return cat
}

func TestNewOrder(t *testing.T) {
	userID := uuid.New()
	slot := mustSlot(t)

	t.Run("snapshots items and sums the total", func(t *testing.T) {
		immigration := mustCategory(t, consultation.CategoryImmigration, 4500)
		contracts := mustCategory(t, consultation.CategoryContracts, 7500)

		items := []*order.Item{
			order.NewItem(immigration, slot),
			order.NewItem(contracts, slot),
		}
		o, err := order.NewOrder(userID, items)
		require.NoError(t, err)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, int64(18000+30000), o.TotalAmountCents())
		for _, it := range o.Items() {
			assert.Equal(t, o.ID(), it.OrderID())
			assert.Nil(t, it.AppointmentID())
		}
		assert.Equal(t, consultation.CategoryImmigration, o.Items()[0].CategoryName())
		assert.Equal(t, int64(4500), o.Items()[0].UnitPriceCents())
	})

	t.Run("empty order rejected", func(t *testing.T) {
		_, err := order.NewOrder(userID, nil)
		require.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("zero total rejected", func(t *testing.T) {
		// A zero unit price cannot pass NewCategory, so reconstruct one to
		// verify the order-level guard holds on its own.
		free := consultation.ReconstructCategory(uuid.New(), consultation.CategoryFamilyLaw, 0, "")
		_, err := order.NewOrder(userID, []*order.Item{order.NewItem(free, slot)})
		require.ErrorIs(t, err, order.ErrInvalidTotal)
	})

	t.Run("snapshot is immune to later category price changes", func(t *testing.T) {
		cat := mustCategory(t, consultation.CategoryImmigration, 4500)
		o, err := order.NewOrder(userID, []*order.Item{order.NewItem(cat, slot)})
		require.NoError(t, err)

		// Admin raises the price after checkout; the frozen order is untouched.
		repriced := consultation.ReconstructCategory(cat.ID(), cat.Name(), 9900, cat.Description())
		assert.Equal(t, int64(39600), repriced.PriceFor(slot.Duration()))
		assert.Equal(t, int64(18000), o.TotalAmountCents())
		assert.Equal(t, int64(18000), o.Items()[0].TotalPriceCents())
		assert.Equal(t, int64(4500), o.Items()[0].UnitPriceCents())
	})
}

func TestOrderStatusMachine(t *testing.T) {
	userID := uuid.New()
	slot := mustSlot(t)
	cat := mustCategory(t, consultation.CategoryLaborLaw, 6000)

	newPending := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(userID, []*order.Item{order.NewItem(cat, slot)})
		require.NoError(t, err)
		return o
	}

	t.Run("pending to paid", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.MarkPaid())
		assert.Equal(t, order.StatusPaid, o.Status())
	})

	t.Run("pending to failed", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.MarkFailed())
		assert.Equal(t, order.StatusFailed, o.Status())
	})

	t.Run("pending to cancelled", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.MarkCancelled())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("no transition out of a terminal state", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.MarkPaid())
		require.ErrorIs(t, o.MarkFailed(), order.ErrAlreadyResolved)
		require.ErrorIs(t, o.MarkPaid(), order.ErrAlreadyResolved)
		assert.Equal(t, order.StatusPaid, o.Status())

		failed := newPending(t)
		require.NoError(t, failed.MarkFailed())
		require.ErrorIs(t, failed.MarkPaid(), order.ErrAlreadyResolved)
	})

	t.Run("terminal statuses", func(t *testing.T) {
		assert.False(t, order.StatusPending.IsTerminal())
		assert.True(t, order.StatusPaid.IsTerminal())
		assert.True(t, order.StatusFailed.IsTerminal())
		assert.True(t, order.StatusCancelled.IsTerminal())
	})
}
