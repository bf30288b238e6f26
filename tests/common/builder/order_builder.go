//go:build unit

package builder

import (
	"time"

	"legalbook/internal/domain/cart"
	"legalbook/internal/domain/order"
	"legalbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartItemBuilder struct {
	ID         uuid.UUID
	CartID     uuid.UUID
	CategoryID uuid.UUID
	Slot       *SlotBuilder
	AddedAt    time.Time
}

func NewCartItemBuilder() *CartItemBuilder {
	return &CartItemBuilder{
		ID:         uuid.New(),
		CartID:     uuid.New(),
		CategoryID: uuid.New(),
		Slot:       NewSlotBuilder(),
		AddedAt:    time.Now(),
	}
}

func (b *CartItemBuilder) With(mutate func(*CartItemBuilder)) *CartItemBuilder {
	mutate(b)
	return b
}

func (b *CartItemBuilder) BuildDomain() *cart.Item {
	return cart.ReconstructItem(b.ID, b.CartID, b.CategoryID, b.Slot.Build(), b.AddedAt)
}

type OrderBuilder struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Status   order.Status
	IntentID string
	Category *CategoryBuilder
	Slots    []*SlotBuilder
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Status:   order.StatusPending,
		IntentID: "pi_test_123",
		Category: NewCategoryBuilder(),
		Slots:    []*SlotBuilder{NewSlotBuilder()},
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// BuildDomain reconstructs a persisted-looking order whose items carry
// snapshot prices from the builder's category.
func (b *OrderBuilder) BuildDomain() *order.Order {
	category := b.Category.BuildDomain()
	items := make([]*order.Item, len(b.Slots))
	var total int64
	for i, slot := range b.Slots {
		built := slot.Build()
		unit := category.PricePer15MinCents()
		lineTotal := category.PriceFor(built.Duration())
		items[i] = order.ReconstructItem(
			uuid.New(), b.ID, category.ID(), category.Name(), built, unit, lineTotal, nil,
		)
		total += lineTotal
	}
	now := time.Now()
	return order.ReconstructOrder(b.ID, b.UserID, total, b.Status, b.IntentID, items, now, now)
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	domainOrder := b.BuildDomain()
	items := make([]*queries.OrderItemView, len(domainOrder.Items()))
	for i, item := range domainOrder.Items() {
		slot := item.Slot()
		items[i] = &queries.OrderItemView{
			ID:              item.ID(),
			CategoryID:      item.CategoryID(),
			CategoryName:    string(item.CategoryName()),
			Date:            slot.Date().Format("2006-01-02"),
			Start:           slot.Start().String(),
			DurationMin:     slot.Duration().Minutes(),
			UnitPriceCents:  item.UnitPriceCents(),
			TotalPriceCents: item.TotalPriceCents(),
		}
	}
	return &queries.OrderView{
		ID:               domainOrder.ID(),
		UserID:           domainOrder.UserID(),
		TotalAmountCents: domainOrder.TotalAmountCents(),
		Status:           string(domainOrder.Status()),
		PaymentIntentID:  domainOrder.PaymentIntentID(),
		Items:            items,
		CreatedAt:        domainOrder.CreatedAt(),
		UpdatedAt:        domainOrder.UpdatedAt(),
	}
}
