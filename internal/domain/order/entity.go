package order

import (
	"errors"
	"time"

	"legalbook/internal/domain/consultation"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidTotal      = errors.New("order total must be positive")
	ErrAlreadyResolved   = errors.New("order has already left the pending state")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// Order freezes a cart at checkout time: the total and per-item prices are
// snapshots and survive later catalog price changes or cart edits.
type Order struct {
	id               uuid.UUID
	userID           uuid.UUID
	totalAmountCents int64
	status           Status
	paymentIntentID  string
	items            []*Item
	createdAt        time.Time
	updatedAt        time.Time
}

// NewOrder snapshots the supplied cart lines into a pending order. Each line
// carries its own frozen unit price; the order total must equal their sum.
func NewOrder(userID uuid.UUID, items []*Item) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	var total int64
	for _, it := range items {
		total += it.totalPriceCents
	}
	if total <= 0 {
		return nil, ErrInvalidTotal
	}
	o := &Order{
		id:               uuid.New(),
		userID:           userID,
		totalAmountCents: total,
		status:           StatusPending,
		items:            items,
	}
	for _, it := range items {
		it.orderID = o.id
	}
	return o, nil
}

func ReconstructOrder(
	id, userID uuid.UUID,
	totalAmountCents int64,
	status Status,
	paymentIntentID string,
	items []*Item,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:               id,
		userID:           userID,
		totalAmountCents: totalAmountCents,
		status:           status,
		paymentIntentID:  paymentIntentID,
		items:            items,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) UserID() uuid.UUID       { return o.userID }
func (o *Order) TotalAmountCents() int64 { return o.totalAmountCents }
func (o *Order) Status() Status          { return o.status }
func (o *Order) PaymentIntentID() string { return o.paymentIntentID }
func (o *Order) Items() []*Item          { return o.items }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) UpdatedAt() time.Time    { return o.updatedAt }

func (o *Order) AttachPaymentIntent(intentID string) {
	o.paymentIntentID = intentID
}

// MarkPaid / MarkFailed / MarkCancelled implement the one-way state machine.
// The storage layer performs the same check atomically with a conditional
// update; the entity-level guard exists for in-process callers.
func (o *Order) MarkPaid() error      { return o.transition(StatusPaid) }
func (o *Order) MarkFailed() error    { return o.transition(StatusFailed) }
func (o *Order) MarkCancelled() error { return o.transition(StatusCancelled) }

func (o *Order) transition(to Status) error {
	if o.status != StatusPending {
		return ErrAlreadyResolved
	}
	if !to.IsValid() || to == StatusPending {
		return ErrInvalidTransition
	}
	o.status = to
	return nil
}

// Item is the frozen snapshot of one cart line taken at checkout. The
// category name is denormalized so order history survives catalog edits, and
// appointmentID is back-filled by settlement once the real appointment
// exists.
type Item struct {
	id              uuid.UUID
	orderID         uuid.UUID
	categoryID      uuid.UUID
	categoryName    consultation.CategoryName
	slot            consultation.Slot
	unitPriceCents  int64
	totalPriceCents int64
	appointmentID   *uuid.UUID
}

// NewItem snapshots a cart line against the category's current price. The
// total is recomputed here through the pricing engine, independently of the
// order total.
func NewItem(category *consultation.Category, slot consultation.Slot) *Item {
	return &Item{
		id:              uuid.New(),
		categoryID:      category.ID(),
		categoryName:    category.Name(),
		slot:            slot,
		unitPriceCents:  category.PricePer15MinCents(),
		totalPriceCents: category.PriceFor(slot.Duration()),
	}
}

func ReconstructItem(
	id, orderID, categoryID uuid.UUID,
	categoryName consultation.CategoryName,
	slot consultation.Slot,
	unitPriceCents, totalPriceCents int64,
	appointmentID *uuid.UUID,
) *Item {
	return &Item{
		id:              id,
		orderID:         orderID,
		categoryID:      categoryID,
		categoryName:    categoryName,
		slot:            slot,
		unitPriceCents:  unitPriceCents,
		totalPriceCents: totalPriceCents,
		appointmentID:   appointmentID,
	}
}

func (i *Item) ID() uuid.UUID                           { return i.id }
func (i *Item) OrderID() uuid.UUID                      { return i.orderID }
func (i *Item) CategoryID() uuid.UUID                   { return i.categoryID }
func (i *Item) CategoryName() consultation.CategoryName { return i.categoryName }
func (i *Item) Slot() consultation.Slot                 { return i.slot }
func (i *Item) UnitPriceCents() int64                   { return i.unitPriceCents }
func (i *Item) TotalPriceCents() int64                  { return i.totalPriceCents }
func (i *Item) AppointmentID() *uuid.UUID               { return i.appointmentID }

func (i *Item) LinkAppointment(appointmentID uuid.UUID) {
	id := appointmentID
	i.appointmentID = &id
}
