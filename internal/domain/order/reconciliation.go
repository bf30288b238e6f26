package order

import (
	"time"

	"legalbook/internal/domain/consultation"

	"github.com/google/uuid"
)

// ReconciliationException records the one case where money was captured but
// no appointment could be created: the slot was taken between cart-time
// validation and settlement. The webhook still acknowledges success; this row
// is the durable trail for manual operator follow-up and must never be
// dropped silently.
type ReconciliationException struct {
	id          uuid.UUID
	orderID     uuid.UUID
	orderItemID uuid.UUID
	categoryID  uuid.UUID
	slot        consultation.Slot
	reason      string
	createdAt   time.Time
}

func NewReconciliationException(item *Item, reason string) *ReconciliationException {
	return &ReconciliationException{
		id:          uuid.New(),
		orderID:     item.OrderID(),
		orderItemID: item.ID(),
		categoryID:  item.CategoryID(),
		slot:        item.Slot(),
		reason:      reason,
	}
}

func ReconstructReconciliationException(
	id, orderID, orderItemID, categoryID uuid.UUID,
	slot consultation.Slot,
	reason string,
	createdAt time.Time,
) *ReconciliationException {
	return &ReconciliationException{
		id:          id,
		orderID:     orderID,
		orderItemID: orderItemID,
		categoryID:  categoryID,
		slot:        slot,
		reason:      reason,
		createdAt:   createdAt,
	}
}

func (e *ReconciliationException) ID() uuid.UUID           { return e.id }
func (e *ReconciliationException) OrderID() uuid.UUID      { return e.orderID }
func (e *ReconciliationException) OrderItemID() uuid.UUID  { return e.orderItemID }
func (e *ReconciliationException) CategoryID() uuid.UUID   { return e.categoryID }
func (e *ReconciliationException) Slot() consultation.Slot { return e.slot }
func (e *ReconciliationException) Reason() string          { return e.reason }
func (e *ReconciliationException) CreatedAt() time.Time    { return e.createdAt }
