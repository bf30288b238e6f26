package repository

import (
	"context"

	"legalbook/internal/domain/order"
	"legalbook/internal/infra"
	"legalbook/internal/infra/db"
	"legalbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(tx db.DBTX) *OrderRepository {
	return &OrderRepository{db: tx}
}

const insertOrderSQL = `
INSERT INTO orders (id, user_id, total_amount_cents, status, payment_intent_id)
VALUES ($1, $2, $3, $4, $5)
`

const insertOrderItemSQL = `
INSERT INTO order_items (id, order_id, category_id, category_name, date, start_time, duration_minutes, unit_price_cents, total_price_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (r *OrderRepository) Insert(ctx context.Context, o *order.Order) error {
	_, err := r.db.Exec(ctx, insertOrderSQL,
		pgconv.UUIDToPgtype(o.ID()),
		pgconv.UUIDToPgtype(o.UserID()),
		o.TotalAmountCents(),
		string(o.Status()),
		pgconv.StringToPgtype(o.PaymentIntentID()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert order", err)
	}
	for _, item := range o.Items() {
		slot := item.Slot()
		_, err := r.db.Exec(ctx, insertOrderItemSQL,
			pgconv.UUIDToPgtype(item.ID()),
			pgconv.UUIDToPgtype(item.OrderID()),
			pgconv.UUIDToPgtype(item.CategoryID()),
			string(item.CategoryName()),
			pgconv.DateToPgtype(slot.Date()),
			pgconv.TimeOfDayToPgtype(slot.Start()),
			int32(slot.Duration()),
			item.UnitPriceCents(),
			item.TotalPriceCents(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert order item", err)
		}
	}
	return nil
}

func (r *OrderRepository) SetPaymentIntent(ctx context.Context, orderID uuid.UUID, intentID string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET payment_intent_id = $2, updated_at = now() WHERE id = $1`,
		pgconv.UUIDToPgtype(orderID),
		pgconv.StringToPgtype(intentID),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set payment intent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

// TransitionStatus is the settlement idempotency gate: the conditional WHERE
// means a replayed or already-resolved order simply matches zero rows.
func (r *OrderRepository) TransitionStatus(ctx context.Context, orderID uuid.UUID, from, to order.Status) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		pgconv.UUIDToPgtype(orderID),
		string(from),
		string(to),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition order status", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *OrderRepository) LinkAppointment(ctx context.Context, orderItemID, appointmentID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE order_items SET appointment_id = $2 WHERE id = $1`,
		pgconv.UUIDToPgtype(orderItemID),
		pgconv.UUIDToPgtype(appointmentID),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to link appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order item not found", nil, infra.KindNotFound)
	}
	return nil
}
