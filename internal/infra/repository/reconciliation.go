package repository

import (
	"context"

	"legalbook/internal/domain/order"
	"legalbook/internal/infra"
	"legalbook/internal/infra/db"
	"legalbook/internal/pkg/pgconv"
)

type ReconciliationRepository struct {
	db db.DBTX
}

func NewReconciliationRepository(tx db.DBTX) *ReconciliationRepository {
	return &ReconciliationRepository{db: tx}
}

const recordExceptionSQL = `
INSERT INTO reconciliation_exceptions (id, order_id, order_item_id, category_id, date, start_time, duration_minutes, reason)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (order_item_id) DO NOTHING
`

// Record keeps one exception per order item so webhook retries do not pile
// up duplicates for the same unfulfillable booking.
func (r *ReconciliationRepository) Record(ctx context.Context, ex *order.ReconciliationException) error {
	slot := ex.Slot()
	_, err := r.db.Exec(ctx, recordExceptionSQL,
		pgconv.UUIDToPgtype(ex.ID()),
		pgconv.UUIDToPgtype(ex.OrderID()),
		pgconv.UUIDToPgtype(ex.OrderItemID()),
		pgconv.UUIDToPgtype(ex.CategoryID()),
		pgconv.DateToPgtype(slot.Date()),
		pgconv.TimeOfDayToPgtype(slot.Start()),
		int32(slot.Duration()),
		ex.Reason(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record reconciliation exception", err)
	}
	return nil
}
