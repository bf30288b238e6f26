package repository

import (
	"context"

	"legalbook/internal/domain/consultation"
	"legalbook/internal/infra"
	"legalbook/internal/infra/db"
	"legalbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AppointmentRepository struct {
	db db.DBTX
}

func NewAppointmentRepository(tx db.DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: tx}
}

const insertAppointmentSQL = `
INSERT INTO appointments (id, user_id, category_id, date, start_time, duration_minutes, price_cents, paid)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (r *AppointmentRepository) Insert(ctx context.Context, apt *consultation.Appointment) error {
	slot := apt.Slot()
	_, err := r.db.Exec(ctx, insertAppointmentSQL,
		pgconv.UUIDToPgtype(apt.ID()),
		pgconv.UUIDToPgtype(apt.UserID()),
		pgconv.UUIDToPgtype(apt.CategoryID()),
		pgconv.DateToPgtype(slot.Date()),
		pgconv.TimeOfDayToPgtype(slot.Start()),
		int32(slot.Duration()),
		apt.TotalPriceCents(),
		apt.IsPaid(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("slot already booked", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert appointment", err)
	}
	return nil
}

const insertAppointmentIfFreeSQL = `
INSERT INTO appointments (id, user_id, category_id, date, start_time, duration_minutes, price_cents, paid)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (category_id, date, start_time) DO NOTHING
`

// InsertIfSlotFree reports whether the row was created. A conflicting
// booking makes this a no-op instead of an error.
func (r *AppointmentRepository) InsertIfSlotFree(ctx context.Context, apt *consultation.Appointment) (bool, error) {
	slot := apt.Slot()
	tag, err := r.db.Exec(ctx, insertAppointmentIfFreeSQL,
		pgconv.UUIDToPgtype(apt.ID()),
		pgconv.UUIDToPgtype(apt.UserID()),
		pgconv.UUIDToPgtype(apt.CategoryID()),
		pgconv.DateToPgtype(slot.Date()),
		pgconv.TimeOfDayToPgtype(slot.Start()),
		int32(slot.Duration()),
		apt.TotalPriceCents(),
		apt.IsPaid(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert appointment", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
