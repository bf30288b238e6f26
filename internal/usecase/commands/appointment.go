package commands

import (
	"context"
	"time"

	"legalbook/internal/domain/consultation"
	"legalbook/internal/infra"
	"legalbook/internal/pkg/clock"
	"legalbook/internal/pkg/errs"
	"legalbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// SlotInput carries the caller-supplied schedule fields. Prices are never
// part of any input: they are always recomputed server-side.
type SlotInput struct {
	Date     time.Time
	Start    consultation.TimeOfDay
	Duration consultation.Duration
}

type BookAppointmentInput struct {
	CategoryID uuid.UUID
	Slot       SlotInput
}

type AppointmentCommands interface {
	// Book reserves a slot directly, without going through the cart. The
	// appointment starts unpaid; the unique index closes the double-booking
	// race.
	Book(ctx context.Context, userID uuid.UUID, input BookAppointmentInput) (uuid.UUID, error)
	// Cancel deletes an unpaid appointment owned by the caller.
	Cancel(ctx context.Context, userID, appointmentID uuid.UUID) error
}

type appointmentCommands struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAppointmentCommands(uow shared.UnitOfWork, clock clock.Clock) AppointmentCommands {
	return &appointmentCommands{uow: uow, clock: clock}
}

func (c *appointmentCommands) Book(ctx context.Context, userID uuid.UUID, input BookAppointmentInput) (uuid.UUID, error) {
	slot, err := consultation.NewSlot(input.Slot.Date, input.Slot.Start, input.Slot.Duration, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	category, err := c.uow.Reads().CategoryByID(ctx, input.CategoryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrCategoryNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabase)
	}

	appointment := consultation.NewAppointment(userID, category.ToDomain(), slot, false)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if insertErr := tx.Appointments().Insert(ctx, appointment); insertErr != nil {
			if infra.IsKind(insertErr, infra.KindDuplicateKey) {
				return ErrSlotConflict
			}
			return errs.Mark(insertErr, ErrDatabase)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return appointment.ID(), nil
}

func (c *appointmentCommands) Cancel(ctx context.Context, userID, appointmentID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appointment, err := tx.Reads().AppointmentByID(ctx, appointmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return errs.Mark(err, ErrDatabase)
		}
		if appointment.UserID() != userID {
			return ErrForbidden
		}
		if err := appointment.EnsureCancellable(); err != nil {
			return errs.Mark(err, ErrPaidImmutable)
		}
		if err := tx.Appointments().Delete(ctx, appointmentID); err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		return nil
	})
}
