package commands

import (
	"context"
	"time"

	"legalbook/internal/domain/cart"
	"legalbook/internal/domain/consultation"
	"legalbook/internal/infra"
	"legalbook/internal/pkg/clock"
	"legalbook/internal/pkg/errs"
	"legalbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddCartItemInput struct {
	CategoryID uuid.UUID
	Slot       SlotInput
}

// UpdateCartItemInput is a partial update: nil fields keep the item's current
// value. The merged result is re-validated as a whole.
type UpdateCartItemInput struct {
	CategoryID *uuid.UUID
	Date       *time.Time
	Start      *consultation.TimeOfDay
	Duration   *consultation.Duration
}

type CartCommands interface {
	AddItem(ctx context.Context, userID uuid.UUID, input AddCartItemInput) (uuid.UUID, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, input UpdateCartItemInput) error
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartCommands struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCartCommands(uow shared.UnitOfWork, clock clock.Clock) CartCommands {
	return &cartCommands{uow: uow, clock: clock}
}

func (c *cartCommands) AddItem(ctx context.Context, userID uuid.UUID, input AddCartItemInput) (uuid.UUID, error) {
	slot, err := consultation.NewSlot(input.Slot.Date, input.Slot.Start, input.Slot.Duration, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	var itemID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, catErr := tx.Reads().CategoryByID(ctx, input.CategoryID); catErr != nil {
			if infra.IsKind(catErr, infra.KindNotFound) {
				return ErrCategoryNotFound
			}
			return errs.Mark(catErr, ErrDatabase)
		}

		if guardErr := c.guardPaidSlot(ctx, tx, input.CategoryID, slot); guardErr != nil {
			return guardErr
		}

		userCart, cartErr := tx.Carts().GetOrCreate(ctx, userID)
		if cartErr != nil {
			return errs.Mark(cartErr, ErrDatabase)
		}

		item := cart.NewItem(userCart.ID(), input.CategoryID, slot, c.clock.Now())
		if insertErr := tx.Carts().InsertItem(ctx, item); insertErr != nil {
			return errs.Mark(insertErr, ErrDatabase)
		}
		itemID = item.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return itemID, nil
}

func (c *cartCommands) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, input UpdateCartItemInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := c.ownedItem(ctx, tx, userID, itemID)
		if err != nil {
			return err
		}

		categoryID := item.CategoryID()
		if input.CategoryID != nil {
			categoryID = *input.CategoryID
			if _, catErr := tx.Reads().CategoryByID(ctx, categoryID); catErr != nil {
				if infra.IsKind(catErr, infra.KindNotFound) {
					return ErrCategoryNotFound
				}
				return errs.Mark(catErr, ErrDatabase)
			}
		}

		date := item.Slot().Date()
		if input.Date != nil {
			date = *input.Date
		}
		start := item.Slot().Start()
		if input.Start != nil {
			start = *input.Start
		}
		duration := item.Slot().Duration()
		if input.Duration != nil {
			duration = *input.Duration
		}

		slot, slotErr := consultation.NewSlot(date, start, duration, c.clock.Now())
		if slotErr != nil {
			return errs.Mark(slotErr, ErrValidation)
		}

		if guardErr := c.guardPaidSlot(ctx, tx, categoryID, slot); guardErr != nil {
			return guardErr
		}

		item.Reschedule(categoryID, slot)
		if updErr := tx.Carts().UpdateItem(ctx, item); updErr != nil {
			return errs.Mark(updErr, ErrDatabase)
		}
		return nil
	})
}

func (c *cartCommands) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := c.ownedItem(ctx, tx, userID, itemID); err != nil {
			return err
		}
		if err := tx.Carts().DeleteItem(ctx, itemID); err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		return nil
	})
}

func (c *cartCommands) Clear(ctx context.Context, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Carts().ClearByUserID(ctx, userID); err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		return nil
	})
}

// guardPaidSlot rejects slots already held by a paid appointment. Unpaid
// appointments and other carts do not block: the cart reserves nothing, and
// losers of the race are handled at settlement.
func (c *cartCommands) guardPaidSlot(ctx context.Context, tx shared.Tx, categoryID uuid.UUID, slot consultation.Slot) error {
	taken, err := tx.Reads().PaidSlotTaken(ctx, categoryID, slot)
	if err != nil {
		return errs.Mark(err, ErrDatabase)
	}
	if taken {
		return errs.Mark(cart.ErrSlotAlreadyPaid, ErrSlotAlreadyPaid)
	}
	return nil
}

func (c *cartCommands) ownedItem(ctx context.Context, tx shared.Tx, userID, itemID uuid.UUID) (*cart.Item, error) {
	item, err := tx.Reads().CartItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabase)
	}
	ownerID, err := tx.Reads().CartOwner(ctx, item.CartID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabase)
	}
	if ownerID != userID {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}
