package commands

import (
	"context"
	"errors"

	"legalbook/internal/domain/order"
	"legalbook/internal/infra"
	"legalbook/internal/pkg/errs"
	"legalbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutResult struct {
	OrderID          uuid.UUID
	TotalAmountCents int64
	ClientSecret     string
}

type CheckoutCommands interface {
	// Checkout snapshots the caller's cart into a pending order with frozen
	// prices and requests a payment intent for the total. The cart itself is
	// left untouched: it is only cleared after confirmed settlement, so an
	// abandoned payment leaves it recoverable.
	Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutResult, error)
}

type checkoutCommands struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	currency string
}

func NewCheckoutCommands(uow shared.UnitOfWork, gateway PaymentGateway, currency string) CheckoutCommands {
	return &checkoutCommands{
		uow:      uow,
		gateway:  gateway,
		currency: currency,
	}
}

func (c *checkoutCommands) Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutResult, error) {
	var result *CheckoutResult

	// The provider call happens inside the transaction on purpose: a provider
	// failure rolls the whole order back, leaving no orphan pending rows. The
	// call is a single bounded request (see the gateway's client timeout).
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Reads().CartItemsByUser(ctx, userID)
		if err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		// Freeze each line against the category's current unit price. The
		// snapshot, not the cart, is authoritative from here on.
		orderItems := make([]*order.Item, 0, len(items))
		for _, item := range items {
			category, catErr := tx.Reads().CategoryByID(ctx, item.CategoryID())
			if catErr != nil {
				if infra.IsKind(catErr, infra.KindNotFound) {
					return ErrCategoryNotFound
				}
				return errs.Mark(catErr, ErrDatabase)
			}
			orderItems = append(orderItems, order.NewItem(category.ToDomain(), item.Slot()))
		}

		pendingOrder, err := order.NewOrder(userID, orderItems)
		if err != nil {
			if errors.Is(err, order.ErrInvalidTotal) {
				return errs.Mark(err, ErrInvalidTotal)
			}
			return errs.Mark(err, ErrEmptyCart)
		}

		if err := tx.Orders().Insert(ctx, pendingOrder); err != nil {
			return errs.Mark(err, ErrDatabase)
		}

		intent, err := c.gateway.CreateIntent(ctx, pendingOrder.TotalAmountCents(), c.currency, PaymentMetadata{
			OrderID: pendingOrder.ID(),
			UserID:  userID,
		})
		if err != nil {
			return errs.Mark(err, ErrUpstreamPayment)
		}

		if err := tx.Orders().SetPaymentIntent(ctx, pendingOrder.ID(), intent.ID); err != nil {
			return errs.Mark(err, ErrDatabase)
		}

		result = &CheckoutResult{
			OrderID:          pendingOrder.ID(),
			TotalAmountCents: pendingOrder.TotalAmountCents(),
			ClientSecret:     intent.ClientSecret,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
