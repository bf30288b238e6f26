package commands

import (
	"context"
	"log/slog"

	"legalbook/internal/domain/consultation"
	"legalbook/internal/domain/order"
	"legalbook/internal/infra"
	"legalbook/internal/pkg/errs"
	"legalbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type SettlementCommands interface {
	// HandleWebhook verifies and applies one payment-provider event. The
	// provider delivers at least once, so everything here is safe to re-run:
	// the pending->paid transition is an atomic conditional update and
	// appointment creation is create-if-absent. Unknown or already-resolved
	// orders are acknowledged as no-ops so the provider stops retrying.
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error
}

type settlementCommands struct {
	uow      shared.UnitOfWork
	verifier WebhookVerifier
	logger   *slog.Logger
}

func NewSettlementCommands(uow shared.UnitOfWork, verifier WebhookVerifier, logger *slog.Logger) SettlementCommands {
	return &settlementCommands{
		uow:      uow,
		verifier: verifier,
		logger:   logger,
	}
}

func (s *settlementCommands) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := s.verifier.VerifyEvent(payload, signatureHeader)
	if err != nil {
		return errs.Mark(err, ErrInvalidSignature)
	}

	switch event.Type {
	case EventPaymentSucceeded:
		return s.settleSucceeded(ctx, event)
	case EventPaymentFailed:
		return s.settleFailed(ctx, event)
	default:
		// Not subscribed to anything else; acknowledge and move on.
		s.logger.Debug("ignoring webhook event", "type", event.Type)
		return nil
	}
}

func (s *settlementCommands) settleSucceeded(ctx context.Context, event *WebhookEvent) error {
	orderID, ok := s.parseOrderID(event)
	if !ok {
		return nil
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		transitioned, err := tx.Orders().TransitionStatus(ctx, orderID, order.StatusPending, order.StatusPaid)
		if err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		if !transitioned {
			// Replayed or unknown order: the provider retries whole events,
			// so this must stay a benign no-op.
			s.logger.Info("settlement event for non-pending order ignored",
				"order_id", orderID, "intent_id", event.IntentID)
			return nil
		}

		paidOrder, err := tx.Reads().OrderWithItems(ctx, orderID)
		if err != nil {
			return errs.Mark(err, ErrDatabase)
		}

		for _, item := range paidOrder.Items() {
			if err := s.materializeAppointment(ctx, tx, paidOrder, item); err != nil {
				return err
			}
		}

		// Unconditional: per-item slot conflicts do not keep stale items in
		// the cart.
		if err := tx.Carts().ClearByUserID(ctx, paidOrder.UserID()); err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		return nil
	})
}

// materializeAppointment turns one frozen order item into a real appointment.
// When the slot was grabbed between cart-time validation and settlement the
// payment has already been captured, so instead of failing the webhook a
// reconciliation exception is recorded for manual follow-up.
func (s *settlementCommands) materializeAppointment(ctx context.Context, tx shared.Tx, paidOrder *order.Order, item *order.Item) error {
	category, err := tx.Reads().CategoryByID(ctx, item.CategoryID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return s.recordException(ctx, tx, item, "category no longer exists")
		}
		return errs.Mark(err, ErrDatabase)
	}

	appointment := consultation.NewAppointment(paidOrder.UserID(), category.ToDomain(), item.Slot(), true)
	created, err := tx.Appointments().InsertIfSlotFree(ctx, appointment)
	if err != nil {
		return errs.Mark(err, ErrDatabase)
	}
	if !created {
		return s.recordException(ctx, tx, item, "slot taken before settlement")
	}

	if err := tx.Orders().LinkAppointment(ctx, item.ID(), appointment.ID()); err != nil {
		return errs.Mark(err, ErrDatabase)
	}
	return nil
}

func (s *settlementCommands) recordException(ctx context.Context, tx shared.Tx, item *order.Item, reason string) error {
	ex := order.NewReconciliationException(item, reason)
	if err := tx.Reconciliations().Record(ctx, ex); err != nil {
		return errs.Mark(err, ErrDatabase)
	}
	s.logger.Error("settlement reconciliation exception",
		"order_id", item.OrderID(),
		"order_item_id", item.ID(),
		"category_id", item.CategoryID(),
		"date", item.Slot().Date().Format("2006-01-02"),
		"start", item.Slot().Start().String(),
		"reason", reason)
	return nil
}

func (s *settlementCommands) settleFailed(ctx context.Context, event *WebhookEvent) error {
	orderID, ok := s.parseOrderID(event)
	if !ok {
		return nil
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		transitioned, err := tx.Orders().TransitionStatus(ctx, orderID, order.StatusPending, order.StatusFailed)
		if err != nil {
			return errs.Mark(err, ErrDatabase)
		}
		if !transitioned {
			s.logger.Info("failure event for non-pending order ignored",
				"order_id", orderID, "intent_id", event.IntentID)
		}
		// The cart stays intact so the user can retry checkout.
		return nil
	})
}

// parseOrderID extracts the correlated order id from event metadata. Missing
// or malformed ids are treated like an unknown order: logged, acknowledged,
// not retried.
func (s *settlementCommands) parseOrderID(event *WebhookEvent) (uuid.UUID, bool) {
	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		s.logger.Warn("webhook event without usable order id",
			"type", event.Type, "intent_id", event.IntentID, "order_id", event.OrderID)
		return uuid.Nil, false
	}
	return orderID, true
}
