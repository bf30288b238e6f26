package commands

import (
	"context"

	"github.com/google/uuid"
)

// PaymentIntent is the provider-side charge handle: the intent id correlates
// webhook events back to the order, the client secret goes to the frontend
// for card confirmation.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

type PaymentMetadata struct {
	OrderID uuid.UUID
	UserID  uuid.UUID
}

// PaymentGateway is the outbound payment-provider boundary.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, meta PaymentMetadata) (*PaymentIntent, error)
}

// Webhook event types of interest from the payment provider.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// WebhookEvent is a signature-verified provider event. OrderID is the raw
// metadata value; the reconciler parses and treats garbage as an unknown
// order.
type WebhookEvent struct {
	Type     string
	IntentID string
	OrderID  string
}

// WebhookVerifier checks the event's cryptographic signature against the
// pre-shared webhook secret before any field is trusted.
type WebhookVerifier interface {
	VerifyEvent(payload []byte, signatureHeader string) (*WebhookEvent, error)
}
