package payment

import (
	"context"
	"encoding/json"

	"legalbook/internal/pkg/config"
	"legalbook/internal/pkg/errs"
	"legalbook/internal/usecase/commands"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeGateway charges through Stripe PaymentIntents and verifies incoming
// webhook signatures. One order maps to one intent; the order id rides in
// the intent metadata and comes back on every webhook event.
type StripeGateway struct {
	webhookSecret string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	stripe.Key = cfg.SecretKey
	return &StripeGateway{webhookSecret: cfg.WebhookSecret}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency string, meta commands.PaymentMetadata) (*commands.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("order_id", meta.OrderID.String())
	params.AddMetadata("user_id", meta.UserID.String())

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create payment intent")
	}
	return &commands.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// VerifyEvent authenticates the raw webhook body against the signing secret
// and extracts only the fields settlement cares about.
func (g *StripeGateway) VerifyEvent(payload []byte, signatureHeader string) (*commands.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, g.webhookSecret)
	if err != nil {
		return nil, errs.Wrap(err, "webhook signature verification failed")
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return nil, errs.Wrap(err, "failed to decode webhook payload")
	}

	return &commands.WebhookEvent{
		Type:     string(event.Type),
		IntentID: intent.ID,
		OrderID:  intent.Metadata["order_id"],
	}, nil
}
