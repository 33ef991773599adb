package service

import (
	"context"

	"kinconnect/internal/domain/entity"
)

// PaymentGateway captures card payments.
type PaymentGateway interface {
	// Capture charges amountCents. A declined card is ErrPaymentDeclined.
	Capture(ctx context.Context, amountCents int64, card entity.PaymentDetails) (*entity.PaymentReceipt, error)
}

// IntentRequest asks the payment vendor for a client-confirmed payment.
type IntentRequest struct {
	AmountCents int64
	Currency    string
	Metadata    map[string]string
}

// PaymentIntent is a created intent handed back to the client.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentEvent is a verified webhook event.
type PaymentEvent struct {
	ID       string
	Type     string
	IntentID string
	Metadata map[string]string
}

// Event types acted upon.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
	EventCheckoutComplete = "checkout.session.completed"
)

// PaymentIntentService creates payment intents and verifies their webhooks.
type PaymentIntentService interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*PaymentIntent, error)

	// ParseWebhook verifies the signature header and decodes the event.
	ParseWebhook(payload []byte, signatureHeader string) (*PaymentEvent, error)
}
