package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"kinconnect/config"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/service"
	"kinconnect/internal/errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const stripeVendor = "stripe"

// stripeService implements the service.PaymentIntentService interface.
type stripeService struct {
	api           *client.API
	configured    bool
	webhookSecret string
	logger        *slog.Logger
}

// NewStripeService is the constructor for stripeService.
func NewStripeService(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) service.PaymentIntentService {
	return newStripeService(cfg, stripeBackends(httpClient, ""), logger)
}

func stripeBackends(httpClient *http.Client, url string) *stripe.Backends {
	bc := &stripe.BackendConfig{
		HTTPClient:    httpClient,
		LeveledLogger: &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	if url != "" {
		bc.URL = stripe.String(url)
	}

	return &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, bc),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, bc),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, bc),
	}
}

func newStripeService(cfg *config.Config, backends *stripe.Backends, logger *slog.Logger) *stripeService {
	key := strings.TrimSpace(cfg.Stripe.SecretKey)

	return &stripeService{
		api:           client.New(key, backends),
		configured:    key != "",
		webhookSecret: strings.TrimSpace(cfg.Stripe.WebhookSecret),
		logger:        logger.With(slog.String("vendor", stripeVendor)),
	}
}

func (s *stripeService) CreateIntent(ctx context.Context, req service.IntentRequest) (*service.PaymentIntent, error) {
	if !s.configured {
		return nil, domainerrors.ErrPaymentNotConfigured.WithDetails("stripe secret key is not set")
	}
	if req.AmountCents <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Invalid amount")
	}

	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return nil, vendorError(err)
	}

	s.logger.InfoContext(ctx, "payment intent created",
		slog.String("payment_intent_id", intent.ID),
		slog.Int64("amount_cents", req.AmountCents),
	)

	return &service.PaymentIntent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes the intent id and metadata.
func (s *stripeService) ParseWebhook(payload []byte, signatureHeader string) (*service.PaymentEvent, error) {
	if s.webhookSecret == "" {
		return nil, domainerrors.ErrPaymentNotConfigured.WithDetails("Webhook secret not configured")
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, s.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, domainerrors.ErrWebhookSignatureInvalid.WithDetails(err.Error())
	}

	out := &service.PaymentEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data != nil && len(event.Data.Raw) > 0 {
		var object struct {
			ID       string            `json:"id"`
			Metadata map[string]string `json:"metadata"`
		}
		if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("malformed event object")
		}
		out.IntentID = object.ID
		out.Metadata = object.Metadata
	}

	return out, nil
}

func vendorError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return domainerrors.NewVendorError(stripeVendor, stripeErr.HTTPStatusCode, []byte(stripeErr.Msg), err)
	}

	return domainerrors.NewVendorError(stripeVendor, 0, nil, err)
}
