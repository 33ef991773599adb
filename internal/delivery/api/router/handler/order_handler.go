package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"kinconnect/internal/delivery/api/response"
	deliverycontext "kinconnect/internal/delivery/context"
	"kinconnect/internal/domain/entity"
	"kinconnect/internal/domain/service"
	"kinconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const stripeSignatureHeader = "Stripe-Signature"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the fulfillment and payment proxy endpoints. Bodies
// are plain JSON without the API envelope.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderPlanResponse is the dry-run answer.
type OrderPlanResponse struct {
	OrderID           string        `json:"orderId"`
	EstimatedDelivery string        `json:"estimatedDelivery"`
	ShopID            string        `json:"shopId"`
	Debug             OrderPlanInfo `json:"debug"`
}

type OrderPlanInfo struct {
	ProviderID      int                      `json:"providerId"`
	LineItems       []entity.PlannedLineItem `json:"lineItems"`
	ShippingSummary entity.ShippingSummary   `json:"shippingSummary"`
}

// OrderTestResponse carries the vendor's raw order answer.
type OrderTestResponse struct {
	OrderID          string          `json:"orderId"`
	PrintifyResponse json.RawMessage `json:"printifyResponse"`
}

// PaymentIntentRequest creates a client-confirmed payment. Amount is in
// minor units. Non-string metadata values are stored as JSON.
type PaymentIntentRequest struct {
	Amount   int64          `json:"amount"`
	Currency string         `json:"currency"`
	Metadata map[string]any `json:"metadata"`
}

type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// bindOrder decodes an order body. The returned message is the plain 400
// error to send when the body is unusable.
func bindOrder(c echo.Context) (entity.OrderRequest, string) {
	var in usecase.OrderInput
	if err := c.Bind(&in); err != nil {
		return entity.OrderRequest{}, "Invalid JSON body"
	}
	if in.Items == nil || in.Shipping == nil {
		return entity.OrderRequest{}, "Missing items or shipping"
	}

	return in.Request(), ""
}

// Plan handles POST /api/printify/order-plan.
func (h *OrderHandler) Plan(c echo.Context) error {
	req, msg := bindOrder(c)
	if msg != "" {
		return response.Plain(c, http.StatusBadRequest, response.PlainError{Error: msg})
	}

	plan, err := h.orderUC.Plan(c.Request().Context(), req)
	if err != nil {
		return response.HandlePlainError(c, err)
	}

	return response.Plain(c, http.StatusOK, OrderPlanResponse{
		OrderID:           plan.OrderID,
		EstimatedDelivery: plan.EstimatedDelivery,
		ShopID:            plan.ShopID,
		Debug: OrderPlanInfo{
			ProviderID:      plan.ProviderID,
			LineItems:       plan.LineItems,
			ShippingSummary: plan.ShippingSummary,
		},
	})
}

// SubmitTestOrder handles POST /api/printify/order-test.
func (h *OrderHandler) SubmitTestOrder(c echo.Context) error {
	req, msg := bindOrder(c)
	if msg != "" {
		return response.Plain(c, http.StatusBadRequest, response.PlainError{Error: msg})
	}

	result, err := h.orderUC.SubmitTestOrder(c.Request().Context(), req)
	if err != nil {
		return response.HandlePlainError(c, err)
	}

	raw := json.RawMessage(result.Raw)
	if !json.Valid(raw) {
		raw = json.RawMessage("null")
	}

	return response.Plain(c, http.StatusOK, OrderTestResponse{OrderID: result.OrderID, PrintifyResponse: raw})
}

// CreatePaymentIntent handles POST /api/stripe/create-payment-intent.
func (h *OrderHandler) CreatePaymentIntent(c echo.Context) error {
	var req PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.Plain(c, http.StatusBadRequest, response.PlainError{Error: "Invalid JSON body"})
	}
	if req.Amount <= 0 {
		return response.Plain(c, http.StatusBadRequest, response.PlainError{Error: "Invalid amount"})
	}

	metadata, err := flattenMetadata(req.Metadata)
	if err != nil {
		return response.Plain(c, http.StatusBadRequest, response.PlainError{Error: "Invalid metadata"})
	}

	intent, err := h.orderUC.CreatePaymentIntent(c.Request().Context(), service.IntentRequest{
		AmountCents: req.Amount,
		Currency:    req.Currency,
		Metadata:    metadata,
	})
	if err != nil {
		return response.HandlePlainError(c, err)
	}

	return response.Plain(c, http.StatusOK, PaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	})
}

// flattenMetadata keeps strings as they are and JSON-encodes everything else,
// since the payment vendor only stores string values.
func flattenMetadata(in map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(in))
	for k, v := range in {
		switch val := v.(type) {
		case nil:
		case string:
			out[k] = val
		default:
			encoded, err := json.Marshal(val)
			if err != nil {
				return nil, err
			}
			out[k] = string(encoded)
		}
	}

	return out, nil
}

// StripeWebhook handles POST /webhooks/stripe. The raw body is needed for
// signature verification, so it is read before any binding.
func (h *OrderHandler) StripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.Plain(c, http.StatusBadRequest, response.PlainError{Error: "Unreadable body"})
	}

	ctx := c.Request().Context()
	if err := h.orderUC.HandlePaymentWebhook(ctx, payload, c.Request().Header.Get(stripeSignatureHeader)); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).WarnContext(ctx, "payment webhook rejected", slog.Any("error", err))

		return response.HandlePlainError(c, err)
	}

	return response.Plain(c, http.StatusOK, map[string]bool{"received": true})
}
