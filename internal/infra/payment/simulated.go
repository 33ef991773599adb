// Package payment captures card payments and talks to Stripe for client-confirmed intents.
package payment

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/service"
)

const minCardNumberLength = 13

// simulatedGateway implements the service.PaymentGateway interface without moving money.
type simulatedGateway struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewSimulatedGateway is the constructor for simulatedGateway.
func NewSimulatedGateway(logger *slog.Logger) service.PaymentGateway {
	return &simulatedGateway{logger: logger, now: time.Now}
}

// Capture declines card numbers shorter than 13 characters and otherwise
// returns a TX- transaction id derived from the capture time.
func (g *simulatedGateway) Capture(ctx context.Context, amountCents int64, card entity.PaymentDetails) (*entity.PaymentReceipt, error) {
	if amountCents <= 0 {
		return nil, domainerrors.ErrEmptyOrder
	}
	if len(card.CardNumber) < minCardNumberLength {
		g.logger.InfoContext(ctx, "payment declined", slog.Int64("amount_cents", amountCents))

		return nil, domainerrors.ErrPaymentDeclined.WithDetails("card number is too short")
	}

	receipt := &entity.PaymentReceipt{
		TransactionID: "TX-" + strings.ToUpper(strconv.FormatInt(g.now().UnixMilli(), 36)),
		AmountCents:   amountCents,
	}
	g.logger.InfoContext(ctx, "payment captured",
		slog.String("transaction_id", receipt.TransactionID),
		slog.Int64("amount_cents", amountCents),
	)

	return receipt, nil
}
