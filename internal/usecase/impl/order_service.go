package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"kinconnect/config"
	deliverycontext "kinconnect/internal/delivery/context"
	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/garment"
	"kinconnect/internal/domain/service"
	"kinconnect/internal/errors"
	"kinconnect/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	submissionKindTest = "test"
	submissionKindPaid = "paid"

	labelProduction = "KinConnect Order"
	labelTest       = "KinConnect Test Order"

	frontFileName = "family-front.png"

	// uploadConcurrency bounds parallel artwork uploads per order.
	uploadConcurrency = 4
	orderIDRange      = 1_000_000
)

// orderService implements the usecase.OrderUsecase interface.
type orderService struct {
	catalog     *garment.Catalog
	fulfillment service.FulfillmentClient
	payments    service.PaymentGateway
	intents     service.PaymentIntentService

	printify       config.PrintifyConfig
	unitPriceCents int64
	currency       string
	testMode       bool

	logger *slog.Logger
	now    func() time.Time
	suffix func() int
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Catalog     *garment.Catalog
	Fulfillment service.FulfillmentClient
	Payments    service.PaymentGateway
	Intents     service.PaymentIntentService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return newOrderService(params)
}

func newOrderService(params OrderServiceParams) *orderService {
	s := &orderService{
		catalog:        params.Catalog,
		fulfillment:    params.Fulfillment,
		payments:       params.Payments,
		intents:        params.Intents,
		unitPriceCents: params.Config.Pricing.UnitPriceCents,
		currency:       params.Config.Pricing.Currency,
		testMode:       params.Config.Env.TestMode,
		logger:         params.Logger,
		now:            time.Now,
		suffix:         func() int { return rand.IntN(orderIDRange) },
	}
	if params.Config.Printify != nil {
		s.printify = *params.Config.Printify
	}

	return s
}

// NewGarmentCatalog builds the immutable garment catalog from configuration.
func NewGarmentCatalog(cfg *config.Config) *garment.Catalog {
	cc := cfg.Catalog
	if cc == nil {
		return garment.NewCatalog(garment.Line{}, garment.Line{}, garment.Line{})
	}

	return garment.NewCatalog(adultLine(cc.Men), adultLine(cc.Women), kidsLine(cc.Kids))
}

func adultLine(l config.AdultLine) garment.Line {
	byColor := make(map[string]map[garment.Size]int, len(l.Variants))
	for color, sizes := range l.Variants {
		inner := make(map[garment.Size]int, len(sizes))
		for label, id := range sizes {
			if size, ok := garment.ParseSize(label); ok {
				inner[size] = id
			}
		}
		byColor[color] = inner
	}

	return garment.Line{BlueprintID: l.BlueprintID, ByColor: byColor}
}

func kidsLine(l config.KidsLine) garment.Line {
	bySize := make(map[garment.Size]int, len(l.Variants))
	for label, id := range l.Variants {
		if size, ok := garment.ParseSize(label); ok {
			bySize[size] = id
		}
	}

	return garment.Line{BlueprintID: l.BlueprintID, BySize: bySize}
}

func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Plan resolves the line items of an order without any vendor call.
func (s *orderService) Plan(ctx context.Context, req entity.OrderRequest) (*entity.OrderPlan, error) {
	if strings.TrimSpace(s.printify.ShopID) == "" || s.printify.PrintProviderID <= 0 {
		return nil, domainerrors.ErrFulfillmentNotConfigured.WithDetails("Printify env not fully configured")
	}

	items := s.planLineItems(ctx, req)
	if len(items) == 0 {
		return nil, domainerrors.ErrNoValidLineItems
	}

	return &entity.OrderPlan{
		OrderID:           fmt.Sprintf("KC-PLAN-%d", s.suffix()),
		EstimatedDelivery: entity.EstimateDelivery(s.now()),
		ShopID:            s.printify.ShopID,
		ProviderID:        s.printify.PrintProviderID,
		LineItems:         items,
		ShippingSummary:   req.Shipping.Summary(),
	}, nil
}

// planLineItems keeps members with a positive quantity whose garment resolves.
func (s *orderService) planLineItems(ctx context.Context, req entity.OrderRequest) []entity.PlannedLineItem {
	items := make([]entity.PlannedLineItem, 0, len(req.Items))
	for _, m := range req.Items {
		if m.Quantity <= 0 {
			continue
		}

		color := firstNonBlank(m.ShirtColorName, req.ShirtColorName, garment.ColorBlack)
		size := m.Size
		if size == "" {
			size = garment.DefaultSize
		}

		res, ok := s.catalog.Resolve(m.GroupChoice(), size, color)
		if !ok {
			s.log(ctx).WarnContext(ctx, "no garment for member, dropping line item",
				slog.String("member_id", m.ID.String()),
				slog.String("member", m.Name),
				slog.String("size", string(size)),
				slog.String("color", color),
			)

			continue
		}

		items = append(items, entity.PlannedLineItem{
			MemberID:        m.ID.String(),
			Name:            firstNonBlank(m.Name, "Member"),
			Quantity:        m.Quantity,
			BlueprintID:     res.BlueprintID,
			VariantID:       res.VariantID,
			PrintProviderID: s.printify.PrintProviderID,
			Color:           color,
			Size:            string(size),
			GroupSource:     string(res.Group.Source),
			BackArtwork:     m.BackArtwork(),
		})
	}

	return items
}

func (s *orderService) SubmitTestOrder(ctx context.Context, req entity.OrderRequest) (*entity.SubmissionResult, error) {
	return s.submit(ctx, req, false, submissionKindTest)
}

func (s *orderService) Submit(ctx context.Context, req entity.OrderRequest, production bool) (*entity.SubmissionResult, error) {
	return s.submit(ctx, req, production, submissionKindPaid)
}

func (s *orderService) fulfillmentConfigured() bool {
	return strings.TrimSpace(s.printify.APIToken) != "" &&
		strings.TrimSpace(s.printify.ShopID) != "" &&
		s.printify.PrintProviderID > 0
}

func (s *orderService) submit(ctx context.Context, req entity.OrderRequest, production bool, kind string) (*entity.SubmissionResult, error) {
	if !s.fulfillmentConfigured() {
		return nil, domainerrors.ErrFulfillmentNotConfigured
	}
	if missing := req.Shipping.MissingFields(); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing shipping fields: " + strings.Join(missing, ", "))
	}

	planned := s.planLineItems(ctx, req)
	if len(planned) == 0 {
		return nil, domainerrors.ErrNoValidLineItems
	}

	frontSrc := s.uploadFront(ctx, req.FamilyImage)
	backs := s.uploadBacks(ctx, planned, frontSrc)

	lineItems := make([]entity.LineItem, 0, len(planned))
	for i, p := range planned {
		lineItems = append(lineItems, entity.LineItem{
			PrintProviderID: p.PrintProviderID,
			BlueprintID:     p.BlueprintID,
			VariantID:       p.VariantID,
			Quantity:        p.Quantity,
			PrintAreas: map[string][]entity.PrintPlacement{
				"front": {entity.CenteredPlacement(frontSrc)},
				"back":  {entity.CenteredPlacement(backs[i])},
			},
		})
	}

	label := labelTest
	if production {
		label = labelProduction
	}

	result, err := s.fulfillment.SubmitOrder(ctx, entity.Submission{
		ExternalID:       fmt.Sprintf("kinconnect-%s-%d", kind, s.now().UnixMilli()),
		Label:            label,
		LineItems:        lineItems,
		Shipping:         req.Shipping,
		SendToProduction: production,
	})
	if err != nil {
		return nil, errors.Wrap(err, "submit fulfillment order")
	}

	return result, nil
}

// uploadFront uploads the shared front artwork once. The placeholder is used
// when there is no family image or the upload fails.
func (s *orderService) uploadFront(ctx context.Context, family entity.ImageRef) string {
	placeholder := s.printify.PlaceholderImageURL
	artwork := entity.FirstImage(family, entity.ImageRef(placeholder))
	if artwork.Empty() {
		return placeholder
	}

	src, err := s.fulfillment.UploadImage(ctx, artwork, frontFileName)
	if err != nil {
		s.log(ctx).WarnContext(ctx, "front artwork upload failed, using placeholder", slog.Any("error", err))

		return placeholder
	}

	return src
}

// uploadBacks uploads each line item's back artwork in parallel. A failed
// upload falls back to the placeholder, or to the front when none is set, and
// never affects the other members.
func (s *orderService) uploadBacks(ctx context.Context, planned []entity.PlannedLineItem, frontSrc string) []string {
	placeholder := s.printify.PlaceholderImageURL
	fallback := firstNonBlank(placeholder, frontSrc)

	backs := make([]string, len(planned))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(uploadConcurrency)
	for i, p := range planned {
		g.Go(func() error {
			src := fallback
			artwork := entity.FirstImage(p.BackArtwork, entity.ImageRef(placeholder))
			if !artwork.Empty() {
				uploaded, err := s.fulfillment.UploadImage(ctx, artwork, firstNonBlank(p.Name, "member")+"-back.png")
				if err != nil {
					s.log(ctx).WarnContext(ctx, "back artwork upload failed, using fallback",
						slog.String("member_id", p.MemberID),
						slog.Any("error", err),
					)
				} else {
					src = uploaded
				}
			}

			mu.Lock()
			backs[i] = src
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()

	return backs
}

// PlaceOrder captures the payment first. Fulfillment is only contacted after
// a successful capture.
func (s *orderService) PlaceOrder(ctx context.Context, req entity.OrderRequest, card entity.PaymentDetails) (*entity.OrderConfirmation, error) {
	total := entity.OrderDraft{Members: req.Items}.TotalCents(s.unitPriceCents)
	if total <= 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	// An order that can never reach fulfillment is not charged.
	if s.fulfillmentConfigured() && len(s.planLineItems(ctx, req)) == 0 {
		return nil, domainerrors.ErrNoValidLineItems
	}

	receipt, err := s.payments.Capture(ctx, total, card)
	if err != nil {
		return nil, err
	}

	placedAt := s.now()
	confirmation := &entity.OrderConfirmation{
		EstimatedDelivery: entity.EstimateDelivery(placedAt),
		TotalCents:        total,
		TransactionID:     receipt.TransactionID,
	}

	if !s.fulfillmentConfigured() {
		confirmation.OrderID = fmt.Sprintf("POD-%d", s.suffix())
		confirmation.Simulated = true
		s.log(ctx).InfoContext(ctx, "fulfillment not configured, order simulated",
			slog.String("order_id", confirmation.OrderID),
			slog.String("transaction_id", receipt.TransactionID),
		)

		return confirmation, nil
	}

	result, err := s.Submit(ctx, req, !s.testMode)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "order paid but submission failed",
			slog.String("transaction_id", receipt.TransactionID),
			slog.Any("error", err),
		)

		return nil, err
	}
	confirmation.OrderID = result.OrderID

	return confirmation, nil
}

func (s *orderService) CreatePaymentIntent(ctx context.Context, req service.IntentRequest) (*service.PaymentIntent, error) {
	if req.Currency == "" {
		req.Currency = s.currency
	}

	return s.intents.CreateIntent(ctx, req)
}

// HandlePaymentWebhook submits a live order for a succeeded payment whose
// metadata carries the order. Other events are only logged.
func (s *orderService) HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.intents.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}

	logger := s.log(ctx).With(slog.String("event_id", event.ID), slog.String("event_type", event.Type))

	switch event.Type {
	case service.EventPaymentSucceeded:
		req, ok, err := orderFromMetadata(event.Metadata)
		if err != nil {
			logger.ErrorContext(ctx, "payment metadata is not a valid order", slog.Any("error", err))

			return nil
		}
		if !ok {
			logger.InfoContext(ctx, "payment succeeded without order metadata")

			return nil
		}

		result, err := s.Submit(ctx, req, !s.testMode)
		if err != nil {
			logger.ErrorContext(ctx, "order submission after payment failed",
				slog.String("payment_intent", event.IntentID),
				slog.Any("error", err),
			)

			return nil
		}
		logger.InfoContext(ctx, "order submitted after payment",
			slog.String("payment_intent", event.IntentID),
			slog.String("order_id", result.OrderID),
		)
	case service.EventPaymentFailed:
		logger.WarnContext(ctx, "payment failed", slog.String("payment_intent", event.IntentID))
	case service.EventCheckoutComplete:
		logger.InfoContext(ctx, "checkout session completed")
	default:
		logger.DebugContext(ctx, "ignoring payment event")
	}

	return nil
}

// orderFromMetadata decodes the order a checkout client attached to a
// payment intent as items, shipping, shirtColorName and familyImage keys.
// ok is false when the metadata carries no order.
func orderFromMetadata(md map[string]string) (entity.OrderRequest, bool, error) {
	rawItems, rawShipping := md["items"], md["shipping"]
	if rawItems == "" || rawShipping == "" {
		return entity.OrderRequest{}, false, nil
	}

	var in usecase.OrderInput
	if err := json.Unmarshal([]byte(rawItems), &in.Items); err != nil {
		return entity.OrderRequest{}, false, errors.Wrap(err, "decode items metadata")
	}
	var shipping entity.ShippingDetails
	if err := json.Unmarshal([]byte(rawShipping), &shipping); err != nil {
		return entity.OrderRequest{}, false, errors.Wrap(err, "decode shipping metadata")
	}
	in.Shipping = &shipping
	in.ShirtColorName = firstNonBlank(md["shirtColorName"], garment.ColorBlack)
	in.FamilyImage = entity.ImageRef(md["familyImage"])

	return in.Request(), true, nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
