package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"kinconnect/config"
	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/garment"
	"kinconnect/internal/domain/service"
	"kinconnect/internal/infra/payment"
	mockService "kinconnect/internal/mocks/service"
	"kinconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPlaceholder = "https://cdn.example.com/placeholder.png"

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     *orderService
	cfg         *config.Config
	fulfillment *mockService.MockFulfillmentClient
	payments    *mockService.MockPaymentGateway
	intents     *mockService.MockPaymentIntentService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Session: &config.SessionConfig{Secret: "test-secret", TokenTTL: time.Hour, IdleTimeout: time.Hour},
		Pricing: &config.PricingConfig{UnitPriceCents: 2500, Currency: "usd"},
		Catalog: &config.CatalogConfig{
			Men: config.AdultLine{BlueprintID: 6, Variants: map[string]map[string]int{
				garment.ColorBlack: {"S": 1001, "M": 1002, "L": 1003},
				garment.ColorWhite: {"M": 1202},
			}},
			Women: config.AdultLine{BlueprintID: 7, Variants: map[string]map[string]int{
				garment.ColorBlack: {"M": 2002},
			}},
			Kids: config.KidsLine{BlueprintID: 8, Variants: map[string]int{"S": 3001, "M": 3002}},
		},
		Printify: &config.PrintifyConfig{
			APIToken:            "printify-token",
			ShopID:              "shop-1",
			PrintProviderID:     29,
			PlaceholderImageURL: testPlaceholder,
		},
	}

	return cfg
}

func createTestOrderService(t *testing.T, cfg *config.Config) orderServiceFixtures {
	fulfillment := mockService.NewMockFulfillmentClient(t)
	payments := mockService.NewMockPaymentGateway(t)
	intents := mockService.NewMockPaymentIntentService(t)

	svc := newOrderService(OrderServiceParams{
		Catalog:     NewGarmentCatalog(cfg),
		Fulfillment: fulfillment,
		Payments:    payments,
		Intents:     intents,
		Config:      cfg,
		Logger:      discardLogger(),
	})
	svc.now = func() time.Time { return fixedNow }
	svc.suffix = func() int { return 4242 }

	return orderServiceFixtures{
		service:     svc,
		cfg:         cfg,
		fulfillment: fulfillment,
		payments:    payments,
		intents:     intents,
	}
}

func testShipping() entity.ShippingDetails {
	return entity.ShippingDetails{
		FullName:     "Ada Lovelace",
		AddressLine1: "1 Analytical Way",
		City:         "London",
		State:        "LDN",
		Zip:          "10001",
		Email:        "ada@example.com",
	}
}

func member(name string, group garment.Group, qty int) entity.Member {
	return entity.Member{
		ID:             uuid.New(),
		Name:           name,
		Group:          group,
		Size:           garment.DefaultSize,
		Quantity:       qty,
		GeneratedImage: entity.ImageRef("data:image/png;base64," + name),
	}
}

func TestOrderService_PlaceOrder_TotalsOnlyOrderedMembers(t *testing.T) {
	fx := createTestOrderService(t, testConfig())
	ctx := context.Background()

	req := entity.OrderRequest{
		Items:          []entity.Member{member("Ada", garment.GroupMen, 2), member("Bea", garment.GroupWomen, 0)},
		Shipping:       testShipping(),
		ShirtColorName: garment.ColorBlack,
		FamilyImage:    entity.ImageRef("data:image/png;base64,front"),
	}
	card := entity.PaymentDetails{CardNumber: "4242424242424242", Expiry: "12/30", CVC: "123"}

	fx.payments.EXPECT().
		Capture(ctx, int64(5000), card).
		Return(&entity.PaymentReceipt{TransactionID: "TX-1", AmountCents: 5000}, nil)
	fx.fulfillment.EXPECT().
		UploadImage(ctx, req.FamilyImage, frontFileName).
		Return("https://cdn.example.com/front.png", nil)
	fx.fulfillment.EXPECT().
		UploadImage(ctx, req.Items[0].GeneratedImage, "Ada-back.png").
		Return("https://cdn.example.com/ada.png", nil)
	fx.fulfillment.EXPECT().
		SubmitOrder(ctx, mock.MatchedBy(func(sub entity.Submission) bool {
			if len(sub.LineItems) != 1 {
				return false
			}
			item := sub.LineItems[0]

			return item.Quantity == 2 &&
				item.BlueprintID == 6 &&
				item.VariantID == 1002 &&
				item.PrintAreas["front"][0].Src == "https://cdn.example.com/front.png" &&
				item.PrintAreas["back"][0].Src == "https://cdn.example.com/ada.png" &&
				sub.SendToProduction &&
				sub.Label == labelProduction
		})).
		Return(&entity.SubmissionResult{OrderID: "PF-77"}, nil)

	confirmation, err := fx.service.PlaceOrder(ctx, req, card)

	require.NoError(t, err)
	assert.Equal(t, "PF-77", confirmation.OrderID)
	assert.Equal(t, int64(5000), confirmation.TotalCents)
	assert.Equal(t, "TX-1", confirmation.TransactionID)
	assert.Equal(t, "2026-03-15", confirmation.EstimatedDelivery)
	assert.False(t, confirmation.Simulated)
}

func TestOrderService_PlaceOrder_DeclinedCardNeverReachesFulfillment(t *testing.T) {
	cfg := testConfig()
	fulfillment := mockService.NewMockFulfillmentClient(t)
	svc := newOrderService(OrderServiceParams{
		Catalog:     NewGarmentCatalog(cfg),
		Fulfillment: fulfillment,
		Payments:    payment.NewSimulatedGateway(discardLogger()),
		Intents:     mockService.NewMockPaymentIntentService(t),
		Config:      cfg,
		Logger:      discardLogger(),
	})

	req := entity.OrderRequest{
		Items:    []entity.Member{member("Ada", garment.GroupMen, 1)},
		Shipping: testShipping(),
	}

	confirmation, err := svc.PlaceOrder(context.Background(), req, entity.PaymentDetails{CardNumber: "4242"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentDeclined)
	assert.Nil(t, confirmation)
	fulfillment.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything)
	fulfillment.AssertNotCalled(t, "SubmitOrder", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_EmptyOrder(t *testing.T) {
	fx := createTestOrderService(t, testConfig())

	req := entity.OrderRequest{Items: []entity.Member{member("Ada", garment.GroupMen, 0)}}

	_, err := fx.service.PlaceOrder(context.Background(), req, entity.PaymentDetails{CardNumber: "4242424242424242"})

	assert.ErrorIs(t, err, domainerrors.ErrEmptyOrder)
}

func TestOrderService_PlaceOrder_UnresolvableOrderIsNotCharged(t *testing.T) {
	fx := createTestOrderService(t, testConfig())

	ada := member("Ada", garment.GroupMen, 2)
	ada.Size = garment.Size("XS")
	req := entity.OrderRequest{Items: []entity.Member{ada}, Shipping: testShipping()}

	_, err := fx.service.PlaceOrder(context.Background(), req, entity.PaymentDetails{CardNumber: "4242424242424242"})

	assert.ErrorIs(t, err, domainerrors.ErrNoValidLineItems)
	fx.payments.AssertNotCalled(t, "Capture", mock.Anything, mock.Anything, mock.Anything)
	fx.fulfillment.AssertNotCalled(t, "SubmitOrder", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_SimulatedWithoutFulfillment(t *testing.T) {
	cfg := testConfig()
	cfg.Printify.APIToken = ""
	fx := createTestOrderService(t, cfg)
	ctx := context.Background()

	req := entity.OrderRequest{Items: []entity.Member{member("Ada", garment.GroupMen, 3)}, Shipping: testShipping()}
	card := entity.PaymentDetails{CardNumber: "4242424242424242"}

	fx.payments.EXPECT().Capture(ctx, int64(7500), card).
		Return(&entity.PaymentReceipt{TransactionID: "TX-2", AmountCents: 7500}, nil)

	confirmation, err := fx.service.PlaceOrder(ctx, req, card)

	require.NoError(t, err)
	assert.Equal(t, "POD-4242", confirmation.OrderID)
	assert.True(t, confirmation.Simulated)
	assert.Equal(t, int64(7500), confirmation.TotalCents)
}

func TestOrderService_PlaceOrder_TestModeKeepsOrderOutOfProduction(t *testing.T) {
	cfg := testConfig()
	cfg.Env.TestMode = true
	fx := createTestOrderService(t, cfg)
	ctx := context.Background()

	req := entity.OrderRequest{Items: []entity.Member{member("Ada", garment.GroupMen, 1)}, Shipping: testShipping()}
	card := entity.PaymentDetails{CardNumber: "4242424242424242"}

	fx.payments.EXPECT().Capture(ctx, int64(2500), card).
		Return(&entity.PaymentReceipt{TransactionID: "TX-3"}, nil)
	fx.fulfillment.EXPECT().UploadImage(ctx, mock.Anything, mock.Anything).Return("https://cdn.example.com/x.png", nil)
	fx.fulfillment.EXPECT().
		SubmitOrder(ctx, mock.MatchedBy(func(sub entity.Submission) bool {
			return !sub.SendToProduction && sub.Label == labelTest
		})).
		Return(&entity.SubmissionResult{OrderID: "PF-T"}, nil)

	confirmation, err := fx.service.PlaceOrder(ctx, req, card)

	require.NoError(t, err)
	assert.Equal(t, "PF-T", confirmation.OrderID)
}

func TestOrderService_SubmitTestOrder_UploadFailuresUsePlaceholder(t *testing.T) {
	fx := createTestOrderService(t, testConfig())
	ctx := context.Background()

	ada := member("Ada", garment.GroupMen, 1)
	bea := member("Bea", garment.GroupWomen, 1)
	req := entity.OrderRequest{
		Items:       []entity.Member{ada, bea},
		Shipping:    testShipping(),
		FamilyImage: entity.ImageRef("data:image/png;base64,front"),
	}

	fx.fulfillment.EXPECT().
		UploadImage(ctx, req.FamilyImage, frontFileName).
		Return("", errors.New("upload failed"))
	fx.fulfillment.EXPECT().
		UploadImage(ctx, ada.GeneratedImage, "Ada-back.png").
		Return("https://cdn.example.com/ada.png", nil)
	fx.fulfillment.EXPECT().
		UploadImage(ctx, bea.GeneratedImage, "Bea-back.png").
		Return("", errors.New("upload failed"))

	var submitted entity.Submission
	fx.fulfillment.EXPECT().
		SubmitOrder(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, sub entity.Submission) (*entity.SubmissionResult, error) {
			submitted = sub

			return &entity.SubmissionResult{OrderID: "PF-1", Raw: []byte(`{"id":"PF-1"}`)}, nil
		})

	result, err := fx.service.SubmitTestOrder(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "PF-1", result.OrderID)
	require.Len(t, submitted.LineItems, 2)
	assert.False(t, submitted.SendToProduction)
	assert.Equal(t, labelTest, submitted.Label)
	assert.Equal(t, "kinconnect-test-1772366400000", submitted.ExternalID)

	for _, item := range submitted.LineItems {
		assert.Equal(t, testPlaceholder, item.PrintAreas["front"][0].Src)
		assert.Equal(t, entity.CenteredPlacement(testPlaceholder), item.PrintAreas["front"][0])
	}
	assert.Equal(t, "https://cdn.example.com/ada.png", submitted.LineItems[0].PrintAreas["back"][0].Src)
	assert.Equal(t, testPlaceholder, submitted.LineItems[1].PrintAreas["back"][0].Src)
	assert.Equal(t, 2002, submitted.LineItems[1].VariantID)
}

func TestOrderService_Submit_NoValidLineItems(t *testing.T) {
	fx := createTestOrderService(t, testConfig())

	kid := member("Tiny", garment.GroupKids, 1)
	kid.Size = "3XL"
	req := entity.OrderRequest{
		Items:    []entity.Member{kid, member("Ghost", garment.GroupMen, 0)},
		Shipping: testShipping(),
	}

	_, err := fx.service.Submit(context.Background(), req, true)

	assert.ErrorIs(t, err, domainerrors.ErrNoValidLineItems)
}

func TestOrderService_Submit_MissingShipping(t *testing.T) {
	fx := createTestOrderService(t, testConfig())

	req := entity.OrderRequest{Items: []entity.Member{member("Ada", garment.GroupMen, 1)}}

	_, err := fx.service.Submit(context.Background(), req, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "fullName")
}

func TestOrderService_Submit_NotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Printify.ShopID = ""
	fx := createTestOrderService(t, cfg)

	_, err := fx.service.Submit(context.Background(), entity.OrderRequest{}, false)

	assert.ErrorIs(t, err, domainerrors.ErrFulfillmentNotConfigured)
}

func TestOrderService_Plan(t *testing.T) {
	fx := createTestOrderService(t, testConfig())

	grandma := member("Grandma Rose", "", 1)
	grandson := member("Little Tom", garment.GroupKids, 2)
	grandson.Size = "S"
	req := entity.OrderRequest{
		Items:          []entity.Member{grandma, grandson, member("Skip", garment.GroupMen, 0)},
		Shipping:       testShipping(),
		ShirtColorName: garment.ColorBlack,
	}

	plan, err := fx.service.Plan(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "KC-PLAN-4242", plan.OrderID)
	assert.Equal(t, "2026-03-15", plan.EstimatedDelivery)
	assert.Equal(t, "shop-1", plan.ShopID)
	assert.Equal(t, 29, plan.ProviderID)
	assert.Equal(t, "Ada Lovelace", plan.ShippingSummary.Name)

	require.Len(t, plan.LineItems, 2)
	assert.Equal(t, 7, plan.LineItems[0].BlueprintID)
	assert.Equal(t, 2002, plan.LineItems[0].VariantID)
	assert.Equal(t, string(garment.SourceInferred), plan.LineItems[0].GroupSource)
	assert.Equal(t, 8, plan.LineItems[1].BlueprintID)
	assert.Equal(t, 3001, plan.LineItems[1].VariantID)
	assert.Equal(t, 2, plan.LineItems[1].Quantity)
	assert.Equal(t, string(garment.SourceExplicit), plan.LineItems[1].GroupSource)
}

func TestOrderService_Plan_ColorFallsBackToBlack(t *testing.T) {
	fx := createTestOrderService(t, testConfig())

	m := member("Ada", garment.GroupMen, 1)
	m.ShirtColorName = "Heather Purple"
	m.Size = "L"

	plan, err := fx.service.Plan(context.Background(), entity.OrderRequest{Items: []entity.Member{m}})

	require.NoError(t, err)
	require.Len(t, plan.LineItems, 1)
	assert.Equal(t, 1003, plan.LineItems[0].VariantID)
	assert.Equal(t, "Heather Purple", plan.LineItems[0].Color)
}

func TestOrderService_CreatePaymentIntent_DefaultsCurrency(t *testing.T) {
	fx := createTestOrderService(t, testConfig())
	ctx := context.Background()

	fx.intents.EXPECT().
		CreateIntent(ctx, service.IntentRequest{AmountCents: 5000, Currency: "usd"}).
		Return(&service.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil)

	intent, err := fx.service.CreatePaymentIntent(ctx, service.IntentRequest{AmountCents: 5000})

	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", intent.ClientSecret)
}

func TestOrderService_HandlePaymentWebhook_SubmitsPaidOrder(t *testing.T) {
	fx := createTestOrderService(t, testConfig())
	ctx := context.Background()

	md, err := paymentMetadata(entity.OrderRequest{
		Items:          []entity.Member{member("Ada", garment.GroupMen, 2)},
		Shipping:       testShipping(),
		ShirtColorName: garment.ColorWhite,
	})
	require.NoError(t, err)

	payload := []byte(`{"id":"evt_1"}`)
	fx.intents.EXPECT().
		ParseWebhook(payload, "t=1,v1=abc").
		Return(&service.PaymentEvent{ID: "evt_1", Type: service.EventPaymentSucceeded, IntentID: "pi_1", Metadata: md}, nil)
	fx.fulfillment.EXPECT().UploadImage(ctx, mock.Anything, "Ada-back.png").Return("https://cdn.example.com/ada.png", nil)
	fx.fulfillment.EXPECT().UploadImage(ctx, entity.ImageRef(testPlaceholder), frontFileName).Return(testPlaceholder, nil)
	fx.fulfillment.EXPECT().
		SubmitOrder(ctx, mock.MatchedBy(func(sub entity.Submission) bool {
			return sub.SendToProduction &&
				len(sub.LineItems) == 1 &&
				sub.LineItems[0].VariantID == 1202 &&
				sub.LineItems[0].Quantity == 2 &&
				sub.ExternalID == "kinconnect-paid-1772366400000"
		})).
		Return(&entity.SubmissionResult{OrderID: "PF-9"}, nil)

	err = fx.service.HandlePaymentWebhook(ctx, payload, "t=1,v1=abc")

	require.NoError(t, err)
}

func TestOrderService_HandlePaymentWebhook_InvalidSignature(t *testing.T) {
	fx := createTestOrderService(t, testConfig())

	fx.intents.EXPECT().
		ParseWebhook(mock.Anything, "bad").
		Return(nil, domainerrors.ErrWebhookSignatureInvalid)

	err := fx.service.HandlePaymentWebhook(context.Background(), []byte(`{}`), "bad")

	assert.ErrorIs(t, err, domainerrors.ErrWebhookSignatureInvalid)
}

func TestOrderService_HandlePaymentWebhook_IgnoresOtherEvents(t *testing.T) {
	tests := []struct {
		name  string
		event *service.PaymentEvent
	}{
		{name: "payment failed", event: &service.PaymentEvent{ID: "evt_2", Type: service.EventPaymentFailed, IntentID: "pi_2"}},
		{name: "unknown type", event: &service.PaymentEvent{ID: "evt_3", Type: "customer.created"}},
		{name: "succeeded without metadata", event: &service.PaymentEvent{ID: "evt_4", Type: service.EventPaymentSucceeded}},
		{name: "succeeded with broken metadata", event: &service.PaymentEvent{
			ID:       "evt_5",
			Type:     service.EventPaymentSucceeded,
			Metadata: map[string]string{"items": "not json", "shipping": "{}"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t, testConfig())
			fx.intents.EXPECT().ParseWebhook(mock.Anything, mock.Anything).Return(tt.event, nil)

			err := fx.service.HandlePaymentWebhook(context.Background(), []byte(`{}`), "sig")

			require.NoError(t, err)
		})
	}
}

func TestOrderService_HandlePaymentWebhook_SubmissionFailureIsSwallowed(t *testing.T) {
	fx := createTestOrderService(t, testConfig())
	ctx := context.Background()

	md, err := paymentMetadata(entity.OrderRequest{
		Items:    []entity.Member{member("Ada", garment.GroupMen, 1)},
		Shipping: testShipping(),
	})
	require.NoError(t, err)

	fx.intents.EXPECT().ParseWebhook(mock.Anything, mock.Anything).
		Return(&service.PaymentEvent{ID: "evt_6", Type: service.EventPaymentSucceeded, Metadata: md}, nil)
	fx.fulfillment.EXPECT().UploadImage(ctx, mock.Anything, mock.Anything).Return("https://cdn.example.com/x.png", nil)
	fx.fulfillment.EXPECT().SubmitOrder(ctx, mock.Anything).Return(nil, domainerrors.ErrVendorUnavailable)

	err = fx.service.HandlePaymentWebhook(ctx, []byte(`{}`), "sig")

	require.NoError(t, err)
}

// paymentMetadata encodes an order the way a checkout client attaches it to a
// payment intent.
func paymentMetadata(req entity.OrderRequest) (map[string]string, error) {
	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, m := range req.Items {
		qty := m.Quantity
		items = append(items, usecase.OrderItemInput{
			Name:           m.Name,
			Description:    m.Description,
			ShirtType:      string(m.Group),
			Size:           string(m.Size),
			Quantity:       &qty,
			ShirtColorName: m.ShirtColorName,
			GeneratedImage: m.GeneratedImage,
			OriginalImage:  m.OriginalImage,
		})
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	shippingJSON, err := json.Marshal(req.Shipping)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"items":          string(itemsJSON),
		"shipping":       string(shippingJSON),
		"shirtColorName": req.ShirtColorName,
		"familyImage":    string(req.FamilyImage),
	}, nil
}

func TestOrderFromMetadata(t *testing.T) {
	md, err := paymentMetadata(entity.OrderRequest{
		Items:       []entity.Member{member("Ada", garment.GroupKids, 3)},
		Shipping:    testShipping(),
		FamilyImage: "https://cdn.example.com/front.png",
	})
	require.NoError(t, err)

	req, ok, err := orderFromMetadata(md)

	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, req.Items, 1)
	assert.Equal(t, garment.GroupKids, req.Items[0].Group)
	assert.Equal(t, 3, req.Items[0].Quantity)
	assert.Equal(t, testShipping().City, req.Shipping.City)
	assert.Equal(t, garment.ColorBlack, req.ShirtColorName)
	assert.Equal(t, entity.ImageRef("https://cdn.example.com/front.png"), req.FamilyImage)

	_, ok, err = orderFromMetadata(map[string]string{"items": md["items"]})
	require.NoError(t, err)
	assert.False(t, ok)
}
