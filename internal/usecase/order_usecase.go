package usecase

import (
	"context"

	"kinconnect/internal/domain/entity"
	"kinconnect/internal/domain/garment"
	"kinconnect/internal/domain/service"

	"github.com/google/uuid"
)

// OrderItemInput is one roster entry as accepted by the order endpoints and
// carried in payment metadata. A nil Quantity means 1.
type OrderItemInput struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	ShirtType      string          `json:"shirtType"`
	Size           string          `json:"size"`
	Quantity       *int            `json:"quantity"`
	ShirtColorName string          `json:"shirtColorName"`
	GeneratedImage entity.ImageRef `json:"generatedImage"`
	OriginalImage  entity.ImageRef `json:"originalImage"`
}

// Member converts the input into a roster member. Unknown groups are left
// empty so they are inferred from the text.
func (in OrderItemInput) Member() entity.Member {
	qty := 1
	if in.Quantity != nil {
		qty = *in.Quantity
	}

	group, _ := garment.ParseGroup(in.ShirtType)
	size, ok := garment.ParseSize(in.Size)
	if !ok {
		size = garment.DefaultSize
	}

	return entity.Member{
		ID:             uuid.New(),
		Name:           in.Name,
		Description:    in.Description,
		Group:          group,
		Size:           size,
		Quantity:       qty,
		ShirtColorName: in.ShirtColorName,
		GeneratedImage: in.GeneratedImage,
		OriginalImage:  in.OriginalImage,
	}
}

// OrderInput is the request body of the order endpoints.
type OrderInput struct {
	Items          []OrderItemInput        `json:"items"`
	Shipping       *entity.ShippingDetails `json:"shipping"`
	ShirtColorName string                  `json:"shirtColorName"`
	FamilyImage    entity.ImageRef         `json:"familyImage"`
}

// Request converts the input into an order request.
func (in OrderInput) Request() entity.OrderRequest {
	items := make([]entity.Member, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, item.Member())
	}

	req := entity.OrderRequest{
		Items:          items,
		ShirtColorName: in.ShirtColorName,
		FamilyImage:    in.FamilyImage,
	}
	if in.Shipping != nil {
		req.Shipping = *in.Shipping
	}

	return req
}

// OrderUsecase runs the fulfillment side of an order.
type OrderUsecase interface {
	// Plan resolves line items without calling any vendor.
	Plan(ctx context.Context, req entity.OrderRequest) (*entity.OrderPlan, error)

	// SubmitTestOrder creates a vendor order that is never sent to production.
	SubmitTestOrder(ctx context.Context, req entity.OrderRequest) (*entity.SubmissionResult, error)

	// Submit uploads artwork and creates a paid vendor order.
	Submit(ctx context.Context, req entity.OrderRequest, production bool) (*entity.SubmissionResult, error)

	// PlaceOrder captures payment and then submits. Nothing reaches
	// fulfillment when the payment fails.
	PlaceOrder(ctx context.Context, req entity.OrderRequest, card entity.PaymentDetails) (*entity.OrderConfirmation, error)

	CreatePaymentIntent(ctx context.Context, req service.IntentRequest) (*service.PaymentIntent, error)

	// HandlePaymentWebhook verifies and acts on a payment vendor event.
	// Submission failures after a verified event are logged, not returned.
	HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) error
}
