package service

import (
	"context"

	"kinconnect/internal/domain/entity"
)

// StylizeRequest describes one artwork to generate.
type StylizeRequest struct {
	// Reference is the photo the subject is drawn from. It may be empty.
	Reference     entity.ImageRef
	Description   string
	StyleModifier string
}

// Stylizer generates artwork through an image-generation vendor.
// Authorization failures are reported as domain VendorErrors classified unauthorized.
type Stylizer interface {
	Stylize(ctx context.Context, req StylizeRequest) (entity.ImageRef, error)

	// PreviewOutfit renders the group photo with everyone wearing the front design.
	PreviewOutfit(ctx context.Context, groupPhoto, front entity.ImageRef, label string) (entity.ImageRef, error)
}
