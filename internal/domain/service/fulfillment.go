package service

import (
	"context"

	"kinconnect/internal/domain/entity"
)

// FulfillmentClient talks to the print-on-demand vendor.
type FulfillmentClient interface {
	// UploadImage stores artwork with the vendor and returns the URL to print from.
	UploadImage(ctx context.Context, image entity.ImageRef, fileName string) (string, error)

	// SubmitOrder creates one multi-line-item order.
	SubmitOrder(ctx context.Context, sub entity.Submission) (*entity.SubmissionResult, error)
}
