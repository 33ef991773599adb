package service

import (
	"context"

	"kinconnect/internal/domain/entity"
)

// ImageCompositor applies the local image geometry operations to image references.
type ImageCompositor interface {
	// CropToBox crops a 0-1000 normalized [ymin, xmin, ymax, xmax] box onto a square canvas.
	CropToBox(ctx context.Context, image entity.ImageRef, box []int) (entity.ImageRef, error)

	// StripBackground makes near-neutral very light or very dark pixels transparent.
	StripBackground(ctx context.Context, image entity.ImageRef) (entity.ImageRef, error)

	// OverlayText draws outlined text centered near the bottom edge.
	OverlayText(ctx context.Context, image entity.ImageRef, text string) (entity.ImageRef, error)
}
