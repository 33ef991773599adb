package service

import (
	"context"

	"kinconnect/internal/domain/entity"
)

// BackgroundRemover replaces an image's background with transparency.
type BackgroundRemover interface {
	RemoveBackground(ctx context.Context, image entity.ImageRef) (entity.ImageRef, error)
}
