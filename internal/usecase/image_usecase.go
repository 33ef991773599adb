package usecase

import (
	"context"

	"kinconnect/internal/domain/entity"
)

// ImageUsecase exposes image processing directly to clients.
type ImageUsecase interface {
	// RemoveBackground calls the remote remover and surfaces its failures.
	RemoveBackground(ctx context.Context, image entity.ImageRef) (entity.ImageRef, error)
}
