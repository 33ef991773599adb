package impl

import (
	"context"

	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/service"
	"kinconnect/internal/usecase"
)

// imageService implements the usecase.ImageUsecase interface.
type imageService struct {
	remover service.BackgroundRemover
}

// NewImageService creates a new image service instance
func NewImageService(remover service.BackgroundRemover) usecase.ImageUsecase {
	return &imageService{remover: remover}
}

// RemoveBackground forwards to the remote remover without a local fallback,
// so callers see vendor failures.
func (s *imageService) RemoveBackground(ctx context.Context, image entity.ImageRef) (entity.ImageRef, error) {
	if image.Empty() {
		return "", domainerrors.ErrValidationFailed.WithDetails("Missing image")
	}

	return s.remover.RemoveBackground(ctx, image)
}
