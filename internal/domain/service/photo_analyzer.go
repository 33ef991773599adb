package service

import (
	"context"

	"kinconnect/internal/domain/entity"
)

// PhotoAnalyzer detects the people in a photo.
type PhotoAnalyzer interface {
	// AnalyzePhoto returns one entry per detected person in reading order.
	// An empty result is valid.
	AnalyzePhoto(ctx context.Context, photo entity.ImageRef) ([]entity.DetectedPerson, error)
}
