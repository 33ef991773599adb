package graphics

import (
	"context"
	"net/http"

	"kinconnect/internal/domain/entity"
	"kinconnect/internal/domain/service"
)

// compositor implements the service.ImageCompositor interface over image references.
type compositor struct {
	client *http.Client
}

// NewCompositor is the constructor for compositor. client fetches remote references.
func NewCompositor(client *http.Client) service.ImageCompositor {
	return &compositor{client: client}
}

func (c *compositor) CropToBox(ctx context.Context, ref entity.ImageRef, box []int) (entity.ImageRef, error) {
	img, err := Load(ctx, c.client, ref)
	if err != nil {
		return "", err
	}

	cropped, err := CropToBox(img, box)
	if err != nil {
		return "", err
	}

	return EncodeJPEG(cropped, cropJPEGQuality)
}

func (c *compositor) StripBackground(ctx context.Context, ref entity.ImageRef) (entity.ImageRef, error) {
	img, err := Load(ctx, c.client, ref)
	if err != nil {
		return "", err
	}

	return EncodePNG(StripNeutralBackground(img))
}

func (c *compositor) OverlayText(ctx context.Context, ref entity.ImageRef, text string) (entity.ImageRef, error) {
	img, err := Load(ctx, c.client, ref)
	if err != nil {
		return "", err
	}

	stamped, err := OverlayText(img, text)
	if err != nil {
		return "", err
	}

	return EncodePNG(stamped)
}
