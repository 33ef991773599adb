package gemini

import (
	"context"

	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/service"
	"kinconnect/internal/errors"

	"google.golang.org/genai"
)

// Stylize renders one square t-shirt graphic from the reference photo.
func (c *Client) Stylize(ctx context.Context, req service.StylizeRequest) (entity.ImageRef, error) {
	if err := c.configured(); err != nil {
		return "", err
	}

	parts := make([]*genai.Part, 0, 2)
	if !req.Reference.Empty() {
		ref, err := c.inline(ctx, req.Reference, mimeJPEG)
		if err != nil {
			return "", err
		}
		parts = append(parts, ref)
	}
	parts = append(parts, genai.NewPartFromText(stylizePrompt(req.Description, req.StyleModifier)))

	return c.generateImage(ctx, parts, &genai.ImageConfig{AspectRatio: "1:1", ImageSize: "1K"})
}

// PreviewOutfit renders the group photo with everyone wearing the front design.
func (c *Client) PreviewOutfit(ctx context.Context, groupPhoto, front entity.ImageRef, label string) (entity.ImageRef, error) {
	if err := c.configured(); err != nil {
		return "", err
	}

	group, err := c.inline(ctx, groupPhoto, mimeJPEG)
	if err != nil {
		return "", err
	}
	design, err := c.inline(ctx, front, mimePNG)
	if err != nil {
		return "", err
	}

	return c.generateImage(ctx,
		[]*genai.Part{group, design, genai.NewPartFromText(previewPrompt(label))},
		&genai.ImageConfig{AspectRatio: "16:9", ImageSize: "1K"},
	)
}

func (c *Client) generateImage(ctx context.Context, parts []*genai.Part, imageConfig *genai.ImageConfig) (entity.ImageRef, error) {
	resp, err := c.generateContent(ctx, c.imageModel, parts, &genai.GenerateContentConfig{ImageConfig: imageConfig})
	if err != nil {
		return "", err
	}

	img, ok := firstImage(resp)
	if !ok {
		return "", domainerrors.NewVendorError(vendorName, 0, nil, errors.New("no image generated"))
	}

	return img, nil
}
