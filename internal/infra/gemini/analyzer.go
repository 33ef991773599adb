package gemini

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/errors"

	"google.golang.org/genai"
)

// analysisResult is the JSON document the analysis model is constrained to.
type analysisResult struct {
	People []struct {
		Description string `json:"description"`
		Box         []int  `json:"box_2d"`
	} `json:"people"`
}

// AnalyzePhoto detects the people in photo with a JSON-constrained response.
func (c *Client) AnalyzePhoto(ctx context.Context, photo entity.ImageRef) ([]entity.DetectedPerson, error) {
	if err := c.configured(); err != nil {
		return nil, err
	}

	image, err := c.inline(ctx, photo, mimeJPEG)
	if err != nil {
		return nil, err
	}

	resp, err := c.generateContent(ctx, c.analysisModel,
		[]*genai.Part{image, genai.NewPartFromText(analysisPrompt)},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   analysisSchema,
		},
	)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return []entity.DetectedPerson{}, nil
	}

	var result analysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, domainerrors.NewVendorError(vendorName, 0, nil, errors.Wrap(err, "decode analysis result"))
	}

	people := make([]entity.DetectedPerson, 0, len(result.People))
	for _, p := range result.People {
		people = append(people, entity.DetectedPerson{Description: p.Description, Box: p.Box})
	}

	c.logger.DebugContext(ctx, "photo analyzed", slog.Int("people", len(people)))

	return people, nil
}
