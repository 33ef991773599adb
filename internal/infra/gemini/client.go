// Package gemini calls the Gemini API for photo analysis, portrait
// stylization and outfit previews.
package gemini

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"kinconnect/config"
	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/errors"
	"kinconnect/internal/infra/graphics"

	"google.golang.org/genai"
)

const (
	vendorName = "gemini"

	defaultAPIVersion    = "v1beta"
	defaultAnalysisModel = "gemini-2.5-flash"
	defaultImageModel    = "gemini-3-pro-image-preview"

	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"
)

// Client implements service.PhotoAnalyzer and service.Stylizer.
type Client struct {
	models        *genai.Models
	analysisModel string
	imageModel    string
	timeout       time.Duration
	httpClient    *http.Client
	logger        *slog.Logger
}

// New is the constructor for Client. Without an API key the client is built
// but every call fails with ErrVendorNotConfigured.
func New(ctx context.Context, cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	gc := cfg.Gemini

	c := &Client{
		analysisModel: orDefault(gc.AnalysisModel, defaultAnalysisModel),
		imageModel:    orDefault(gc.ImageModel, defaultImageModel),
		timeout:       gc.Timeout,
		httpClient:    httpClient,
		logger:        logger.With(slog.String("vendor", vendorName)),
	}

	apiKey := strings.TrimSpace(gc.APIKey)
	if apiKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    strings.TrimSpace(gc.BaseURL),
			APIVersion: orDefault(gc.APIVersion, defaultAPIVersion),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}
	c.models = client.Models

	return c, nil
}

func orDefault(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}

	return fallback
}

func (c *Client) configured() error {
	if c.models == nil {
		return domainerrors.ErrVendorNotConfigured.WithDetails("gemini api key is not set")
	}

	return nil
}

// inline loads ref and wraps it as an inline data part.
func (c *Client) inline(ctx context.Context, ref entity.ImageRef, fallbackMime string) (*genai.Part, error) {
	data, err := graphics.Bytes(ctx, c.httpClient, ref)
	if err != nil {
		return nil, err
	}

	return genai.NewPartFromBytes(data, ref.MimeType(fallbackMime)), nil
}

func (c *Client) generateContent(ctx context.Context, model string, parts []*genai.Part, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.models.GenerateContent(ctx, model, []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, cfg)
	if err != nil {
		c.logger.WarnContext(ctx, "gemini request failed", slog.String("model", model), slog.Any("error", err))

		return nil, vendorError(err)
	}

	return resp, nil
}

// vendorError classifies an SDK failure. API errors carry the status and the
// vendor's status text, which decides between unauthorized and unavailable.
func vendorError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return domainerrors.NewVendorError(vendorName, apiErr.Code, []byte(apiErr.Status+" "+apiErr.Message), nil)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return domainerrors.NewVendorError(vendorName, apiErrPtr.Code, []byte(apiErrPtr.Status+" "+apiErrPtr.Message), nil)
	}

	return domainerrors.NewVendorError(vendorName, 0, nil, err)
}

// firstImage returns the first inline image of the first candidate as a data URL.
func firstImage(resp *genai.GenerateContentResponse) (entity.ImageRef, bool) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", false
	}

	for _, p := range resp.Candidates[0].Content.Parts {
		if p == nil || p.InlineData == nil || len(p.InlineData.Data) == 0 {
			continue
		}
		mime := p.InlineData.MIMEType
		if mime == "" {
			mime = mimePNG
		}

		return entity.ImageRef("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(p.InlineData.Data)), true
	}

	return "", false
}
