// Package replicate removes image backgrounds with a rembg model hosted on Replicate.
package replicate

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"kinconnect/config"
	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/service"
	"kinconnect/internal/errors"
	"kinconnect/internal/util"

	"github.com/replicate/replicate-go"
)

const (
	vendorName = "replicate"

	defaultPollInterval = 1500 * time.Millisecond
	defaultTimeout      = 60 * time.Second
)

// remover implements the service.BackgroundRemover interface.
type remover struct {
	client       *replicate.Client
	version      string
	pollInterval time.Duration
	timeout      time.Duration
	logger       *slog.Logger
}

// NewBackgroundRemover is the constructor for remover. Without a token or
// model version every call fails with ErrVendorNotConfigured.
func NewBackgroundRemover(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (service.BackgroundRemover, error) {
	rc := cfg.Replicate

	r := &remover{
		version:      strings.TrimSpace(rc.ModelVersion),
		pollInterval: rc.PollInterval,
		timeout:      rc.Timeout,
		logger:       logger.With(slog.String("vendor", vendorName)),
	}
	if r.pollInterval <= 0 {
		r.pollInterval = defaultPollInterval
	}
	if r.timeout <= 0 {
		r.timeout = defaultTimeout
	}

	token := strings.TrimSpace(rc.APIToken)
	if token == "" || r.version == "" {
		return r, nil
	}

	opts := []replicate.ClientOption{
		replicate.WithToken(token),
		replicate.WithHTTPClient(httpClient),
		// Vendor failures surface to the user instead of being retried.
		replicate.WithRetryPolicy(0, &replicate.ConstantBackoff{Base: r.pollInterval}),
	}
	if baseURL := strings.TrimSpace(rc.BaseURL); baseURL != "" {
		opts = append(opts, replicate.WithBaseURL(strings.TrimRight(baseURL, "/")))
	}

	client, err := replicate.NewClient(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create replicate client")
	}
	r.client = client

	return r, nil
}

// RemoveBackground starts a prediction and waits for it to settle.
// A failed, canceled or timed out prediction is an error.
func (r *remover) RemoveBackground(ctx context.Context, img entity.ImageRef) (entity.ImageRef, error) {
	if r.client == nil {
		return "", domainerrors.ErrVendorNotConfigured.WithDetails("replicate token or model version is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()

	prediction, err := r.client.CreatePrediction(ctx, r.version, replicate.PredictionInput{"image": string(img)}, nil, false)
	if err != nil {
		return "", r.vendorError(ctx, "create prediction", err)
	}

	if err := r.client.Wait(ctx, prediction, replicate.WithPollingInterval(r.pollInterval)); err != nil {
		return "", r.vendorError(ctx, "wait for prediction", err)
	}

	if prediction.Status != replicate.Succeeded {
		return "", domainerrors.NewVendorError(vendorName, 0, nil,
			errors.Errorf("prediction %s finished with status %s", prediction.ID, prediction.Status))
	}

	r.logger.DebugContext(ctx, "background removed",
		slog.String("prediction", prediction.ID),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return outputImage(prediction.Output)
}

// vendorError classifies an SDK failure. An expired deadline is reported as
// a timeout instead of the transport error it caused.
func (r *remover) vendorError(ctx context.Context, op string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domainerrors.NewVendorError(vendorName, 0, nil, errors.New("prediction timeout"))
	}

	var apiErr *replicate.APIError
	if errors.As(err, &apiErr) {
		r.logger.WarnContext(ctx, "replicate request failed",
			slog.String("op", op),
			slog.Int("status", apiErr.Status),
		)

		return domainerrors.NewVendorError(vendorName, apiErr.Status, []byte(apiErr.Detail), nil)
	}

	return domainerrors.NewVendorError(vendorName, 0, nil, errors.Wrap(err, op))
}

// outputImage accepts either a single URL or a list whose first entry is the URL.
func outputImage(output any) (entity.ImageRef, error) {
	switch v := output.(type) {
	case string:
		if v != "" {
			return entity.ImageRef(v), nil
		}
	case []any:
		if len(v) > 0 {
			if first, ok := v[0].(string); ok && first != "" {
				return entity.ImageRef(first), nil
			}
		}
	}

	return "", domainerrors.NewVendorError(vendorName, 0, nil, errors.New("prediction succeeded without an output image"))
}
