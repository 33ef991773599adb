package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"kinconnect/config"
	"kinconnect/internal/delivery"
	"kinconnect/internal/delivery/api"
	"kinconnect/internal/delivery/api/middleware"
	"kinconnect/internal/delivery/api/router/handler"
	"kinconnect/internal/domain/service"
	"kinconnect/internal/infra/auth"
	"kinconnect/internal/infra/fixture"
	"kinconnect/internal/infra/gemini"
	"kinconnect/internal/infra/graphics"
	"kinconnect/internal/infra/httpclient"
	logs "kinconnect/internal/infra/log"
	"kinconnect/internal/infra/payment"
	"kinconnect/internal/infra/persistence/memory"
	"kinconnect/internal/infra/printify"
	"kinconnect/internal/infra/qrcode"
	"kinconnect/internal/infra/replicate"
	"kinconnect/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		httpclient.NewFromConfig,
		impl.NewGarmentCatalog,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			graphics.NewCompositor,
			newQRCodeService,
			newImageVendors,
			newBackgroundRemover,
			printify.NewClient,
			payment.NewSimulatedGateway,
			payment.NewStripeService,
		),
	)
}

// imageVendors are the photo analysis and stylization adapters.
type imageVendors struct {
	fx.Out

	Analyzer service.PhotoAnalyzer
	Stylizer service.Stylizer
}

// newImageVendors swaps the paid image vendor for deterministic fixtures in test mode.
func newImageVendors(ctx context.Context, cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (imageVendors, error) {
	if cfg.Env.TestMode {
		logger.Info("test mode: using fixture image vendors")

		return imageVendors{Analyzer: fixture.NewAnalyzer(), Stylizer: fixture.NewStylizer()}, nil
	}

	client, err := gemini.New(ctx, cfg, httpClient, logger)
	if err != nil {
		return imageVendors{}, err
	}

	return imageVendors{Analyzer: client, Stylizer: client}, nil
}

func newBackgroundRemover(cfg *config.Config, httpClient *http.Client, compositor service.ImageCompositor, logger *slog.Logger) (service.BackgroundRemover, error) {
	if cfg.Env.TestMode {
		return fixture.NewBackgroundRemover(compositor), nil
	}

	return replicate.NewBackgroundRemover(cfg, httpClient, logger)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOrderService,
			impl.NewWizardService,
			impl.NewImageService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWizardHandler,
			handler.NewCatalogHandler,
			handler.NewImageHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
