package main

import (
	"context"
	"log/slog"
	"os"

	"parkospace/config"
	"parkospace/internal/delivery"
	"parkospace/internal/delivery/http"
	"parkospace/internal/delivery/http/middleware"
	"parkospace/internal/delivery/http/router/handler"
	"parkospace/internal/domain/service"
	"parkospace/internal/infra/auth"
	"parkospace/internal/infra/geocoding"
	logs "parkospace/internal/infra/log"
	"parkospace/internal/infra/metrics"
	"parkospace/internal/infra/otp"
	"parkospace/internal/infra/persistence/postgres"
	"parkospace/internal/infra/qrcode"
	"parkospace/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
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
		postgres.New,
		fx.Annotate(
			metrics.NewRegistry,
			fx.As(new(prometheus.Registerer)),
		),
		metrics.NewListingCollector,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewListingRepository,
			postgres.NewOwnerRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			otp.NewClient,
			newQRCodeService,
			fx.Annotate(
				geocoding.NewNominatimGeocoder,
				fx.As(new(service.Geocoder)),
			),
			fx.Annotate(
				geocoding.NewMapLinkResolver,
				fx.As(new(service.MapLinkResolver)),
			),
			newListingRecorder,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newListingRecorder(collector *metrics.ListingCollector) service.ListingRecorder {
	return collector
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewListingService,
			impl.NewAuthService,
			impl.NewGeocodeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewListingHandler,
			handler.NewGeocodeHandler,
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
