// Command dispatcher receives request notification events from Pub/Sub and
// pushes them to the targeted businesses' devices.
package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/worker"
	"marketplace/internal/delivery/worker/handler"
	"marketplace/internal/infra/cache"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/metrics"
	"marketplace/internal/infra/notification"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
		fx.Provide(
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
		fx.Provide(
			notification.NewNotificationService,
			cache.NewDispatchGuard,
		),
		fx.Provide(
			impl.NewDeliveryService,
		),
		fx.Provide(
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start dispatcher", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
