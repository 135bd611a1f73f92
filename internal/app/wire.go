//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"fulfillment/internal/gateway/geocode"
	"fulfillment/internal/handlers/tasks/pending_monitor"
	"fulfillment/internal/pkg/config"

	courierRepo "fulfillment/internal/repository/courier"
	orderRepo "fulfillment/internal/repository/order"
	"fulfillment/internal/service/assignment"
	"fulfillment/internal/service/intake"
	"fulfillment/internal/service/lifecycle"
	"fulfillment/internal/service/listing"
	"fulfillment/internal/service/verification"

	"fulfillment/pkg/logger"
	"fulfillment/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMonitorInterval,

		provideOrderRepository,
		provideCourierRepository,

		provideLifecycle,
		provideAssignment,
		provideListing,
		provideSearcher,
		provideVerification,

		providePendingMonitorTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceListing), new(*listing.Searcher)),
		wire.Bind(new(ServiceAssignment), new(*assignment.Assignment)),
		wire.Bind(new(ServiceLifecycle), new(*lifecycle.Lifecycle)),
		wire.Bind(new(ServiceVerification), new(*verification.Verification)),

		wire.Bind(new(lifecycle.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(listing.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(listing.Lister), new(*listing.Listing)),
		wire.Bind(new(verification.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(verification.Lifecycle), new(*lifecycle.Lifecycle)),

		wire.Bind(new(assignment.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignment.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(assignment.Lifecycle), new(*lifecycle.Lifecycle)),
		wire.Bind(new(assignment.TxManager), new(*tx.Manager)),

		wire.Bind(new(pending_monitor.Service), new(*orderRepo.Repository)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-placed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideOrderRepository,
		provideGeocodeGateway,
		provideIntake,

		wire.Bind(new(intake.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(intake.AddressEnricher), new(*geocode.Gateway)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
