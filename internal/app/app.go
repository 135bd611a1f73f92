package app

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fulfillment/internal/entities"
	"fulfillment/internal/gateway/geocode"
	deliveries_get "fulfillment/internal/handlers/rest/deliveries_get"
	delivery_assign_post "fulfillment/internal/handlers/rest/delivery_assign_post"
	delivery_status_put "fulfillment/internal/handlers/rest/delivery_status_put"
	delivery_verify_post "fulfillment/internal/handlers/rest/delivery_verify_post"
	payment_reference_get "fulfillment/internal/handlers/rest/payment_reference_get"
	"fulfillment/internal/handlers/tasks/pending_monitor"
	"fulfillment/internal/pkg/config"

	courierRepo "fulfillment/internal/repository/courier"
	orderRepo "fulfillment/internal/repository/order"
	"fulfillment/internal/service/assignment"
	"fulfillment/internal/service/intake"
	"fulfillment/internal/service/lifecycle"
	"fulfillment/internal/service/listing"
	"fulfillment/internal/service/verification"

	"fulfillment/pkg/background"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/querier"
	"fulfillment/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
)

type (
	MonitorInterval time.Duration
)

type Application struct {
	ServiceListing      ServiceListing
	ServiceAssignment   ServiceAssignment
	ServiceLifecycle    ServiceLifecycle
	ServiceVerification ServiceVerification
	BackgroundWorkers   *background.Worker
}

type ServiceListing interface {
	deliveries_get.Service
}

type ServiceAssignment interface {
	delivery_assign_post.Service
}

type ServiceLifecycle interface {
	delivery_status_put.Service
}

type ServiceVerification interface {
	delivery_verify_post.Service
	payment_reference_get.Service
}

type KafkaWorkerApp struct {
	IntakeService *intake.Intake
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideLifecycle(repository lifecycle.Repository) *lifecycle.Lifecycle {
	return lifecycle.New(repository)
}

func provideAssignment(
	orderRepository assignment.OrderRepository,
	courierRepository assignment.CourierRepository,
	lc assignment.Lifecycle,
	txManager assignment.TxManager,
) *assignment.Assignment {
	return assignment.New(orderRepository, courierRepository, lc, txManager)
}

func provideListing(repository listing.Repository) *listing.Listing {
	return listing.New(repository)
}

func provideSearcher(lister listing.Lister) *listing.Searcher {
	return listing.NewSearcher(lister)
}

func provideVerification(
	repository verification.Repository,
	lc verification.Lifecycle,
	cfg *config.Config,
) *verification.Verification {
	return verification.New(repository, lc, cfg.Payments.PayeeVPA, cfg.Payments.PayeeName)
}

func provideGeocodeGateway(cfg *config.Config) *geocode.Gateway {
	return geocode.New(&http.Client{}, geocode.Config{
		Endpoint: cfg.Geocoder.Endpoint,
		Timeout:  cfg.Geocoder.Timeout,
		Fallback: entities.Coordinates{
			Latitude:  cfg.Geocoder.FallbackLat,
			Longitude: cfg.Geocoder.FallbackLng,
		},
	})
}

func provideIntake(repository intake.Repository, enricher intake.AddressEnricher) *intake.Intake {
	return intake.New(repository, enricher)
}

func provideMonitorInterval(cfg *config.Config) MonitorInterval {
	return MonitorInterval(cfg.Tasks.PendingOrdersMonitorInterval)
}

func providePendingMonitorTask(
	log logger.Logger,
	orderService pending_monitor.Service,
	interval MonitorInterval,
) *pending_monitor.PendingMonitor {
	return pending_monitor.NewPendingMonitor(log, orderService, time.Duration(interval))
}

func provideTaskList(
	pendingMonitorTask *pending_monitor.PendingMonitor,
) []background.Task {
	return []background.Task{
		pendingMonitorTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
