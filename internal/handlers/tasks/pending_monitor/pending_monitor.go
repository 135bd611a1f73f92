package pending_monitor

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/pkg/metrics"
	"fulfillment/pkg/logger"
)

type Service interface {
	CountByStatus(ctx context.Context) (map[entities.DeliveryStatusType]int64, error)
}

// PendingMonitor периодически снимает распределение доставок по статусам
// и выставляет gauge. Заказы не трогает, только читает.
type PendingMonitor struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPendingMonitor(log logger.Logger, service Service, interval time.Duration) *PendingMonitor {
	return &PendingMonitor{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PendingMonitor) TTL() time.Duration {
	return p.interval
}

func (p *PendingMonitor) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	counts, err := p.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	statuses := []entities.DeliveryStatusType{
		entities.DeliveryPending,
		entities.DeliveryAssigned,
		entities.DeliveryOutForDelivery,
		entities.DeliveryDelivered,
		entities.DeliveryCancelled,
	}

	// статусы без строк обнуляем, иначе gauge залипает на старом значении
	for _, status := range statuses {
		metrics.DeliveriesByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	if counts[entities.DeliveryPending] > 0 {
		p.log.With(
			logger.NewField("pending_orders", counts[entities.DeliveryPending]),
		).Info("pending orders monitor")
	}

	return nil
}

func (p *PendingMonitor) Info() string {
	return "pending orders monitor"
}
