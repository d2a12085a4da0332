package overdue_watch

import (
	"context"
	"time"

	"fleet/pkg/logger"
)

type Service interface {
	CountOverdueJobCards(ctx context.Context) (int64, error)
}

// OverdueWatch - периодическая задача: считает незакрытые карточки
// с просроченным временем прибытия и выставляет gauge-метрику.
type OverdueWatch struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOverdueWatch(log logger.Logger, service Service, interval time.Duration) *OverdueWatch {
	return &OverdueWatch{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OverdueWatch) TTL() time.Duration {
	return o.interval
}

func (o *OverdueWatch) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	count, err := o.service.CountOverdueJobCards(ctxWithTimeout)
	if err != nil {
		return err
	}

	OverdueJobCards.Set(float64(count))

	if count > 0 {
		o.log.With(
			logger.NewField("overdue_job_cards", count),
		).Warn("overdue watch")
	}

	return nil
}

func (o *OverdueWatch) Info() string {
	return "overdue job card watch"
}
