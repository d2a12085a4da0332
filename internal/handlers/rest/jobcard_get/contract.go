//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=jobcard_get_test
package jobcard_get

import (
	"context"

	"fleet/internal/entities"
	"fleet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type JobCardService interface {
	OpenJobCard(ctx context.Context, actor entities.Actor, jobCardID int64) (*entities.JobCard, error)
}

type FuelDeliveryService interface {
	EvaluateCompletion(ctx context.Context, jobCardID int64) (bool, error)
	StopProgress(ctx context.Context, jobCardID int64) ([]entities.StopProgress, error)
}
