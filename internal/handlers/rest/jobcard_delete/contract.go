//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=jobcard_delete_test
package jobcard_delete

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

type Service interface {
	DeleteJobCard(ctx context.Context, actor entities.Actor, jobCardID int64) error
}
