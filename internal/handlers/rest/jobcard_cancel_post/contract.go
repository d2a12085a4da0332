//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=jobcard_cancel_post_test
package jobcard_cancel_post

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
	CancelJobCard(ctx context.Context, actor entities.Actor, jobCardID int64) (*entities.JobCard, error)
}
