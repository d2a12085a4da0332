//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=jobcard_put_test
package jobcard_put

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
	UpdateJobCard(ctx context.Context, actor entities.Actor, jobCardModifyEntity entities.JobCardModify, stops []entities.CompanyStopModify) (*entities.JobCard, error)
}
