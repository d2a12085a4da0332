//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=company_post_test
package company_post

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
	CreateCompany(ctx context.Context, actor entities.Actor, companyModifyEntity entities.CompanyModify) (int64, error)
}
