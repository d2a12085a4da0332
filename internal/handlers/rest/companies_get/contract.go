//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=companies_get_test
package companies_get

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
	GetCompanies(ctx context.Context, onlyActive bool) ([]entities.Company, error)
}
