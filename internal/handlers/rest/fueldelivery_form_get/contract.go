//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fueldelivery_form_get_test
package fueldelivery_form_get

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
	OpenDeliveryForm(ctx context.Context, actor entities.Actor, jobCardID, companyID int64) (*entities.JobCard, *entities.CompanyStop, error)
}

type FuelDeliveryService interface {
	GetDelivery(ctx context.Context, actor entities.Actor, jobCardID, companyID int64) (*entities.FuelDelivery, error)
}

type CompanyService interface {
	GetCompany(ctx context.Context, id int64) (*entities.Company, error)
}
