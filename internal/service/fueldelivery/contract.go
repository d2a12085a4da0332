//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fueldelivery_test
package fueldelivery

import (
	"context"

	"fleet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, fuelDeliveryModifyEntity entities.FuelDeliveryModify) (*entities.FuelDelivery, error)
	GetByJobCardAndCompany(ctx context.Context, jobCardID, companyID int64) (*entities.FuelDelivery, error)
	GetAllByJobCard(ctx context.Context, jobCardID int64) ([]entities.FuelDelivery, error)
}

type JobCardSource interface {
	GetByID(ctx context.Context, id int64) (*entities.JobCard, error)
	GetStops(ctx context.Context, jobCardID int64) ([]entities.CompanyStop, error)
}

type CompanySource interface {
	GetByID(ctx context.Context, id int64) (*entities.Company, error)
}

type JobCardService interface {
	Advance(ctx context.Context, jobCardID int64, event entities.JobCardEventType) (*entities.JobCard, bool, error)
}

type BlobStorage interface {
	Store(ctx context.Context, filename string, data []byte) (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
