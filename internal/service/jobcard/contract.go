//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=jobcard_test
package jobcard

import (
	"context"
	"time"

	"fleet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, jobCardModifyEntity entities.JobCardModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.JobCard, error)
	GetByJobNumber(ctx context.Context, jobNumber string) (*entities.JobCard, error)
	GetAll(ctx context.Context) ([]entities.JobCard, error)
	GetAllByDriver(ctx context.Context, driverID int64) ([]entities.JobCard, error)
	Update(ctx context.Context, jobCardModifyEntity entities.JobCardModify) (*entities.JobCard, error)
	Delete(ctx context.Context, id int64) error

	UpdateStatusGuarded(ctx context.Context, id int64, from []entities.JobCardStatusType, to entities.JobCardStatusType) (bool, error)

	ReplaceStops(ctx context.Context, jobCardID int64, stops []entities.CompanyStopModify) error
	GetStops(ctx context.Context, jobCardID int64) ([]entities.CompanyStop, error)

	CountOverdue(ctx context.Context, now time.Time) (int64, error)
}

type ArrivalTimeFactory interface {
	CalculateArrival(priority entities.PriorityType, baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
