package jobcard

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type JobCardDB struct {
	ID                   int64
	JobNumber            string
	DriverID             int64
	CarID                int64
	TrailerID            *int64
	PickupLocation       string
	DeliveryLocation     string
	CargoDescription     string
	CargoWeight          *float64
	SpecialInstructions  *string
	Priority             string
	PickupTime           *time.Time
	EstimatedArrivalTime *time.Time
	ActualPickupTime     *time.Time
	ActualDeliveryTime   *time.Time
	Status               string
	Notes                *string
	TotalDistance        *float64
	FuelConsumed         *float64
	TotalCost            *float64
	CreatedBy            *int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type JobCardModifyDB struct {
	ID                   *int64
	JobNumber            *string
	DriverID             *int64
	CarID                *int64
	TrailerID            *int64
	PickupLocation       *string
	DeliveryLocation     *string
	CargoDescription     *string
	CargoWeight          *float64
	SpecialInstructions  *string
	Priority             *string
	PickupTime           *time.Time
	EstimatedArrivalTime *time.Time
	ActualPickupTime     *time.Time
	ActualDeliveryTime   *time.Time
	Status               *string
	Notes                *string
	TotalDistance        *float64
	FuelConsumed         *float64
	TotalCost            *float64
	CreatedBy            *int64
}

type CompanyStopDB struct {
	ID            int64
	JobCardID     int64
	CompanyID     int64
	DeliveryOrder *int32
	FuelType      *string
	CreatedAt     time.Time
}
