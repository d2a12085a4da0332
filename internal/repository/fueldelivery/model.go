package fueldelivery

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

type FuelDeliveryDB struct {
	ID                int64
	JobCardID         int64
	CompanyID         int64
	CompanyName       string
	EmployeeName      string
	PhotoFilename     string
	SignatureFilename string
	Notes             *string
	CreatedAt         time.Time
}

type FuelDeliveryModifyDB struct {
	JobCardID         *int64
	CompanyID         *int64
	CompanyName       *string
	EmployeeName      *string
	PhotoFilename     *string
	SignatureFilename *string
	Notes             *string
}
