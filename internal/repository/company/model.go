package company

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

type CompanyDB struct {
	ID            int64
	Name          string
	Address       *string
	ContactPerson *string
	Phone         *string
	Email         *string
	IsActive      bool
	CreatedAt     time.Time
}

type CompanyModifyDB struct {
	ID            *int64
	Name          *string
	Address       *string
	ContactPerson *string
	Phone         *string
	Email         *string
	IsActive      *bool
}
