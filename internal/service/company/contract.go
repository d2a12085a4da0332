//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=company_test
package company

import (
	"context"

	"fleet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, companyModifyEntity entities.CompanyModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Company, error)
	GetAll(ctx context.Context, onlyActive bool) ([]entities.Company, error)
	Update(ctx context.Context, companyModifyEntity entities.CompanyModify) (*entities.Company, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
