package company

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/company"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const companyColumns = `id, name, address, contact_person, phone, email, is_active, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, companyModifyEntity entities.CompanyModify) (int64, error) {
	companyModifyModel := FromDomainModify(&companyModifyEntity)

	query := `INSERT INTO company (name, address, contact_person, phone, email, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		companyModifyModel.Name,
		companyModifyModel.Address,
		companyModifyModel.ContactPerson,
		companyModifyModel.Phone,
		companyModifyModel.Email,
		companyModifyModel.IsActive,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, company.ErrCompanyNameTaken
		}
		return 0, fmt.Errorf("unexpected company repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, companyModifyEntity entities.CompanyModify) (*entities.Company, error) {
	companyModifyModel := FromDomainModify(&companyModifyEntity)

	builder := qb.
		Update("company")

	// опциональные поля
	if companyModifyModel.Name != nil {
		builder = builder.Set("name", companyModifyModel.Name)
	}
	if companyModifyModel.Address != nil {
		builder = builder.Set("address", companyModifyModel.Address)
	}
	if companyModifyModel.ContactPerson != nil {
		builder = builder.Set("contact_person", companyModifyModel.ContactPerson)
	}
	if companyModifyModel.Phone != nil {
		builder = builder.Set("phone", companyModifyModel.Phone)
	}
	if companyModifyModel.Email != nil {
		builder = builder.Set("email", companyModifyModel.Email)
	}
	if companyModifyModel.IsActive != nil {
		builder = builder.Set("is_active", companyModifyModel.IsActive)
	}

	builder = builder.
		Where(sq.Eq{"id": companyModifyModel.ID}).
		Suffix("RETURNING " + companyColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected company repository update error: %w", err)
	}

	companyModel, err := scanCompany(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, company.ErrCompanyNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, company.ErrCompanyNameTaken
		}
		return nil, fmt.Errorf("unexpected company repository update error: %w", err)
	}

	return ToDomain(companyModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Company, error) {
	query := `SELECT ` + companyColumns + `
		FROM company
		WHERE id = $1`

	companyModel, err := scanCompany(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, company.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("unexpected company repository getbyid error: %w", err)
	}

	return ToDomain(companyModel), nil
}

func (r *Repository) GetAll(ctx context.Context, onlyActive bool) ([]entities.Company, error) {
	builder := qb.
		Select("id", "name", "address", "contact_person", "phone", "email", "is_active", "created_at").
		From("company").
		OrderBy("name", "id")

	if onlyActive {
		builder = builder.Where(sq.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected company repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected company repository getall error: %w", err)
	}
	defer rows.Close()

	companyModels := make([]CompanyDB, 0, 8)
	for rows.Next() {
		companyModel, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected company repository getall error: %w", err)
		}
		companyModels = append(companyModels, *companyModel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected company repository getall error: %w", err)
	}

	return ToDomainList(companyModels), nil
}

func scanCompany(row pgx.Row) (*CompanyDB, error) {
	var companyModel CompanyDB
	err := row.Scan(
		&companyModel.ID,
		&companyModel.Name,
		&companyModel.Address,
		&companyModel.ContactPerson,
		&companyModel.Phone,
		&companyModel.Email,
		&companyModel.IsActive,
		&companyModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &companyModel, nil
}
