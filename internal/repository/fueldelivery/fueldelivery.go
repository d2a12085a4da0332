package fueldelivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/fueldelivery"
)

const fuelDeliveryColumns = `id, job_card_id, company_id, company_name, employee_name,
	photo_filename, signature_filename, notes, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, fuelDeliveryModifyEntity entities.FuelDeliveryModify) (*entities.FuelDelivery, error) {
	fuelDeliveryModifyModel := FromDomainModify(&fuelDeliveryModifyEntity)

	query := `INSERT INTO fuel_delivery
			(job_card_id, company_id, company_name, employee_name, photo_filename, signature_filename, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + fuelDeliveryColumns

	fuelDeliveryModel, err := scanFuelDelivery(r.querier.QueryRow(
		ctx,
		query,
		fuelDeliveryModifyModel.JobCardID,
		fuelDeliveryModifyModel.CompanyID,
		fuelDeliveryModifyModel.CompanyName,
		fuelDeliveryModifyModel.EmployeeName,
		fuelDeliveryModifyModel.PhotoFilename,
		fuelDeliveryModifyModel.SignatureFilename,
		fuelDeliveryModifyModel.Notes,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fueldelivery.ErrDeliveryAlreadySubmitted
		}
		return nil, fmt.Errorf("unexpected fuel delivery repository create error: %w", err)
	}

	return ToDomain(fuelDeliveryModel), nil
}

func (r *Repository) GetByJobCardAndCompany(ctx context.Context, jobCardID, companyID int64) (*entities.FuelDelivery, error) {
	query := `SELECT ` + fuelDeliveryColumns + `
		FROM fuel_delivery
		WHERE job_card_id = $1 AND company_id = $2`

	fuelDeliveryModel, err := scanFuelDelivery(r.querier.QueryRow(ctx, query, jobCardID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fueldelivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected fuel delivery repository get error: %w", err)
	}

	return ToDomain(fuelDeliveryModel), nil
}

func (r *Repository) GetAllByJobCard(ctx context.Context, jobCardID int64) ([]entities.FuelDelivery, error) {
	query := `SELECT ` + fuelDeliveryColumns + `
		FROM fuel_delivery
		WHERE job_card_id = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuel delivery repository getall error: %w", err)
	}
	defer rows.Close()

	fuelDeliveryModels := make([]FuelDeliveryDB, 0, 4)
	for rows.Next() {
		fuelDeliveryModel, err := scanFuelDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected fuel delivery repository getall error: %w", err)
		}
		fuelDeliveryModels = append(fuelDeliveryModels, *fuelDeliveryModel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected fuel delivery repository getall error: %w", err)
	}

	return ToDomainList(fuelDeliveryModels), nil
}

func scanFuelDelivery(row pgx.Row) (*FuelDeliveryDB, error) {
	var fuelDeliveryModel FuelDeliveryDB
	err := row.Scan(
		&fuelDeliveryModel.ID,
		&fuelDeliveryModel.JobCardID,
		&fuelDeliveryModel.CompanyID,
		&fuelDeliveryModel.CompanyName,
		&fuelDeliveryModel.EmployeeName,
		&fuelDeliveryModel.PhotoFilename,
		&fuelDeliveryModel.SignatureFilename,
		&fuelDeliveryModel.Notes,
		&fuelDeliveryModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &fuelDeliveryModel, nil
}
