package jobcard

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/jobcard"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const jobCardColumns = `id, job_number, driver_id, car_id, trailer_id,
	pickup_location, delivery_location, cargo_description, cargo_weight, special_instructions,
	priority, pickup_time, estimated_arrival_time, actual_pickup_time, actual_delivery_time,
	status, notes, total_distance, fuel_consumed, total_cost,
	created_by, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, jobCardModifyEntity entities.JobCardModify) (int64, error) {
	jobCardModifyModel := FromDomainModify(&jobCardModifyEntity)

	values := map[string]interface{}{
		"job_number":        jobCardModifyModel.JobNumber,
		"driver_id":         jobCardModifyModel.DriverID,
		"car_id":            jobCardModifyModel.CarID,
		"pickup_location":   jobCardModifyModel.PickupLocation,
		"delivery_location": jobCardModifyModel.DeliveryLocation,
		"cargo_description": jobCardModifyModel.CargoDescription,
		"priority":          jobCardModifyModel.Priority,
		"status":            jobCardModifyModel.Status,
	}

	// опциональные поля
	if jobCardModifyModel.TrailerID != nil {
		values["trailer_id"] = jobCardModifyModel.TrailerID
	}
	if jobCardModifyModel.CargoWeight != nil {
		values["cargo_weight"] = jobCardModifyModel.CargoWeight
	}
	if jobCardModifyModel.SpecialInstructions != nil {
		values["special_instructions"] = jobCardModifyModel.SpecialInstructions
	}
	if jobCardModifyModel.PickupTime != nil {
		values["pickup_time"] = jobCardModifyModel.PickupTime
	}
	if jobCardModifyModel.EstimatedArrivalTime != nil {
		values["estimated_arrival_time"] = jobCardModifyModel.EstimatedArrivalTime
	}
	if jobCardModifyModel.Notes != nil {
		values["notes"] = jobCardModifyModel.Notes
	}
	if jobCardModifyModel.TotalDistance != nil {
		values["total_distance"] = jobCardModifyModel.TotalDistance
	}
	if jobCardModifyModel.CreatedBy != nil {
		values["created_by"] = jobCardModifyModel.CreatedBy
	}

	query, args, err := qb.
		Insert("job_card").
		SetMap(values).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected job card repository create error: %w", err)
	}

	var id int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, jobcard.ErrJobNumberConflict
		}
		return 0, fmt.Errorf("unexpected job card repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, jobCardModifyEntity entities.JobCardModify) (*entities.JobCard, error) {
	jobCardModifyModel := FromDomainModify(&jobCardModifyEntity)

	builder := qb.
		Update("job_card")

	// опциональные поля
	if jobCardModifyModel.JobNumber != nil {
		builder = builder.Set("job_number", jobCardModifyModel.JobNumber)
	}
	if jobCardModifyModel.DriverID != nil {
		builder = builder.Set("driver_id", jobCardModifyModel.DriverID)
	}
	if jobCardModifyModel.CarID != nil {
		builder = builder.Set("car_id", jobCardModifyModel.CarID)
	}
	if jobCardModifyModel.TrailerID != nil {
		builder = builder.Set("trailer_id", jobCardModifyModel.TrailerID)
	}
	if jobCardModifyModel.PickupLocation != nil {
		builder = builder.Set("pickup_location", jobCardModifyModel.PickupLocation)
	}
	if jobCardModifyModel.DeliveryLocation != nil {
		builder = builder.Set("delivery_location", jobCardModifyModel.DeliveryLocation)
	}
	if jobCardModifyModel.CargoDescription != nil {
		builder = builder.Set("cargo_description", jobCardModifyModel.CargoDescription)
	}
	if jobCardModifyModel.CargoWeight != nil {
		builder = builder.Set("cargo_weight", jobCardModifyModel.CargoWeight)
	}
	if jobCardModifyModel.SpecialInstructions != nil {
		builder = builder.Set("special_instructions", jobCardModifyModel.SpecialInstructions)
	}
	if jobCardModifyModel.Priority != nil {
		builder = builder.Set("priority", jobCardModifyModel.Priority)
	}
	if jobCardModifyModel.PickupTime != nil {
		builder = builder.Set("pickup_time", jobCardModifyModel.PickupTime)
	}
	if jobCardModifyModel.EstimatedArrivalTime != nil {
		builder = builder.Set("estimated_arrival_time", jobCardModifyModel.EstimatedArrivalTime)
	}
	if jobCardModifyModel.ActualPickupTime != nil {
		builder = builder.Set("actual_pickup_time", jobCardModifyModel.ActualPickupTime)
	}
	if jobCardModifyModel.ActualDeliveryTime != nil {
		builder = builder.Set("actual_delivery_time", jobCardModifyModel.ActualDeliveryTime)
	}
	if jobCardModifyModel.Status != nil {
		builder = builder.Set("status", jobCardModifyModel.Status)
	}
	if jobCardModifyModel.Notes != nil {
		builder = builder.Set("notes", jobCardModifyModel.Notes)
	}
	if jobCardModifyModel.TotalDistance != nil {
		builder = builder.Set("total_distance", jobCardModifyModel.TotalDistance)
	}
	if jobCardModifyModel.FuelConsumed != nil {
		builder = builder.Set("fuel_consumed", jobCardModifyModel.FuelConsumed)
	}
	if jobCardModifyModel.TotalCost != nil {
		builder = builder.Set("total_cost", jobCardModifyModel.TotalCost)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": jobCardModifyModel.ID}).
		Suffix("RETURNING " + jobCardColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected job card repository update error: %w", err)
	}

	jobCardModel, err := scanJobCard(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, jobcard.ErrJobCardNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, jobcard.ErrJobNumberConflict
		}
		return nil, fmt.Errorf("unexpected job card repository update error: %w", err)
	}

	return ToDomain(jobCardModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.JobCard, error) {
	query := `SELECT ` + jobCardColumns + `
		FROM job_card
		WHERE id = $1`

	jobCardModel, err := scanJobCard(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, jobcard.ErrJobCardNotFound
		}
		return nil, fmt.Errorf("unexpected job card repository getbyid error: %w", err)
	}

	return ToDomain(jobCardModel), nil
}

func (r *Repository) GetByJobNumber(ctx context.Context, jobNumber string) (*entities.JobCard, error) {
	query := `SELECT ` + jobCardColumns + `
		FROM job_card
		WHERE job_number = $1`

	jobCardModel, err := scanJobCard(r.querier.QueryRow(ctx, query, jobNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, jobcard.ErrJobCardNotFound
		}
		return nil, fmt.Errorf("unexpected job card repository getbyjobnumber error: %w", err)
	}

	return ToDomain(jobCardModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.JobCard, error) {
	query := `SELECT ` + jobCardColumns + `
		FROM job_card
		ORDER BY created_at DESC, id DESC`

	return r.queryList(ctx, query)
}

func (r *Repository) GetAllByDriver(ctx context.Context, driverID int64) ([]entities.JobCard, error) {
	query := `SELECT ` + jobCardColumns + `
		FROM job_card
		WHERE driver_id = $1
		ORDER BY created_at DESC, id DESC`

	return r.queryList(ctx, query, driverID)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM job_card WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected job card repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return jobcard.ErrJobCardNotFound
	}

	return nil
}

// UpdateStatusGuarded переводит карточку в to, только если текущий статус
// входит в from. Guard в самом UPDATE, поэтому конкурентные повторы одного
// события применят переход ровно один раз.
func (r *Repository) UpdateStatusGuarded(ctx context.Context, id int64, from []entities.JobCardStatusType, to entities.JobCardStatusType) (bool, error) {
	query := `UPDATE job_card
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = ANY($3)`

	fromStatuses := make([]string, len(from))
	for i, status := range from {
		fromStatuses[i] = status.String()
	}

	result, err := r.querier.Exec(ctx, query, to.String(), id, fromStatuses)
	if err != nil {
		return false, fmt.Errorf("unexpected job card repository updatestatus error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) ReplaceStops(ctx context.Context, jobCardID int64, stops []entities.CompanyStopModify) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM job_card_company WHERE job_card_id = $1`, jobCardID)
	if err != nil {
		return fmt.Errorf("unexpected job card repository replacestops error: %w", err)
	}

	query := `INSERT INTO job_card_company (job_card_id, company_id, delivery_order, fuel_type)
		VALUES ($1, $2, $3, $4)`

	for _, stop := range stops {
		_, err = r.querier.Exec(ctx, query, jobCardID, stop.CompanyID, stop.DeliveryOrder, stop.FuelType)
		if err != nil {
			if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
				return jobcard.ErrDuplicateStopCompany
			}
			return fmt.Errorf("unexpected job card repository replacestops error: %w", err)
		}
	}

	return nil
}

func (r *Repository) GetStops(ctx context.Context, jobCardID int64) ([]entities.CompanyStop, error) {
	query := `SELECT id, job_card_id, company_id, delivery_order, fuel_type, created_at
		FROM job_card_company
		WHERE job_card_id = $1
		ORDER BY delivery_order NULLS LAST, company_id`

	rows, err := r.querier.Query(ctx, query, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("unexpected job card repository getstops error: %w", err)
	}
	defer rows.Close()

	stopModels := make([]CompanyStopDB, 0, 4)
	for rows.Next() {
		var stopModel CompanyStopDB
		err = rows.Scan(
			&stopModel.ID,
			&stopModel.JobCardID,
			&stopModel.CompanyID,
			&stopModel.DeliveryOrder,
			&stopModel.FuelType,
			&stopModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected job card repository getstops error: %w", err)
		}
		stopModels = append(stopModels, stopModel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected job card repository getstops error: %w", err)
	}

	return StopsToDomainList(stopModels), nil
}

func (r *Repository) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `SELECT COUNT(*)
		FROM job_card
		WHERE estimated_arrival_time < $1
		  AND status NOT IN ('delivered', 'cancelled')`

	var count int64
	err := r.querier.QueryRow(ctx, query, now).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected job card repository countoverdue error: %w", err)
	}

	return count, nil
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.JobCard, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected job card repository list error: %w", err)
	}
	defer rows.Close()

	jobCardModels := make([]JobCardDB, 0, 8)
	for rows.Next() {
		jobCardModel, err := scanJobCard(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected job card repository list error: %w", err)
		}
		jobCardModels = append(jobCardModels, *jobCardModel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected job card repository list error: %w", err)
	}

	return ToDomainList(jobCardModels), nil
}

func scanJobCard(row pgx.Row) (*JobCardDB, error) {
	var jobCardModel JobCardDB
	err := row.Scan(
		&jobCardModel.ID,
		&jobCardModel.JobNumber,
		&jobCardModel.DriverID,
		&jobCardModel.CarID,
		&jobCardModel.TrailerID,
		&jobCardModel.PickupLocation,
		&jobCardModel.DeliveryLocation,
		&jobCardModel.CargoDescription,
		&jobCardModel.CargoWeight,
		&jobCardModel.SpecialInstructions,
		&jobCardModel.Priority,
		&jobCardModel.PickupTime,
		&jobCardModel.EstimatedArrivalTime,
		&jobCardModel.ActualPickupTime,
		&jobCardModel.ActualDeliveryTime,
		&jobCardModel.Status,
		&jobCardModel.Notes,
		&jobCardModel.TotalDistance,
		&jobCardModel.FuelConsumed,
		&jobCardModel.TotalCost,
		&jobCardModel.CreatedBy,
		&jobCardModel.CreatedAt,
		&jobCardModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &jobCardModel, nil
}
