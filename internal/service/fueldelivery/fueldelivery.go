package fueldelivery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fleet/internal/entities"
	"fleet/internal/service/jobcard"
	"fleet/pkg/logger"
)

type FuelDelivery struct {
	repository     Repository
	jobCards       JobCardSource
	companies      CompanySource
	jobCardService JobCardService
	storage        BlobStorage
	txManager      TxManager
	log            logger.Logger
}

func New(
	repository Repository,
	jobCards JobCardSource,
	companies CompanySource,
	jobCardService JobCardService,
	storage BlobStorage,
	txManager TxManager,
	log logger.Logger,
) *FuelDelivery {
	return &FuelDelivery{
		repository:     repository,
		jobCards:       jobCards,
		companies:      companies,
		jobCardService: jobCardService,
		storage:        storage,
		txManager:      txManager,
		log:            log.With(logger.NewField("component", "fueldelivery_service")),
	}
}

// SubmitDelivery - водитель сдает заправку по точке: фото счетчика,
// подпись сотрудника компании и его имя. Обе картинки декодируются до
// первой записи в хранилище, чтобы неполная форма не оставляла мусора.
func (s *FuelDelivery) SubmitDelivery(ctx context.Context, actor entities.Actor, submission entities.FuelDeliverySubmission) (*entities.FuelDelivery, error) {
	if submission.PhotoData == "" || submission.SignatureData == "" || submission.EmployeeName == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmployeeName(submission.EmployeeName) {
		return nil, ErrInvalidEmployeeName
	}

	jobCardEntity, err := s.jobCards.GetByID(ctx, submission.JobCardID)
	if err != nil {
		return nil, fmt.Errorf("get job card: %w", err)
	}
	if !actor.OwnsJobCard(jobCardEntity) {
		return nil, jobcard.ErrNotJobCardDriver
	}

	stop, err := s.findStop(ctx, submission.JobCardID, submission.CompanyID)
	if err != nil {
		return nil, err
	}
	if !stop.RequiresFuel() {
		return nil, jobcard.ErrNoFuelDeliveryRequired
	}

	company, err := s.companies.GetByID(ctx, submission.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	photo, err := decodeImagePayload(submission.PhotoData)
	if err != nil {
		return nil, fmt.Errorf("decode meter reading photo: %w", err)
	}
	signature, err := decodeImagePayload(submission.SignatureData)
	if err != nil {
		return nil, fmt.Errorf("decode signature: %w", err)
	}

	timestamp := time.Now().UTC().Format("20060102_150405")
	photoFilename := fmt.Sprintf("meter_reading_%d_%d_%s_%s.jpg",
		submission.JobCardID, submission.CompanyID, timestamp, uuid.NewString())
	signatureFilename := fmt.Sprintf("signature_%d_%d_%s_%s.png",
		submission.JobCardID, submission.CompanyID, timestamp, uuid.NewString())

	if photoFilename, err = s.storage.Store(ctx, photoFilename, photo); err != nil {
		return nil, fmt.Errorf("store meter reading photo: %w", err)
	}
	if signatureFilename, err = s.storage.Store(ctx, signatureFilename, signature); err != nil {
		return nil, fmt.Errorf("store signature: %w", err)
	}

	employeeName := submission.EmployeeName
	delivery, err := s.repository.Create(ctx, entities.FuelDeliveryModify{
		JobCardID:         &submission.JobCardID,
		CompanyID:         &submission.CompanyID,
		CompanyName:       &company.Name,
		EmployeeName:      &employeeName,
		PhotoFilename:     &photoFilename,
		SignatureFilename: &signatureFilename,
		Notes:             submission.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("create fuel delivery: %w", err)
	}

	// завершение карточки - производное состояние, его пересчет не должен
	// ломать уже принятую сдачу
	if _, err = s.EvaluateCompletion(ctx, submission.JobCardID); err != nil {
		s.log.Error("evaluate job card completion",
			logger.NewField("job_card_id", submission.JobCardID),
			logger.NewField("error", err.Error()),
		)
	}

	return delivery, nil
}

// EvaluateCompletion пересчитывает завершенность карточки с нуля:
// карточка завершена, когда каждая точка с заправкой покрыта записью
// о сдаче. Результат зависит только от точек и записей, повторный
// вызов на тех же данных дает тот же ответ. Карточка без обязательных
// точек автоматически не закрывается никогда.
func (s *FuelDelivery) EvaluateCompletion(ctx context.Context, jobCardID int64) (bool, error) {
	var completed bool
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		stops, err := s.jobCards.GetStops(ctx, jobCardID)
		if err != nil {
			return fmt.Errorf("get stops: %w", err)
		}

		required := make(map[int64]struct{})
		for _, stop := range stops {
			if stop.RequiresFuel() {
				required[stop.CompanyID] = struct{}{}
			}
		}
		if len(required) == 0 {
			return nil
		}

		deliveries, err := s.repository.GetAllByJobCard(ctx, jobCardID)
		if err != nil {
			return fmt.Errorf("get fuel deliveries: %w", err)
		}
		for _, delivery := range deliveries {
			delete(required, delivery.CompanyID)
		}
		if len(required) > 0 {
			return nil
		}
		completed = true

		// переход идемпотентен: на уже закрытой карточке guard не сработает
		_, _, err = s.jobCardService.Advance(ctx, jobCardID, entities.EventAllStopsDelivered)
		if err != nil {
			return fmt.Errorf("advance job card: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

// StopProgress собирает точки карточки с признаком сданной заправки
// для водительского экрана.
func (s *FuelDelivery) StopProgress(ctx context.Context, jobCardID int64) ([]entities.StopProgress, error) {
	stops, err := s.jobCards.GetStops(ctx, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("get stops: %w", err)
	}

	deliveries, err := s.repository.GetAllByJobCard(ctx, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("get fuel deliveries: %w", err)
	}
	delivered := make(map[int64]struct{}, len(deliveries))
	for _, delivery := range deliveries {
		delivered[delivery.CompanyID] = struct{}{}
	}

	progress := make([]entities.StopProgress, 0, len(stops))
	for _, stop := range stops {
		company, err := s.companies.GetByID(ctx, stop.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("get company %d: %w", stop.CompanyID, err)
		}

		_, hasDelivery := delivered[stop.CompanyID]
		progress = append(progress, entities.StopProgress{
			Stop:        stop,
			CompanyName: company.Name,
			HasDelivery: hasDelivery,
		})
	}
	return progress, nil
}

// GetDelivery возвращает уже сданную заправку по точке, если она есть.
func (s *FuelDelivery) GetDelivery(ctx context.Context, actor entities.Actor, jobCardID, companyID int64) (*entities.FuelDelivery, error) {
	jobCardEntity, err := s.jobCards.GetByID(ctx, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("get job card: %w", err)
	}
	if !actor.CanAdministrate() && !actor.OwnsJobCard(jobCardEntity) {
		return nil, jobcard.ErrNotJobCardDriver
	}

	delivery, err := s.repository.GetByJobCardAndCompany(ctx, jobCardID, companyID)
	if err != nil {
		return nil, fmt.Errorf("get fuel delivery: %w", err)
	}
	return delivery, nil
}

func (s *FuelDelivery) ListDeliveries(ctx context.Context, actor entities.Actor, jobCardID int64) ([]entities.FuelDelivery, error) {
	jobCardEntity, err := s.jobCards.GetByID(ctx, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("get job card: %w", err)
	}
	if !actor.CanAdministrate() && !actor.OwnsJobCard(jobCardEntity) {
		return nil, jobcard.ErrNotJobCardDriver
	}

	deliveries, err := s.repository.GetAllByJobCard(ctx, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("get fuel deliveries: %w", err)
	}
	return deliveries, nil
}

func (s *FuelDelivery) findStop(ctx context.Context, jobCardID, companyID int64) (*entities.CompanyStop, error) {
	stops, err := s.jobCards.GetStops(ctx, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("get stops: %w", err)
	}
	for i := range stops {
		if stops[i].CompanyID == companyID {
			return &stops[i], nil
		}
	}
	return nil, jobcard.ErrStopNotFound
}
