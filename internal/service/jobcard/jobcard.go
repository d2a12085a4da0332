package jobcard

import (
	"context"
	"fmt"
	"time"

	"fleet/internal/entities"
)

type JobCard struct {
	repository  Repository
	timeFactory ArrivalTimeFactory
	txManager   TxManager
}

func New(repository Repository, timeFactory ArrivalTimeFactory, txManager TxManager) *JobCard {
	return &JobCard{
		repository:  repository,
		timeFactory: timeFactory,
		txManager:   txManager,
	}
}

func (s *JobCard) CreateJobCard(ctx context.Context, actor entities.Actor, jobCardModify entities.JobCardModify, stops []entities.CompanyStopModify) (int64, error) {
	if !actor.IsSuperAdmin() {
		return 0, ErrSuperAdminOnly
	}

	if jobCardModify.JobNumber == nil ||
		jobCardModify.DriverID == nil ||
		jobCardModify.CarID == nil ||
		jobCardModify.PickupLocation == nil ||
		jobCardModify.DeliveryLocation == nil ||
		jobCardModify.CargoDescription == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidJobNumber(*jobCardModify.JobNumber) {
		return 0, ErrInvalidJobNumber
	}
	if !isValidLocation(*jobCardModify.PickupLocation) || !isValidLocation(*jobCardModify.DeliveryLocation) {
		return 0, ErrMissingRequiredFields
	}
	if jobCardModify.Priority == nil {
		priority := entities.DefaultPriority
		jobCardModify.Priority = &priority
	}
	if !isValidPriority(jobCardModify.Priority.String()) {
		return 0, ErrInvalidPriority
	}
	if hasDuplicateStopCompany(stops) {
		return 0, ErrDuplicateStopCompany
	}

	status := entities.JobCardAssigned
	jobCardModify.Status = &status
	jobCardModify.CreatedBy = &actor.UserID

	if jobCardModify.EstimatedArrivalTime == nil {
		baseTime := time.Now().UTC()
		if jobCardModify.PickupTime != nil {
			baseTime = *jobCardModify.PickupTime
		}
		arrival := s.timeFactory.CalculateArrival(*jobCardModify.Priority, baseTime)
		jobCardModify.EstimatedArrivalTime = &arrival
	}

	var id int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.repository.Create(ctx, jobCardModify)
		if err != nil {
			return fmt.Errorf("create job card: %w", err)
		}

		if err = s.repository.ReplaceStops(ctx, id, stops); err != nil {
			return fmt.Errorf("replace stops: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *JobCard) UpdateJobCard(ctx context.Context, actor entities.Actor, jobCardModify entities.JobCardModify, stops []entities.CompanyStopModify) (*entities.JobCard, error) {
	if !actor.CanAdministrate() {
		return nil, ErrAdminOnly
	}
	if jobCardModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if jobCardModify.JobNumber != nil && !isValidJobNumber(*jobCardModify.JobNumber) {
		return nil, ErrInvalidJobNumber
	}
	if jobCardModify.Priority != nil && !isValidPriority(jobCardModify.Priority.String()) {
		return nil, ErrInvalidPriority
	}
	if hasDuplicateStopCompany(stops) {
		return nil, ErrDuplicateStopCompany
	}

	var jobCard *entities.JobCard
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		jobCard, err = s.repository.Update(ctx, jobCardModify)
		if err != nil {
			return fmt.Errorf("update job card: %w", err)
		}

		// nil означает "точки не трогаем", пустой слайс - "снести все".
		if stops != nil {
			if err = s.repository.ReplaceStops(ctx, jobCard.ID, stops); err != nil {
				return fmt.Errorf("replace stops: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobCard, nil
}

// OpenJobCard - водитель открыл карточку. Первый просмотр переводит
// assigned -> in_progress, все последующие просмотры ничего не меняют.
func (s *JobCard) OpenJobCard(ctx context.Context, actor entities.Actor, jobCardID int64) (*entities.JobCard, error) {
	jobCard, err := s.repository.GetByID(ctx, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("get job card: %w", err)
	}
	if !actor.OwnsJobCard(jobCard) {
		return nil, ErrNotJobCardDriver
	}

	jobCard, _, err = s.Advance(ctx, jobCardID, entities.EventDetailViewed)
	if err != nil {
		return nil, err
	}
	return jobCard, nil
}

// OpenDeliveryForm - водитель открыл форму заправки по точке.
// Форма существует только для точек с заправкой; открытие переводит
// in_progress -> in_transit.
func (s *JobCard) OpenDeliveryForm(ctx context.Context, actor entities.Actor, jobCardID, companyID int64) (*entities.JobCard, *entities.CompanyStop, error) {
	jobCard, err := s.repository.GetByID(ctx, jobCardID)
	if err != nil {
		return nil, nil, fmt.Errorf("get job card: %w", err)
	}
	if !actor.OwnsJobCard(jobCard) {
		return nil, nil, ErrNotJobCardDriver
	}

	stop, err := s.findStop(ctx, jobCardID, companyID)
	if err != nil {
		return nil, nil, err
	}
	if !stop.RequiresFuel() {
		return nil, nil, ErrNoFuelDeliveryRequired
	}

	jobCard, _, err = s.Advance(ctx, jobCardID, entities.EventDeliveryFormOpened)
	if err != nil {
		return nil, nil, err
	}
	return jobCard, stop, nil
}

func (s *JobCard) GetJobCard(ctx context.Context, actor entities.Actor, jobCardID int64) (*entities.JobCard, error) {
	jobCard, err := s.repository.GetByID(ctx, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("get job card: %w", err)
	}
	if !actor.CanAdministrate() && !actor.OwnsJobCard(jobCard) {
		return nil, ErrNotJobCardDriver
	}
	return jobCard, nil
}

func (s *JobCard) ListJobCards(ctx context.Context, actor entities.Actor) ([]entities.JobCard, error) {
	if actor.CanAdministrate() {
		jobCards, err := s.repository.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("get job cards: %w", err)
		}
		return jobCards, nil
	}

	if !actor.IsDriver() || actor.EmployeeID == nil {
		return nil, ErrDriverOnly
	}

	jobCards, err := s.repository.GetAllByDriver(ctx, *actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("get job cards by driver: %w", err)
	}
	return jobCards, nil
}

func (s *JobCard) GetJobCardStops(ctx context.Context, jobCardID int64) ([]entities.CompanyStop, error) {
	stops, err := s.repository.GetStops(ctx, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("get stops: %w", err)
	}
	return stops, nil
}

func (s *JobCard) CancelJobCard(ctx context.Context, actor entities.Actor, jobCardID int64) (*entities.JobCard, error) {
	if !actor.CanAdministrate() {
		return nil, ErrAdminOnly
	}

	jobCard, err := s.repository.GetByID(ctx, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("get job card: %w", err)
	}
	if jobCard.Status == entities.JobCardDelivered {
		return nil, ErrAlreadyDelivered
	}

	// повторная отмена - no-op, карточка уже в нужном состоянии
	jobCard, _, err = s.Advance(ctx, jobCardID, entities.EventCancelled)
	if err != nil {
		return nil, err
	}
	return jobCard, nil
}

// FinalizeJobCard - административное закрытие карточки в delivered
// без проверки точек. Используется диспетчерской, когда карточка
// завершена вне обычного потока.
func (s *JobCard) FinalizeJobCard(ctx context.Context, actor entities.Actor, jobCardID int64) (*entities.JobCard, error) {
	if !actor.CanAdministrate() {
		return nil, ErrAdminOnly
	}

	jobCard, err := s.repository.GetByID(ctx, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("get job card: %w", err)
	}
	if jobCard.Status == entities.JobCardCancelled {
		return nil, ErrAlreadyCancelled
	}

	jobCard, _, err = s.Advance(ctx, jobCardID, entities.EventAllStopsDelivered)
	if err != nil {
		return nil, err
	}
	return jobCard, nil
}

func (s *JobCard) DeleteJobCard(ctx context.Context, actor entities.Actor, jobCardID int64) error {
	if !actor.CanAdministrate() {
		return ErrAdminOnly
	}

	if err := s.repository.Delete(ctx, jobCardID); err != nil {
		return fmt.Errorf("delete job card: %w", err)
	}
	return nil
}

// Advance применяет событие жизненного цикла к карточке. Неприменимое
// событие - no-op, возвращается актуальная карточка и changed == false.
// Guard по исходным статусам уходит в SQL, поэтому конкурентные повторы
// одного события переход не задвоят.
func (s *JobCard) Advance(ctx context.Context, jobCardID int64, event entities.JobCardEventType) (*entities.JobCard, bool, error) {
	jobCard, err := s.repository.GetByID(ctx, jobCardID)
	if err != nil {
		return nil, false, fmt.Errorf("get job card: %w", err)
	}

	next, ok := Next(jobCard.Status, event)
	if !ok {
		return jobCard, false, nil
	}

	changed, err := s.repository.UpdateStatusGuarded(ctx, jobCardID, AllowedFrom(event), next)
	if err != nil {
		return nil, false, fmt.Errorf("update status: %w", err)
	}
	if !changed {
		// кто-то успел раньше, отдаем то, что уже в базе
		jobCard, err = s.repository.GetByID(ctx, jobCardID)
		if err != nil {
			return nil, false, fmt.Errorf("get job card: %w", err)
		}
		return jobCard, false, nil
	}

	// переход меняет только статус и updated_at, остальные поля
	// (включая actual_delivery_time) правит административная форма
	jobCard.Status = next
	return jobCard, true, nil
}

// ProcessDispatchEvent обрабатывает событие внешней диспетчерской системы.
func (s *JobCard) ProcessDispatchEvent(ctx context.Context, event entities.DispatchEvent) error {
	jobCard, err := s.repository.GetByJobNumber(ctx, event.JobNumber)
	if err != nil {
		return fmt.Errorf("get job card by number: %w", err)
	}

	var lifecycleEvent entities.JobCardEventType
	switch event.Action {
	case entities.DispatchCancel:
		lifecycleEvent = entities.EventCancelled
	case entities.DispatchFinalize:
		lifecycleEvent = entities.EventAllStopsDelivered
	default:
		return fmt.Errorf("%w: %s", ErrUndefinedAction, event.Action)
	}

	if _, _, err = s.Advance(ctx, jobCard.ID, lifecycleEvent); err != nil {
		return fmt.Errorf("advance job card %d: %w", jobCard.ID, err)
	}
	return nil
}

func (s *JobCard) CountOverdueJobCards(ctx context.Context) (int64, error) {
	count, err := s.repository.CountOverdue(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("count overdue: %w", err)
	}
	return count, nil
}

func (s *JobCard) findStop(ctx context.Context, jobCardID, companyID int64) (*entities.CompanyStop, error) {
	stops, err := s.repository.GetStops(ctx, jobCardID)
	if err != nil {
		return nil, fmt.Errorf("get stops: %w", err)
	}
	for i := range stops {
		if stops[i].CompanyID == companyID {
			return &stops[i], nil
		}
	}
	return nil, ErrStopNotFound
}

func hasDuplicateStopCompany(stops []entities.CompanyStopModify) bool {
	seen := make(map[int64]struct{}, len(stops))
	for _, stop := range stops {
		if _, ok := seen[stop.CompanyID]; ok {
			return true
		}
		seen[stop.CompanyID] = struct{}{}
	}
	return false
}
