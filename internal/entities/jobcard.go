package entities

import "time"

type JobCard struct {
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
	Priority             PriorityType
	PickupTime           *time.Time
	EstimatedArrivalTime *time.Time
	ActualPickupTime     *time.Time
	ActualDeliveryTime   *time.Time
	Status               JobCardStatusType
	Notes                *string
	TotalDistance        *float64
	FuelConsumed         *float64
	TotalCost            *float64
	CreatedBy            *int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type JobCardStatusType string

const (
	JobCardAssigned   JobCardStatusType = "assigned"
	JobCardInProgress JobCardStatusType = "in_progress"
	JobCardInTransit  JobCardStatusType = "in_transit"
	JobCardDelivered  JobCardStatusType = "delivered"
	JobCardCancelled  JobCardStatusType = "cancelled"
)

func (s JobCardStatusType) String() string {
	return string(s)
}

// Terminal сообщает, что из статуса больше нет переходов.
func (s JobCardStatusType) Terminal() bool {
	return s == JobCardDelivered || s == JobCardCancelled
}

type PriorityType string

const (
	PriorityLow    PriorityType = "low"
	PriorityMedium PriorityType = "medium"
	PriorityHigh   PriorityType = "high"
	PriorityUrgent PriorityType = "urgent"
)

const DefaultPriority = PriorityMedium

func (p PriorityType) String() string {
	return string(p)
}

// JobCardEventType - события, которые двигают карточку по жизненному циклу.
type JobCardEventType string

const (
	// EventDetailViewed - водитель открыл карточку (assigned -> in_progress).
	EventDetailViewed JobCardEventType = "detail_viewed"
	// EventDeliveryFormOpened - водитель открыл форму заправки (in_progress -> in_transit).
	EventDeliveryFormOpened JobCardEventType = "delivery_form_opened"
	// EventAllStopsDelivered - все обязательные точки закрыты (-> delivered).
	EventAllStopsDelivered JobCardEventType = "all_stops_delivered"
	// EventCancelled - административная отмена (-> cancelled).
	EventCancelled JobCardEventType = "cancelled"
)

func (e JobCardEventType) String() string {
	return string(e)
}

type JobCardModify struct {
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
	Priority             *PriorityType
	PickupTime           *time.Time
	EstimatedArrivalTime *time.Time
	ActualPickupTime     *time.Time
	ActualDeliveryTime   *time.Time
	Status               *JobCardStatusType
	Notes                *string
	TotalDistance        *float64
	FuelConsumed         *float64
	TotalCost            *float64
	CreatedBy            *int64
}

// CompanyStop - точка (job card, company) с порядком объезда.
// Непустой FuelType означает, что на точке обязательна заправка.
type CompanyStop struct {
	ID            int64
	JobCardID     int64
	CompanyID     int64
	DeliveryOrder *int32
	FuelType      *string
	CreatedAt     time.Time
}

func (s CompanyStop) RequiresFuel() bool {
	return s.FuelType != nil && *s.FuelType != ""
}

type CompanyStopModify struct {
	CompanyID     int64
	DeliveryOrder *int32
	FuelType      *string
}

// StopProgress - точка с признаком сданной заправки для водительского экрана.
type StopProgress struct {
	Stop        CompanyStop
	CompanyName string
	HasDelivery bool
}

// DispatchActionType - действия из событий диспетчерской системы.
type DispatchActionType string

const (
	DispatchCancel   DispatchActionType = "cancel"
	DispatchFinalize DispatchActionType = "finalize"
)

func (a DispatchActionType) String() string {
	return string(a)
}

type DispatchEvent struct {
	JobNumber string
	Action    DispatchActionType
}
