package arrival_deadline

import (
	"time"

	"fleet/internal/entities"
)

// ArrivalTimeFactory считает плановое время прибытия по приоритету,
// когда диспетчер не задал его явно.
type ArrivalTimeFactory struct{}

func New() *ArrivalTimeFactory {
	return &ArrivalTimeFactory{}
}

func (a *ArrivalTimeFactory) CalculateArrival(priority entities.PriorityType, baseTime time.Time) time.Time {
	resultTime := baseTime
	switch priority {
	case entities.PriorityUrgent:
		resultTime = resultTime.Add(time.Hour * 4)
	case entities.PriorityHigh:
		resultTime = resultTime.Add(time.Hour * 8)
	case entities.PriorityMedium:
		resultTime = resultTime.Add(time.Hour * 24)
	case entities.PriorityLow:
		resultTime = resultTime.Add(time.Hour * 48)
	default:
		resultTime = resultTime.Add(time.Hour * 24)
	}

	return resultTime
}
