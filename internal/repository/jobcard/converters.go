package jobcard

import (
	"fleet/internal/entities"
)

func ToDomain(j *JobCardDB) *entities.JobCard {
	if j == nil {
		return nil
	}

	return &entities.JobCard{
		ID:                   j.ID,
		JobNumber:            j.JobNumber,
		DriverID:             j.DriverID,
		CarID:                j.CarID,
		TrailerID:            j.TrailerID,
		PickupLocation:       j.PickupLocation,
		DeliveryLocation:     j.DeliveryLocation,
		CargoDescription:     j.CargoDescription,
		CargoWeight:          j.CargoWeight,
		SpecialInstructions:  j.SpecialInstructions,
		Priority:             entities.PriorityType(j.Priority),
		PickupTime:           j.PickupTime,
		EstimatedArrivalTime: j.EstimatedArrivalTime,
		ActualPickupTime:     j.ActualPickupTime,
		ActualDeliveryTime:   j.ActualDeliveryTime,
		Status:               entities.JobCardStatusType(j.Status),
		Notes:                j.Notes,
		TotalDistance:        j.TotalDistance,
		FuelConsumed:         j.FuelConsumed,
		TotalCost:            j.TotalCost,
		CreatedBy:            j.CreatedBy,
		CreatedAt:            j.CreatedAt,
		UpdatedAt:            j.UpdatedAt,
	}
}

func FromDomainModify(jobCardModify *entities.JobCardModify) *JobCardModifyDB {
	if jobCardModify == nil {
		return nil
	}

	jobCardDB := &JobCardModifyDB{
		ID:                   jobCardModify.ID,
		JobNumber:            jobCardModify.JobNumber,
		DriverID:             jobCardModify.DriverID,
		CarID:                jobCardModify.CarID,
		TrailerID:            jobCardModify.TrailerID,
		PickupLocation:       jobCardModify.PickupLocation,
		DeliveryLocation:     jobCardModify.DeliveryLocation,
		CargoDescription:     jobCardModify.CargoDescription,
		CargoWeight:          jobCardModify.CargoWeight,
		SpecialInstructions:  jobCardModify.SpecialInstructions,
		PickupTime:           jobCardModify.PickupTime,
		EstimatedArrivalTime: jobCardModify.EstimatedArrivalTime,
		ActualPickupTime:     jobCardModify.ActualPickupTime,
		ActualDeliveryTime:   jobCardModify.ActualDeliveryTime,
		Notes:                jobCardModify.Notes,
		TotalDistance:        jobCardModify.TotalDistance,
		FuelConsumed:         jobCardModify.FuelConsumed,
		TotalCost:            jobCardModify.TotalCost,
		CreatedBy:            jobCardModify.CreatedBy,
	}

	if jobCardModify.Priority != nil {
		priority := jobCardModify.Priority.String()
		jobCardDB.Priority = &priority
	}
	if jobCardModify.Status != nil {
		status := jobCardModify.Status.String()
		jobCardDB.Status = &status
	}

	return jobCardDB
}

func ToDomainList(jobCardsDB []JobCardDB) []entities.JobCard {
	if len(jobCardsDB) == 0 {
		return []entities.JobCard{}
	}

	result := make([]entities.JobCard, len(jobCardsDB))
	for i, jobCardDB := range jobCardsDB {
		result[i] = *ToDomain(&jobCardDB)
	}
	return result
}

func StopToDomain(s *CompanyStopDB) *entities.CompanyStop {
	if s == nil {
		return nil
	}

	return &entities.CompanyStop{
		ID:            s.ID,
		JobCardID:     s.JobCardID,
		CompanyID:     s.CompanyID,
		DeliveryOrder: s.DeliveryOrder,
		FuelType:      s.FuelType,
		CreatedAt:     s.CreatedAt,
	}
}

func StopsToDomainList(stopsDB []CompanyStopDB) []entities.CompanyStop {
	if len(stopsDB) == 0 {
		return []entities.CompanyStop{}
	}

	result := make([]entities.CompanyStop, len(stopsDB))
	for i, stopDB := range stopsDB {
		result[i] = *StopToDomain(&stopDB)
	}
	return result
}
