// Package converters - маппинг доменных сущностей в ответы HTTP API.
package converters

import (
	"fleet/internal/entities"
	"fleet/internal/generated/dto"
)

func JobCardToDTO(jobCardEntity *entities.JobCard) dto.JobCard {
	return dto.JobCard{
		ID:                   jobCardEntity.ID,
		JobNumber:            jobCardEntity.JobNumber,
		DriverID:             jobCardEntity.DriverID,
		CarID:                jobCardEntity.CarID,
		TrailerID:            jobCardEntity.TrailerID,
		PickupLocation:       jobCardEntity.PickupLocation,
		DeliveryLocation:     jobCardEntity.DeliveryLocation,
		CargoDescription:     jobCardEntity.CargoDescription,
		CargoWeight:          jobCardEntity.CargoWeight,
		SpecialInstructions:  jobCardEntity.SpecialInstructions,
		Priority:             jobCardEntity.Priority.String(),
		PickupTime:           jobCardEntity.PickupTime,
		EstimatedArrivalTime: jobCardEntity.EstimatedArrivalTime,
		ActualPickupTime:     jobCardEntity.ActualPickupTime,
		ActualDeliveryTime:   jobCardEntity.ActualDeliveryTime,
		Status:               jobCardEntity.Status.String(),
		Notes:                jobCardEntity.Notes,
		TotalDistance:        jobCardEntity.TotalDistance,
		FuelConsumed:         jobCardEntity.FuelConsumed,
		TotalCost:            jobCardEntity.TotalCost,
		CreatedAt:            jobCardEntity.CreatedAt,
		UpdatedAt:            jobCardEntity.UpdatedAt,
	}
}

func JobCardsToDTO(jobCardEntities []entities.JobCard) []dto.JobCard {
	result := make([]dto.JobCard, len(jobCardEntities))
	for i := range jobCardEntities {
		result[i] = JobCardToDTO(&jobCardEntities[i])
	}
	return result
}

func StopProgressToDTO(progress entities.StopProgress) dto.StopProgress {
	return dto.StopProgress{
		CompanyID:     progress.Stop.CompanyID,
		CompanyName:   progress.CompanyName,
		DeliveryOrder: progress.Stop.DeliveryOrder,
		FuelType:      progress.Stop.FuelType,
		HasDelivery:   progress.HasDelivery,
	}
}

func StopProgressListToDTO(progressList []entities.StopProgress) []dto.StopProgress {
	result := make([]dto.StopProgress, len(progressList))
	for i, progress := range progressList {
		result[i] = StopProgressToDTO(progress)
	}
	return result
}

func FuelDeliveryToDTO(fuelDeliveryEntity *entities.FuelDelivery) dto.FuelDelivery {
	return dto.FuelDelivery{
		ID:                fuelDeliveryEntity.ID,
		JobCardID:         fuelDeliveryEntity.JobCardID,
		CompanyID:         fuelDeliveryEntity.CompanyID,
		CompanyName:       fuelDeliveryEntity.CompanyName,
		EmployeeName:      fuelDeliveryEntity.EmployeeName,
		PhotoFilename:     fuelDeliveryEntity.PhotoFilename,
		SignatureFilename: fuelDeliveryEntity.SignatureFilename,
		Notes:             fuelDeliveryEntity.Notes,
		CreatedAt:         fuelDeliveryEntity.CreatedAt,
	}
}

func CompanyToDTO(companyEntity *entities.Company) dto.Company {
	return dto.Company{
		ID:            companyEntity.ID,
		Name:          companyEntity.Name,
		Address:       companyEntity.Address,
		ContactPerson: companyEntity.ContactPerson,
		Phone:         companyEntity.Phone,
		Email:         companyEntity.Email,
		IsActive:      companyEntity.IsActive,
		CreatedAt:     companyEntity.CreatedAt,
	}
}

func CompaniesToDTO(companyEntities []entities.Company) []dto.Company {
	result := make([]dto.Company, len(companyEntities))
	for i := range companyEntities {
		result[i] = CompanyToDTO(&companyEntities[i])
	}
	return result
}

func StopsFromDTO(stopsDTO []dto.CompanyStopInput) []entities.CompanyStopModify {
	if stopsDTO == nil {
		return nil
	}

	result := make([]entities.CompanyStopModify, len(stopsDTO))
	for i, stopDTO := range stopsDTO {
		result[i] = entities.CompanyStopModify{
			CompanyID:     stopDTO.CompanyID,
			DeliveryOrder: stopDTO.DeliveryOrder,
			FuelType:      stopDTO.FuelType,
		}
	}
	return result
}
