package fueldelivery

import (
	"fleet/internal/entities"
)

func ToDomain(f *FuelDeliveryDB) *entities.FuelDelivery {
	if f == nil {
		return nil
	}

	return &entities.FuelDelivery{
		ID:                f.ID,
		JobCardID:         f.JobCardID,
		CompanyID:         f.CompanyID,
		CompanyName:       f.CompanyName,
		EmployeeName:      f.EmployeeName,
		PhotoFilename:     f.PhotoFilename,
		SignatureFilename: f.SignatureFilename,
		Notes:             f.Notes,
		CreatedAt:         f.CreatedAt,
	}
}

func FromDomainModify(fuelDeliveryModify *entities.FuelDeliveryModify) *FuelDeliveryModifyDB {
	if fuelDeliveryModify == nil {
		return nil
	}

	return &FuelDeliveryModifyDB{
		JobCardID:         fuelDeliveryModify.JobCardID,
		CompanyID:         fuelDeliveryModify.CompanyID,
		CompanyName:       fuelDeliveryModify.CompanyName,
		EmployeeName:      fuelDeliveryModify.EmployeeName,
		PhotoFilename:     fuelDeliveryModify.PhotoFilename,
		SignatureFilename: fuelDeliveryModify.SignatureFilename,
		Notes:             fuelDeliveryModify.Notes,
	}
}

func ToDomainList(fuelDeliveriesDB []FuelDeliveryDB) []entities.FuelDelivery {
	if len(fuelDeliveriesDB) == 0 {
		return []entities.FuelDelivery{}
	}

	result := make([]entities.FuelDelivery, len(fuelDeliveriesDB))
	for i, fuelDeliveryDB := range fuelDeliveriesDB {
		result[i] = *ToDomain(&fuelDeliveryDB)
	}
	return result
}
