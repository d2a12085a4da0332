package company

import (
	"fleet/internal/entities"
)

func ToDomain(c *CompanyDB) *entities.Company {
	if c == nil {
		return nil
	}

	companyEntity := &entities.Company{
		ID:        c.ID,
		Name:      c.Name,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}

	if c.Address != nil {
		companyEntity.Address = *c.Address
	}
	if c.ContactPerson != nil {
		companyEntity.ContactPerson = *c.ContactPerson
	}
	if c.Phone != nil {
		companyEntity.Phone = *c.Phone
	}
	if c.Email != nil {
		companyEntity.Email = *c.Email
	}

	return companyEntity
}

func FromDomainModify(companyModify *entities.CompanyModify) *CompanyModifyDB {
	if companyModify == nil {
		return nil
	}

	return &CompanyModifyDB{
		ID:            companyModify.ID,
		Name:          companyModify.Name,
		Address:       companyModify.Address,
		ContactPerson: companyModify.ContactPerson,
		Phone:         companyModify.Phone,
		Email:         companyModify.Email,
		IsActive:      companyModify.IsActive,
	}
}

func ToDomainList(companiesDB []CompanyDB) []entities.Company {
	if len(companiesDB) == 0 {
		return []entities.Company{}
	}

	result := make([]entities.Company, len(companiesDB))
	for i, companyDB := range companiesDB {
		result[i] = *ToDomain(&companyDB)
	}
	return result
}
