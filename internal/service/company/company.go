package company

import (
	"context"
	"fmt"

	"fleet/internal/entities"
)

type Company struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Company {
	return &Company{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Company) CreateCompany(ctx context.Context, actor entities.Actor, companyModify entities.CompanyModify) (int64, error) {
	if !actor.CanAdministrate() {
		return 0, ErrAdminOnly
	}

	if companyModify.Name == nil {
		return 0, ErrMissingRequiredFields
	}
	if !isValidName(*companyModify.Name) {
		return 0, ErrInvalidName
	}
	if companyModify.Phone != nil && !isValidPhone(*companyModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if companyModify.Email != nil && !isValidEmail(*companyModify.Email) {
		return 0, ErrInvalidEmail
	}
	if companyModify.IsActive == nil {
		active := true
		companyModify.IsActive = &active
	}

	id, err := s.repository.Create(ctx, companyModify)
	if err != nil {
		return 0, fmt.Errorf("create company: %w", err)
	}
	return id, nil
}

func (s *Company) UpdateCompany(ctx context.Context, actor entities.Actor, companyModify entities.CompanyModify) (*entities.Company, error) {
	if !actor.CanAdministrate() {
		return nil, ErrAdminOnly
	}

	if companyModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if companyModify.Name != nil && !isValidName(*companyModify.Name) {
		return nil, ErrInvalidName
	}
	if companyModify.Phone != nil && !isValidPhone(*companyModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if companyModify.Email != nil && !isValidEmail(*companyModify.Email) {
		return nil, ErrInvalidEmail
	}

	company, err := s.repository.Update(ctx, companyModify)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return company, nil
}

func (s *Company) GetCompany(ctx context.Context, id int64) (*entities.Company, error) {
	company, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return company, nil
}

func (s *Company) GetCompanies(ctx context.Context, onlyActive bool) ([]entities.Company, error) {
	companies, err := s.repository.GetAll(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("get companies: %w", err)
	}
	return companies, nil
}
