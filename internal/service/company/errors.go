package company

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid company name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidEmail          = errors.New("invalid email")

	ErrCompanyNotFound  = errors.New("company not found")
	ErrCompanyNameTaken = errors.New("company name already exists")

	ErrAdminOnly = errors.New("administrative access required")
)
