package jobcard

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidJobNumber      = errors.New("invalid job number")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrDuplicateStopCompany  = errors.New("duplicate company in stops")

	ErrJobCardNotFound   = errors.New("job card not found")
	ErrStopNotFound      = errors.New("company stop not found")
	ErrJobNumberConflict = errors.New("job number already exists")

	ErrAdminOnly        = errors.New("administrative access required")
	ErrSuperAdminOnly   = errors.New("super admin access required")
	ErrDriverOnly       = errors.New("driver access required")
	ErrNotJobCardDriver = errors.New("job card assigned to another driver")

	ErrNoFuelDeliveryRequired = errors.New("no fuel delivery required at this stop")
	ErrAlreadyDelivered       = errors.New("job card already delivered")
	ErrAlreadyCancelled       = errors.New("job card already cancelled")
	ErrUndefinedAction        = errors.New("undefined dispatch action")
)
