package fueldelivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmployeeName   = errors.New("invalid employee name")
	ErrInvalidImagePayload   = errors.New("invalid image payload")

	ErrDeliveryNotFound         = errors.New("fuel delivery not found")
	ErrDeliveryAlreadySubmitted = errors.New("fuel delivery already submitted")
)
