package fueldelivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/entities"
	"fleet/internal/generated/dto"
	"fleet/internal/pkg/middlewares/auth"
	"fleet/internal/service/company"
	"fleet/internal/service/fueldelivery"
	"fleet/internal/service/jobcard"
	"fleet/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var fuelDeliveryDTO dto.FuelDeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&fuelDeliveryDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	submission := entities.FuelDeliverySubmission{
		JobCardID:     fuelDeliveryDTO.JobCardID,
		CompanyID:     fuelDeliveryDTO.CompanyID,
		EmployeeName:  fuelDeliveryDTO.EmployeeName,
		PhotoData:     fuelDeliveryDTO.PhotoData,
		SignatureData: fuelDeliveryDTO.SignatureData,
		Notes:         fuelDeliveryDTO.Notes,
	}

	fuelDeliveryEntity, err := h.service.SubmitDelivery(r.Context(), actor, submission)
	if err != nil {
		switch {
		case errors.Is(err, fueldelivery.ErrMissingRequiredFields),
			errors.Is(err, fueldelivery.ErrInvalidEmployeeName),
			errors.Is(err, fueldelivery.ErrInvalidImagePayload),
			errors.Is(err, jobcard.ErrNoFuelDeliveryRequired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, jobcard.ErrNotJobCardDriver):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, jobcard.ErrJobCardNotFound),
			errors.Is(err, jobcard.ErrStopNotFound),
			errors.Is(err, company.ErrCompanyNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, fueldelivery.ErrDeliveryAlreadySubmitted):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FuelDeliveryCreateResponse{
		ID:                fuelDeliveryEntity.ID,
		PhotoFilename:     fuelDeliveryEntity.PhotoFilename,
		SignatureFilename: fuelDeliveryEntity.SignatureFilename,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
