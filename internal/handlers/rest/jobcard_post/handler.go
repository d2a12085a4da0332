package jobcard_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/entities"
	"fleet/internal/generated/dto"
	"fleet/internal/handlers/rest/converters"
	"fleet/internal/pkg/middlewares/auth"
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

	var jobCardDTO dto.JobCardCreate
	err := json.NewDecoder(r.Body).Decode(&jobCardDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	jobCardModifyEntity := entities.JobCardModify{
		JobNumber:            &jobCardDTO.JobNumber,
		DriverID:             &jobCardDTO.DriverID,
		CarID:                &jobCardDTO.CarID,
		TrailerID:            jobCardDTO.TrailerID,
		PickupLocation:       &jobCardDTO.PickupLocation,
		DeliveryLocation:     &jobCardDTO.DeliveryLocation,
		CargoDescription:     &jobCardDTO.CargoDescription,
		CargoWeight:          jobCardDTO.CargoWeight,
		SpecialInstructions:  jobCardDTO.SpecialInstructions,
		PickupTime:           jobCardDTO.PickupTime,
		EstimatedArrivalTime: jobCardDTO.EstimatedArrivalTime,
		Notes:                jobCardDTO.Notes,
		TotalDistance:        jobCardDTO.TotalDistance,
	}
	if jobCardDTO.Priority != nil {
		priority := entities.PriorityType(*jobCardDTO.Priority)
		jobCardModifyEntity.Priority = &priority
	}

	id, err := h.service.CreateJobCard(r.Context(), actor, jobCardModifyEntity, converters.StopsFromDTO(jobCardDTO.Stops))
	if err != nil {
		switch {
		case errors.Is(err, jobcard.ErrMissingRequiredFields),
			errors.Is(err, jobcard.ErrInvalidJobNumber),
			errors.Is(err, jobcard.ErrInvalidPriority),
			errors.Is(err, jobcard.ErrDuplicateStopCompany):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, jobcard.ErrAdminOnly),
			errors.Is(err, jobcard.ErrSuperAdminOnly):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, jobcard.ErrJobNumberConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.JobCardCreateResponse{
		ID: id,
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
