package jobcard_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var jobCardDTO dto.JobCardUpdate
	err = json.NewDecoder(r.Body).Decode(&jobCardDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	jobCardModifyEntity := entities.JobCardModify{
		ID:                   &id,
		JobNumber:            jobCardDTO.JobNumber,
		DriverID:             jobCardDTO.DriverID,
		CarID:                jobCardDTO.CarID,
		TrailerID:            jobCardDTO.TrailerID,
		PickupLocation:       jobCardDTO.PickupLocation,
		DeliveryLocation:     jobCardDTO.DeliveryLocation,
		CargoDescription:     jobCardDTO.CargoDescription,
		CargoWeight:          jobCardDTO.CargoWeight,
		SpecialInstructions:  jobCardDTO.SpecialInstructions,
		PickupTime:           jobCardDTO.PickupTime,
		EstimatedArrivalTime: jobCardDTO.EstimatedArrivalTime,
		Notes:                jobCardDTO.Notes,
		TotalDistance:        jobCardDTO.TotalDistance,
		FuelConsumed:         jobCardDTO.FuelConsumed,
		TotalCost:            jobCardDTO.TotalCost,
	}
	if jobCardDTO.Priority != nil {
		priority := entities.PriorityType(*jobCardDTO.Priority)
		jobCardModifyEntity.Priority = &priority
	}

	var stops []entities.CompanyStopModify
	if jobCardDTO.Stops != nil {
		stops = converters.StopsFromDTO(*jobCardDTO.Stops)
		if stops == nil {
			stops = []entities.CompanyStopModify{}
		}
	}

	jobCardEntity, err := h.service.UpdateJobCard(r.Context(), actor, jobCardModifyEntity, stops)
	if err != nil {
		switch {
		case errors.Is(err, jobcard.ErrMissingRequiredFields),
			errors.Is(err, jobcard.ErrInvalidJobNumber),
			errors.Is(err, jobcard.ErrInvalidPriority),
			errors.Is(err, jobcard.ErrDuplicateStopCompany):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, jobcard.ErrAdminOnly):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, jobcard.ErrJobCardNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, jobcard.ErrJobNumberConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(converters.JobCardToDTO(jobCardEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
