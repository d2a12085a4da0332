package fueldelivery_form_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fleet/internal/generated/dto"
	"fleet/internal/handlers/rest/converters"
	"fleet/internal/pkg/middlewares/auth"
	"fleet/internal/service/company"
	"fleet/internal/service/fueldelivery"
	"fleet/internal/service/jobcard"
	"fleet/pkg/logger"
)

type Handler struct {
	log             handlerLogger
	service         JobCardService
	deliveryService FuelDeliveryService
	companyService  CompanyService
}

func New(log handlerLogger, service JobCardService, deliveryService FuelDeliveryService, companyService CompanyService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:             handlerLog,
		service:         service,
		deliveryService: deliveryService,
		companyService:  companyService,
	}
}

// ServeHTTP - форма заправки по точке. Открытие формы переводит карточку
// из in_progress в in_transit; уже сданная заправка возвращается в ответе,
// чтобы форма показала ее вместо пустых полей.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	jobCardID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	companyID, err := strconv.ParseInt(vars["company_id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	jobCardEntity, stop, err := h.service.OpenDeliveryForm(r.Context(), actor, jobCardID, companyID)
	if err != nil {
		switch {
		case errors.Is(err, jobcard.ErrJobCardNotFound),
			errors.Is(err, jobcard.ErrStopNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, jobcard.ErrNotJobCardDriver):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, jobcard.ErrNoFuelDeliveryRequired):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	companyEntity, err := h.companyService.GetCompany(r.Context(), companyID)
	if err != nil {
		switch {
		case errors.Is(err, company.ErrCompanyNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryFormResponse{
		JobCard: converters.JobCardToDTO(jobCardEntity),
		Stop: dto.StopProgress{
			CompanyID:     stop.CompanyID,
			CompanyName:   companyEntity.Name,
			DeliveryOrder: stop.DeliveryOrder,
			FuelType:      stop.FuelType,
		},
	}

	existing, err := h.deliveryService.GetDelivery(r.Context(), actor, jobCardID, companyID)
	switch {
	case err == nil:
		existingDTO := converters.FuelDeliveryToDTO(existing)
		response.ExistingDelivery = &existingDTO
		response.Stop.HasDelivery = true
	case errors.Is(err, fueldelivery.ErrDeliveryNotFound):
	default:
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
