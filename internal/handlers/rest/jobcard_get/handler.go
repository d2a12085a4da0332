package jobcard_get

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
	log             handlerLogger
	service         JobCardService
	deliveryService FuelDeliveryService
}

func New(log handlerLogger, service JobCardService, deliveryService FuelDeliveryService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:             handlerLog,
		service:         service,
		deliveryService: deliveryService,
	}
}

// ServeHTTP - детальный экран карточки. Первое открытие водителем
// переводит карточку из assigned в in_progress, после чего заново
// пересчитывается завершенность.
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

	jobCardEntity, err := h.service.OpenJobCard(r.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, jobcard.ErrJobCardNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, jobcard.ErrNotJobCardDriver):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// пересчет завершенности не должен ронять просмотр карточки
	completed, err := h.deliveryService.EvaluateCompletion(r.Context(), id)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("job_card_id", id),
		).Error("evaluate job card completion")
	}
	if completed {
		jobCardEntity.Status = entities.JobCardDelivered
	}

	progress, err := h.deliveryService.StopProgress(r.Context(), id)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.JobCardDetailResponse{
		JobCard: converters.JobCardToDTO(jobCardEntity),
		Stops:   converters.StopProgressListToDTO(progress),
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
