package jobcard_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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

	jobCardEntity, err := h.service.CancelJobCard(r.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, jobcard.ErrAdminOnly):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, jobcard.ErrJobCardNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, jobcard.ErrAlreadyDelivered):
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
