package company_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/entities"
	"fleet/internal/generated/dto"
	"fleet/internal/pkg/middlewares/auth"
	"fleet/internal/service/company"
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

	var companyDTO dto.CompanyCreate
	err := json.NewDecoder(r.Body).Decode(&companyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	companyModifyEntity := entities.CompanyModify{
		Name:          &companyDTO.Name,
		Address:       companyDTO.Address,
		ContactPerson: companyDTO.ContactPerson,
		Phone:         companyDTO.Phone,
		Email:         companyDTO.Email,
		IsActive:      companyDTO.IsActive,
	}

	id, err := h.service.CreateCompany(r.Context(), actor, companyModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, company.ErrMissingRequiredFields),
			errors.Is(err, company.ErrInvalidName),
			errors.Is(err, company.ErrInvalidPhone),
			errors.Is(err, company.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, company.ErrAdminOnly):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, company.ErrCompanyNameTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CompanyCreateResponse{
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
