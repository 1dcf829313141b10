package update_company_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SaimAkramGill/bewanted/internal/api/handlers"
	"github.com/SaimAkramGill/bewanted/internal/service/companies"
)

const (
	msgInvalidCompanyID = "invalid company id"
	msgInvalidBody      = "invalid request body"
	msgCompanyNotFound  = "company not found"
	msgInternalError    = "internal server error"
)

// Handler обработчик обновления конфигурации компании (административный)
type Handler struct {
	companyService CompanyService
	logger         Logger
}

// NewHandler создает новый обработчик конфигурации
func NewHandler(companyService CompanyService, logger Logger) *Handler {
	return &Handler{
		companyService: companyService,
		logger:         logger,
	}
}

// Handle обрабатывает PUT /api/v1/companies/{companyId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.ParseInt(mux.Vars(r)["companyId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Debug("PUT /companies/{id}/config - Invalid request body: error=%v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.companyService.UpdateConfig(r.Context(), companyID, req.ToConfigUpdate())
	if err != nil {
		switch {
		case errors.Is(err, companies.ErrCompanyNotFound):
			handlers.RespondNotFound(w, msgCompanyNotFound)
		case errors.Is(err, companies.ErrInvalidCapacity),
			errors.Is(err, companies.ErrInvalidInterviewUnit),
			errors.Is(err, companies.ErrEmptyUpdate):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PUT /companies/{id}/config - Failed to update config: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainCompany(updated))
}
