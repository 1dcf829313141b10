package list_companies

import (
	"net/http"

	"github.com/SaimAkramGill/bewanted/internal/api/handlers"
)

const msgInternalError = "internal server error"

// Handler обработчик списка компаний-участников
type Handler struct {
	companyService CompanyService
	logger         Logger
}

// NewHandler создает новый обработчик списка компаний
func NewHandler(companyService CompanyService, logger Logger) *Handler {
	return &Handler{
		companyService: companyService,
		logger:         logger,
	}
}

// Handle обрабатывает GET /api/v1/companies.
// Query параметр bookable=true скрывает компании с закрытой записью.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyBookable := r.URL.Query().Get("bookable") == "true"

	list, err := h.companyService.List(r.Context(), onlyBookable)
	if err != nil {
		h.logger.Error("GET /companies - Failed to list companies: bookable=%t, error=%v", onlyBookable, err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	companies := make([]CompanyResponse, 0, len(list))
	for _, c := range list {
		companies = append(companies, FromDomainCompany(c))
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Companies: companies,
		Total:     len(companies),
	})
}
