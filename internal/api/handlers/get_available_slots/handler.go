package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SaimAkramGill/bewanted/internal/api/handlers"
	getAvailableSlots "github.com/SaimAkramGill/bewanted/internal/usecase/get_available_slots"
)

const (
	msgInvalidCompanyID   = "invalid company id"
	msgCompanyNotFound    = "company not found"
	msgBookingUnavailable = "booking is not available for this company"
	msgInternalError      = "internal server error"
)

// Handler обработчик запроса сетки доступности
type Handler struct {
	useCase UseCase
	logger  Logger
}

// NewHandler создает новый обработчик сетки доступности
func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/v1/companies/{companyId}/available-slots.
// Необязательный query параметр studentEmail включает проверку конфликтов.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.ParseInt(mux.Vars(r)["companyId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	req := getAvailableSlots.Request{
		CompanyID:    companyID,
		StudentEmail: r.URL.Query().Get("studentEmail"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrCompanyNotFound):
			handlers.RespondNotFound(w, msgCompanyNotFound)
		case errors.Is(err, getAvailableSlots.ErrBookingUnavailable):
			handlers.RespondConflict(w, msgBookingUnavailable)
		case errors.Is(err, getAvailableSlots.ErrInvalidEmail):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET /companies/{id}/available-slots - Failed to get slots: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
