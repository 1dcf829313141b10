package cancel_appointment

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SaimAkramGill/bewanted/internal/api/handlers"
	"github.com/SaimAkramGill/bewanted/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgAppointmentNotFound  = "appointment not found"
	msgInternalError        = "internal server error"
)

// Handler обработчик отмены записи
type Handler struct {
	appointmentService AppointmentService
	logger             Logger
}

// NewHandler создает новый обработчик отмены
func NewHandler(appointmentService AppointmentService, logger Logger) *Handler {
	return &Handler{
		appointmentService: appointmentService,
		logger:             logger,
	}
}

// Handle обрабатывает PATCH /api/v1/appointments/{appointmentId}/cancel.
// Отмена идемпотентна: повторный запрос возвращает 200 без изменений.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Тело опционально: отмена без причины валидна
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Debug("PATCH /appointments/{id}/cancel - Invalid request body: error=%v", err)
		handlers.RespondBadRequest(w, "invalid request body")
		return
	}

	apt, err := h.appointmentService.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, appointments.ErrReasonTooLong):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, appointments.ErrInvalidTransition):
			handlers.RespondConflict(w, err.Error())
		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%d, error=%v",
				id, err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainAppointment(apt))
}
