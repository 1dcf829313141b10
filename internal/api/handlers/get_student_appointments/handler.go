package get_student_appointments

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/SaimAkramGill/bewanted/internal/api/handlers"
)

const (
	msgInvalidEmail  = "invalid student email"
	msgInternalError = "internal server error"
)

// Handler обработчик списка записей студента
type Handler struct {
	appointmentService AppointmentService
	companyService     CompanyService
	logger             Logger
}

// NewHandler создает новый обработчик записей студента
func NewHandler(appointmentService AppointmentService, companyService CompanyService, logger Logger) *Handler {
	return &Handler{
		appointmentService: appointmentService,
		companyService:     companyService,
		logger:             logger,
	}
}

// Handle обрабатывает GET /api/v1/students/{email}/appointments.
// Возвращает все записи студента, включая отменённые.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if !strings.Contains(email, "@") {
		handlers.RespondBadRequest(w, msgInvalidEmail)
		return
	}

	list, err := h.appointmentService.GetStudentAppointments(r.Context(), email)
	if err != nil {
		h.logger.Error("GET /students/{email}/appointments - Failed to get appointments: email=%s, error=%v",
			email, err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	// Имена компаний подтягиваем с кэшем на запрос: у студента обычно
	// несколько записей к одной и той же паре компаний
	names := make(map[int64]string, len(list))
	appointments := make([]AppointmentResponse, 0, len(list))
	for _, apt := range list {
		name, ok := names[apt.CompanyID]
		if !ok {
			if company, err := h.companyService.GetByID(r.Context(), apt.CompanyID); err == nil {
				name = company.Name
			}
			names[apt.CompanyID] = name
		}
		appointments = append(appointments, FromDomainAppointment(apt, name))
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		StudentEmail: strings.ToLower(strings.TrimSpace(email)),
		Appointments: appointments,
		Total:        len(appointments),
	})
}
