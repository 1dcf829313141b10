package register_student

import (
	"errors"
	"net/http"

	"github.com/SaimAkramGill/bewanted/internal/api/handlers"
	registerStudent "github.com/SaimAkramGill/bewanted/internal/usecase/register_student"
)

const (
	msgInvalidBody   = "invalid request body"
	msgInternalError = "internal server error"
)

// Handler обработчик регистрации студента
type Handler struct {
	useCase UseCase
	logger  Logger
}

// NewHandler создает новый обработчик регистрации
func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle обрабатывает POST /api/v1/register.
// 201 если хотя бы одна запись создана, 409 если все отклонены.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Debug("POST /register - Invalid request body: error=%v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, registerStudent.ErrValidation),
			errors.Is(err, registerStudent.ErrNoSelections):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /register - Failed to register student: email=%s, error=%v",
				req.Email, err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	status := http.StatusCreated
	if result.AllRejected() {
		status = http.StatusConflict
	}

	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
