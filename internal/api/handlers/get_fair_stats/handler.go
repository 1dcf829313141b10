package get_fair_stats

import (
	"net/http"

	"github.com/SaimAkramGill/bewanted/internal/api/handlers"
)

const msgInternalError = "internal server error"

// Handler обработчик статистики ярмарки
type Handler struct {
	statsService StatsService
	logger       Logger
}

// NewHandler создает новый обработчик статистики
func NewHandler(statsService StatsService, logger Logger) *Handler {
	return &Handler{
		statsService: statsService,
		logger:       logger,
	}
}

// Handle обрабатывает GET /api/v1/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.GetFairStats(r.Context())
	if err != nil {
		h.logger.Error("GET /stats - Failed to collect fair stats: error=%v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceStats(result))
}
