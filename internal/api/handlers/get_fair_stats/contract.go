package get_fair_stats

import (
	"context"

	"github.com/SaimAkramGill/bewanted/internal/service/stats"
)

// StatsService сервис статистики ярмарки
type StatsService interface {
	GetFairStats(ctx context.Context) (*stats.FairStats, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, args ...interface{})
}
