package get_fair_stats

import (
	"github.com/SaimAkramGill/bewanted/internal/service/stats"
)

// CompanyStatResponse популярность компании
type CompanyStatResponse struct {
	CompanyID   int64  `json:"companyId"`
	CompanyName string `json:"companyName"`
	Bookings    int    `json:"bookings"`
}

// FieldStatResponse распределение по направлению обучения
type FieldStatResponse struct {
	FieldOfStudy string `json:"fieldOfStudy"`
	Bookings     int    `json:"bookings"`
}

// Response сводная статистика ярмарки
type Response struct {
	UniqueStudents        int                   `json:"uniqueStudents"`
	ScheduledAppointments int                   `json:"scheduledAppointments"`
	CompletedAppointments int                   `json:"completedAppointments"`
	CancelledAppointments int                   `json:"cancelledAppointments"`
	NoShowAppointments    int                   `json:"noShowAppointments"`
	ActiveCompanies       int                   `json:"activeCompanies"`
	PopularCompanies      []CompanyStatResponse `json:"popularCompanies"`
	FieldDistribution     []FieldStatResponse   `json:"fieldDistribution"`
}

// FromServiceStats конвертирует статистику сервиса в ответ API
func FromServiceStats(s *stats.FairStats) Response {
	popular := make([]CompanyStatResponse, 0, len(s.PopularCompanies))
	for _, c := range s.PopularCompanies {
		popular = append(popular, CompanyStatResponse{
			CompanyID:   c.CompanyID,
			CompanyName: c.CompanyName,
			Bookings:    c.Bookings,
		})
	}

	fields := make([]FieldStatResponse, 0, len(s.FieldDistribution))
	for _, f := range s.FieldDistribution {
		fields = append(fields, FieldStatResponse{
			FieldOfStudy: f.FieldOfStudy,
			Bookings:     f.Bookings,
		})
	}

	return Response{
		UniqueStudents:        s.UniqueStudents,
		ScheduledAppointments: s.ScheduledAppointments,
		CompletedAppointments: s.CompletedAppointments,
		CancelledAppointments: s.CancelledAppointments,
		NoShowAppointments:    s.NoShowAppointments,
		ActiveCompanies:       s.ActiveCompanies,
		PopularCompanies:      popular,
		FieldDistribution:     fields,
	}
}
