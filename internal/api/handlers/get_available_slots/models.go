package get_available_slots

import (
	getAvailableSlots "github.com/SaimAkramGill/bewanted/internal/usecase/get_available_slots"
)

// SlotResponse один слот сетки
type SlotResponse struct {
	TimeSlot       string `json:"timeSlot"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Capacity       int    `json:"capacity"`
	AvailableSpots int    `json:"availableSpots"`
	Status         string `json:"status"`
}

// Response сетка доступности компании
type Response struct {
	CompanyID       int64          `json:"companyId"`
	CompanyName     string         `json:"companyName"`
	InterviewUnit   string         `json:"interviewUnit"`
	DurationMinutes int            `json:"durationMinutes"`
	EventDate       string         `json:"eventDate"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует результат usecase в ответ API
func FromUseCaseResponse(res *getAvailableSlots.Response) Response {
	slots := make([]SlotResponse, 0, len(res.Slots))
	for _, s := range res.Slots {
		slots = append(slots, SlotResponse{
			TimeSlot:       s.TimeSlot,
			StartTime:      s.StartTime,
			EndTime:        s.EndTime,
			Capacity:       s.Capacity,
			AvailableSpots: s.AvailableSpots,
			Status:         string(s.Status),
		})
	}

	return Response{
		CompanyID:       res.CompanyID,
		CompanyName:     res.CompanyName,
		InterviewUnit:   string(res.InterviewUnit),
		DurationMinutes: res.DurationMinutes,
		EventDate:       res.EventDate,
		Slots:           slots,
	}
}
