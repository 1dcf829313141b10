package notifier

// AppointmentSummary краткая информация об одной записи для письма
type AppointmentSummary struct {
	AppointmentID int64  `json:"appointmentId"`
	CompanyName   string `json:"companyName"`
	TimeSlot      string `json:"timeSlot"`
	EventDate     string `json:"eventDate"`
}

// RegistrationCompletedEvent событие успешной регистрации студента.
// Отправляется после коммита записей, fire-and-forget: ошибка доставки
// логируется и не влияет на результат регистрации.
type RegistrationCompletedEvent struct {
	EventID      string               `json:"eventId"`
	StudentName  string               `json:"studentName"`
	StudentEmail string               `json:"studentEmail"`
	Appointments []AppointmentSummary `json:"appointments"`
	OccurredAt   string               `json:"occurredAt"`
}

// CancellationEvent событие отмены записи
type CancellationEvent struct {
	EventID       string `json:"eventId"`
	AppointmentID int64  `json:"appointmentId"`
	StudentEmail  string `json:"studentEmail"`
	CompanyName   string `json:"companyName"`
	TimeSlot      string `json:"timeSlot"`
	Reason        string `json:"reason,omitempty"`
	OccurredAt    string `json:"occurredAt"`
}
