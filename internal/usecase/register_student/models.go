package register_student

import (
	"github.com/SaimAkramGill/bewanted/internal/domain"
)

// RejectionReason типизированная причина отказа по одному слоту
type RejectionReason string

const (
	// ReasonCompanyUnavailable компания не найдена, неактивна или запись закрыта
	ReasonCompanyUnavailable RejectionReason = "company_unavailable"
	// ReasonInvalidSlot слот не входит в сетку компании
	ReasonInvalidSlot RejectionReason = "invalid_slot"
	// ReasonSlotFull все места в слоте заняты
	ReasonSlotFull RejectionReason = "slot_full"
	// ReasonTimeConflict студент уже записан на это время к другой компании
	ReasonTimeConflict RejectionReason = "time_conflict"
	// ReasonDuplicateCompanyBooking у студента уже есть запись к этой компании
	ReasonDuplicateCompanyBooking RejectionReason = "duplicate_company_booking"
	// ReasonInternalError запись не создана из-за внутренней ошибки
	ReasonInternalError RejectionReason = "internal_error"
)

// Selection выбранный студентом слот у конкретной компании
type Selection struct {
	CompanyID int64
	TimeSlot  string
}

// Request снапшот регистрации: профиль студента, подтверждения и
// выбранные слоты. Обрабатывается как батч с независимым коммитом
// по каждому элементу.
type Request struct {
	Student     domain.StudentInfo
	CVReference *string

	GermanLanguageConfirmed bool
	InternshipInterest      bool
	HasValidVisa            bool

	Selections []Selection
}

// BookedAppointment успешно созданная запись
type BookedAppointment struct {
	AppointmentID int64
	CompanyID     int64
	CompanyName   string
	TimeSlot      string
	EventDate     string
}

// Rejection отказ по одному из выбранных слотов
type Rejection struct {
	CompanyID int64
	TimeSlot  string
	Reason    RejectionReason
	Message   string
}

// Response результат обработки батча
type Response struct {
	StudentEmail string
	Booked       []BookedAppointment
	Rejected     []Rejection
}

// AllRejected возвращает true, если не создано ни одной записи
func (r *Response) AllRejected() bool {
	return len(r.Booked) == 0
}
