package register_student

import (
	"github.com/SaimAkramGill/bewanted/internal/domain"
	registerStudent "github.com/SaimAkramGill/bewanted/internal/usecase/register_student"
)

// SelectionRequest выбранный слот
type SelectionRequest struct {
	CompanyID int64  `json:"companyId"`
	TimeSlot  string `json:"timeSlot"`
}

// Request тело запроса регистрации
type Request struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phoneNumber,omitempty"`
	FieldOfStudy string  `json:"fieldOfStudy"`
	Motivation   string  `json:"motivation,omitempty"`
	CVReference  *string `json:"cvReference,omitempty"`

	GermanLanguageConfirmed bool `json:"germanLanguageConfirmed,omitempty"`
	InternshipInterest      bool `json:"internshipInterest,omitempty"`
	HasValidVisa            bool `json:"hasValidVisa,omitempty"`

	Selections []SelectionRequest `json:"selections"`
}

// ToUseCaseRequest конвертирует тело запроса в модель usecase
func (r Request) ToUseCaseRequest() registerStudent.Request {
	selections := make([]registerStudent.Selection, 0, len(r.Selections))
	for _, s := range r.Selections {
		selections = append(selections, registerStudent.Selection{
			CompanyID: s.CompanyID,
			TimeSlot:  s.TimeSlot,
		})
	}

	return registerStudent.Request{
		Student: domain.StudentInfo{
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			Email:        r.Email,
			PhoneNumber:  r.PhoneNumber,
			FieldOfStudy: r.FieldOfStudy,
			Motivation:   r.Motivation,
		},
		CVReference:             r.CVReference,
		GermanLanguageConfirmed: r.GermanLanguageConfirmed,
		InternshipInterest:      r.InternshipInterest,
		HasValidVisa:            r.HasValidVisa,
		Selections:              selections,
	}
}

// BookedResponse успешно созданная запись
type BookedResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	CompanyID     int64  `json:"companyId"`
	CompanyName   string `json:"companyName"`
	TimeSlot      string `json:"timeSlot"`
	EventDate     string `json:"eventDate"`
}

// RejectionResponse отказ по одному из слотов
type RejectionResponse struct {
	CompanyID int64  `json:"companyId"`
	TimeSlot  string `json:"timeSlot"`
	Reason    string `json:"reason"`
	Message   string `json:"message"`
}

// Response результат регистрации
type Response struct {
	StudentEmail string              `json:"studentEmail"`
	Booked       []BookedResponse    `json:"booked"`
	Rejected     []RejectionResponse `json:"rejected"`
}

// FromUseCaseResponse конвертирует результат usecase в ответ API
func FromUseCaseResponse(res *registerStudent.Response) Response {
	booked := make([]BookedResponse, 0, len(res.Booked))
	for _, b := range res.Booked {
		booked = append(booked, BookedResponse{
			AppointmentID: b.AppointmentID,
			CompanyID:     b.CompanyID,
			CompanyName:   b.CompanyName,
			TimeSlot:      b.TimeSlot,
			EventDate:     b.EventDate,
		})
	}

	rejected := make([]RejectionResponse, 0, len(res.Rejected))
	for _, r := range res.Rejected {
		rejected = append(rejected, RejectionResponse{
			CompanyID: r.CompanyID,
			TimeSlot:  r.TimeSlot,
			Reason:    string(r.Reason),
			Message:   r.Message,
		})
	}

	return Response{
		StudentEmail: res.StudentEmail,
		Booked:       booked,
		Rejected:     rejected,
	}
}
