package update_company_config

import (
	"time"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	companystorage "github.com/SaimAkramGill/bewanted/internal/infra/storage/company"
)

// Request частичное обновление конфигурации: nil поля не меняются
type Request struct {
	BookingEnabled         *bool   `json:"bookingEnabled,omitempty"`
	CapacityPerSlot        *int    `json:"capacityPerSlot,omitempty"`
	InterviewUnit          *string `json:"interviewUnit,omitempty"`
	GermanRequired         *bool   `json:"germanRequired,omitempty"`
	InternshipVisaRequired *bool   `json:"internshipVisaRequired,omitempty"`
	IsActive               *bool   `json:"isActive,omitempty"`
}

// ToConfigUpdate конвертирует тело запроса в модель хранилища
func (r Request) ToConfigUpdate() companystorage.ConfigUpdate {
	update := companystorage.ConfigUpdate{
		BookingEnabled:         r.BookingEnabled,
		CapacityPerSlot:        r.CapacityPerSlot,
		GermanRequired:         r.GermanRequired,
		InternshipVisaRequired: r.InternshipVisaRequired,
		IsActive:               r.IsActive,
	}

	if r.InterviewUnit != nil {
		unit := domain.InterviewUnit(*r.InterviewUnit)
		update.InterviewUnit = &unit
	}

	return update
}

// Response обновлённая конфигурация компании
type Response struct {
	ID                     int64     `json:"id"`
	Name                   string    `json:"name"`
	InterviewUnit          string    `json:"interviewUnit"`
	CapacityPerSlot        int       `json:"capacityPerSlot"`
	BookingEnabled         bool      `json:"bookingEnabled"`
	GermanRequired         bool      `json:"germanRequired"`
	InternshipVisaRequired bool      `json:"internshipVisaRequired"`
	IsActive               bool      `json:"isActive"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// FromDomainCompany конвертирует доменную компанию в ответ API
func FromDomainCompany(c *domain.Company) Response {
	return Response{
		ID:                     c.ID,
		Name:                   c.Name,
		InterviewUnit:          string(c.InterviewUnit),
		CapacityPerSlot:        c.CapacityPerSlot,
		BookingEnabled:         c.BookingEnabled,
		GermanRequired:         c.GermanRequired,
		InternshipVisaRequired: c.InternshipVisaRequired,
		IsActive:               c.IsActive,
		UpdatedAt:              c.UpdatedAt,
	}
}
