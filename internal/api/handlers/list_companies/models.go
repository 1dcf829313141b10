package list_companies

import (
	"github.com/SaimAkramGill/bewanted/internal/domain"
)

// ContactResponse контактное лицо компании
type ContactResponse struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// CompanyResponse компания в списке участников
type CompanyResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Industry        string   `json:"industry"`
	PackageType     string   `json:"packageType"`
	InterviewUnit   string   `json:"interviewUnit"`
	DurationMinutes int      `json:"durationMinutes"`
	CapacityPerSlot int      `json:"capacityPerSlot"`
	BookingEnabled  bool     `json:"bookingEnabled"`
	GermanRequired  bool     `json:"germanRequired"`
	VisaRequired    bool     `json:"internshipVisaRequired"`
	Positions       []string `json:"positions"`
	Description     *string  `json:"description,omitempty"`
	Website         *string  `json:"website,omitempty"`
	LogoURL         *string  `json:"logoUrl,omitempty"`

	Contact *ContactResponse `json:"contact,omitempty"`
}

// Response список компаний
type Response struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int               `json:"total"`
}

// FromDomainCompany конвертирует доменную компанию в ответ API
func FromDomainCompany(c *domain.Company) CompanyResponse {
	resp := CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		Industry:        c.Industry,
		PackageType:     string(c.PackageType),
		InterviewUnit:   string(c.InterviewUnit),
		DurationMinutes: c.SlotDurationMinutes(),
		CapacityPerSlot: c.CapacityPerSlot,
		BookingEnabled:  c.BookingEnabled,
		GermanRequired:  c.GermanRequired,
		VisaRequired:    c.InternshipVisaRequired,
		Positions:       c.Positions,
		Description:     c.Description,
		Website:         c.Website,
		LogoURL:         c.LogoURL,
	}

	if c.Contact.Name != nil || c.Contact.Email != nil || c.Contact.Phone != nil {
		resp.Contact = &ContactResponse{
			Name:  c.Contact.Name,
			Email: c.Contact.Email,
			Phone: c.Contact.Phone,
		}
	}

	return resp
}
