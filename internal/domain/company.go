package domain

import "time"

// InterviewUnit is the capacity-defining duration class of a company.
// It governs the slot grid: Standard companies interview for 25 minutes
// (30-minute slot with buffer), Quick companies for 15 minutes (20-minute
// slot with buffer).
type InterviewUnit string

const (
	UnitStandard InterviewUnit = "standard"
	UnitQuick    InterviewUnit = "quick"
)

// SlotDurationMinutes returns the full slot length including the 5-minute buffer
func (u InterviewUnit) SlotDurationMinutes() int {
	if u == UnitQuick {
		return 20
	}
	return 30
}

// InterviewMinutes returns the net interview length without the buffer
func (u InterviewUnit) InterviewMinutes() int {
	return u.SlotDurationMinutes() - 5
}

// IsValid reports whether the value is a known interview unit
func (u InterviewUnit) IsValid() bool {
	return u == UnitStandard || u == UnitQuick
}

// PackageType represents the sponsorship tier of a company
type PackageType string

const (
	PackagePlatinum PackageType = "Platinum"
	PackageGold     PackageType = "Gold"
	PackageSilver   PackageType = "Silver"
)

// IsValid reports whether the value is a known package type
func (p PackageType) IsValid() bool {
	return p == PackagePlatinum || p == PackageGold || p == PackageSilver
}

// ContactPerson контактное лицо компании (опционально)
type ContactPerson struct {
	Name  *string
	Email *string
	Phone *string
}

// Company represents a participating company at the career fair.
// Per-company special cases (capacity override, alternate slot duration,
// advisory checkboxes, booking gate) are configuration on this record,
// never name-based branches in code.
type Company struct {
	ID          int64
	Name        string
	Industry    string
	PackageType PackageType

	InterviewUnit   InterviewUnit
	CapacityPerSlot int
	BookingEnabled  bool

	// Advisory flags: collected from the student, never block a booking
	GermanRequired         bool
	InternshipVisaRequired bool

	Positions   []string
	Description *string
	Website     *string
	LogoURL     *string
	Contact     ContactPerson

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcceptsBookings returns true if the company can currently be booked
func (c *Company) AcceptsBookings() bool {
	return c.IsActive && c.BookingEnabled
}

// SlotDurationMinutes returns the slot length for this company's unit
func (c *Company) SlotDurationMinutes() int {
	return c.InterviewUnit.SlotDurationMinutes()
}
