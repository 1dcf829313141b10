package register_student

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	appointmentstorage "github.com/SaimAkramGill/bewanted/internal/infra/storage/appointment"
	"github.com/SaimAkramGill/bewanted/internal/integrations/notifier"
	"github.com/SaimAkramGill/bewanted/internal/service/companies"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{}

func (fixedTime) Now() time.Time {
	return time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
}

type fakeCompanyService struct {
	companies map[int64]*domain.Company
}

func (f *fakeCompanyService) GetByID(_ context.Context, id int64) (*domain.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, companies.ErrCompanyNotFound
	}
	return c, nil
}

// fakeAppointmentRepo хранит записи в памяти под мьютексом.
// createErr подменяет результат Create для имитации гонки на индексах.
type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
	nextID       int64
	createErr    error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	f.nextID++
	apt.ID = f.nextID
	apt.CreatedAt = time.Now()
	apt.UpdatedAt = apt.CreatedAt
	f.appointments = append(f.appointments, apt)
	return apt, nil
}

func (f *fakeAppointmentRepo) GetActiveByCompanyAndSlot(_ context.Context, companyID int64, timeSlot string) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*domain.Appointment
	for _, apt := range f.appointments {
		if apt.CompanyID == companyID && apt.TimeSlot == timeSlot && apt.CountsTowardCapacity() {
			out = append(out, apt)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ExistsActiveByStudentAndSlot(_ context.Context, email string, timeSlot string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, apt := range f.appointments {
		if apt.Student.Email == email && apt.TimeSlot == timeSlot && apt.CountsTowardCapacity() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppointmentRepo) ExistsActiveByStudentAndCompany(_ context.Context, email string, companyID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, apt := range f.appointments {
		if apt.Student.Email == email && apt.CompanyID == companyID && apt.CountsTowardCapacity() {
			return true, nil
		}
	}
	return false, nil
}

// fakeTxManager сериализует транзакции глобальным мьютексом,
// приближая поведение SERIALIZABLE для конкурентных тестов
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type fakeNotifier struct {
	events chan notifier.RegistrationCompletedEvent
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{events: make(chan notifier.RegistrationCompletedEvent, 10)}
}

func (f *fakeNotifier) SendRegistrationCompleted(_ context.Context, event notifier.RegistrationCompletedEvent) error {
	f.events <- event
	return nil
}

func testCompany(id int64, name string, unit domain.InterviewUnit, capacity int, bookingEnabled bool) *domain.Company {
	return &domain.Company{
		ID:              id,
		Name:            name,
		InterviewUnit:   unit,
		CapacityPerSlot: capacity,
		BookingEnabled:  bookingEnabled,
		IsActive:        true,
	}
}

func newTestUseCase(companySvc *fakeCompanyService, repo *fakeAppointmentRepo, n *fakeNotifier) *UseCase {
	return NewUseCase(companySvc, repo, &fakeTxManager{}, n, fixedTime{}, nopLogger{})
}

func validStudent() domain.StudentInfo {
	return domain.StudentInfo{
		FirstName:    "Max",
		LastName:     "Mustermann",
		Email:        "max@example.com",
		PhoneNumber:  "+43 660 1234567",
		FieldOfStudy: "Computer Science",
		Motivation:   "Interested in embedded systems roles.",
	}
}

func TestExecute_BooksAllSelections(t *testing.T) {
	companySvc := &fakeCompanyService{companies: map[int64]*domain.Company{
		1: testCompany(1, "Anton Paar", domain.UnitStandard, 2, true),
		2: testCompany(2, "Beyond Now", domain.UnitQuick, 1, true),
	}}
	repo := &fakeAppointmentRepo{}
	n := newFakeNotifier()
	uc := newTestUseCase(companySvc, repo, n)

	result, err := uc.Execute(context.Background(), Request{
		Student: validStudent(),
		Selections: []Selection{
			{CompanyID: 1, TimeSlot: "09:00 - 09:30"},
			{CompanyID: 2, TimeSlot: "10:00 - 10:20"},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Booked, 2)
	assert.Empty(t, result.Rejected)
	assert.Equal(t, "max@example.com", result.StudentEmail)
	assert.Equal(t, "Anton Paar", result.Booked[0].CompanyName)
	assert.Equal(t, "Beyond Now", result.Booked[1].CompanyName)

	select {
	case event := <-n.events:
		assert.Equal(t, "max@example.com", event.StudentEmail)
		assert.Len(t, event.Appointments, 2)
		assert.NotEmpty(t, event.EventID)
	case <-time.After(time.Second):
		t.Fatal("expected registration notification")
	}
}

func TestExecute_ValidationAbortsWholeBatch(t *testing.T) {
	companySvc := &fakeCompanyService{companies: map[int64]*domain.Company{
		1: testCompany(1, "Anton Paar", domain.UnitStandard, 2, true),
	}}
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(companySvc, repo, newFakeNotifier())

	student := validStudent()
	student.Email = "not-an-email"

	_, err := uc.Execute(context.Background(), Request{
		Student:    student,
		Selections: []Selection{{CompanyID: 1, TimeSlot: "09:00 - 09:30"}},
	})

	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, repo.appointments)
}

func TestExecute_ValidationChecksTrimmedSnapshot(t *testing.T) {
	companySvc := &fakeCompanyService{companies: map[int64]*domain.Company{
		1: testCompany(1, "Anton Paar", domain.UnitStandard, 2, true),
	}}

	cases := []struct {
		name   string
		mutate func(s *domain.StudentInfo)
	}{
		{"blank first name", func(s *domain.StudentInfo) { s.FirstName = "   " }},
		{"missing phone", func(s *domain.StudentInfo) { s.PhoneNumber = "" }},
		{"missing motivation", func(s *domain.StudentInfo) { s.Motivation = "" }},
		{"blank motivation", func(s *domain.StudentInfo) { s.Motivation = "   " }},
		{"blank field of study", func(s *domain.StudentInfo) { s.FieldOfStudy = " " }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeAppointmentRepo{}
			uc := newTestUseCase(companySvc, repo, newFakeNotifier())

			student := validStudent()
			tc.mutate(&student)

			_, err := uc.Execute(context.Background(), Request{
				Student:    student,
				Selections: []Selection{{CompanyID: 1, TimeSlot: "09:00 - 09:30"}},
			})

			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, repo.appointments)
		})
	}
}

func TestExecute_NoSelections(t *testing.T) {
	uc := newTestUseCase(&fakeCompanyService{}, &fakeAppointmentRepo{}, newFakeNotifier())

	_, err := uc.Execute(context.Background(), Request{Student: validStudent()})
	assert.ErrorIs(t, err, ErrNoSelections)
}

func TestExecute_DuplicateSelectionInRequest(t *testing.T) {
	uc := newTestUseCase(&fakeCompanyService{}, &fakeAppointmentRepo{}, newFakeNotifier())

	_, err := uc.Execute(context.Background(), Request{
		Student: validStudent(),
		Selections: []Selection{
			{CompanyID: 1, TimeSlot: "09:00 - 09:30"},
			{CompanyID: 1, TimeSlot: "10:00 - 10:30"},
		},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestExecute_PartialSuccess(t *testing.T) {
	companySvc := &fakeCompanyService{companies: map[int64]*domain.Company{
		1: testCompany(1, "Anton Paar", domain.UnitStandard, 2, true),
		2: testCompany(2, "Siemens", domain.UnitStandard, 2, false),
	}}
	repo := &fakeAppointmentRepo{}
	n := newFakeNotifier()
	uc := newTestUseCase(companySvc, repo, n)

	result, err := uc.Execute(context.Background(), Request{
		Student: validStudent(),
		Selections: []Selection{
			{CompanyID: 1, TimeSlot: "09:00 - 09:30"},
			{CompanyID: 2, TimeSlot: "10:00 - 10:30"},
			{CompanyID: 99, TimeSlot: "11:00 - 11:30"},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Booked, 1)
	require.Len(t, result.Rejected, 2)
	assert.Equal(t, ReasonCompanyUnavailable, result.Rejected[0].Reason)
	assert.Equal(t, ReasonCompanyUnavailable, result.Rejected[1].Reason)

	// Частичный успех всё равно подтверждается письмом
	select {
	case event := <-n.events:
		assert.Len(t, event.Appointments, 1)
	case <-time.After(time.Second):
		t.Fatal("expected registration notification")
	}
}

func TestExecute_InvalidSlotForUnit(t *testing.T) {
	companySvc := &fakeCompanyService{companies: map[int64]*domain.Company{
		1: testCompany(1, "Beyond Now", domain.UnitQuick, 1, true),
	}}
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(companySvc, repo, newFakeNotifier())

	result, err := uc.Execute(context.Background(), Request{
		Student: validStudent(),
		// Слот стандартной сетки не входит в сетку quick компании
		Selections: []Selection{{CompanyID: 1, TimeSlot: "09:00 - 09:30"}},
	})

	require.NoError(t, err)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, ReasonInvalidSlot, result.Rejected[0].Reason)
	assert.True(t, result.AllRejected())
}

func TestExecute_SlotFull(t *testing.T) {
	companySvc := &fakeCompanyService{companies: map[int64]*domain.Company{
		1: testCompany(1, "Beyond Now", domain.UnitQuick, 1, true),
	}}
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{ID: 100, CompanyID: 1, TimeSlot: "09:00 - 09:20", Status: domain.StatusScheduled,
				Student: domain.StudentInfo{Email: "other@example.com"}},
		},
		nextID: 100,
	}
	uc := newTestUseCase(companySvc, repo, newFakeNotifier())

	result, err := uc.Execute(context.Background(), Request{
		Student:    validStudent(),
		Selections: []Selection{{CompanyID: 1, TimeSlot: "09:00 - 09:20"}},
	})

	require.NoError(t, err)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, ReasonSlotFull, result.Rejected[0].Reason)
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	companySvc := &fakeCompanyService{companies: map[int64]*domain.Company{
		1: testCompany(1, "Beyond Now", domain.UnitQuick, 1, true),
	}}
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{ID: 100, CompanyID: 1, TimeSlot: "09:00 - 09:20", Status: domain.StatusCancelled,
				Student: domain.StudentInfo{Email: "other@example.com"}},
		},
		nextID: 100,
	}
	uc := newTestUseCase(companySvc, repo, newFakeNotifier())

	result, err := uc.Execute(context.Background(), Request{
		Student:    validStudent(),
		Selections: []Selection{{CompanyID: 1, TimeSlot: "09:00 - 09:20"}},
	})

	require.NoError(t, err)
	assert.Len(t, result.Booked, 1)
	assert.Empty(t, result.Rejected)
}

func TestExecute_TimeConflictAcrossCompanies(t *testing.T) {
	companySvc := &fakeCompanyService{companies: map[int64]*domain.Company{
		1: testCompany(1, "Anton Paar", domain.UnitStandard, 2, true),
		2: testCompany(2, "SSI SCHAEFER", domain.UnitStandard, 2, true),
	}}
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{ID: 100, CompanyID: 1, TimeSlot: "09:00 - 09:30", Status: domain.StatusScheduled,
				Student: domain.StudentInfo{Email: "max@example.com"}},
		},
		nextID: 100,
	}
	uc := newTestUseCase(companySvc, repo, newFakeNotifier())

	result, err := uc.Execute(context.Background(), Request{
		Student:    validStudent(),
		Selections: []Selection{{CompanyID: 2, TimeSlot: "09:00 - 09:30"}},
	})

	require.NoError(t, err)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, ReasonTimeConflict, result.Rejected[0].Reason)
}

func TestExecute_DuplicateCompanyBooking(t *testing.T) {
	companySvc := &fakeCompanyService{companies: map[int64]*domain.Company{
		1: testCompany(1, "Anton Paar", domain.UnitStandard, 2, true),
	}}
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{ID: 100, CompanyID: 1, TimeSlot: "09:00 - 09:30", Status: domain.StatusScheduled,
				Student: domain.StudentInfo{Email: "max@example.com"}},
		},
		nextID: 100,
	}
	uc := newTestUseCase(companySvc, repo, newFakeNotifier())

	result, err := uc.Execute(context.Background(), Request{
		Student:    validStudent(),
		Selections: []Selection{{CompanyID: 1, TimeSlot: "10:00 - 10:30"}},
	})

	require.NoError(t, err)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, ReasonDuplicateCompanyBooking, result.Rejected[0].Reason)
}

func TestExecute_ConstraintRaceMapsToRejection(t *testing.T) {
	companySvc := &fakeCompanyService{companies: map[int64]*domain.Company{
		1: testCompany(1, "Anton Paar", domain.UnitStandard, 2, true),
	}}
	repo := &fakeAppointmentRepo{createErr: appointmentstorage.ErrStudentSlotTaken}
	uc := newTestUseCase(companySvc, repo, newFakeNotifier())

	result, err := uc.Execute(context.Background(), Request{
		Student:    validStudent(),
		Selections: []Selection{{CompanyID: 1, TimeSlot: "09:00 - 09:30"}},
	})

	require.NoError(t, err)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, ReasonTimeConflict, result.Rejected[0].Reason)
}

func TestExecute_ConcurrentBookingsRespectCapacity(t *testing.T) {
	companySvc := &fakeCompanyService{companies: map[int64]*domain.Company{
		1: testCompany(1, "Beyond Now", domain.UnitQuick, 1, true),
	}}
	repo := &fakeAppointmentRepo{}
	n := newFakeNotifier()
	uc := newTestUseCase(companySvc, repo, n)

	const workers = 8
	results := make(chan *Response, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			student := validStudent()
			student.Email = string(rune('a'+i)) + "@example.com"

			result, err := uc.Execute(context.Background(), Request{
				Student:    student,
				Selections: []Selection{{CompanyID: 1, TimeSlot: "09:00 - 09:20"}},
			})
			if !assert.NoError(t, err) {
				return
			}
			results <- result
		}(i)
	}
	wg.Wait()
	close(results)

	booked, rejected := 0, 0
	for result := range results {
		booked += len(result.Booked)
		rejected += len(result.Rejected)
	}

	assert.Equal(t, 1, booked)
	assert.Equal(t, workers-1, rejected)
	assert.Len(t, repo.appointments, 1)
}
