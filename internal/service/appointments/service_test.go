package appointments

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	appointmentstorage "github.com/SaimAkramGill/bewanted/internal/infra/storage/appointment"
	"github.com/SaimAkramGill/bewanted/internal/integrations/notifier"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	mu           sync.Mutex
	appointments map[int64]*domain.Appointment
	cancelCalls  int
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	apt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentstorage.ErrAppointmentNotFound
	}
	copied := *apt
	return &copied, nil
}

func (f *fakeRepo) GetByStudentEmail(_ context.Context, email string) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*domain.Appointment
	for _, apt := range f.appointments {
		if apt.Student.Email == email {
			copied := *apt
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	apt, ok := f.appointments[id]
	if !ok {
		return appointmentstorage.ErrAppointmentNotFound
	}
	apt.Status = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	apt, ok := f.appointments[id]
	if !ok {
		return appointmentstorage.ErrAppointmentNotFound
	}
	f.cancelCalls++
	now := time.Now()
	apt.Status = domain.StatusCancelled
	apt.CancellationReason = &reason
	apt.CancelledAt = &now
	return nil
}

type fakeCompanyRepo struct{}

func (fakeCompanyRepo) GetByID(_ context.Context, id int64) (*domain.Company, error) {
	return &domain.Company{ID: id, Name: "Anton Paar"}, nil
}

type fakeNotifier struct {
	events chan notifier.CancellationEvent
}

func (f *fakeNotifier) SendCancellation(_ context.Context, event notifier.CancellationEvent) error {
	f.events <- event
	return nil
}

func newTestService(repo *fakeRepo) (*Service, *fakeNotifier) {
	n := &fakeNotifier{events: make(chan notifier.CancellationEvent, 10)}
	return NewService(repo, fakeCompanyRepo{}, n, nopLogger{}), n
}

func scheduledAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		Student:   domain.StudentInfo{Email: "max@example.com"},
		CompanyID: 1,
		TimeSlot:  "09:00 - 09:30",
		Status:    domain.StatusScheduled,
	}
}

func TestCancel_CancelsScheduledAppointment(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{
		1: scheduledAppointment(1),
	}}
	svc, n := newTestService(repo)

	apt, err := svc.Cancel(context.Background(), 1, "found another offer")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, apt.Status)
	require.NotNil(t, apt.CancellationReason)
	assert.Equal(t, "found another offer", *apt.CancellationReason)
	assert.NotNil(t, apt.CancelledAt)

	select {
	case event := <-n.events:
		assert.Equal(t, int64(1), event.AppointmentID)
		assert.Equal(t, "Anton Paar", event.CompanyName)
	case <-time.After(time.Second):
		t.Fatal("expected cancellation notification")
	}
}

func TestCancel_IsIdempotent(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{
		1: scheduledAppointment(1),
	}}
	svc, _ := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 1, "reason one")
	require.NoError(t, err)

	// Повторная отмена: успех без изменений и без нового обращения к БД
	apt, err := svc.Cancel(context.Background(), 1, "reason two")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, apt.Status)
	assert.Equal(t, "reason one", *apt.CancellationReason)
	assert.Equal(t, 1, repo.cancelCalls)
}

func TestCancel_RejectsCompletedAndNoShow(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusNoShow} {
		apt := scheduledAppointment(1)
		apt.Status = status

		repo := &fakeRepo{appointments: map[int64]*domain.Appointment{1: apt}}
		svc, _ := newTestService(repo)

		_, err := svc.Cancel(context.Background(), 1, "changed my mind")
		assert.ErrorIs(t, err, ErrInvalidTransition, "status %s", status)
		assert.Equal(t, 0, repo.cancelCalls)
	}
}

func TestCancel_NotFound(t *testing.T) {
	svc, _ := newTestService(&fakeRepo{appointments: map[int64]*domain.Appointment{}})

	_, err := svc.Cancel(context.Background(), 42, "")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc, _ := newTestService(&fakeRepo{appointments: map[int64]*domain.Appointment{}})

	_, err := svc.Cancel(context.Background(), 1, strings.Repeat("x", domain.MaxCancellationReasonLength+1))
	assert.ErrorIs(t, err, ErrReasonTooLong)
}

func TestUpdateStatus_AllowsScheduledTransitions(t *testing.T) {
	for _, next := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusNoShow} {
		repo := &fakeRepo{appointments: map[int64]*domain.Appointment{
			1: scheduledAppointment(1),
		}}
		svc, _ := newTestService(repo)

		apt, err := svc.UpdateStatus(context.Background(), 1, next)
		require.NoError(t, err)
		assert.Equal(t, next, apt.Status)
	}
}

func TestUpdateStatus_RejectsInvalidTransition(t *testing.T) {
	cancelled := scheduledAppointment(1)
	cancelled.Status = domain.StatusCancelled

	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{1: cancelled}}
	svc, _ := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestGetStudentAppointments_NormalizesEmail(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{
		1: scheduledAppointment(1),
	}}
	svc, _ := newTestService(repo)

	list, err := svc.GetStudentAppointments(context.Background(), " Max@Example.COM ")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
