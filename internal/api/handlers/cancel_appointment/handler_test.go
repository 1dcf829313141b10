package cancel_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	"github.com/SaimAkramGill/bewanted/internal/service/appointments"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	apt        *domain.Appointment
	err        error
	lastReason string
}

func (f *fakeService) Cancel(_ context.Context, id int64, reason string) (*domain.Appointment, error) {
	f.lastReason = reason
	if f.err != nil {
		return nil, f.err
	}
	return f.apt, nil
}

func newTestRouter(svc *fakeService) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments/{appointmentId}/cancel",
		NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)
	return r
}

func TestHandle_CancelsAppointment(t *testing.T) {
	reason := "found another offer"
	svc := &fakeService{apt: &domain.Appointment{
		ID:                 7,
		CompanyID:          1,
		TimeSlot:           "09:00 - 09:30",
		Status:             domain.StatusCancelled,
		CancellationReason: &reason,
	}}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/7/cancel",
		strings.NewReader(`{"reason":"found another offer"}`))
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "found another offer", svc.lastReason)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestHandle_EmptyBodyIsAllowed(t *testing.T) {
	svc := &fakeService{apt: &domain.Appointment{ID: 7, Status: domain.StatusCancelled}}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/7/cancel", nil)
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", svc.lastReason)
}

func TestHandle_InvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/abc/cancel", nil)
	rec := httptest.NewRecorder()

	newTestRouter(&fakeService{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ConflictOnInvalidTransition(t *testing.T) {
	svc := &fakeService{err: appointments.ErrInvalidTransition}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/7/cancel", nil)
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &fakeService{err: appointments.ErrAppointmentNotFound}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/7/cancel", nil)
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
