package register_student

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	registerStudent "github.com/SaimAkramGill/bewanted/internal/usecase/register_student"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	response *registerStudent.Response
	err      error
	lastReq  registerStudent.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req registerStudent.Request) (*registerStudent.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

const validBody = `{
	"firstName": "Max",
	"lastName": "Mustermann",
	"email": "max@example.com",
	"phoneNumber": "+43 660 1234567",
	"fieldOfStudy": "Computer Science",
	"motivation": "Interested in embedded systems roles.",
	"selections": [{"companyId": 1, "timeSlot": "09:00 - 09:30"}]
}`

func TestHandle_CreatedOnSuccess(t *testing.T) {
	uc := &fakeUseCase{response: &registerStudent.Response{
		StudentEmail: "max@example.com",
		Booked: []registerStudent.BookedAppointment{
			{AppointmentID: 1, CompanyID: 1, CompanyName: "Anton Paar", TimeSlot: "09:00 - 09:30"},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1), uc.lastReq.Selections[0].CompanyID)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Booked, 1)
	assert.Empty(t, resp.Rejected)
	assert.Equal(t, "Anton Paar", resp.Booked[0].CompanyName)
}

func TestHandle_ConflictWhenAllRejected(t *testing.T) {
	uc := &fakeUseCase{response: &registerStudent.Response{
		StudentEmail: "max@example.com",
		Rejected: []registerStudent.Rejection{
			{CompanyID: 1, TimeSlot: "09:00 - 09:30",
				Reason: registerStudent.ReasonSlotFull, Message: "time slot is fully booked"},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rejected, 1)
	assert.Equal(t, "slot_full", resp.Rejected[0].Reason)
}

func TestHandle_BadRequestOnValidationError(t *testing.T) {
	uc := &fakeUseCase{err: registerStudent.ErrValidation}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadRequestOnMalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
