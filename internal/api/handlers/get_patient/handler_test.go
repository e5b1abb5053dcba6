package get_patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareCoordinator/internal/dispatch"
	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
	getPatient "github.com/m04kA/SMC-CareCoordinator/internal/usecase/get_patient"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeDispatcher struct {
	result *dispatch.Result
	err    error
}

func (f *fakeDispatcher) Dispatch(context.Context, dispatch.Command) (*dispatch.Result, error) {
	return f.result, f.err
}

func doRequest(t *testing.T, d Dispatcher, patientID string) *httptest.ResponseRecorder {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/patients/{patientId}", NewHandler(d, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/"+patientID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_ReturnsPatient(t *testing.T) {
	d := &fakeDispatcher{result: &dispatch.Result{
		Text: "Patient 42: Jane Doe",
		Patient: &domain.Patient{
			ID:   42,
			Name: "Jane Doe",
			DOB:  "05/12/88",
			PCP:  "Dr. Sarah Lee",
			Appointments: []domain.HistoricalAppointment{
				{Date: "03/15/21", Time: "10:00 AM", Provider: "Dr. Sarah Lee", Status: "completed"},
			},
		},
	}}

	rec := doRequest(t, d, "42")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PatientResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Jane Doe", resp.Name)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "Dr. Sarah Lee", resp.Appointments[0].Provider)
}

func TestHandler_Handle_InvalidID(t *testing.T) {
	rec := doRequest(t, &fakeDispatcher{}, "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_NotFound(t *testing.T) {
	rec := doRequest(t, &fakeDispatcher{err: getPatient.ErrPatientNotFound}, "999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Handle_InternalError(t *testing.T) {
	rec := doRequest(t, &fakeDispatcher{err: getPatient.ErrInternal}, "42")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
