package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
	bookAppointment "github.com/m04kA/SMC-CareCoordinator/internal/usecase/book_appointment"
	checkInsurance "github.com/m04kA/SMC-CareCoordinator/internal/usecase/check_insurance"
	findProviders "github.com/m04kA/SMC-CareCoordinator/internal/usecase/find_providers"
	getPatient "github.com/m04kA/SMC-CareCoordinator/internal/usecase/get_patient"
	"github.com/m04kA/SMC-CareCoordinator/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordedEntry struct {
	operation string
	detail    string
	result    string
}

type fakeTranscript struct {
	entries []recordedEntry
}

func (f *fakeTranscript) Record(operation, detail, result string) {
	f.entries = append(f.entries, recordedEntry{operation, detail, result})
}

type fakeMetrics struct {
	operations map[string]string
	bookings   []string
}

func (f *fakeMetrics) IncOperation(operation, status string) {
	if f.operations == nil {
		f.operations = make(map[string]string)
	}
	f.operations[operation] = status
}

func (f *fakeMetrics) IncBooking(result string) {
	f.bookings = append(f.bookings, result)
}

type fakePatientLookup struct {
	resp *getPatient.Response
	err  error
}

func (f *fakePatientLookup) Execute(context.Context, *getPatient.Request) (*getPatient.Response, error) {
	return f.resp, f.err
}

type fakeProviderSearch struct {
	resp *findProviders.Response
	err  error
}

func (f *fakeProviderSearch) Execute(context.Context, *findProviders.Request) (*findProviders.Response, error) {
	return f.resp, f.err
}

type fakeInsuranceCheck struct {
	resp *checkInsurance.Response
	err  error
}

func (f *fakeInsuranceCheck) Execute(context.Context, *checkInsurance.Request) (*checkInsurance.Response, error) {
	return f.resp, f.err
}

type fakeBooking struct {
	resp *bookAppointment.Response
	err  error
}

func (f *fakeBooking) Execute(context.Context, *bookAppointment.Request) (*bookAppointment.Response, error) {
	return f.resp, f.err
}

func newTestDispatcher(
	lookup *fakePatientLookup,
	search *fakeProviderSearch,
	insurance *fakeInsuranceCheck,
	booking *fakeBooking,
) (*Dispatcher, *fakeTranscript, *fakeMetrics) {
	transcript := &fakeTranscript{}
	metrics := &fakeMetrics{}
	d := NewDispatcher(lookup, search, insurance, booking, transcript, metrics, nopLogger{})
	return d, transcript, metrics
}

func TestDispatcher_LookupPatient(t *testing.T) {
	lookup := &fakePatientLookup{resp: &getPatient.Response{
		Patient: &domain.Patient{ID: 42, Name: "Jane Doe"},
	}}
	d, transcript, metrics := newTestDispatcher(lookup, &fakeProviderSearch{}, &fakeInsuranceCheck{}, &fakeBooking{})

	result, err := d.Dispatch(context.Background(), LookupPatient{PatientID: 42})
	require.NoError(t, err)

	assert.Equal(t, "Patient 42: Jane Doe", result.Text)
	assert.Equal(t, int64(42), result.Patient.ID)
	assert.Equal(t, "success", metrics.operations["get_patient"])
	require.Len(t, transcript.entries, 1)
	assert.Equal(t, "get_patient", transcript.entries[0].operation)
}

func TestDispatcher_LookupPatient_FailureRecorded(t *testing.T) {
	lookup := &fakePatientLookup{err: getPatient.ErrPatientNotFound}
	d, transcript, metrics := newTestDispatcher(lookup, &fakeProviderSearch{}, &fakeInsuranceCheck{}, &fakeBooking{})

	_, err := d.Dispatch(context.Background(), LookupPatient{PatientID: 999})
	require.ErrorIs(t, err, getPatient.ErrPatientNotFound)

	assert.Equal(t, "error", metrics.operations["get_patient"])
	require.Len(t, transcript.entries, 1)
	assert.Contains(t, transcript.entries[0].result, "failed")
}

func TestDispatcher_SearchProviders(t *testing.T) {
	search := &fakeProviderSearch{resp: &findProviders.Response{
		Providers: []domain.Provider{{Name: "Dr. Sarah Lee"}},
		Message:   "Found 1 provider(s):\n- Dr. Sarah Lee, MD (Primary Care)",
	}}
	d, transcript, _ := newTestDispatcher(&fakePatientLookup{}, search, &fakeInsuranceCheck{}, &fakeBooking{})

	result, err := d.Dispatch(context.Background(), SearchProviders{Name: ptr.Ptr("lee")})
	require.NoError(t, err)

	assert.Len(t, result.Providers, 1)
	assert.Contains(t, result.Text, "Dr. Sarah Lee")
	assert.Equal(t, `name="lee" specialty=""`, transcript.entries[0].detail)
}

func TestDispatcher_CheckInsurance(t *testing.T) {
	insurance := &fakeInsuranceCheck{resp: &checkInsurance.Response{
		Accepted: true,
		Message:  "Yes, Aetna is an accepted insurance provider.",
	}}
	d, _, metrics := newTestDispatcher(&fakePatientLookup{}, &fakeProviderSearch{}, insurance, &fakeBooking{})

	result, err := d.Dispatch(context.Background(), CheckInsurance{ProviderName: ptr.Ptr("Aetna")})
	require.NoError(t, err)

	assert.Equal(t, "Yes, Aetna is an accepted insurance provider.", result.Text)
	assert.Equal(t, "success", metrics.operations["check_insurance"])
}

func TestDispatcher_BookAppointment_Confirmed(t *testing.T) {
	booking := &fakeBooking{resp: &bookAppointment.Response{
		PatientName:    "Jane Doe",
		Classification: domain.ClassificationNew,
		Message:        "Successfully booked",
	}}
	d, transcript, metrics := newTestDispatcher(&fakePatientLookup{}, &fakeProviderSearch{}, &fakeInsuranceCheck{}, booking)

	result, err := d.Dispatch(context.Background(), BookAppointment{
		PatientID: 42, ProviderName: "Dr. Lee", Timestamp: "2025-03-10T09:00:00", LocationAddress: "123 Main St",
	})
	require.NoError(t, err)

	assert.Equal(t, "Successfully booked", result.Text)
	assert.Equal(t, domain.ClassificationNew, result.Booking.Classification)
	assert.Equal(t, []string{"confirmed"}, metrics.bookings)
	assert.Equal(t, "book_appointment", transcript.entries[0].operation)
}

func TestDispatcher_BookAppointment_FailureGetsFailureText(t *testing.T) {
	booking := &fakeBooking{err: bookAppointment.ErrSlotUnavailable}
	d, transcript, metrics := newTestDispatcher(&fakePatientLookup{}, &fakeProviderSearch{}, &fakeInsuranceCheck{}, booking)

	_, err := d.Dispatch(context.Background(), BookAppointment{
		PatientID: 42, ProviderName: "Dr. Lee", Timestamp: "2025-03-10T09:00:00", LocationAddress: "123 Main St",
	})
	require.ErrorIs(t, err, bookAppointment.ErrSlotUnavailable)

	assert.Equal(t, []string{"slot_unavailable"}, metrics.bookings)
	assert.Equal(t, "error", metrics.operations["book_appointment"])
	require.Len(t, transcript.entries, 1)
	assert.Contains(t, transcript.entries[0].result, "2025-03-10 09:00")
	assert.Contains(t, transcript.entries[0].result, "already booked")
}

type bogusCommand struct{}

func (bogusCommand) Operation() string { return "bogus" }
func (bogusCommand) Detail() string    { return "" }

func TestDispatcher_UnknownCommand(t *testing.T) {
	d, _, _ := newTestDispatcher(&fakePatientLookup{}, &fakeProviderSearch{}, &fakeInsuranceCheck{}, &fakeBooking{})

	_, err := d.Dispatch(context.Background(), bogusCommand{})
	require.ErrorIs(t, err, ErrUnknownCommand)
}
