package get_patient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
	patientClient "github.com/m04kA/SMC-CareCoordinator/internal/integrations/patientservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakePatientSource struct {
	patients map[int64]*domain.Patient
	err      error
}

func (f *fakePatientSource) GetPatient(_ context.Context, id int64) (*domain.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	patient, ok := f.patients[id]
	if !ok {
		return nil, patientClient.ErrPatientNotFound
	}
	return patient, nil
}

func TestUseCase_Execute_ReturnsPatient(t *testing.T) {
	source := &fakePatientSource{patients: map[int64]*domain.Patient{
		42: {ID: 42, Name: "Jane Doe", DOB: "05/12/88", PCP: "Dr. Sarah Lee"},
	}}
	uc := NewUseCase(source, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PatientID: 42})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.Patient.ID)
	assert.Equal(t, "Jane Doe", resp.Patient.Name)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	uc := NewUseCase(&fakePatientSource{patients: map[int64]*domain.Patient{}}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PatientID: 999})
	require.ErrorIs(t, err, ErrPatientNotFound)
}

func TestUseCase_Execute_InvalidID(t *testing.T) {
	uc := NewUseCase(&fakePatientSource{}, nopLogger{})

	for _, id := range []int64{0, -1} {
		_, err := uc.Execute(context.Background(), &Request{PatientID: id})
		require.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestUseCase_Execute_TransportFailure(t *testing.T) {
	uc := NewUseCase(&fakePatientSource{err: errors.New("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PatientID: 42})
	require.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrPatientNotFound)
}
