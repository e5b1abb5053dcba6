package get_patient

import (
	"context"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// PatientSource интерфейс внешнего источника карт пациентов
type PatientSource interface {
	GetPatient(ctx context.Context, patientID int64) (*domain.Patient, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
