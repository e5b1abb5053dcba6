package dispatch

import (
	"context"

	bookAppointment "github.com/m04kA/SMC-CareCoordinator/internal/usecase/book_appointment"
	checkInsurance "github.com/m04kA/SMC-CareCoordinator/internal/usecase/check_insurance"
	findProviders "github.com/m04kA/SMC-CareCoordinator/internal/usecase/find_providers"
	getPatient "github.com/m04kA/SMC-CareCoordinator/internal/usecase/get_patient"
)

// PatientLookup интерфейс use case получения карты пациента
type PatientLookup interface {
	Execute(ctx context.Context, req *getPatient.Request) (*getPatient.Response, error)
}

// ProviderSearch интерфейс use case поиска провайдеров
type ProviderSearch interface {
	Execute(ctx context.Context, req *findProviders.Request) (*findProviders.Response, error)
}

// InsuranceCheck интерфейс use case страховой проверки
type InsuranceCheck interface {
	Execute(ctx context.Context, req *checkInsurance.Request) (*checkInsurance.Response, error)
}

// AppointmentBooking интерфейс use case бронирования приёма
type AppointmentBooking interface {
	Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error)
}

// Transcript интерфейс транскрипта сессии
type Transcript interface {
	Record(operation, detail, result string)
}

// MetricsCollector интерфейс сборщика метрик операций
type MetricsCollector interface {
	IncOperation(operation, status string)
	IncBooking(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
