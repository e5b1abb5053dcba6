package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// PatientSource интерфейс внешнего источника карт пациентов
type PatientSource interface {
	GetPatient(ctx context.Context, patientID int64) (*domain.Patient, error)
}

// Scheduler интерфейс сервиса расписания (проверка доступности и коммит слота)
type Scheduler interface {
	CheckAvailability(provider string, at time.Time) bool
	Book(provider, patientName string, at time.Time) bool
}

// RulesProvider интерфейс доступа к провалидированным правилам приёмов
type RulesProvider interface {
	AppointmentRules(ctx context.Context) (*domain.AppointmentRules, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
