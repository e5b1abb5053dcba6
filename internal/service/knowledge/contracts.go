package knowledge

import (
	"context"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// Repository интерфейс репозитория базы знаний
type Repository interface {
	ListProviders(ctx context.Context) ([]domain.Provider, error)
	ListAcceptedInsurances(ctx context.Context) ([]string, error)
	ListSelfPayRates(ctx context.Context) ([]domain.SelfPayRate, error)
	GetAppointmentRules(ctx context.Context) (*domain.AppointmentRules, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
