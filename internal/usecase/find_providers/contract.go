package find_providers

import (
	"context"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// ProviderSearcher интерфейс поиска провайдеров в базе знаний
type ProviderSearcher interface {
	FindProviders(ctx context.Context, name, specialty *string) ([]domain.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
