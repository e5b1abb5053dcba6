package check_insurance

import (
	"context"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// InsuranceSource интерфейс доступа к страховой информации базы знаний
type InsuranceSource interface {
	InsuranceInfo(ctx context.Context) (*domain.InsuranceInfo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
