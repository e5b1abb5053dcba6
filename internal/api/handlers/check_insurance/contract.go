package check_insurance

import (
	"context"

	"github.com/m04kA/SMC-CareCoordinator/internal/dispatch"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, cmd dispatch.Command) (*dispatch.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
