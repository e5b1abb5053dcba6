package get_history

import (
	"github.com/m04kA/SMC-CareCoordinator/internal/session"
)

// HistorySource интерфейс транскрипта сессии
type HistorySource interface {
	History() []session.Entry
}

type Logger interface {
	Info(format string, v ...interface{})
}
