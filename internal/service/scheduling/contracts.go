package scheduling

import "github.com/m04kA/SMC-CareCoordinator/internal/domain"

// CalendarStore интерфейс календаря занятых слотов сессии
type CalendarStore interface {
	IsOccupied(slot domain.Slot) bool
	OccupyIfFree(slot domain.Slot) bool
	Reset()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
