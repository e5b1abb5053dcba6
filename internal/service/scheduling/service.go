package scheduling

import (
	"time"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// Service сервис расписания: проверка доступности и коммит слотов
// поверх календаря сессии.
type Service struct {
	calendar CalendarStore
	logger   Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(calendar CalendarStore, logger Logger) *Service {
	return &Service{
		calendar: calendar,
		logger:   logger,
	}
}

// CheckAvailability проверяет, свободен ли слот у провайдера.
// Чистый запрос без побочных эффектов. Время приводится к минутной
// гранулярности: запросы, различающиеся только секундами, попадают
// в один и тот же слот.
func (s *Service) CheckAvailability(provider string, at time.Time) bool {
	slot := domain.NewSlot(provider, at)
	return !s.calendar.IsOccupied(slot)
}

// Book выполняет коммит бронирования: повторно проверяет доступность
// и занимает слот одной атомарной операцией. Возвращает false без
// каких-либо изменений, если слот уже занят.
func (s *Service) Book(provider, patientName string, at time.Time) bool {
	slot := domain.NewSlot(provider, at)

	if !s.calendar.OccupyIfFree(slot) {
		s.logger.Warn("Book: slot %s is already taken for %s", slot.Label(), provider)
		return false
	}

	s.logger.Info("Book: appointment booked for %s with %s on %s", patientName, provider, slot.Label())
	return true
}

// Reset сбрасывает календарь сессии в пустое состояние
func (s *Service) Reset() {
	s.calendar.Reset()
	s.logger.Info("Reset: session calendar cleared")
}
