package session

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-CareCoordinator/internal/infra/calendar"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Entry запись транскрипта сессии: одна выполненная операция и её исход
type Entry struct {
	Operation string    // Имя операции (book_appointment, find_providers, ...)
	Detail    string    // Краткое описание аргументов
	Result    string    // Текстовый исход операции
	At        time.Time // Время выполнения
}

// Manager держит состояние одной сессии координатора: календарь занятых
// слотов и транскрипт выполненных операций. Reset возвращает оба в пустое
// состояние; база знаний и внешний источник пациентов сессией не владеются
// и сбросом не затрагиваются.
type Manager struct {
	mu       sync.Mutex
	calendar *calendar.Store
	history  []Entry
	logger   Logger
}

// NewManager создает новую сессию с пустым календарем и транскриптом
func NewManager(store *calendar.Store, logger Logger) *Manager {
	return &Manager{
		calendar: store,
		logger:   logger,
	}
}

// Calendar возвращает календарь сессии
func (m *Manager) Calendar() *calendar.Store {
	return m.calendar
}

// Record добавляет запись в транскрипт сессии
func (m *Manager) Record(operation, detail, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, Entry{
		Operation: operation,
		Detail:    detail,
		Result:    result,
		At:        time.Now(),
	})
}

// History возвращает копию транскрипта сессии
func (m *Manager) History() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Entry, len(m.history))
	copy(out, m.history)
	return out
}

// Reset очищает календарь и транскрипт сессии
func (m *Manager) Reset() {
	m.mu.Lock()
	m.history = nil
	m.mu.Unlock()

	m.calendar.Reset()
	m.logger.Info("Session reset: calendar and history cleared")
}
