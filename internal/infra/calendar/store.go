package calendar

import (
	"sync"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
	"github.com/m04kA/SMC-CareCoordinator/pkg/types"
)

// dayKey ключ календаря: провайдер + дата
type dayKey struct {
	provider string
	date     string
}

// Store in-memory календарь занятых слотов на время жизни сессии.
// Хранит для каждой пары (провайдер, дата) множество занятых времён.
// Отсутствие времени в множестве означает доступность слота.
//
// Все операции защищены мьютексом, привязанным к экземпляру стора:
// два конкурентных коммита одного слота не могут оба завершиться успехом.
type Store struct {
	mu     sync.Mutex
	booked map[dayKey]map[types.TimeString]struct{}
}

// NewStore создает пустой календарь
func NewStore() *Store {
	return &Store{
		booked: make(map[dayKey]map[types.TimeString]struct{}),
	}
}

// IsOccupied возвращает true, если слот уже занят
func (s *Store) IsOccupied(slot domain.Slot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isOccupiedLocked(slot)
}

// Occupy безусловно помечает слот занятым.
// Вызывающая сторона обязана предварительно проверить доступность;
// для атомарной проверки с захватом используйте OccupyIfFree.
func (s *Store) Occupy(slot domain.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.occupyLocked(slot)
}

// OccupyIfFree атомарный check-and-set: занимает слот и возвращает true,
// только если он был свободен. При занятом слоте состояние не меняется.
func (s *Store) OccupyIfFree(slot domain.Slot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isOccupiedLocked(slot) {
		return false
	}
	s.occupyLocked(slot)
	return true
}

// Reset сбрасывает календарь в пустое состояние
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.booked = make(map[dayKey]map[types.TimeString]struct{})
}

// BookedCount возвращает общее число занятых слотов (для логирования)
func (s *Store) BookedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, times := range s.booked {
		count += len(times)
	}
	return count
}

func (s *Store) isOccupiedLocked(slot domain.Slot) bool {
	times, ok := s.booked[dayKey{provider: slot.Provider, date: slot.Date}]
	if !ok {
		return false
	}
	_, occupied := times[slot.Time]
	return occupied
}

func (s *Store) occupyLocked(slot domain.Slot) {
	key := dayKey{provider: slot.Provider, date: slot.Date}
	times, ok := s.booked[key]
	if !ok {
		times = make(map[types.TimeString]struct{})
		s.booked[key] = times
	}
	times[slot.Time] = struct{}{}
}
