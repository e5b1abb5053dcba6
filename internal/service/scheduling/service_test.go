package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareCoordinator/internal/infra/calendar"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	return NewService(calendar.NewStore(), nopLogger{})
}

func TestService_CheckAvailability_EmptyCalendar(t *testing.T) {
	svc := newTestService()

	assert.True(t, svc.CheckAvailability("Dr. Lee", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))
}

func TestService_Book_ThenUnavailable(t *testing.T) {
	svc := newTestService()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	require.True(t, svc.Book("Dr. Lee", "Jane Doe", at))

	assert.False(t, svc.CheckAvailability("Dr. Lee", at))
	assert.False(t, svc.Book("Dr. Lee", "John Roe", at))

	// Соседний слот и другой провайдер не затронуты
	assert.True(t, svc.CheckAvailability("Dr. Lee", at.Add(15*time.Minute)))
	assert.True(t, svc.CheckAvailability("Dr. Smith", at))
}

func TestService_MinuteGranularity_SecondsCollide(t *testing.T) {
	svc := newTestService()

	require.True(t, svc.Book("Dr. Lee", "Jane Doe", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))

	// Та же минута с другими секундами - тот же слот
	assert.False(t, svc.CheckAvailability("Dr. Lee", time.Date(2025, 3, 10, 9, 0, 59, 0, time.UTC)))
	assert.False(t, svc.Book("Dr. Lee", "John Roe", time.Date(2025, 3, 10, 9, 0, 30, 0, time.UTC)))
}

func TestService_Reset_MakesSlotsAvailable(t *testing.T) {
	svc := newTestService()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	require.True(t, svc.Book("Dr. Lee", "Jane Doe", at))
	svc.Reset()

	assert.True(t, svc.CheckAvailability("Dr. Lee", at))
	assert.True(t, svc.Book("Dr. Lee", "Jane Doe", at))
}
