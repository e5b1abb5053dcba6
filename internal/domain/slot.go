package domain

import (
	"time"

	"github.com/m04kA/SMC-CareCoordinator/pkg/types"
)

// Slot is the unit of booking exclusivity: a (provider, date, time-of-day)
// triple at minute granularity. At most one booking may occupy a slot
// within a session.
type Slot struct {
	Provider string
	Date     string           // YYYY-MM-DD
	Time     types.TimeString // HH:MM
}

// NewSlot builds a slot from a provider name and an appointment timestamp.
// Seconds are dropped: two timestamps within the same minute map to the same slot.
func NewSlot(provider string, at time.Time) Slot {
	return Slot{
		Provider: provider,
		Date:     at.Format(DateFormat),
		Time:     types.NewTimeString(at),
	}
}

// Label returns the "YYYY-MM-DD HH:MM" representation used in caller-facing messages
func (s Slot) Label() string {
	return s.Date + " " + s.Time.String()
}
