package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "full iso timestamp",
			input: "2025-03-10T09:00:00",
			want:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "without seconds",
			input: "2025-03-10T09:00",
			want:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{name: "date only", input: "2025-03-10", wantErr: true},
		{name: "history format", input: "03/10/25", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimestamp)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParseHistoryDate(t *testing.T) {
	got, err := ParseHistoryDate("03/15/21")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseHistoryDate("2021-03-15")
	require.ErrorIs(t, err, ErrInvalidHistoryDate)

	// Ошибки двух парсеров различимы
	assert.NotErrorIs(t, err, ErrInvalidTimestamp)
}

func TestNewSlot_MinuteGranularity(t *testing.T) {
	withSeconds := NewSlot("Dr. Lee", time.Date(2025, 3, 10, 9, 0, 42, 0, time.UTC))
	withoutSeconds := NewSlot("Dr. Lee", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, withoutSeconds, withSeconds)
	assert.Equal(t, "2025-03-10 09:00", withSeconds.Label())
}
