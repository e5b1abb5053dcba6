package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimestamp возвращается при неразборчивом ISO-времени приёма.
	// Ошибка вызывающей стороны (malformed input).
	ErrInvalidTimestamp = errors.New("domain: invalid appointment timestamp")

	// ErrInvalidHistoryDate возвращается при неразборчивой дате в истории приёмов.
	// Ошибка целостности данных, а не вызывающей стороны.
	ErrInvalidHistoryDate = errors.New("domain: invalid history date")
)

// ParseTimestamp разбирает запрошенное время приёма в ISO-формате
// (YYYY-MM-DDTHH:MM:SS, допускается вариант без секунд).
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(TimestampFormatNoSeconds, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q, expected format YYYY-MM-DDTHH:MM:SS", ErrInvalidTimestamp, s)
}

// ParseHistoryDate разбирает дату исторического приёма в формате MM/DD/YY
func ParseHistoryDate(s string) (time.Time, error) {
	t, err := time.Parse(HistoryDateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, expected format MM/DD/YY", ErrInvalidHistoryDate, s)
	}
	return t, nil
}
