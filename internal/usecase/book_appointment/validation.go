package book_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PatientID <= 0 {
		return fmt.Errorf("%w: patientID must be positive", ErrMalformedInput)
	}

	if strings.TrimSpace(req.ProviderName) == "" {
		return fmt.Errorf("%w: providerName is required", ErrMalformedInput)
	}

	if strings.TrimSpace(req.Timestamp) == "" {
		return fmt.Errorf("%w: timestamp is required", ErrMalformedInput)
	}

	if strings.TrimSpace(req.LocationAddress) == "" {
		return fmt.Errorf("%w: locationAddress is required", ErrMalformedInput)
	}

	return nil
}

// parseTimestamp разбирает запрошенное время приёма.
// Неразборчивое время - ошибка вызывающей стороны (MalformedInput),
// в отличие от дат истории приёмов (см. classification).
func parseTimestamp(raw string) (time.Time, error) {
	at, err := domain.ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return at, nil
}
