package classification

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// Classify определяет статус пациента (NEW или ESTABLISHED) относительно
// целевого провайдера по истории приёмов.
//
// Запись истории учитывается, если имя её провайдера содержит целевое имя
// как подстроку без учета регистра. Пациент считается established, если
// хотя бы один такой приём был менее чем thresholdYears * 365 дней назад.
// Первая подходящая запись завершает обход: порядок списка влияет только
// на скорость, не на результат.
//
// Неразборчивая дата в подходящей записи - ошибка целостности данных
// (ErrMalformedHistory), она обрывает всю классификацию.
func Classify(patient *domain.Patient, targetProvider string, thresholdYears int, now time.Time) (domain.Classification, error) {
	if thresholdYears <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidThreshold, thresholdYears)
	}

	window := time.Duration(thresholdYears) * domain.DaysPerYear * 24 * time.Hour
	target := strings.ToLower(targetProvider)

	for _, appt := range patient.Appointments {
		if !strings.Contains(strings.ToLower(appt.Provider), target) {
			continue
		}

		apptDate, err := domain.ParseHistoryDate(appt.Date)
		if err != nil {
			return "", fmt.Errorf("%w: appointment with %q: %v", ErrMalformedHistory, appt.Provider, err)
		}

		if now.Sub(apptDate) < window {
			return domain.ClassificationEstablished, nil
		}
	}

	return domain.ClassificationNew, nil
}
