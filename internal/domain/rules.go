package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRules возвращается, когда правила приёмов отсутствуют или некорректны
var ErrInvalidRules = errors.New("domain: invalid appointment rules")

// AppointmentTypeRule правила для одного типа приёма
type AppointmentTypeRule struct {
	DurationMinutes     int
	ArrivalMinutesEarly int
}

// AppointmentRules правила приёмов из базы знаний.
// Валидируются один раз при загрузке (см. service/knowledge).
type AppointmentRules struct {
	New                       AppointmentTypeRule
	Established               AppointmentTypeRule
	EstablishedThresholdYears int
}

// RuleFor возвращает правила для указанной классификации пациента
func (r *AppointmentRules) RuleFor(c Classification) AppointmentTypeRule {
	if c == ClassificationEstablished {
		return r.Established
	}
	return r.New
}

// Validate проверяет, что все обязательные поля правил заданы
func (r *AppointmentRules) Validate() error {
	if r.New.ArrivalMinutesEarly <= 0 || r.New.DurationMinutes <= 0 {
		return fmt.Errorf("%w: new-patient rule is incomplete", ErrInvalidRules)
	}
	if r.Established.ArrivalMinutesEarly <= 0 || r.Established.DurationMinutes <= 0 {
		return fmt.Errorf("%w: established-patient rule is incomplete", ErrInvalidRules)
	}
	if r.EstablishedThresholdYears <= 0 {
		return fmt.Errorf("%w: established patient threshold must be positive", ErrInvalidRules)
	}
	return nil
}
