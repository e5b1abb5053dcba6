package classification

import "errors"

var (
	// ErrMalformedHistory возвращается при неразборчивой дате в истории приёмов.
	// Запись нельзя молча пропустить: пропуск может ошибочно классифицировать
	// пациента как нового и применить неверное правило времени прибытия.
	ErrMalformedHistory = errors.New("classification: malformed appointment history")

	// ErrInvalidThreshold возвращается при неположительном окне established-пациента
	ErrInvalidThreshold = errors.New("classification: threshold years must be positive")
)
