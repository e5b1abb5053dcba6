package book_appointment

import "errors"

var (
	// ErrMalformedInput возвращается при неразборчивом времени приёма
	// или отсутствующем обязательном поле. Ошибка вызывающей стороны.
	ErrMalformedInput = errors.New("book_appointment: malformed input")

	// ErrPatientNotFound возвращается, когда пациент не найден во внешнем
	// источнике либо источник недоступен
	ErrPatientNotFound = errors.New("book_appointment: patient not found")

	// ErrSlotUnavailable возвращается, когда слот занят на момент проверки
	// доступности (до коммита)
	ErrSlotUnavailable = errors.New("book_appointment: slot unavailable")

	// ErrCommitConflict возвращается, когда коммит проиграл гонку:
	// слот выглядел свободным на шаге проверки, но был занят к моменту коммита
	ErrCommitConflict = errors.New("book_appointment: commit conflict")

	// ErrMalformedHistory возвращается при неразборчивой дате в истории
	// приёмов пациента. Ошибка целостности данных, не вызывающей стороны.
	ErrMalformedHistory = errors.New("book_appointment: malformed appointment history")

	// ErrRulesMissing возвращается при отсутствующих правилах приёмов.
	// Фатальная ошибка конфигурации развертывания.
	ErrRulesMissing = errors.New("book_appointment: appointment rules missing")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
