package patientservice

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден во внешнем источнике
	ErrPatientNotFound = errors.New("patient not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("patientservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("patientservice client: invalid response")
)
