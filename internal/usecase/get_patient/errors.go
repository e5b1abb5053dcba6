package get_patient

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном ID пациента
	ErrInvalidInput = errors.New("get_patient: invalid input")

	// ErrPatientNotFound возвращается, когда пациент не найден во внешнем источнике
	ErrPatientNotFound = errors.New("get_patient: patient not found")

	// ErrInternal возвращается при транспортных сбоях источника
	ErrInternal = errors.New("get_patient: internal error")
)
