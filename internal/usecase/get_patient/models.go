package get_patient

import (
	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// Request модель запроса карты пациента
type Request struct {
	PatientID int64 // ID пациента во внешнем источнике
}

// Response модель ответа с картой пациента
type Response struct {
	Patient *domain.Patient
}
