package book_appointment

import (
	"github.com/m04kA/SMC-CareCoordinator/internal/dispatch"
	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
	bookAppointment "github.com/m04kA/SMC-CareCoordinator/internal/usecase/book_appointment"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	PatientID       int64  `json:"patientId"`
	ProviderName    string `json:"providerName"`
	Timestamp       string `json:"timestamp"` // "2025-03-10T09:00:00"
	LocationAddress string `json:"locationAddress"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	PatientName         string `json:"patientName"`
	ProviderName        string `json:"providerName"`
	LocationAddress     string `json:"locationAddress"`
	AppointmentAt       string `json:"appointmentAt"`
	Classification      string `json:"classification"`
	ArrivalMinutesEarly int    `json:"arrivalMinutesEarly"`
	Message             string `json:"message"`
}

// ToCommand конвертирует HTTP запрос в команду диспетчера
func (r *BookAppointmentRequest) ToCommand() dispatch.BookAppointment {
	return dispatch.BookAppointment{
		PatientID:       r.PatientID,
		ProviderName:    r.ProviderName,
		Timestamp:       r.Timestamp,
		LocationAddress: r.LocationAddress,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		PatientName:         resp.PatientName,
		ProviderName:        resp.ProviderName,
		LocationAddress:     resp.LocationAddress,
		AppointmentAt:       resp.AppointmentAt.Format(domain.TimestampFormat),
		Classification:      string(resp.Classification),
		ArrivalMinutesEarly: resp.ArrivalMinutesEarly,
		Message:             resp.Message,
	}
}
