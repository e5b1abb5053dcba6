package patientservice

import "github.com/m04kA/SMC-CareCoordinator/internal/domain"

// patientResponse модель пациента из внешнего источника карт пациентов
type patientResponse struct {
	ID                int64                      `json:"id"`
	Name              string                     `json:"name"`
	DOB               string                     `json:"dob"`
	PCP               string                     `json:"pcp"`
	EHRID             string                     `json:"ehrId"`
	ReferredProviders []referredProviderResponse `json:"referred_providers"`
	Appointments      []appointmentResponse      `json:"appointments"`
}

// referredProviderResponse направление к провайдеру
type referredProviderResponse struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// appointmentResponse запись о прошлом приёме
type appointmentResponse struct {
	Date     string `json:"date"` // MM/DD/YY
	Time     string `json:"time"`
	Provider string `json:"provider"`
	Status   string `json:"status"`
}

// ErrorResponse модель ошибки от сервиса карт пациентов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toDomain конвертирует ответ сервиса в доменную модель
func (p *patientResponse) toDomain() *domain.Patient {
	patient := &domain.Patient{
		ID:    p.ID,
		Name:  p.Name,
		DOB:   p.DOB,
		PCP:   p.PCP,
		EHRID: p.EHRID,
	}

	for _, ref := range p.ReferredProviders {
		patient.ReferredProviders = append(patient.ReferredProviders, domain.ReferredProvider{
			Name:      ref.Name,
			Specialty: ref.Specialty,
		})
	}

	for _, appt := range p.Appointments {
		patient.Appointments = append(patient.Appointments, domain.HistoricalAppointment{
			Date:     appt.Date,
			Time:     appt.Time,
			Provider: appt.Provider,
			Status:   appt.Status,
		})
	}

	return patient
}
