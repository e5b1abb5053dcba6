package get_patient

import (
	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// HistoricalAppointmentResponse HTTP model записи истории приёмов
type HistoricalAppointmentResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Provider string `json:"provider"`
	Status   string `json:"status"`
}

// ReferredProviderResponse HTTP model направления к провайдеру
type ReferredProviderResponse struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// PatientResponse HTTP response model карты пациента
type PatientResponse struct {
	ID                int64                           `json:"id"`
	Name              string                          `json:"name"`
	DOB               string                          `json:"dob"`
	PCP               string                          `json:"pcp"`
	EHRID             string                          `json:"ehrId"`
	ReferredProviders []ReferredProviderResponse      `json:"referred_providers"`
	Appointments      []HistoricalAppointmentResponse `json:"appointments"`
}

// FromDomainPatient конвертирует доменную модель пациента в HTTP response
func FromDomainPatient(p *domain.Patient) *PatientResponse {
	resp := &PatientResponse{
		ID:    p.ID,
		Name:  p.Name,
		DOB:   p.DOB,
		PCP:   p.PCP,
		EHRID: p.EHRID,
	}
	for _, ref := range p.ReferredProviders {
		resp.ReferredProviders = append(resp.ReferredProviders, ReferredProviderResponse{
			Name:      ref.Name,
			Specialty: ref.Specialty,
		})
	}
	for _, a := range p.Appointments {
		resp.Appointments = append(resp.Appointments, HistoricalAppointmentResponse{
			Date:     a.Date,
			Time:     a.Time,
			Provider: a.Provider,
			Status:   a.Status,
		})
	}
	return resp
}
