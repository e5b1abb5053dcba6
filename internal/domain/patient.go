package domain

// HistoricalAppointment запись о прошлом приёме из карты пациента.
// Только для чтения, используется при классификации new/established.
type HistoricalAppointment struct {
	Date     string // MM/DD/YY
	Time     string
	Provider string
	Status   string
}

// ReferredProvider направление пациента к провайдеру
type ReferredProvider struct {
	Name      string
	Specialty string
}

// Patient карта пациента из внешнего источника.
// Загружается заново на каждый запрос, никогда не кэшируется и не мутируется.
type Patient struct {
	ID                int64
	Name              string
	DOB               string
	PCP               string
	EHRID             string
	ReferredProviders []ReferredProvider
	Appointments      []HistoricalAppointment
}
