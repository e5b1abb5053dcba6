package dispatch

import (
	"fmt"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
	bookAppointment "github.com/m04kA/SMC-CareCoordinator/internal/usecase/book_appointment"
)

// Command одна операция координатора. Каждый вариант несет аргументы
// своей операции; Detail дает краткую сводку аргументов для транскрипта.
type Command interface {
	Operation() string
	Detail() string
}

// LookupPatient запрос карты пациента
type LookupPatient struct {
	PatientID int64
}

func (c LookupPatient) Operation() string { return "get_patient" }
func (c LookupPatient) Detail() string    { return fmt.Sprintf("patient=%d", c.PatientID) }

// SearchProviders поиск провайдеров по имени и/или специальности
type SearchProviders struct {
	Name      *string
	Specialty *string
}

func (c SearchProviders) Operation() string { return "find_providers" }

func (c SearchProviders) Detail() string {
	name, specialty := "", ""
	if c.Name != nil {
		name = *c.Name
	}
	if c.Specialty != nil {
		specialty = *c.Specialty
	}
	return fmt.Sprintf("name=%q specialty=%q", name, specialty)
}

// CheckInsurance страховая проверка
type CheckInsurance struct {
	ProviderName *string
}

func (c CheckInsurance) Operation() string { return "check_insurance" }

func (c CheckInsurance) Detail() string {
	if c.ProviderName == nil {
		return "provider=<all>"
	}
	return fmt.Sprintf("provider=%q", *c.ProviderName)
}

// BookAppointment бронирование приёма
type BookAppointment struct {
	PatientID       int64
	ProviderName    string
	Timestamp       string
	LocationAddress string
}

func (c BookAppointment) Operation() string { return "book_appointment" }

func (c BookAppointment) Detail() string {
	return fmt.Sprintf("patient=%d provider=%q at=%q", c.PatientID, c.ProviderName, c.Timestamp)
}

// Result исход выполненной операции. Text заполнен всегда; типизированные
// поля - только для операции, которая их производит.
type Result struct {
	Text      string
	Patient   *domain.Patient
	Providers []domain.Provider
	Booking   *bookAppointment.Response
}
