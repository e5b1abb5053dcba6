package book_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// Request модель запроса на бронирование приёма.
// Аргументы приходят уже извлеченными из диалога внешним оркестратором.
type Request struct {
	PatientID       int64  // ID пациента во внешнем источнике
	ProviderName    string // Имя провайдера (натуральный ключ)
	Timestamp       string // Время приёма в ISO-формате (YYYY-MM-DDTHH:MM:SS)
	LocationAddress string // Адрес отделения, названный вызывающей стороной
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	PatientName         string                // Имя пациента
	ProviderName        string                // Имя провайдера
	LocationAddress     string                // Адрес отделения
	AppointmentAt       time.Time             // Время приёма
	Classification      domain.Classification // NEW или ESTABLISHED
	ArrivalMinutesEarly int                   // За сколько минут до приёма прибыть
	Message             string                // Человекочитаемое подтверждение
}

// confirmationMessage собирает человекочитаемое подтверждение бронирования
func confirmationMessage(resp *Response) string {
	return fmt.Sprintf(
		"Successfully booked a **%s** appointment for **%s** with **%s** at **%s** on **%s**. "+
			"\n\nPlease advise the patient to arrive **%d minutes early**.",
		resp.Classification,
		resp.PatientName,
		resp.ProviderName,
		resp.LocationAddress,
		resp.AppointmentAt.Format(domain.DisplayTimestampFormat),
		resp.ArrivalMinutesEarly,
	)
}

// FailureMessage конвертирует типизированную ошибку workflow в текст для
// вызывающей стороны. Каждый отказ терминален: сообщение называет проблему
// и, где уместно, подсказывает исправление.
func FailureMessage(req *Request, err error) string {
	switch {
	case errors.Is(err, ErrMalformedInput):
		return fmt.Sprintf(
			"The request could not be processed: %v. "+
				"Please ensure the date/time is in the format YYYY-MM-DDTHH:MM:SS and all details are provided.",
			err,
		)

	case errors.Is(err, ErrPatientNotFound):
		return fmt.Sprintf(
			"Patient %d could not be found. Please verify the patient ID and try again.",
			req.PatientID,
		)

	case errors.Is(err, ErrSlotUnavailable):
		return fmt.Sprintf(
			"Error: The time slot %s is already booked for %s. Please suggest another time.",
			slotLabel(req),
			req.ProviderName,
		)

	case errors.Is(err, ErrCommitConflict):
		return "Booking failed. The requested time slot may have just been taken. Please try another time."

	case errors.Is(err, ErrMalformedHistory):
		return fmt.Sprintf(
			"The appointment history for patient %d contains an unreadable date, so the booking was not completed. "+
				"Please have the patient record corrected before booking.",
			req.PatientID,
		)

	case errors.Is(err, ErrRulesMissing):
		return "Appointment rules are missing from the knowledge base. This is a configuration error; please contact an administrator."

	default:
		return fmt.Sprintf("An error occurred during booking: %v. Please try again.", err)
	}
}

// slotLabel возвращает "YYYY-MM-DD HH:MM" для запрошенного времени.
// Используется только в сообщениях об отказе, когда время уже было разобрано.
func slotLabel(req *Request) string {
	at, err := domain.ParseTimestamp(req.Timestamp)
	if err != nil {
		return req.Timestamp
	}
	return domain.NewSlot(req.ProviderName, at).Label()
}
