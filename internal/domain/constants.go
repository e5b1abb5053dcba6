package domain

// Time format constants
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	TimeFormat        = "15:04"      // HH:MM
	HistoryDateFormat = "01/02/06"   // MM/DD/YY, формат дат в истории приёмов

	// TimestampFormat ISO-формат запрашиваемого времени приёма
	TimestampFormat = "2006-01-02T15:04:05"
	// TimestampFormatNoSeconds допустимый укороченный вариант без секунд
	TimestampFormatNoSeconds = "2006-01-02T15:04"

	// DisplayTimestampFormat формат для человекочитаемого подтверждения,
	// например "Monday, March 10, 2025 at 09:00 AM"
	DisplayTimestampFormat = "Monday, January 02, 2006 at 03:04 PM"
)

// DaysPerYear количество дней в году для окна established-пациента.
// Правило окна задано в днях (365 * threshold), високосные годы не учитываются.
const DaysPerYear = 365

// DefaultEstablishedThresholdYears окно по умолчанию для established-пациента
const DefaultEstablishedThresholdYears = 5
