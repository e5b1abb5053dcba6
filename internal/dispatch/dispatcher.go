package dispatch

import (
	"context"
	"errors"
	"fmt"

	bookAppointment "github.com/m04kA/SMC-CareCoordinator/internal/usecase/book_appointment"
	checkInsurance "github.com/m04kA/SMC-CareCoordinator/internal/usecase/check_insurance"
	findProviders "github.com/m04kA/SMC-CareCoordinator/internal/usecase/find_providers"
	getPatient "github.com/m04kA/SMC-CareCoordinator/internal/usecase/get_patient"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// ErrUnknownCommand возвращается для команды, не известной диспетчеру
var ErrUnknownCommand = errors.New("dispatch: unknown command")

// Dispatcher маршрутизирует команды координатора в use cases, пишет
// транскрипт сессии и метрики операций. Единая точка входа для всех
// операций: каждая выполненная команда оставляет запись в транскрипте
// независимо от исхода.
type Dispatcher struct {
	patientLookup  PatientLookup
	providerSearch ProviderSearch
	insuranceCheck InsuranceCheck
	booking        AppointmentBooking
	transcript     Transcript
	metrics        MetricsCollector
	logger         Logger
}

// NewDispatcher создает новый диспетчер операций
func NewDispatcher(
	patientLookup PatientLookup,
	providerSearch ProviderSearch,
	insuranceCheck InsuranceCheck,
	booking AppointmentBooking,
	transcript Transcript,
	metrics MetricsCollector,
	logger Logger,
) *Dispatcher {
	return &Dispatcher{
		patientLookup:  patientLookup,
		providerSearch: providerSearch,
		insuranceCheck: insuranceCheck,
		booking:        booking,
		transcript:     transcript,
		metrics:        metrics,
		logger:         logger,
	}
}

// Dispatch выполняет команду и возвращает её исход.
// Исход (успех или текст отказа) всегда записывается в транскрипт.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (*Result, error) {
	d.logger.Info("Dispatch: %s (%s)", cmd.Operation(), cmd.Detail())

	var (
		result *Result
		err    error
	)

	switch c := cmd.(type) {
	case LookupPatient:
		result, err = d.lookupPatient(ctx, c)
	case SearchProviders:
		result, err = d.searchProviders(ctx, c)
	case CheckInsurance:
		result, err = d.checkInsurance(ctx, c)
	case BookAppointment:
		result, err = d.bookAppointment(ctx, c)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}

	if err != nil {
		d.metrics.IncOperation(cmd.Operation(), statusError)
		return nil, err
	}

	d.metrics.IncOperation(cmd.Operation(), statusSuccess)
	d.transcript.Record(cmd.Operation(), cmd.Detail(), result.Text)
	return result, nil
}

func (d *Dispatcher) lookupPatient(ctx context.Context, cmd LookupPatient) (*Result, error) {
	resp, err := d.patientLookup.Execute(ctx, &getPatient.Request{PatientID: cmd.PatientID})
	if err != nil {
		d.transcript.Record(cmd.Operation(), cmd.Detail(), fmt.Sprintf("failed: %v", err))
		return nil, err
	}

	return &Result{
		Text:    fmt.Sprintf("Patient %d: %s", resp.Patient.ID, resp.Patient.Name),
		Patient: resp.Patient,
	}, nil
}

func (d *Dispatcher) searchProviders(ctx context.Context, cmd SearchProviders) (*Result, error) {
	resp, err := d.providerSearch.Execute(ctx, &findProviders.Request{
		Name:      cmd.Name,
		Specialty: cmd.Specialty,
	})
	if err != nil {
		d.transcript.Record(cmd.Operation(), cmd.Detail(), fmt.Sprintf("failed: %v", err))
		return nil, err
	}

	return &Result{
		Text:      resp.Message,
		Providers: resp.Providers,
	}, nil
}

func (d *Dispatcher) checkInsurance(ctx context.Context, cmd CheckInsurance) (*Result, error) {
	resp, err := d.insuranceCheck.Execute(ctx, &checkInsurance.Request{ProviderName: cmd.ProviderName})
	if err != nil {
		d.transcript.Record(cmd.Operation(), cmd.Detail(), fmt.Sprintf("failed: %v", err))
		return nil, err
	}

	return &Result{Text: resp.Message}, nil
}

func (d *Dispatcher) bookAppointment(ctx context.Context, cmd BookAppointment) (*Result, error) {
	req := &bookAppointment.Request{
		PatientID:       cmd.PatientID,
		ProviderName:    cmd.ProviderName,
		Timestamp:       cmd.Timestamp,
		LocationAddress: cmd.LocationAddress,
	}

	resp, err := d.booking.Execute(ctx, req)
	if err != nil {
		// Отказ workflow терминален: текст отказа попадает в транскрипт
		d.metrics.IncBooking(bookingOutcome(err))
		d.transcript.Record(cmd.Operation(), cmd.Detail(), bookAppointment.FailureMessage(req, err))
		return nil, err
	}

	d.metrics.IncBooking("confirmed")
	return &Result{
		Text:    resp.Message,
		Booking: resp,
	}, nil
}

// bookingOutcome маппит ошибку workflow в лейбл метрики исходов бронирования
func bookingOutcome(err error) string {
	switch {
	case errors.Is(err, bookAppointment.ErrSlotUnavailable):
		return "slot_unavailable"
	case errors.Is(err, bookAppointment.ErrCommitConflict):
		return "commit_conflict"
	case errors.Is(err, bookAppointment.ErrPatientNotFound):
		return "patient_not_found"
	case errors.Is(err, bookAppointment.ErrMalformedInput):
		return "malformed_input"
	default:
		return "failed"
	}
}
