package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
	patientClient "github.com/m04kA/SMC-CareCoordinator/internal/integrations/patientservice"
	"github.com/m04kA/SMC-CareCoordinator/internal/service/classification"
)

// UseCase use case бронирования приёма.
//
// Workflow проходит состояния
// RECEIVED -> PATIENT_RESOLVED -> SLOT_VALIDATED -> COMMITTED -> CLASSIFIED -> CONFIRMED,
// каждая стадия имеет свой типизированный отказ. Отказы терминальны:
// автоматических повторов нет, вызывающая сторона перезапускает workflow
// с исправленными данными.
type UseCase struct {
	patientSource PatientSource
	scheduler     Scheduler
	rulesProvider RulesProvider
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	patientSource PatientSource,
	scheduler Scheduler,
	rulesProvider RulesProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		patientSource: patientSource,
		scheduler:     scheduler,
		rulesProvider: rulesProvider,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет workflow бронирования приёма
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: patient=%d, provider=%q, timestamp=%q",
		req.PatientID, req.ProviderName, req.Timestamp)

	// 1. Валидация входных данных и разбор времени приёма
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	at, err := parseTimestamp(req.Timestamp)
	if err != nil {
		uc.logger.Warn("BookAppointment: failed to parse timestamp %q: %v", req.Timestamp, err)
		return nil, err
	}

	// 2. Получаем карту пациента из внешнего источника.
	// До успешного получения календарь не мутируется: отмена контекста
	// на этом шаге не оставляет частичного состояния.
	patient, err := uc.patientSource.GetPatient(ctx, req.PatientID)
	if err != nil {
		if errors.Is(err, patientClient.ErrPatientNotFound) {
			uc.logger.Warn("BookAppointment: patient id=%d not found", req.PatientID)
			return nil, ErrPatientNotFound
		}
		// Транспортные сбои источника также терминальны для этого вызова
		uc.logger.Error("BookAppointment: failed to fetch patient id=%d: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: patient source failure: %v", ErrPatientNotFound, err)
	}

	slot := domain.NewSlot(req.ProviderName, at)

	// 3. Проверяем доступность слота
	if !uc.scheduler.CheckAvailability(req.ProviderName, at) {
		uc.logger.Warn("BookAppointment: slot %s unavailable for %q", slot.Label(), req.ProviderName)
		return nil, fmt.Errorf("%w: %s", ErrSlotUnavailable, slot.Label())
	}

	// 4. Коммит: повторная проверка и захват слота одной атомарной операцией.
	// Отдельный отказ CommitConflict: слот выглядел свободным на шаге 3,
	// но гонка с конкурентным коммитом была проиграна.
	if !uc.scheduler.Book(req.ProviderName, patient.Name, at) {
		uc.logger.Warn("BookAppointment: commit lost the race for slot %s", slot.Label())
		return nil, fmt.Errorf("%w: %s", ErrCommitConflict, slot.Label())
	}

	// 5. Правила приёмов из провалидированного снимка базы знаний
	rules, err := uc.rulesProvider.AppointmentRules(ctx)
	if err != nil {
		uc.logger.Error("BookAppointment: appointment rules unavailable: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRulesMissing, err)
	}

	// 6. Классифицируем пациента относительно забронированного провайдера
	class, err := classification.Classify(patient, req.ProviderName, rules.EstablishedThresholdYears, uc.timeProvider.Now())
	if err != nil {
		if errors.Is(err, classification.ErrMalformedHistory) {
			uc.logger.Error("BookAppointment: malformed history for patient id=%d: %v", req.PatientID, err)
			return nil, fmt.Errorf("%w: %v", ErrMalformedHistory, err)
		}
		uc.logger.Error("BookAppointment: classification failed for patient id=%d: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: classification failed: %v", ErrInternal, err)
	}

	// 7. Правило времени прибытия для полученной классификации
	rule := rules.RuleFor(class)

	resp := &Response{
		PatientName:         patient.Name,
		ProviderName:        req.ProviderName,
		LocationAddress:     req.LocationAddress,
		AppointmentAt:       at,
		Classification:      class,
		ArrivalMinutesEarly: rule.ArrivalMinutesEarly,
	}
	resp.Message = confirmationMessage(resp)

	uc.logger.Info("BookAppointment: confirmed %s appointment for %q with %q on %s",
		class, patient.Name, req.ProviderName, slot.Label())
	return resp, nil
}
