package get_patient

import (
	"context"
	"errors"
	"fmt"

	patientClient "github.com/m04kA/SMC-CareCoordinator/internal/integrations/patientservice"
)

// UseCase use case получения карты пациента из внешнего источника
type UseCase struct {
	patientSource PatientSource
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(patientSource PatientSource, logger Logger) *UseCase {
	return &UseCase{
		patientSource: patientSource,
		logger:        logger,
	}
}

// Execute возвращает карту пациента по ID
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.PatientID <= 0 {
		return nil, fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	// 2. Запрос к внешнему источнику
	patient, err := uc.patientSource.GetPatient(ctx, req.PatientID)
	if err != nil {
		if errors.Is(err, patientClient.ErrPatientNotFound) {
			uc.logger.Warn("GetPatient: patient id=%d not found", req.PatientID)
			return nil, ErrPatientNotFound
		}
		uc.logger.Error("GetPatient: failed to fetch patient id=%d: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{Patient: patient}, nil
}
