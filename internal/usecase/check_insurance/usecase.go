package check_insurance

import (
	"context"
	"fmt"
	"strings"
)

// UseCase use case страховой проверки: членство в списке принимаемых
// страховок и таблица ставок самостоятельной оплаты.
type UseCase struct {
	source InsuranceSource
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(source InsuranceSource, logger Logger) *UseCase {
	return &UseCase{
		source: source,
		logger: logger,
	}
}

// Execute выполняет страховую проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Страховая информация из базы знаний
	info, err := uc.source.InsuranceInfo(ctx)
	if err != nil {
		uc.logger.Error("CheckInsurance: failed to load insurance info: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 2. Без названной страховки возвращаем полный обзор
	name := ""
	if req.ProviderName != nil {
		name = strings.TrimSpace(*req.ProviderName)
	}
	if name == "" {
		return &Response{Accepted: false, Message: overviewMessage(info)}, nil
	}

	// 3. Точное членство: частичные совпадения не принимаются
	if info.IsAccepted(name) {
		uc.logger.Info("CheckInsurance: %q is accepted", name)
		return &Response{Accepted: true, Message: acceptedMessage(name)}, nil
	}

	uc.logger.Info("CheckInsurance: %q is not accepted, returning self-pay rates", name)
	return &Response{Accepted: false, Message: rejectedMessage(name, info)}, nil
}
