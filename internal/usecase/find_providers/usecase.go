package find_providers

import (
	"context"
	"fmt"
)

// UseCase use case поиска провайдеров по имени и/или специальности
type UseCase struct {
	searcher ProviderSearcher
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(searcher ProviderSearcher, logger Logger) *UseCase {
	return &UseCase{
		searcher: searcher,
		logger:   logger,
	}
}

// Execute выполняет поиск провайдеров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Поиск по базе знаний: подстроки без учета регистра, AND при обоих фильтрах
	providers, err := uc.searcher.FindProviders(ctx, req.Name, req.Specialty)
	if err != nil {
		uc.logger.Error("FindProviders: search failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 2. Формируем сводку для вызывающей стороны
	return &Response{
		Providers: providers,
		Message:   summaryMessage(providers),
	}, nil
}
