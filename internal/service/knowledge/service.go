package knowledge

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
	knowledgeRepo "github.com/m04kA/SMC-CareCoordinator/internal/infra/storage/knowledge"
)

// Service сервис доступа к базе знаний: поиск провайдеров, страховая
// информация и провалидированный снимок правил приёмов.
type Service struct {
	repo   Repository
	logger Logger

	mu    sync.RWMutex
	rules *domain.AppointmentRules
}

// NewService создает новый экземпляр сервиса базы знаний
func NewService(repo Repository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// LoadRules загружает и валидирует правила приёмов.
// Вызывается при старте процесса: отсутствующие или некорректные правила -
// ошибка развертывания, обнаруживаемая до первого бронирования.
func (s *Service) LoadRules(ctx context.Context) error {
	rules, err := s.repo.GetAppointmentRules(ctx)
	if err != nil {
		if errors.Is(err, knowledgeRepo.ErrRulesNotFound) {
			s.logger.Error("LoadRules: appointment rules not found in knowledge base")
			return ErrRulesMissing
		}
		s.logger.Error("LoadRules: repository error: %v", err)
		return fmt.Errorf("%w: LoadRules - repository error: %v", ErrInternal, err)
	}

	if err := rules.Validate(); err != nil {
		s.logger.Error("LoadRules: rules failed validation: %v", err)
		return fmt.Errorf("%w: %v", ErrRulesMissing, err)
	}

	s.mu.Lock()
	s.rules = rules
	s.mu.Unlock()

	s.logger.Info("LoadRules: appointment rules loaded (new: %d min early, established: %d min early, threshold: %d years)",
		rules.New.ArrivalMinutesEarly, rules.Established.ArrivalMinutesEarly, rules.EstablishedThresholdYears)
	return nil
}

// AppointmentRules возвращает провалидированный снимок правил приёмов.
// Если правила еще не загружены, загружает их (путь для тестов и ленивого старта).
func (s *Service) AppointmentRules(ctx context.Context) (*domain.AppointmentRules, error) {
	s.mu.RLock()
	rules := s.rules
	s.mu.RUnlock()

	if rules != nil {
		return rules, nil
	}

	if err := s.LoadRules(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules, nil
}

// FindProviders ищет провайдеров по имени и/или специальности.
// Фильтры - подстроки без учета регистра, при обоих заданных объединяются по AND.
func (s *Service) FindProviders(ctx context.Context, name, specialty *string) ([]domain.Provider, error) {
	providers, err := s.repo.ListProviders(ctx)
	if err != nil {
		s.logger.Error("FindProviders: repository error: %v", err)
		return nil, fmt.Errorf("%w: FindProviders - repository error: %v", ErrInternal, err)
	}

	nameQuery := ""
	if name != nil {
		nameQuery = *name
	}
	specialtyQuery := ""
	if specialty != nil {
		specialtyQuery = *specialty
	}

	var matched []domain.Provider
	for _, p := range providers {
		if p.MatchesName(nameQuery) && p.MatchesSpecialty(specialtyQuery) {
			matched = append(matched, p)
		}
	}

	s.logger.Info("FindProviders: name=%q specialty=%q matched %d of %d providers",
		nameQuery, specialtyQuery, len(matched), len(providers))
	return matched, nil
}

// InsuranceInfo возвращает принимаемые страховки и таблицу ставок самостоятельной оплаты
func (s *Service) InsuranceInfo(ctx context.Context) (*domain.InsuranceInfo, error) {
	accepted, err := s.repo.ListAcceptedInsurances(ctx)
	if err != nil {
		s.logger.Error("InsuranceInfo: failed to list insurances: %v", err)
		return nil, fmt.Errorf("%w: InsuranceInfo - failed to list insurances: %v", ErrInternal, err)
	}

	rates, err := s.repo.ListSelfPayRates(ctx)
	if err != nil {
		s.logger.Error("InsuranceInfo: failed to list self-pay rates: %v", err)
		return nil, fmt.Errorf("%w: InsuranceInfo - failed to list self-pay rates: %v", ErrInternal, err)
	}

	return &domain.InsuranceInfo{
		Accepted:     accepted,
		SelfPayRates: rates,
	}, nil
}
