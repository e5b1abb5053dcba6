package knowledge

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
	"github.com/m04kA/SMC-CareCoordinator/pkg/psqlbuilder"
)

// Repository read-only репозиторий базы знаний: провайдеры, страховки,
// ставки самостоятельной оплаты и правила приёмов. Данные загружаются
// миграциями и в рантайме не изменяются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория базы знаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListProviders возвращает всех провайдеров с их отделениями
func (r *Repository) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"certification",
		"specialty",
	).
		From("providers").
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListProviders - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProviders - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var providers []domain.Provider
	providerIdx := make(map[int64]int)

	for rows.Next() {
		var id int64
		var p domain.Provider
		if err := rows.Scan(&id, &p.Name, &p.Certification, &p.Specialty); err != nil {
			return nil, fmt.Errorf("%w: ListProviders - scan provider: %v", ErrScanRow, err)
		}
		providerIdx[id] = len(providers)
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProviders - iterate providers: %v", ErrScanRow, err)
	}

	if err := r.attachDepartments(ctx, providers, providerIdx); err != nil {
		return nil, err
	}

	return providers, nil
}

// attachDepartments загружает отделения и раскладывает их по провайдерам
func (r *Repository) attachDepartments(ctx context.Context, providers []domain.Provider, providerIdx map[int64]int) error {
	query, args, err := psqlbuilder.Select(
		"provider_id",
		"name",
		"phone",
		"address",
		"hours",
	).
		From("departments").
		OrderBy("id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachDepartments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachDepartments - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var providerID int64
		var d domain.Department
		if err := rows.Scan(&providerID, &d.Name, &d.Phone, &d.Address, &d.Hours); err != nil {
			return fmt.Errorf("%w: attachDepartments - scan department: %v", ErrScanRow, err)
		}
		if idx, ok := providerIdx[providerID]; ok {
			providers[idx].Departments = append(providers[idx].Departments, d)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachDepartments - iterate departments: %v", ErrScanRow, err)
	}

	return nil
}

// ListAcceptedInsurances возвращает список принимаемых страховок
func (r *Repository) ListAcceptedInsurances(ctx context.Context) ([]string, error) {
	query, args, err := psqlbuilder.Select("name").
		From("accepted_insurances").
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAcceptedInsurances - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAcceptedInsurances - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: ListAcceptedInsurances - scan insurance: %v", ErrScanRow, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAcceptedInsurances - iterate insurances: %v", ErrScanRow, err)
	}

	return names, nil
}

// ListSelfPayRates возвращает таблицу ставок самостоятельной оплаты
func (r *Repository) ListSelfPayRates(ctx context.Context) ([]domain.SelfPayRate, error) {
	query, args, err := psqlbuilder.Select(
		"specialty",
		"amount",
	).
		From("self_pay_rates").
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSelfPayRates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSelfPayRates - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var rates []domain.SelfPayRate
	for rows.Next() {
		var rate domain.SelfPayRate
		if err := rows.Scan(&rate.Specialty, &rate.Amount); err != nil {
			return nil, fmt.Errorf("%w: ListSelfPayRates - scan rate: %v", ErrScanRow, err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSelfPayRates - iterate rates: %v", ErrScanRow, err)
	}

	return rates, nil
}

// GetAppointmentRules возвращает правила приёмов (единственная строка таблицы)
func (r *Repository) GetAppointmentRules(ctx context.Context) (*domain.AppointmentRules, error) {
	query, args, err := psqlbuilder.Select(
		"new_duration_minutes",
		"new_arrival_minutes_early",
		"established_duration_minutes",
		"established_arrival_minutes_early",
		"established_threshold_years",
	).
		From("appointment_rules").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAppointmentRules - build select query: %v", ErrBuildQuery, err)
	}

	var rules domain.AppointmentRules
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&rules.New.DurationMinutes,
		&rules.New.ArrivalMinutesEarly,
		&rules.Established.DurationMinutes,
		&rules.Established.ArrivalMinutesEarly,
		&rules.EstablishedThresholdYears,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRulesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAppointmentRules - scan rules: %v", ErrScanRow, err)
	}

	return &rules, nil
}
