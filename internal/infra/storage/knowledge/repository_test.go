package knowledge

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestRepository_ListProviders(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT id, name, certification, specialty FROM providers`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "certification", "specialty"}).
			AddRow(1, "Dr. Sarah Lee", "MD", "Primary Care").
			AddRow(2, "Dr. John Smith", "MD", "Orthopedics"))

	mock.ExpectQuery(`SELECT provider_id, name, phone, address, hours FROM departments`).
		WillReturnRows(sqlmock.NewRows([]string{"provider_id", "name", "phone", "address", "hours"}).
			AddRow(1, "Family Medicine", "555-0100", "123 Main St", "Mon-Fri 8am-5pm").
			AddRow(2, "Orthopedic Surgery", "555-0200", "456 Oak Ave", "Mon-Thu 9am-4pm"))

	providers, err := repo.ListProviders(context.Background())
	require.NoError(t, err)
	require.Len(t, providers, 2)

	assert.Equal(t, "Dr. Sarah Lee", providers[0].Name)
	require.Len(t, providers[0].Departments, 1)
	assert.Equal(t, "123 Main St", providers[0].Departments[0].Address)
	assert.Equal(t, "Orthopedics", providers[1].Specialty)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListAcceptedInsurances(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT name FROM accepted_insurances`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("Medicaid").
			AddRow("Aetna"))

	names, err := repo.ListAcceptedInsurances(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Medicaid", "Aetna"}, names)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListSelfPayRates(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT specialty, amount FROM self_pay_rates`).
		WillReturnRows(sqlmock.NewRows([]string{"specialty", "amount"}).
			AddRow("Primary Care", 150).
			AddRow("Surgery", 1000))

	rates, err := repo.ListSelfPayRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SelfPayRate{
		{Specialty: "Primary Care", Amount: 150},
		{Specialty: "Surgery", Amount: 1000},
	}, rates)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAppointmentRules(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT .+ FROM appointment_rules`).
		WillReturnRows(sqlmock.NewRows([]string{
			"new_duration_minutes",
			"new_arrival_minutes_early",
			"established_duration_minutes",
			"established_arrival_minutes_early",
			"established_threshold_years",
		}).AddRow(30, 30, 15, 10, 5))

	rules, err := repo.GetAppointmentRules(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 30, rules.New.ArrivalMinutesEarly)
	assert.Equal(t, 10, rules.Established.ArrivalMinutesEarly)
	assert.Equal(t, 5, rules.EstablishedThresholdYears)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAppointmentRules_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT .+ FROM appointment_rules`).
		WillReturnRows(sqlmock.NewRows([]string{
			"new_duration_minutes",
			"new_arrival_minutes_early",
			"established_duration_minutes",
			"established_arrival_minutes_early",
			"established_threshold_years",
		}))

	_, err := repo.GetAppointmentRules(context.Background())
	require.ErrorIs(t, err, ErrRulesNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
