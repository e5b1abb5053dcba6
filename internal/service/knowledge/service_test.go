package knowledge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
	knowledgeRepo "github.com/m04kA/SMC-CareCoordinator/internal/infra/storage/knowledge"
	"github.com/m04kA/SMC-CareCoordinator/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeRepo in-memory реализация репозитория базы знаний для тестов
type fakeRepo struct {
	providers  []domain.Provider
	insurances []string
	rates      []domain.SelfPayRate
	rules      *domain.AppointmentRules
	rulesErr   error
	rulesCalls int
}

func (f *fakeRepo) ListProviders(context.Context) ([]domain.Provider, error) {
	return f.providers, nil
}

func (f *fakeRepo) ListAcceptedInsurances(context.Context) ([]string, error) {
	return f.insurances, nil
}

func (f *fakeRepo) ListSelfPayRates(context.Context) ([]domain.SelfPayRate, error) {
	return f.rates, nil
}

func (f *fakeRepo) GetAppointmentRules(context.Context) (*domain.AppointmentRules, error) {
	f.rulesCalls++
	if f.rulesErr != nil {
		return nil, f.rulesErr
	}
	return f.rules, nil
}

func validRules() *domain.AppointmentRules {
	return &domain.AppointmentRules{
		New:                       domain.AppointmentTypeRule{DurationMinutes: 30, ArrivalMinutesEarly: 30},
		Established:               domain.AppointmentTypeRule{DurationMinutes: 15, ArrivalMinutesEarly: 10},
		EstablishedThresholdYears: 5,
	}
}

func TestService_LoadRules_CachesSnapshot(t *testing.T) {
	repo := &fakeRepo{rules: validRules()}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.LoadRules(context.Background()))

	rules, err := svc.AppointmentRules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, rules.EstablishedThresholdYears)

	// Повторные чтения идут из снимка, без похода в репозиторий
	_, err = svc.AppointmentRules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.rulesCalls)
}

func TestService_LoadRules_Missing(t *testing.T) {
	repo := &fakeRepo{rulesErr: knowledgeRepo.ErrRulesNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.LoadRules(context.Background())
	require.ErrorIs(t, err, ErrRulesMissing)
}

func TestService_LoadRules_InvalidRules(t *testing.T) {
	rules := validRules()
	rules.EstablishedThresholdYears = 0
	svc := NewService(&fakeRepo{rules: rules}, nopLogger{})

	err := svc.LoadRules(context.Background())
	require.ErrorIs(t, err, ErrRulesMissing)
}

func TestService_FindProviders_Filters(t *testing.T) {
	repo := &fakeRepo{providers: []domain.Provider{
		{Name: "Dr. Sarah Lee", Specialty: "Primary Care"},
		{Name: "Dr. John Smith", Specialty: "Orthopedics"},
		{Name: "Dr. Maria Smith", Specialty: "Surgery"},
	}}
	svc := NewService(repo, nopLogger{})

	tests := []struct {
		name      string
		qName     *string
		qSpec     *string
		wantNames []string
	}{
		{
			name:      "no filters returns all",
			wantNames: []string{"Dr. Sarah Lee", "Dr. John Smith", "Dr. Maria Smith"},
		},
		{
			name:      "name substring case-insensitive",
			qName:     ptr.Ptr("smith"),
			wantNames: []string{"Dr. John Smith", "Dr. Maria Smith"},
		},
		{
			name:      "specialty filter",
			qSpec:     ptr.Ptr("primary"),
			wantNames: []string{"Dr. Sarah Lee"},
		},
		{
			name:      "name and specialty are AND-combined",
			qName:     ptr.Ptr("smith"),
			qSpec:     ptr.Ptr("surgery"),
			wantNames: []string{"Dr. Maria Smith"},
		},
		{
			name:      "no match",
			qName:     ptr.Ptr("jones"),
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.FindProviders(context.Background(), tt.qName, tt.qSpec)
			require.NoError(t, err)

			var names []string
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestService_InsuranceInfo(t *testing.T) {
	repo := &fakeRepo{
		insurances: []string{"Medicaid", "Aetna"},
		rates:      []domain.SelfPayRate{{Specialty: "Primary Care", Amount: 150}},
	}
	svc := NewService(repo, nopLogger{})

	info, err := svc.InsuranceInfo(context.Background())
	require.NoError(t, err)

	assert.True(t, info.IsAccepted("Aetna"))
	assert.False(t, info.IsAccepted("Acme Health"))
	assert.Len(t, info.SelfPayRates, 1)
}
