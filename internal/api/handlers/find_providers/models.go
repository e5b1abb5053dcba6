package find_providers

import (
	"github.com/m04kA/SMC-CareCoordinator/internal/dispatch"
	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// DepartmentResponse HTTP model отделения провайдера
type DepartmentResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

// ProviderResponse HTTP model провайдера
type ProviderResponse struct {
	Name          string               `json:"name"`
	Certification string               `json:"certification"`
	Specialty     string               `json:"specialty"`
	Departments   []DepartmentResponse `json:"departments,omitempty"`
}

// FindProvidersResponse HTTP response model
type FindProvidersResponse struct {
	Providers []ProviderResponse `json:"providers"`
	Message   string             `json:"message"`
}

// FromDispatchResult конвертирует исход операции в HTTP response
func FromDispatchResult(result *dispatch.Result) *FindProvidersResponse {
	providers := make([]ProviderResponse, 0, len(result.Providers))
	for _, p := range result.Providers {
		providers = append(providers, fromDomainProvider(p))
	}

	return &FindProvidersResponse{
		Providers: providers,
		Message:   result.Text,
	}
}

func fromDomainProvider(p domain.Provider) ProviderResponse {
	resp := ProviderResponse{
		Name:          p.Name,
		Certification: p.Certification,
		Specialty:     p.Specialty,
	}
	for _, d := range p.Departments {
		resp.Departments = append(resp.Departments, DepartmentResponse{
			Name:    d.Name,
			Phone:   d.Phone,
			Address: d.Address,
			Hours:   d.Hours,
		})
	}
	return resp
}
