package find_providers

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// Request модель запроса на поиск провайдеров.
// Оба фильтра опциональны; пустой запрос возвращает всех провайдеров.
type Request struct {
	Name      *string // Фильтр по имени (подстрока без учета регистра)
	Specialty *string // Фильтр по специальности (подстрока без учета регистра)
}

// Response модель ответа со списком найденных провайдеров
type Response struct {
	Providers []domain.Provider // Провайдеры, прошедшие оба фильтра
	Message   string            // Человекочитаемая сводка результатов
}

// summaryMessage собирает человекочитаемую сводку результатов поиска
func summaryMessage(providers []domain.Provider) string {
	if len(providers) == 0 {
		return "No providers found matching the given criteria."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d provider(s):\n", len(providers))
	for _, p := range providers {
		fmt.Fprintf(&sb, "- %s, %s (%s)", p.Name, p.Certification, p.Specialty)
		for _, d := range p.Departments {
			fmt.Fprintf(&sb, "\n  %s: %s, %s, %s", d.Name, d.Address, d.Phone, d.Hours)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
