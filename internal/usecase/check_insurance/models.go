package check_insurance

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CareCoordinator/internal/domain"
)

// Request модель запроса страховой проверки.
// ProviderName опционален: без него возвращается полный список принимаемых
// страховок вместе с таблицей ставок.
type Request struct {
	ProviderName *string // Название страховой компании (точное совпадение)
}

// Response модель ответа страховой проверки
type Response struct {
	Accepted bool   // Принимается ли названная страховка (false, если не названа)
	Message  string // Человекочитаемый ответ
}

// ratesLine собирает таблицу ставок самостоятельной оплаты в одну строку
func ratesLine(rates []domain.SelfPayRate) string {
	parts := make([]string, 0, len(rates))
	for _, r := range rates {
		parts = append(parts, fmt.Sprintf("%s: $%d", r.Specialty, r.Amount))
	}
	return strings.Join(parts, ", ")
}

// acceptedMessage подтверждает, что страховка принимается
func acceptedMessage(name string) string {
	return fmt.Sprintf("Yes, %s is an accepted insurance provider.", name)
}

// rejectedMessage сообщает об отказе и называет ставки самостоятельной оплаты
func rejectedMessage(name string, info *domain.InsuranceInfo) string {
	return fmt.Sprintf(
		"No, %s is not in the list of accepted providers. The self-pay rates are: %s.",
		name, ratesLine(info.SelfPayRates),
	)
}

// overviewMessage перечисляет все принимаемые страховки и ставки
func overviewMessage(info *domain.InsuranceInfo) string {
	return fmt.Sprintf(
		"The accepted insurance providers are: %s. The self-pay rates are: %s.",
		strings.Join(info.Accepted, ", "), ratesLine(info.SelfPayRates),
	)
}
