package domain

// SelfPayRate ставка самостоятельной оплаты по специальности
type SelfPayRate struct {
	Specialty string
	Amount    int // доллары
}

// InsuranceInfo принимаемые страховки и таблица ставок самостоятельной оплаты
type InsuranceInfo struct {
	Accepted     []string
	SelfPayRates []SelfPayRate
}

// IsAccepted проверяет точное членство страховки в списке принимаемых
func (i *InsuranceInfo) IsAccepted(name string) bool {
	for _, accepted := range i.Accepted {
		if accepted == name {
			return true
		}
	}
	return false
}
