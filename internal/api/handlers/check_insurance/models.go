package check_insurance

// CheckInsuranceResponse HTTP response model
type CheckInsuranceResponse struct {
	Message string `json:"message"`
}
