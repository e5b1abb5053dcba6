package reset_session

// ResetResponse HTTP response model
type ResetResponse struct {
	Message string `json:"message"`
}
