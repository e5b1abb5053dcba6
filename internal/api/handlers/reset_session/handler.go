package reset_session

import (
	"net/http"

	"github.com/m04kA/SMC-CareCoordinator/internal/api/handlers"
)

const msgSessionReset = "Session reset successfully"

type Handler struct {
	session SessionResetter
	logger  Logger
}

func NewHandler(session SessionResetter, logger Logger) *Handler {
	return &Handler{
		session: session,
		logger:  logger,
	}
}

// Handle POST /api/v1/session/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.session.Reset()

	h.logger.Info("POST /session/reset - Session reset")
	handlers.RespondJSON(w, http.StatusOK, &ResetResponse{Message: msgSessionReset})
}
