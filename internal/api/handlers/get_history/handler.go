package get_history

import (
	"net/http"

	"github.com/m04kA/SMC-CareCoordinator/internal/api/handlers"
)

type Handler struct {
	source HistorySource
	logger Logger
}

func NewHandler(source HistorySource, logger Logger) *Handler {
	return &Handler{
		source: source,
		logger: logger,
	}
}

// Handle GET /api/v1/session/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries := h.source.History()

	h.logger.Info("GET /session/history - %d entries", len(entries))
	handlers.RespondJSON(w, http.StatusOK, FromSessionHistory(entries))
}
