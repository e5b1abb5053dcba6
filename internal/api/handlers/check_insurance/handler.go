package check_insurance

import (
	"net/http"

	"github.com/m04kA/SMC-CareCoordinator/internal/api/handlers"
	"github.com/m04kA/SMC-CareCoordinator/internal/dispatch"
)

type Handler struct {
	dispatcher Dispatcher
	logger     Logger
}

func NewHandler(dispatcher Dispatcher, logger Logger) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle GET /api/v1/insurance?provider=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cmd := dispatch.CheckInsurance{}

	// Без параметра возвращается полный список принимаемых страховок
	if provider := r.URL.Query().Get("provider"); provider != "" {
		cmd.ProviderName = &provider
	}

	result, err := h.dispatcher.Dispatch(r.Context(), cmd)
	if err != nil {
		h.logger.Error("GET /insurance - Check failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /insurance - %s", cmd.Detail())
	handlers.RespondJSON(w, http.StatusOK, &CheckInsuranceResponse{Message: result.Text})
}
