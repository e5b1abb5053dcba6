package find_providers

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

// Handle GET /api/v1/providers?name=&specialty=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cmd := dispatch.SearchProviders{}

	// Отсутствующий query-параметр означает отсутствие фильтра
	if name := r.URL.Query().Get("name"); name != "" {
		cmd.Name = &name
	}
	if specialty := r.URL.Query().Get("specialty"); specialty != "" {
		cmd.Specialty = &specialty
	}

	result, err := h.dispatcher.Dispatch(r.Context(), cmd)
	if err != nil {
		h.logger.Error("GET /providers - Search failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromDispatchResult(result)

	h.logger.Info("GET /providers - Found %d provider(s)", len(response.Providers))
	handlers.RespondJSON(w, http.StatusOK, response)
}
