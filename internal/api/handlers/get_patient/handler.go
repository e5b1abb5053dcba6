package get_patient

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CareCoordinator/internal/api/handlers"
	"github.com/m04kA/SMC-CareCoordinator/internal/dispatch"
	getPatient "github.com/m04kA/SMC-CareCoordinator/internal/usecase/get_patient"
)

const (
	msgInvalidPatientID = "invalid patient id"
	msgPatientNotFound  = "patient not found"
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

// Handle GET /api/v1/patients/{patientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.ParseInt(vars["patientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /patients/{patientId} - Invalid patient ID: %q", vars["patientId"])
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	result, err := h.dispatcher.Dispatch(r.Context(), dispatch.LookupPatient{PatientID: patientID})
	if err != nil {
		switch {
		case errors.Is(err, getPatient.ErrInvalidInput):
			h.logger.Warn("GET /patients/{patientId} - Invalid input: patient_id=%d", patientID)
			handlers.RespondBadRequest(w, msgInvalidPatientID)

		case errors.Is(err, getPatient.ErrPatientNotFound):
			h.logger.Warn("GET /patients/{patientId} - Patient not found: patient_id=%d", patientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		default:
			h.logger.Error("GET /patients/{patientId} - Failed to fetch patient: patient_id=%d, error=%v",
				patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromDomainPatient(result.Patient)

	h.logger.Info("GET /patients/{patientId} - Patient fetched: patient_id=%d", patientID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
