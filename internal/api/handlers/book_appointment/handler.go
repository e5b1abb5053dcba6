package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CareCoordinator/internal/api/handlers"
	bookAppointment "github.com/m04kA/SMC-CareCoordinator/internal/usecase/book_appointment"
)

const msgInvalidRequestBody = "invalid request body"

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

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.dispatcher.Dispatch(r.Context(), req.ToCommand())
	if err != nil {
		// Текст отказа для вызывающей стороны строится из типизированной ошибки workflow
		useCaseReq := &bookAppointment.Request{
			PatientID:       req.PatientID,
			ProviderName:    req.ProviderName,
			Timestamp:       req.Timestamp,
			LocationAddress: req.LocationAddress,
		}
		message := bookAppointment.FailureMessage(useCaseReq, err)

		switch {
		case errors.Is(err, bookAppointment.ErrMalformedInput):
			h.logger.Warn("POST /appointments - Malformed input: patient_id=%d", req.PatientID)
			handlers.RespondBadRequest(w, message)

		case errors.Is(err, bookAppointment.ErrPatientNotFound):
			h.logger.Warn("POST /appointments - Patient not found: patient_id=%d", req.PatientID)
			handlers.RespondNotFound(w, message)

		case errors.Is(err, bookAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot unavailable: patient_id=%d, provider=%q, at=%q",
				req.PatientID, req.ProviderName, req.Timestamp)
			handlers.RespondError(w, http.StatusConflict, message)

		case errors.Is(err, bookAppointment.ErrCommitConflict):
			h.logger.Warn("POST /appointments - Commit conflict: patient_id=%d, provider=%q, at=%q",
				req.PatientID, req.ProviderName, req.Timestamp)
			handlers.RespondError(w, http.StatusConflict, message)

		case errors.Is(err, bookAppointment.ErrMalformedHistory):
			h.logger.Error("POST /appointments - Malformed history: patient_id=%d, error=%v", req.PatientID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, message)

		case errors.Is(err, bookAppointment.ErrRulesMissing):
			h.logger.Error("POST /appointments - Appointment rules missing: error=%v", err)
			handlers.RespondError(w, http.StatusInternalServerError, message)

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: patient_id=%d, error=%v",
				req.PatientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result.Booking)

	h.logger.Info("POST /appointments - Appointment booked: patient_id=%d, provider=%q, classification=%s",
		req.PatientID, req.ProviderName, response.Classification)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
