package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"hostel-booking/internal/dto/request"
	"hostel-booking/internal/dto/response"
	"hostel-booking/internal/usecase"
	"hostel-booking/pkg/utils"

	"go.uber.org/zap"
)

// HookHandler exposes the public reservation intake endpoint consumed by
// the booking widget. It keeps the widget's wire contract, which wraps
// the reservation under its own key instead of the shared envelope.
type HookHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewHookHandler(service usecase.ReservationService, log *zap.Logger) *HookHandler {
	return &HookHandler{
		service: service,
		log:     log.With(zap.String("handler", "hook")),
	}
}

type hookReservationResponse struct {
	Success     bool                          `json:"success"`
	Message     string                        `json:"message"`
	Reservation *response.ReservationResponse `json:"reservation,omitempty"`
}

// CreateReservation handles POST /api/hooks/reservations (public)
func (h *HookHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.ResponseMethodNotAllowed(w, "Method not allowed")
		return
	}

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeHookJSON(w, http.StatusBadRequest, hookReservationResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	// The widget contract reports success as a plain 200, unlike the
	// staff API which returns 201 on create.
	h.writeHookJSON(w, http.StatusOK, hookReservationResponse{
		Success:     true,
		Message:     "Reservation created successfully",
		Reservation: reservation,
	})
}

func (h *HookHandler) handleServiceError(w http.ResponseWriter, err error) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrNoBedsAvailable), errors.Is(err, usecase.ErrBedConflict):
		h.log.Warn("Hook reservation rejected - no availability", zap.Error(err))
		h.writeHookJSON(w, http.StatusConflict, hookReservationResponse{
			Success: false,
			Message: errMsg,
		})

	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
		h.log.Warn("Hook reservation rejected - bad input", zap.Error(err))
		h.writeHookJSON(w, http.StatusBadRequest, hookReservationResponse{
			Success: false,
			Message: errMsg,
		})

	case strings.Contains(errMsg, "not found"):
		h.log.Warn("Hook reservation rejected - not found", zap.Error(err))
		h.writeHookJSON(w, http.StatusNotFound, hookReservationResponse{
			Success: false,
			Message: errMsg,
		})

	default:
		h.log.Error("Hook reservation failed", zap.Error(err))
		h.writeHookJSON(w, http.StatusInternalServerError, hookReservationResponse{
			Success: false,
			Message: "Internal server error",
		})
	}
}

func (h *HookHandler) writeHookJSON(w http.ResponseWriter, code int, body hookReservationResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
