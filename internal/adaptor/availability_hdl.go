package adaptor

import (
	"net/http"
	"strings"

	"hostel-booking/internal/dto/request"
	"hostel-booking/internal/usecase"
	"hostel-booking/pkg/utils"

	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// SearchAvailability handles GET /api/availability (public)
func (h *AvailabilityHandler) SearchAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.AvailabilitySearchRequest{
		CheckIn:  query.Get("checkIn"),
		CheckOut: query.Get("checkOut"),
		Type:     query.Get("type"),
	}

	result, err := h.service.SearchAvailability(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "search availability")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GetStatistics handles GET /api/stats (public)
func (h *AvailabilityHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	stats, err := h.service.GetStatistics(r.Context(), query.Get("type"), query.Get("roomId"))
	if err != nil {
		h.handleServiceError(w, err, "get statistics")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

func (h *AvailabilityHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
