package adaptor

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hostel-booking/internal/dto/response"
	"hostel-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestHookHandler_Create(t *testing.T) {
	mockService := &MockReservationService{}
	handler := NewHookHandler(mockService, zap.NewNop())

	reservation := &response.ReservationResponse{
		ID:       uuid.New().String(),
		CheckIn:  "2025-01-01",
		CheckOut: "2025-01-05",
		Status:   "confirmed",
	}

	mockService.On("CreateReservation", mock.Anything, mock.Anything).Return(reservation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/hooks/reservations", bytes.NewReader(sampleCreateBody()))
	handler.CreateReservation(w, req)

	// The widget contract reports success as 200, not 201
	assert.Equal(t, http.StatusOK, w.Code)

	// The widget contract wraps the reservation under its own key
	var body struct {
		Success     bool                          `json:"success"`
		Message     string                        `json:"message"`
		Reservation *response.ReservationResponse `json:"reservation"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Reservation)
	assert.Equal(t, reservation.ID, body.Reservation.ID)
}

func TestHookHandler_Create_WrongMethod(t *testing.T) {
	mockService := &MockReservationService{}
	handler := NewHookHandler(mockService, zap.NewNop())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/hooks/reservations", nil)
	handler.CreateReservation(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	mockService.AssertNotCalled(t, "CreateReservation", mock.Anything, mock.Anything)
}

func TestHookHandler_Create_NoAvailability(t *testing.T) {
	mockService := &MockReservationService{}
	handler := NewHookHandler(mockService, zap.NewNop())

	mockService.On("CreateReservation", mock.Anything, mock.Anything).
		Return(nil, usecase.ErrNoBedsAvailable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/hooks/reservations", bytes.NewReader(sampleCreateBody()))
	handler.CreateReservation(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "no beds available")
}
