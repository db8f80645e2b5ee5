package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hostel-booking/internal/dto/request"
	"hostel-booking/internal/dto/response"
	"hostel-booking/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockReservationService is a mock implementation of usecase.ReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ReservationResponse), args.Error(1)
}

func (m *MockReservationService) GetReservations(ctx context.Context) ([]*response.ReservationResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*response.ReservationResponse), args.Error(1)
}

func (m *MockReservationService) GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ReservationResponse), args.Error(1)
}

func (m *MockReservationService) UpdateReservation(ctx context.Context, reservationID string, req *request.UpdateReservationRequest) (*response.ReservationResponse, error) {
	args := m.Called(ctx, reservationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ReservationResponse), args.Error(1)
}

func (m *MockReservationService) DeleteReservation(ctx context.Context, reservationID string) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}

func newTestRouter(handler *ReservationHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/reservations", handler.CreateReservation)
	r.Get("/api/reservations", handler.GetReservations)
	r.Get("/api/reservations/{id}", handler.GetReservationByID)
	r.Put("/api/reservations/{id}", handler.UpdateReservation)
	r.Delete("/api/reservations/{id}", handler.DeleteReservation)
	return r
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var envelope map[string]any
	err := json.Unmarshal(body.Bytes(), &envelope)
	assert.NoError(t, err)
	return envelope
}

func sampleCreateBody() []byte {
	body, _ := json.Marshal(map[string]any{
		"name":     "Ana",
		"lastName": "Petrova",
		"idNumber": "AB123456",
		"phone":    "+359888123456",
		"email":    "ana@example.com",
		"country":  "Bulgaria",
		"checkIn":  "2025-01-01",
		"checkOut": "2025-01-05",
	})
	return body
}

func TestReservationHandler_Create(t *testing.T) {
	mockService := &MockReservationService{}
	handler := NewReservationHandler(mockService, zap.NewNop())
	router := newTestRouter(handler)

	reservation := &response.ReservationResponse{
		ID:       uuid.New().String(),
		CheckIn:  "2025-01-01",
		CheckOut: "2025-01-05",
		Status:   "confirmed",
	}

	mockService.On("CreateReservation", mock.Anything, mock.Anything).Return(reservation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/reservations", bytes.NewReader(sampleCreateBody()))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	envelope := decodeEnvelope(t, w.Body)
	assert.Equal(t, true, envelope["success"])
	assert.NotNil(t, envelope["data"])

	mockService.AssertExpectations(t)
}

func TestReservationHandler_Create_InvalidBody(t *testing.T) {
	mockService := &MockReservationService{}
	handler := NewReservationHandler(mockService, zap.NewNop())
	router := newTestRouter(handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/reservations", bytes.NewReader([]byte("{not json")))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	envelope := decodeEnvelope(t, w.Body)
	assert.Equal(t, false, envelope["success"])

	mockService.AssertNotCalled(t, "CreateReservation", mock.Anything, mock.Anything)
}

func TestReservationHandler_Create_NoAvailability(t *testing.T) {
	mockService := &MockReservationService{}
	handler := NewReservationHandler(mockService, zap.NewNop())
	router := newTestRouter(handler)

	mockService.On("CreateReservation", mock.Anything, mock.Anything).
		Return(nil, usecase.ErrNoBedsAvailable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/reservations", bytes.NewReader(sampleCreateBody()))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	envelope := decodeEnvelope(t, w.Body)
	assert.Equal(t, false, envelope["success"])
	assert.Contains(t, envelope["message"], "no beds available")
}

func TestReservationHandler_Create_LostRace(t *testing.T) {
	mockService := &MockReservationService{}
	handler := NewReservationHandler(mockService, zap.NewNop())
	router := newTestRouter(handler)

	mockService.On("CreateReservation", mock.Anything, mock.Anything).
		Return(nil, usecase.ErrBedConflict)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/reservations", bytes.NewReader(sampleCreateBody()))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReservationHandler_Create_ValidationError(t *testing.T) {
	mockService := &MockReservationService{}
	handler := NewReservationHandler(mockService, zap.NewNop())
	router := newTestRouter(handler)

	mockService.On("CreateReservation", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("validation failed: email must be a valid email address"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/reservations", bytes.NewReader(sampleCreateBody()))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationHandler_GetByID_NotFound(t *testing.T) {
	mockService := &MockReservationService{}
	handler := NewReservationHandler(mockService, zap.NewNop())
	router := newTestRouter(handler)

	missing := uuid.New().String()
	mockService.On("GetReservationByID", mock.Anything, missing).
		Return(nil, fmt.Errorf("reservation %s not found", missing))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reservations/"+missing, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReservationHandler_GetByID_InternalError(t *testing.T) {
	mockService := &MockReservationService{}
	handler := NewReservationHandler(mockService, zap.NewNop())
	router := newTestRouter(handler)

	id := uuid.New().String()
	mockService.On("GetReservationByID", mock.Anything, id).
		Return(nil, fmt.Errorf("get reservation: connection refused"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reservations/"+id, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// Backend detail stays in the logs, not the response
	envelope := decodeEnvelope(t, w.Body)
	assert.Equal(t, "Internal server error", envelope["message"])
}

func TestReservationHandler_List(t *testing.T) {
	mockService := &MockReservationService{}
	handler := NewReservationHandler(mockService, zap.NewNop())
	router := newTestRouter(handler)

	reservations := []*response.ReservationResponse{
		{ID: uuid.New().String(), CheckIn: "2025-01-01", CheckOut: "2025-01-05", Status: "confirmed"},
	}

	mockService.On("GetReservations", mock.Anything).Return(reservations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reservations", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestReservationHandler_Delete(t *testing.T) {
	mockService := &MockReservationService{}
	handler := NewReservationHandler(mockService, zap.NewNop())
	router := newTestRouter(handler)

	id := uuid.New().String()
	mockService.On("DeleteReservation", mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/reservations/"+id, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}
