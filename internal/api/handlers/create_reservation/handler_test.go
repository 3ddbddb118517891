package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timisoara-dining/reservation-service/internal/api/handlers"
	"github.com/timisoara-dining/reservation-service/internal/domain"
	createReservation "github.com/timisoara-dining/reservation-service/internal/usecase/create_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp   *createReservation.Response
	err    error
	gotReq *createReservation.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createReservation.Response{
			ID:        "3f2c9a54-6f10-4d7e-9b1a-1c2d3e4f5a6b",
			Name:      "Ana Popescu",
			Phone:     "+40712345678",
			Date:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			TimeSlot:  domain.Slot1800,
			Status:    "PENDING",
			CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	rec := doRequest(t, uc, `{"name":"Ana Popescu","phone":"+40712345678","date":"2025-06-15","timeSlot":"SLOT_18_00"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "3f2c9a54-6f10-4d7e-9b1a-1c2d3e4f5a6b", resp.ID)
	assert.Equal(t, "2025-06-15", resp.Date)
	assert.Equal(t, "SLOT_18_00", resp.TimeSlot)
	assert.Equal(t, "6:00 PM", resp.TimeSlotLabel)
	assert.Equal(t, "PENDING", resp.Status)

	// Запрос распарсен в доменные типы
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, domain.Slot1800, uc.gotReq.TimeSlot)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), uc.gotReq.Date)
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed json",
			body: `{"name":`,
		},
		{
			name: "unknown field",
			body: `{"name":"Ana Popescu","phone":"+40712345678","date":"2025-06-15","timeSlot":"SLOT_18_00","table":5}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{}, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_Handle_InvalidDateOrSlot(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "bad date format",
			body: `{"name":"Ana Popescu","phone":"+40712345678","date":"15.06.2025","timeSlot":"SLOT_18_00"}`,
		},
		{
			name: "unknown slot",
			body: `{"name":"Ana Popescu","phone":"+40712345678","date":"2025-06-15","timeSlot":"SLOT_21_00"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{}, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, msgInvalidDateOrSlot, resp.Error)
		})
	}
}

func TestHandler_Handle_UseCaseErrors(t *testing.T) {
	validBody := `{"name":"Ana Popescu","phone":"+40712345678","date":"2025-06-15","timeSlot":"SLOT_18_00"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "duplicate booking",
			err:        createReservation.ErrDuplicateBooking,
			wantStatus: http.StatusConflict,
			wantMsg:    "You already have a reservation for this time slot",
		},
		{
			name:       "slot not found",
			err:        createReservation.ErrSlotNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Time slot does not exist",
		},
		{
			name:       "slot full",
			err:        createReservation.ErrSlotFull,
			wantStatus: http.StatusConflict,
			wantMsg:    "Time slot is no longer available",
		},
		{
			name:       "internal error",
			err:        fmt.Errorf("%w: boom", createReservation.ErrInternal),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to create reservation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Error)
		})
	}
}

func TestHandler_Handle_InvalidInputPassesMessage(t *testing.T) {
	uc := &fakeUseCase{
		err: fmt.Errorf("%w: name must be at least 3 characters long", createReservation.ErrInvalidInput),
	}

	rec := doRequest(t, uc, `{"name":"Ab","phone":"+40712345678","date":"2025-06-15","timeSlot":"SLOT_18_00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "name must be at least 3 characters long")
}
