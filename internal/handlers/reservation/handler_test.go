package reservation_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"parkdz/infras/otel/mocks"
	"parkdz/internal/domains/reservation/model/dto"
	svcMocks "parkdz/internal/domains/reservation/service/mocks"
	"parkdz/internal/handlers/reservation"
)

func TestHandler_ReservationIDValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := svcMocks.NewMockReservation(ctrl)
	mockOtel := mocks.NewOtel()

	handler := reservation.New(mockService, mockOtel)

	router := chi.NewRouter()
	handler.Router(router)

	validID := "8f4a2c9e-1d3b-4a5c-8e7f-0a1b2c3d4e5f"

	tests := []struct {
		name       string
		method     string
		target     string
		setupMock  func()
		wantStatus int
	}{
		{
			name:   "cancel with malformed id is rejected before the service",
			method: http.MethodPut,
			target: "/reservations/not-a-uuid/cancel",
			setupMock: func() {
				// No service call expected.
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "complete with malformed id is rejected before the service",
			method: http.MethodPut,
			target: "/reservations/1%20OR%201=1/complete",
			setupMock: func() {
				// No service call expected.
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "cancel with valid id reaches the service",
			method: http.MethodPut,
			target: "/reservations/" + validID + "/cancel",
			setupMock: func() {
				mockService.EXPECT().
					Cancel(gomock.Any(), validID).
					Return(dto.ReservationResponse{ID: validID}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "complete with valid id reaches the service",
			method: http.MethodPut,
			target: "/reservations/" + validID + "/complete",
			setupMock: func() {
				mockService.EXPECT().
					Complete(gomock.Any(), validID).
					Return(dto.ReservationResponse{ID: validID}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
