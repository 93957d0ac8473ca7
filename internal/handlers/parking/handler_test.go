package parking_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"parkdz/infras/otel/mocks"
	"parkdz/internal/domains/parking/model/dto"
	svcMocks "parkdz/internal/domains/parking/service/mocks"
	"parkdz/internal/handlers/parking"
)

func TestHandler_LocationIDValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := svcMocks.NewMockParking(ctrl)
	mockOtel := mocks.NewOtel()

	handler := parking.New(mockService, mockOtel)

	router := chi.NewRouter()
	handler.Router(router)

	validID := "8f4a2c9e-1d3b-4a5c-8e7f-0a1b2c3d4e5f"

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setupMock  func()
		wantStatus int
	}{
		{
			name:   "get location with malformed id is rejected before the service",
			method: http.MethodGet,
			target: "/parking/not-a-uuid",
			setupMock: func() {
				// No service call expected.
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "delete location with malformed id is rejected before the service",
			method: http.MethodDelete,
			target: "/parking/1%20OR%201=1",
			setupMock: func() {
				// No service call expected.
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "override availability with malformed id is rejected before the service",
			method: http.MethodPut,
			target: "/parking/not-a-uuid/availability",
			body:   `{"available_spots": 5}`,
			setupMock: func() {
				// No service call expected.
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "get spots with malformed id is rejected before the service",
			method: http.MethodGet,
			target: "/parking/not-a-uuid/spots",
			setupMock: func() {
				// No service call expected.
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "set spot availability with malformed id is rejected before the service",
			method: http.MethodPut,
			target: "/parking/spots/not-a-uuid/availability",
			body:   `{"is_available": true}`,
			setupMock: func() {
				// No service call expected.
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "get location with valid id reaches the service",
			method: http.MethodGet,
			target: "/parking/" + validID,
			setupMock: func() {
				mockService.EXPECT().
					GetLocation(gomock.Any(), validID).
					Return(dto.LocationDetailResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "set spot availability with valid id reaches the service",
			method: http.MethodPut,
			target: "/parking/spots/" + validID + "/availability",
			body:   `{"is_available": true}`,
			setupMock: func() {
				mockService.EXPECT().
					SetSpotAvailability(gomock.Any(), validID, true).
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
