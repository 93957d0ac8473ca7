package company_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"parkdz/infras/otel/mocks"
	"parkdz/internal/domains/company/model/dto"
	svcMocks "parkdz/internal/domains/company/service/mocks"
	"parkdz/internal/handlers/company"
)

func TestHandler_CompanyIDValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := svcMocks.NewMockCompany(ctrl)
	mockOtel := mocks.NewOtel()

	handler := company.New(mockService, mockOtel)

	router := chi.NewRouter()
	handler.Router(router)

	validID := "8f4a2c9e-1d3b-4a5c-8e7f-0a1b2c3d4e5f"

	tests := []struct {
		name       string
		target     string
		setupMock  func()
		wantStatus int
	}{
		{
			name:   "get company with malformed id is rejected before the service",
			target: "/companies/not-a-uuid",
			setupMock: func() {
				// No service call expected.
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "company locations with malformed id is rejected before the service",
			target: "/companies/not-a-uuid/parking-locations",
			setupMock: func() {
				// No service call expected.
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "company analytics with malformed id is rejected before the service",
			target: "/companies/1%20OR%201=1/analytics",
			setupMock: func() {
				// No service call expected.
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "get company with valid id reaches the service",
			target: "/companies/" + validID,
			setupMock: func() {
				mockService.EXPECT().
					GetByID(gomock.Any(), validID).
					Return(dto.CompanyResponse{ID: validID}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
