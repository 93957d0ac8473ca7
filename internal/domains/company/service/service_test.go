package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"parkdz/infras/otel/mocks"
	"parkdz/infras/payment"
	paymentMocks "parkdz/infras/payment/mocks"
	companyMocks "parkdz/internal/domains/company/mocks"
	"parkdz/internal/domains/company/model"
	"parkdz/internal/domains/company/model/dto"
	"parkdz/internal/domains/company/repository"
	"parkdz/internal/domains/company/service"
	parkingModel "parkdz/internal/domains/parking/model"
)

func TestCompanyService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMocks.NewMockCompany(ctrl)
	mockGateway := paymentMocks.NewMockGateway(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockGateway, mockOtel)

	req := dto.RegisterCompanyRequest{
		CompanyName:        "Parking Plus SARL",
		Email:              "contact@parkingplus.dz",
		Phone:              "+213550123456",
		Address:            "Cite 5 Juillet",
		Wilaya:             "Alger",
		Commune:            "Bab Ezzouar",
		Password:           "s3cret-password",
		RegistrationNumber: "RC-16-00123",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful registration starts on basic plan",
			setupMock: func() {
				mockRepo.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			setupMock: func() {
				mockRepo.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(repository.ErrDuplicateEmail)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Register(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.SubscriptionPlanBasic, result.SubscriptionPlan)
				assert.Equal(t, req.Email, result.Email)
			}
		})
	}
}

func TestCompanyService_Locations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMocks.NewMockCompany(ctrl)
	mockGateway := paymentMocks.NewMockGateway(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockGateway, mockOtel)

	company := model.Company{ID: "comp-1", CompanyName: "Parking Plus SARL"}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCount int
	}{
		{
			name: "locations listed",
			id:   "comp-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(company, nil)

				mockRepo.EXPECT().
					Locations(gomock.Any(), "comp-1").
					Return([]parkingModel.ParkingLocation{{ID: "loc-1"}, {ID: "loc-2"}}, nil)
			},
			wantErr:   false,
			wantCount: 2,
		},
		{
			name: "company not found",
			id:   "missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Company{}, nil)
			},
			wantErr: true,
		},
		{
			name: "locations query error",
			id:   "comp-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(company, nil)

				mockRepo.EXPECT().
					Locations(gomock.Any(), "comp-1").
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Locations(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result.Locations, tt.wantCount)
				assert.Equal(t, company.ID, result.Company.ID)
			}
		})
	}
}

func TestCompanyService_Analytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMocks.NewMockCompany(ctrl)
	mockGateway := paymentMocks.NewMockGateway(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockGateway, mockOtel)

	company := model.Company{ID: "comp-1"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "analytics assembled",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(company, nil)

				mockRepo.EXPECT().
					Analytics(gomock.Any(), "comp-1").
					Return(model.Analytics{
						TotalLocations:    3,
						TotalSpots:        120,
						TotalReservations: 48,
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "analytics query error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(company, nil)

				mockRepo.EXPECT().
					Analytics(gomock.Any(), "comp-1").
					Return(model.Analytics{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Analytics(context.Background(), "comp-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, result.TotalLocations)
				assert.Equal(t, 120, result.TotalSpots)
				assert.Equal(t, 48, result.TotalReservations)
			}
		})
	}
}

func TestCompanyService_ProcessPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMocks.NewMockCompany(ctrl)
	mockGateway := paymentMocks.NewMockGateway(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockGateway, mockOtel)

	company := model.Company{ID: "comp-1", SubscriptionPlan: model.SubscriptionPlanBasic}

	req := dto.PaymentRequest{
		CompanyID: "comp-1",
		Token:     "baridimob-token",
		AmountDzd: 5000,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful payment upgrades to pro",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(company, nil)

				mockGateway.EXPECT().
					Charge(gomock.Any(), "baridimob-token", 5000.0).
					Return(payment.Transaction{ID: "txn-1", Provider: "baridimob", AmountDzd: 5000}, nil)

				mockRepo.EXPECT().
					UpgradeSubscription(gomock.Any(), "comp-1", model.SubscriptionPlanPro).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "company not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Company{}, nil)
			},
			wantErr: true,
		},
		{
			name: "token rejected by provider",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(company, nil)

				mockGateway.EXPECT().
					Charge(gomock.Any(), "baridimob-token", 5000.0).
					Return(payment.Transaction{}, payment.ErrInvalidToken)
			},
			wantErr: true,
		},
		{
			name: "upgrade error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(company, nil)

				mockGateway.EXPECT().
					Charge(gomock.Any(), "baridimob-token", 5000.0).
					Return(payment.Transaction{ID: "txn-1", Provider: "baridimob", AmountDzd: 5000}, nil)

				mockRepo.EXPECT().
					UpgradeSubscription(gomock.Any(), "comp-1", model.SubscriptionPlanPro).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.ProcessPayment(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "txn-1", result.TransactionID)
				assert.Equal(t, model.SubscriptionPlanPro, result.SubscriptionPlan)
			}
		})
	}
}
