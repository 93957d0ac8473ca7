package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"parkdz/config"
	"parkdz/infras/otel/mocks"
	checkoutMocks "parkdz/internal/domains/checkout/mocks"
	"parkdz/internal/domains/checkout/model"
	"parkdz/internal/domains/checkout/model/dto"
	"parkdz/internal/domains/checkout/repository"
	"parkdz/internal/domains/checkout/service"
	reservationModel "parkdz/internal/domains/reservation/model"
	"parkdz/shared/timezone"
)

func TestCheckoutService_ProcessExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := checkoutMocks.NewMockCheckout(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Checkout.HourlyRateDzd = 100

	svc := service.New(mockRepo, cfg, mockOtel)

	session := model.Session{
		ID:               "res-1",
		Matricule:        "16-123-456",
		ReservationStart: timezone.Now().Add(-2 * time.Hour),
		LocationName:     "Parking Didouche Mourad",
	}

	tests := []struct {
		name        string
		setupMock   func()
		wantErr     bool
		wantStatus  string
		wantAmount  float64
		wantMessage string
	}{
		{
			name: "exit covered by reservation",
			setupMock: func() {
				mockRepo.EXPECT().
					ProcessExit(gomock.Any(), "16-123-456", 100.0).
					Return(model.ExitResult{
						Session:  session,
						ExitTime: timezone.Now(),
						Status:   reservationModel.StatusPaid,
					}, nil)
			},
			wantErr:     false,
			wantStatus:  reservationModel.StatusPaid,
			wantAmount:  0,
			wantMessage: "Exit authorized, covered by online reservation",
		},
		{
			name: "exit after reservation end",
			setupMock: func() {
				mockRepo.EXPECT().
					ProcessExit(gomock.Any(), "16-123-456", 100.0).
					Return(model.ExitResult{
						Session:         session,
						ExitTime:        timezone.Now(),
						Status:          reservationModel.StatusOverstay,
						OverstayMinutes: 25,
					}, nil)
			},
			wantErr:     false,
			wantStatus:  reservationModel.StatusOverstay,
			wantAmount:  0,
			wantMessage: "Exit authorized, reservation exceeded by 25 minutes",
		},
		{
			name: "walk-in billed at the gate",
			setupMock: func() {
				mockRepo.EXPECT().
					ProcessExit(gomock.Any(), "16-123-456", 100.0).
					Return(model.ExitResult{
						Session:   session,
						ExitTime:  timezone.Now(),
						Status:    reservationModel.StatusUnpaid,
						AmountDzd: 200,
					}, nil)
			},
			wantErr:     false,
			wantStatus:  reservationModel.StatusUnpaid,
			wantAmount:  200,
			wantMessage: "Please pay 200.00 DZD at the exit gate",
		},
		{
			name: "no open session",
			setupMock: func() {
				mockRepo.EXPECT().
					ProcessExit(gomock.Any(), "16-123-456", 100.0).
					Return(model.ExitResult{}, repository.ErrNoOpenSession)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					ProcessExit(gomock.Any(), "16-123-456", 100.0).
					Return(model.ExitResult{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.ProcessExit(context.Background(), dto.ProcessExitRequest{Matricule: "16-123-456"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, result.Status)
				assert.Equal(t, tt.wantAmount, result.AmountDzd)
				assert.Equal(t, tt.wantMessage, result.Message)
			}
		})
	}
}
