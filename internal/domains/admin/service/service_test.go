package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"parkdz/infras/otel/mocks"
	adminMocks "parkdz/internal/domains/admin/mocks"
	"parkdz/internal/domains/admin/model"
	"parkdz/internal/domains/admin/service"
	parkingModel "parkdz/internal/domains/parking/model"
	reservationModel "parkdz/internal/domains/reservation/model"
)

func TestAdminService_Metrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := adminMocks.NewMockAdmin(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "metrics assembled from all queries",
			setupMock: func() {
				mockRepo.EXPECT().CountUsers(gomock.Any()).Return(25, nil)
				mockRepo.EXPECT().CountLocations(gomock.Any()).Return(10, 8, nil)
				mockRepo.EXPECT().CountReservations(gomock.Any()).Return(120, nil)
				mockRepo.EXPECT().StatusCounts(gomock.Any()).Return([]model.StatusCount{
					{Status: reservationModel.StatusConfirmed, Count: 40},
					{Status: reservationModel.StatusCompleted, Count: 70},
				}, nil)
				mockRepo.EXPECT().CompletedRevenue(gomock.Any()).Return(15400.0, nil)
				mockRepo.EXPECT().RecentReservations(gomock.Any(), 10).Return([]model.RecentReservation{
					{
						Reservation:  reservationModel.Reservation{ID: "res-1"},
						LocationName: "Parking Didouche Mourad",
					},
				}, nil)
				mockRepo.EXPECT().RecentLocations(gomock.Any(), 10).Return([]parkingModel.ParkingLocation{
					{ID: "loc-1", Name: "Parking Didouche Mourad", TotalSpots: 40, AvailableSpots: 12},
					{ID: "loc-2", Name: "Parking Ardis", TotalSpots: 80, AvailableSpots: 80},
				}, nil)
			},
			wantErr: false,
		},
		{
			name: "one failing query fails the rollup",
			setupMock: func() {
				mockRepo.EXPECT().CountUsers(gomock.Any()).Return(0, errors.New("database error"))
				mockRepo.EXPECT().CountLocations(gomock.Any()).Return(0, 0, nil).AnyTimes()
				mockRepo.EXPECT().CountReservations(gomock.Any()).Return(0, nil).AnyTimes()
				mockRepo.EXPECT().StatusCounts(gomock.Any()).Return(nil, nil).AnyTimes()
				mockRepo.EXPECT().CompletedRevenue(gomock.Any()).Return(0.0, nil).AnyTimes()
				mockRepo.EXPECT().RecentReservations(gomock.Any(), 10).Return(nil, nil).AnyTimes()
				mockRepo.EXPECT().RecentLocations(gomock.Any(), 10).Return(nil, nil).AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Metrics(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 25, result.TotalUsers)
				assert.Equal(t, 10, result.TotalLocations)
				assert.Equal(t, 8, result.ActiveLocations)
				assert.Equal(t, 120, result.TotalReservations)
				assert.Equal(t, 15400.0, result.CompletedRevenueDzd)
				assert.Len(t, result.StatusCounts, 2)
				assert.Len(t, result.RecentReservations, 1)
				assert.Len(t, result.RecentLocations, 2)
				assert.Equal(t, "loc-1", result.RecentLocations[0].ID)
			}
		})
	}
}
