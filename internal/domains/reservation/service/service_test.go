package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"parkdz/config"
	kafkaMocks "parkdz/infras/kafka/mocks"
	"parkdz/infras/otel/mocks"
	reservationMocks "parkdz/internal/domains/reservation/mocks"
	"parkdz/internal/domains/reservation/model"
	"parkdz/internal/domains/reservation/model/dto"
	"parkdz/internal/domains/reservation/repository"
	"parkdz/internal/domains/reservation/service"
	cacheMocks "parkdz/shared/cache/mocks"
	gDto "parkdz/shared/dto"
	"parkdz/shared/timezone"
)

var confirmationCodePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	// Cache invalidation runs asynchronously after a successful write.
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	start := timezone.Now().Add(2 * time.Hour)
	end := start.Add(3 * time.Hour)

	validReq := dto.CreateReservationRequest{
		UserEmail:         "driver@example.dz",
		Matricule:         "16-123-456",
		ParkingLocationID: "8f4a2c9e-1d3b-4a5c-8e7f-0a1b2c3d4e5f",
		ReservationStart:  start,
		ReservationEnd:    end,
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, res model.Reservation) (model.Reservation, error) {
						assert.True(t, confirmationCodePattern.MatchString(res.ConfirmationCode))
						assert.Contains(t, res.QrCode, res.ConfirmationCode)

						res.Status = model.StatusConfirmed

						return res, nil
					})
			},
			wantErr: false,
		},
		{
			name: "code collision retried with fresh code",
			req:  validReq,
			setupMock: func() {
				var firstCode string

				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, res model.Reservation) (model.Reservation, error) {
						firstCode = res.ConfirmationCode

						return model.Reservation{}, repository.ErrDuplicateCode
					})

				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, res model.Reservation) (model.Reservation, error) {
						assert.NotEqual(t, firstCode, res.ConfirmationCode)

						res.Status = model.StatusConfirmed

						return res, nil
					})
			},
			wantErr: false,
		},
		{
			name: "start in the past",
			req: dto.CreateReservationRequest{
				UserEmail:         "driver@example.dz",
				Matricule:         "16-123-456",
				ParkingLocationID: "8f4a2c9e-1d3b-4a5c-8e7f-0a1b2c3d4e5f",
				ReservationStart:  timezone.Now().Add(-time.Hour),
				ReservationEnd:    end,
			},
			setupMock: func() {
				// Rejected before the repository is touched.
			},
			wantErr: true,
		},
		{
			name: "end before start",
			req: dto.CreateReservationRequest{
				UserEmail:         "driver@example.dz",
				Matricule:         "16-123-456",
				ParkingLocationID: "8f4a2c9e-1d3b-4a5c-8e7f-0a1b2c3d4e5f",
				ReservationStart:  start,
				ReservationEnd:    start.Add(-time.Minute),
			},
			setupMock: func() {
				// Rejected before the repository is touched.
			},
			wantErr: true,
		},
		{
			name: "location not found",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, repository.ErrLocationNotFound)
			},
			wantErr: true,
		},
		{
			name: "capacity exceeded",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, repository.ErrCapacityExceeded)
			},
			wantErr: true,
		},
		{
			name: "requested spot unavailable",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, repository.ErrSpotUnavailable)
			},
			wantErr: true,
		},
		{
			name: "code retries exhausted",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, repository.ErrDuplicateCode).
					Times(4)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusConfirmed, result.Status)
				assert.Equal(t, 3, result.DurationHours)
			}
		})
	}
}

func TestReservationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	tests := []struct {
		name              string
		status            string
		parkingLocationID string
		setupMock         func()
		wantErr           bool
		wantCount         int
	}{
		{
			name: "no filters applied when query params are empty",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
						assert.Empty(t, filter.Filters)

						return []model.Reservation{{ID: "res-1"}, {ID: "res-2"}}, nil
					})
			},
			wantErr:   false,
			wantCount: 2,
		},
		{
			name:              "status and location filters applied",
			status:            model.StatusConfirmed,
			parkingLocationID: "loc-1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
						assert.Len(t, filter.Filters, 2)

						return []model.Reservation{{ID: "res-1"}}, nil
					})
			},
			wantErr:   false,
			wantCount: 1,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), tt.status, tt.parkingLocationID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.wantCount)
			}
		})
	}
}

func TestReservationService_GetByCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	detail := model.Detail{
		Reservation: model.Reservation{
			ID:               "res-1",
			ConfirmationCode: "A1B2C3D4",
			Status:           model.StatusConfirmed,
		},
		LocationName: "Parking Didouche Mourad",
		Wilaya:       "Alger",
	}

	tests := []struct {
		name      string
		code      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful lookup",
			code: "A1B2C3D4",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByCode(gomock.Any(), "A1B2C3D4").
					Return(detail, nil)
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			code: "ZZZZZZZZ",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByCode(gomock.Any(), "ZZZZZZZZ").
					Return(model.Detail{}, repository.ErrReservationNotFound)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			code: "A1B2C3D4",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByCode(gomock.Any(), "A1B2C3D4").
					Return(model.Detail{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetByCode(context.Background(), tt.code)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, detail.LocationName, result.LocationName)
				assert.Equal(t, detail.ConfirmationCode, result.ConfirmationCode)
			}
		})
	}
}

func TestReservationService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	// Cache invalidation runs asynchronously after a successful write.
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful cancellation",
			id:   "res-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Cancel(gomock.Any(), "res-1").
					Return(model.Reservation{ID: "res-1", Status: model.StatusCancelled}, nil)
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			id:   "missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Cancel(gomock.Any(), "missing").
					Return(model.Reservation{}, repository.ErrReservationNotFound)
			},
			wantErr: true,
		},
		{
			name: "already cancelled",
			id:   "res-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Cancel(gomock.Any(), "res-1").
					Return(model.Reservation{}, repository.ErrAlreadyCancelled)
			},
			wantErr: true,
		},
		{
			name: "already completed",
			id:   "res-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Cancel(gomock.Any(), "res-1").
					Return(model.Reservation{}, repository.ErrAlreadyCompleted)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Cancel(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusCancelled, result.Status)
			}
		})
	}
}

func TestReservationService_Complete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	// Cache invalidation runs asynchronously after a successful write.
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful completion",
			id:   "res-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Complete(gomock.Any(), "res-1").
					Return(model.Reservation{ID: "res-1", Status: model.StatusCompleted}, nil)
			},
			wantErr: false,
		},
		{
			name: "already cancelled",
			id:   "res-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Complete(gomock.Any(), "res-1").
					Return(model.Reservation{}, repository.ErrAlreadyCancelled)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Complete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusCompleted, result.Status)
			}
		})
	}
}

func TestReservationService_ParkingCacheInvalidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	start := timezone.Now().Add(2 * time.Hour)
	end := start.Add(time.Hour)

	tests := []struct {
		name      string
		setupMock func()
		act       func() error
	}{
		{
			name: "creation clears cached parking reads",
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, res model.Reservation) (model.Reservation, error) {
						return res, nil
					})
			},
			act: func() error {
				_, err := svc.Create(context.Background(), dto.CreateReservationRequest{
					UserEmail:         "driver@example.dz",
					Matricule:         "16-123-456",
					ParkingLocationID: "8f4a2c9e-1d3b-4a5c-8e7f-0a1b2c3d4e5f",
					ReservationStart:  start,
					ReservationEnd:    end,
				})

				return err
			},
		},
		{
			name: "cancellation clears cached parking reads",
			setupMock: func() {
				mockRepo.EXPECT().
					Cancel(gomock.Any(), "res-1").
					Return(model.Reservation{ID: "res-1", Status: model.StatusCancelled}, nil)
			},
			act: func() error {
				_, err := svc.Cancel(context.Background(), "res-1")

				return err
			},
		},
		{
			name: "completion clears cached parking reads",
			setupMock: func() {
				mockRepo.EXPECT().
					Complete(gomock.Any(), "res-1").
					Return(model.Reservation{ID: "res-1", Status: model.StatusCompleted}, nil)
			},
			act: func() error {
				_, err := svc.Complete(context.Background(), "res-1")

				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleared := make(chan string, 1)

			mockCache.EXPECT().
				Clear(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, prefix string) error {
					cleared <- prefix

					return nil
				})

			tt.setupMock()

			assert.NoError(t, tt.act())

			select {
			case prefix := <-cleared:
				assert.Equal(t, "parking:*", prefix)
			case <-time.After(time.Second):
				t.Fatal("parking caches were not invalidated")
			}
		})
	}
}
