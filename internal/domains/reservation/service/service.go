package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"parkdz/config"
	"parkdz/infras/kafka"
	"parkdz/infras/otel"
	"parkdz/internal/domains/reservation/model"
	"parkdz/internal/domains/reservation/model/dto"
	"parkdz/internal/domains/reservation/repository"
	"parkdz/shared"
	"parkdz/shared/cache"
	"parkdz/shared/constant"
	gDto "parkdz/shared/dto"
	"parkdz/shared/failure"
	gModel "parkdz/shared/model"
	"parkdz/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	confirmationCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	confirmationCodeLength  = 8

	// Collisions on an 8-char code are rare; a couple of retries is plenty.
	maxCodeRetries = 3

	// Listings are capped so the endpoint stays bounded without pagination.
	maxListedReservations = 100

	qrCodePrefix = "SMARTPARKING"

	// Lifecycle writes move location counters and spot flags, so every
	// cached parking read is invalidated under this prefix.
	parkingCachePrefix = "parking:"

	EventCreated   = "reservation.created"
	EventCancelled = "reservation.cancelled"
	EventCompleted = "reservation.completed"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, status, parkingLocationID string) ([]dto.ReservationResponse, error)
	GetByCode(ctx context.Context, confirmationCode string) (dto.ReservationDetailResponse, error)
	Cancel(ctx context.Context, id string) (dto.ReservationResponse, error)
	Complete(ctx context.Context, id string) (dto.ReservationResponse, error)
}

type serviceImpl struct {
	repo  repository.Reservation
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Reservation, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		kafka: kafka,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	if !req.ReservationStart.After(now) {
		return res, failure.BadRequestFromString("reservation start must be in the future") // nolint:wrapcheck
	}

	if !req.ReservationEnd.After(req.ReservationStart) {
		return res, failure.BadRequestFromString("reservation end must be after reservation start") // nolint:wrapcheck
	}

	reservation := model.Reservation{
		ID:                uuid.NewString(),
		UserEmail:         req.UserEmail,
		Matricule:         req.Matricule,
		ParkingLocationID: req.ParkingLocationID,
		ParkingSpotID:     req.ParkingSpotID,
		ReservationStart:  req.ReservationStart,
		ReservationEnd:    &req.ReservationEnd,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  req.UserEmail,
			ModifiedBy: req.UserEmail,
		},
	}

	var created model.Reservation

	for attempt := 0; ; attempt++ {
		reservation.ConfirmationCode = generateConfirmationCode()
		reservation.QrCode = buildQrCode(reservation.ID, reservation.ConfirmationCode)

		created, err = s.repo.Create(ctx, reservation)
		if errors.Is(err, repository.ErrDuplicateCode) && attempt < maxCodeRetries {
			log.Warn().Int("attempt", attempt+1).Msg("confirmation code collision, regenerating")

			continue
		}

		break
	}

	if err != nil {
		return res, s.mapCreateError(err)
	}

	s.invalidateParkingCaches(ctx)
	s.publishEvent(ctx, EventCreated, created)

	res.FromModel(created)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, status, parkingLocationID string) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if parkingLocationID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldParkingLocationID,
			Operator: gDto.FilterOperatorEq,
			Value:    parkingLocationID,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{
		Limit:   maxListedReservations,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	reservations, err := s.repo.GetAll(ctx, params, filterGroup)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	res = make([]dto.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		res[i].FromModel(reservation)
	}

	return res, nil
}

func (s *serviceImpl) GetByCode(ctx context.Context, confirmationCode string) (res dto.ReservationDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetByCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	detail, err := s.repo.GetByCode(ctx, confirmationCode)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return res, failure.NotFound("reservation not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get reservation by code")

		return res, fmt.Errorf("failed to get reservation by code: %w", err)
	}

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	cancelled, err := s.repo.Cancel(ctx, id)
	if err != nil {
		return res, s.mapTransitionError(err, "cancel")
	}

	s.invalidateParkingCaches(ctx)
	s.publishEvent(ctx, EventCancelled, cancelled)

	res.FromModel(cancelled)

	return res, nil
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	completed, err := s.repo.Complete(ctx, id)
	if err != nil {
		return res, s.mapTransitionError(err, "complete")
	}

	s.invalidateParkingCaches(ctx)
	s.publishEvent(ctx, EventCompleted, completed)

	res.FromModel(completed)

	return res, nil
}

func (s *serviceImpl) mapCreateError(err error) error {
	switch {
	case errors.Is(err, repository.ErrLocationNotFound):
		return failure.NotFound("parking location not found") // nolint:wrapcheck
	case errors.Is(err, repository.ErrCapacityExceeded):
		return failure.BadRequestFromString("no available spots at this location") // nolint:wrapcheck
	case errors.Is(err, repository.ErrSpotUnavailable):
		return failure.BadRequestFromString("requested parking spot is not available") // nolint:wrapcheck
	case errors.Is(err, repository.ErrDuplicateCode):
		return failure.Conflict("could not allocate a unique confirmation code") // nolint:wrapcheck
	}

	log.Error().Err(err).Msg("failed to create reservation")

	return fmt.Errorf("failed to create reservation: %w", err)
}

func (s *serviceImpl) mapTransitionError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrReservationNotFound):
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	case errors.Is(err, repository.ErrAlreadyCancelled):
		return failure.BadRequestFromString("reservation is already cancelled") // nolint:wrapcheck
	case errors.Is(err, repository.ErrAlreadyCompleted):
		return failure.BadRequestFromString("reservation is already completed") // nolint:wrapcheck
	}

	log.Error().Err(err).Str("action", action).Msg("failed to transition reservation")

	return fmt.Errorf("failed to %s reservation: %w", action, err)
}

// invalidateParkingCaches drops cached parking reads after a lifecycle write
// moved a location counter or a spot flag.
func (s *serviceImpl) invalidateParkingCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, parkingCachePrefix)
	}()
}

// publishEvent emits a lifecycle event after the transaction committed.
// Publishing is best effort and never blocks the response.
func (s *serviceImpl) publishEvent(ctx context.Context, event string, reservation model.Reservation) {
	if !s.cfg.Kafka.Enable {
		return
	}

	topic := s.cfg.Kafka.TopicPrefix + ".reservations"

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   event,
			Value: reservation,
		}

		if err := s.kafka.SendMessages(c, topic, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish reservation event")
		}
	}()
}

func generateConfirmationCode() string {
	code := make([]byte, confirmationCodeLength)
	for i := range code {
		code[i] = confirmationCodeCharset[rand.IntN(len(confirmationCodeCharset))]
	}

	return string(code)
}

func buildQrCode(id, confirmationCode string) string {
	return fmt.Sprintf("%s-%s-%s", qrCodePrefix, id, confirmationCode)
}
