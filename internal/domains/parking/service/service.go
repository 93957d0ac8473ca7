package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"parkdz/config"
	"parkdz/infras/otel"
	"parkdz/internal/domains/parking/model"
	"parkdz/internal/domains/parking/model/dto"
	"parkdz/internal/domains/parking/repository"
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
	cacheGetLocation     = "parking:get"
	cacheGetAllLocations = "parking:gets"
	cacheSearchLocations = "parking:search"
	cacheWilayas         = "parking:wilayas"

	metersPerKilometer = 1000
	defaultSpotType    = "standard"
)

type Parking interface {
	GetAllLocations(ctx context.Context) ([]dto.LocationResponse, error)
	Search(ctx context.Context, req dto.SearchParkingRequest) ([]dto.SearchResultResponse, error)
	GetLocation(ctx context.Context, id string) (dto.LocationDetailResponse, error)
	CreateLocation(ctx context.Context, req dto.CreateParkingLocationRequest) (dto.LocationResponse, error)
	UpdateLocation(ctx context.Context, req dto.UpdateParkingLocationRequest, id string) error
	DeleteLocation(ctx context.Context, id string) error
	OverrideAvailability(ctx context.Context, id string, availableSpots int) (dto.LocationResponse, error)
	GetSpots(ctx context.Context, locationID string) ([]dto.SpotResponse, error)
	SetSpotAvailability(ctx context.Context, spotID string, isAvailable bool) error
	Wilayas(ctx context.Context) ([]dto.WilayaCountResponse, error)
	GetByWilaya(ctx context.Context, wilaya string) ([]dto.LocationResponse, error)
}

type serviceImpl struct {
	locationRepo repository.Location
	spotRepo     repository.Spot
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(locationRepo repository.Location, spotRepo repository.Spot, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Parking {
	return &serviceImpl{
		locationRepo: locationRepo,
		spotRepo:     spotRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) GetAllLocations(ctx context.Context) (res []dto.LocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllLocations")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllLocations, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllLocations).Msg("cache hit for parking locations")

		return res, nil
	}

	models, err := s.locationRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc},
		activeLocationsFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get parking locations")

		return nil, fmt.Errorf("failed to get parking locations: %w", err)
	}

	res = make([]dto.LocationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllLocations, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save parking locations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchParkingRequest) (res []dto.SearchResultResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := repository.SearchQuery{
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		RadiusKm:    req.RadiusMeters / metersPerKilometer,
		MaxPrice:    req.MaxPrice,
		ParkingType: req.ParkingType,
	}

	models, err := s.locationRepo.Search(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to search parking locations")

		return nil, fmt.Errorf("failed to search parking locations: %w", err)
	}

	res = make([]dto.SearchResultResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) GetLocation(ctx context.Context, id string) (res dto.LocationDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLocation")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetLocation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for parking location")

		return res, nil
	}

	location, err := s.locationRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.LocationTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get parking location")

		return res, fmt.Errorf("failed to get parking location: %w", err)
	}

	if location.ID == constant.Empty || !location.IsActive {
		return res, failure.NotFound("parking location not found") // nolint:wrapcheck
	}

	spots, err := s.spotRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.SpotFieldNumber, SortDir: gDto.SortDirAsc},
		shared.FilterByID(id, model.SpotFieldLocationID, model.SpotTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get parking spots")

		return res, fmt.Errorf("failed to get parking spots: %w", err)
	}

	res.FromModels(location, spots)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save parking location to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CreateLocation(ctx context.Context, req dto.CreateParkingLocationRequest) (res dto.LocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateLocation")
	defer scope.End()
	defer scope.TraceIfError(err)

	location := req.ToModel(constant.SystemActor)

	if err = s.locationRepo.Insert(ctx, location); err != nil {
		log.Error().Err(err).Msg("failed to create parking location")

		return res, fmt.Errorf("failed to create parking location: %w", err)
	}

	// Organized locations track individual spots; seed one row per spot.
	if location.ParkingType == model.ParkingTypeOrganized {
		spots := make([]model.ParkingSpot, location.TotalSpots)
		for i := range spots {
			spots[i] = model.ParkingSpot{
				ID:                uuid.NewString(),
				ParkingLocationID: location.ID,
				SpotNumber:        i + 1,
				IsAvailable:       true,
				SpotType:          defaultSpotType,
				Metadata: gModel.Metadata{
					CreatedAt:  timezone.Now(),
					ModifiedAt: timezone.Now(),
					CreatedBy:  location.CreatedBy,
					ModifiedBy: location.ModifiedBy,
				},
			}
		}

		if err = s.spotRepo.InsertBulk(ctx, spots); err != nil {
			log.Error().Err(err).Msg("failed to seed parking spots")

			return res, fmt.Errorf("failed to seed parking spots: %w", err)
		}
	}

	s.invalidateLocationCaches(ctx, location.ID)

	res.FromModel(location)

	return res, nil
}

func (s *serviceImpl) UpdateLocation(ctx context.Context, req dto.UpdateParkingLocationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateLocation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateParkingLocationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.LocationTableName)

	exist, err := s.locationRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if parking location exists")

		return fmt.Errorf("failed to check if parking location exists: %w", err)
	}

	if !exist {
		return failure.NotFound("parking location not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, constant.Empty)
	if err = s.locationRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update parking location")

		return fmt.Errorf("failed to update parking location: %w", err)
	}

	s.invalidateLocationCaches(ctx, id)

	return nil
}

func (s *serviceImpl) DeleteLocation(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteLocation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.locationRepo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return failure.NotFound("parking location not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete parking location")

		return fmt.Errorf("failed to delete parking location: %w", err)
	}

	s.invalidateLocationCaches(ctx, id)

	return nil
}

func (s *serviceImpl) OverrideAvailability(ctx context.Context, id string, availableSpots int) (res dto.LocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OverrideAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	location, err := s.locationRepo.OverrideAvailability(ctx, id, availableSpots)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrLocationNotFound):
			return res, failure.NotFound("parking location not found") // nolint:wrapcheck
		case errors.Is(err, repository.ErrAvailabilityOutOfRange):
			return res, failure.BadRequestFromString("available spots cannot be negative or exceed total spots") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to override parking availability")

		return res, fmt.Errorf("failed to override parking availability: %w", err)
	}

	s.invalidateLocationCaches(ctx, id)

	res.FromModel(location)

	return res, nil
}

func (s *serviceImpl) GetSpots(ctx context.Context, locationID string) (res []dto.SpotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSpots")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.locationRepo.Exist(ctx, shared.FilterByID(locationID, model.FieldID, model.LocationTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if parking location exists")

		return nil, fmt.Errorf("failed to check if parking location exists: %w", err)
	}

	if !exist {
		return nil, failure.NotFound("parking location not found") // nolint:wrapcheck
	}

	spots, err := s.spotRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.SpotFieldNumber, SortDir: gDto.SortDirAsc},
		shared.FilterByID(locationID, model.SpotFieldLocationID, model.SpotTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get parking spots")

		return nil, fmt.Errorf("failed to get parking spots: %w", err)
	}

	res = make([]dto.SpotResponse, len(spots))
	for i, spot := range spots {
		res[i].FromModel(spot)
	}

	return res, nil
}

func (s *serviceImpl) SetSpotAvailability(ctx context.Context, spotID string, isAvailable bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetSpotAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	changed, err := s.spotRepo.SetAvailability(ctx, spotID, isAvailable)
	if err != nil {
		if errors.Is(err, repository.ErrSpotNotFound) {
			return failure.NotFound("parking spot not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to set spot availability")

		return fmt.Errorf("failed to set spot availability: %w", err)
	}

	if !changed {
		log.Info().Str("spotID", spotID).Bool("isAvailable", isAvailable).Msg("spot already in requested state")

		return nil
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetLocation)
		shared.InvalidateCaches(c, s.cache, cacheGetAllLocations)
	}()

	return nil
}

func (s *serviceImpl) Wilayas(ctx context.Context) (res []dto.WilayaCountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Wilayas")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheWilayas, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheWilayas).Msg("cache hit for wilayas")

		return res, nil
	}

	counts, err := s.locationRepo.Wilayas(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list wilayas")

		return nil, fmt.Errorf("failed to list wilayas: %w", err)
	}

	res = make([]dto.WilayaCountResponse, len(counts))
	for i, count := range counts {
		res[i] = dto.WilayaCountResponse{Wilaya: count.Wilaya, ParkingCount: count.ParkingCount}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheWilayas, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save wilayas to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByWilaya(ctx context.Context, wilaya string) (res []dto.LocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByWilaya")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.locationRepo.GetByWilaya(ctx, wilaya)
	if err != nil {
		log.Error().Err(err).Msg("failed to get parking locations by wilaya")

		return nil, fmt.Errorf("failed to get parking locations by wilaya: %w", err)
	}

	res = make([]dto.LocationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) invalidateLocationCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetLocation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete parking location from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllLocations)
		shared.InvalidateCaches(c, s.cache, cacheSearchLocations)
		shared.InvalidateCaches(c, s.cache, cacheWilayas)
	}()
}

func activeLocationsFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.LocationTableName,
			},
		},
	}
}
