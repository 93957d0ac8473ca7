package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"parkdz/infras/otel"
	"parkdz/infras/postgres"
	"parkdz/internal/domains/parking/model"
	"parkdz/shared/constant"
	gDto "parkdz/shared/dto"
	"parkdz/shared/logger"
	gRepo "parkdz/shared/repository"
	"parkdz/shared/timezone"

	"github.com/jmoiron/sqlx"
)

// haversineKm is the great-circle distance in kilometres between the bound
// point (:lat, :lon) and a location row.
const haversineKm = `(6371 * acos(cos(radians($1)) * cos(radians(latitude)) ` +
	`* cos(radians(longitude) - radians($2)) + sin(radians($1)) ` +
	`* sin(radians(latitude))))`

type SearchQuery struct {
	Latitude    float64
	Longitude   float64
	RadiusKm    float64
	MaxPrice    *float64
	ParkingType string
}

type Location interface {
	Insert(ctx context.Context, mod model.ParkingLocation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ParkingLocation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ParkingLocation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Search(ctx context.Context, query SearchQuery) ([]model.LocationWithDistance, error)
	OverrideAvailability(ctx context.Context, id string, availableSpots int) (model.ParkingLocation, error)
	DeleteCascade(ctx context.Context, id string) error
	Wilayas(ctx context.Context) ([]model.WilayaCount, error)
	GetByWilaya(ctx context.Context, wilaya string) ([]model.ParkingLocation, error)
}

type locationRepositoryImpl struct {
	gRepo.Repository[model.ParkingLocation]
	db   *postgres.Connection
	otel otel.Otel
}

func NewLocation(db *postgres.Connection, otel otel.Otel) Location {
	return &locationRepositoryImpl{
		Repository: gRepo.NewRepository[model.ParkingLocation](model.LocationEntityName, model.LocationTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Search filters active locations with free capacity by great-circle
// distance, optionally by price ceiling and parking type, ordered nearest
// first and capped at 20 rows.
func (repo *locationRepositoryImpl) Search(ctx context.Context, query SearchQuery) (res []model.LocationWithDistance, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".parking_location.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	sqlQuery := `SELECT id, company_id, name, address, wilaya, commune,
		latitude, longitude, parking_type, total_spots, available_spots,
		price_per_hour, is_active, created_at, modified_at, created_by, modified_by,
		` + haversineKm + ` AS distance_km
		FROM parking_locations
		WHERE is_active = TRUE
		AND available_spots > 0
		AND ` + haversineKm + ` <= $3`

	args := []any{query.Latitude, query.Longitude, query.RadiusKm}

	if query.MaxPrice != nil {
		args = append(args, *query.MaxPrice)
		sqlQuery += fmt.Sprintf(" AND price_per_hour <= $%d", len(args))
	}

	if query.ParkingType != "" {
		args = append(args, query.ParkingType)
		sqlQuery += fmt.Sprintf(" AND parking_type = $%d", len(args))
	}

	sqlQuery += " ORDER BY distance_km LIMIT 20"
	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	err = repo.db.Read.SelectContext(ctx, &res, sqlQuery, args...)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to search parking locations: %w", err)
	}

	return res, nil
}

// OverrideAvailability is the administrative absolute overwrite of the
// availability counter. The location row is locked so the bound check and
// the write cannot interleave with a concurrent reservation delta.
func (repo *locationRepositoryImpl) OverrideAvailability(ctx context.Context, id string, availableSpots int) (res model.ParkingLocation, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".parking_location.OverrideAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		var totalSpots int

		err := tx.GetContext(ctx, &totalSpots,
			`SELECT total_spots FROM parking_locations WHERE id = $1 FOR UPDATE`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrLocationNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to lock parking location: %w", err)
		}

		if availableSpots < 0 || availableSpots > totalSpots {
			return ErrAvailabilityOutOfRange
		}

		err = tx.GetContext(ctx, &res,
			`UPDATE parking_locations
			SET available_spots = $1, modified_at = $2
			WHERE id = $3
			RETURNING id, company_id, name, address, wilaya, commune,
				latitude, longitude, parking_type, total_spots, available_spots,
				price_per_hour, is_active, created_at, modified_at, created_by, modified_by`,
			availableSpots, timezone.Now(), id)
		if err != nil {
			return fmt.Errorf("failed to override availability: %w", err)
		}

		return nil
	})

	return res, err
}

// DeleteCascade removes a location and its child spots in one transaction,
// spots first.
func (repo *locationRepositoryImpl) DeleteCascade(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".parking_location.DeleteCascade")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM parking_spots WHERE parking_location_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete parking spots: %w", err)
		}

		result, err := tx.ExecContext(ctx,
			`DELETE FROM parking_locations WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete parking location: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected: %w", err)
		}

		if affected == 0 {
			return ErrLocationNotFound
		}

		return nil
	})
}

// Wilayas lists the distinct wilayas that have active locations, with counts.
func (repo *locationRepositoryImpl) Wilayas(ctx context.Context) (res []model.WilayaCount, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".parking_location.Wilayas")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Read.SelectContext(ctx, &res,
		`SELECT wilaya, COUNT(*) AS parking_count
		FROM parking_locations
		WHERE is_active = TRUE
		GROUP BY wilaya
		ORDER BY wilaya`)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list wilayas: %w", err)
	}

	return res, nil
}

func (repo *locationRepositoryImpl) GetByWilaya(ctx context.Context, wilaya string) (res []model.ParkingLocation, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".parking_location.GetByWilaya")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Read.SelectContext(ctx, &res,
		`SELECT id, company_id, name, address, wilaya, commune,
			latitude, longitude, parking_type, total_spots, available_spots,
			price_per_hour, is_active, created_at, modified_at, created_by, modified_by
		FROM parking_locations
		WHERE wilaya ILIKE $1 AND is_active = TRUE
		ORDER BY available_spots DESC, name`,
		"%"+wilaya+"%")
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get parking locations by wilaya: %w", err)
	}

	return res, nil
}
