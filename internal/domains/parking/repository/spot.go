package repository

//go:generate go run go.uber.org/mock/mockgen -source=./spot.go -destination=../mocks/spot_mock.go -package=mocks

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
	gRepo "parkdz/shared/repository"
	"parkdz/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Spot interface {
	Insert(ctx context.Context, mod model.ParkingSpot) error
	InsertBulk(ctx context.Context, models []model.ParkingSpot) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ParkingSpot, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ParkingSpot, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	SetAvailability(ctx context.Context, spotID string, isAvailable bool) (changed bool, err error)
}

type spotRepositoryImpl struct {
	gRepo.Repository[model.ParkingSpot]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSpot(db *postgres.Connection, otel otel.Otel) Spot {
	return &spotRepositoryImpl{
		Repository: gRepo.NewRepository[model.ParkingSpot](model.SpotEntityName, model.SpotTableName, model.SpotFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SetAvailability flips a spot's availability and applies the matching +/-1
// to the parent location's counter, atomically. The spot row is locked; when
// the requested state already holds the call is a no-op and the counter is
// left untouched. Returns whether a flip happened.
func (repo *spotRepositoryImpl) SetAvailability(ctx context.Context, spotID string, isAvailable bool) (changed bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".parking_spot.SetAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		var row struct {
			LocationID  string `db:"parking_location_id"`
			IsAvailable bool   `db:"is_available"`
		}

		err := tx.GetContext(ctx, &row,
			`SELECT parking_location_id, is_available FROM parking_spots WHERE id = $1 FOR UPDATE`, spotID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSpotNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to lock parking spot: %w", err)
		}

		if row.IsAvailable == isAvailable {
			return nil
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE parking_spots SET is_available = $1, modified_at = $2 WHERE id = $3`,
			isAvailable, timezone.Now(), spotID); err != nil {
			return fmt.Errorf("failed to update parking spot: %w", err)
		}

		delta := "GREATEST(0, available_spots - 1)"
		if isAvailable {
			delta = "LEAST(total_spots, available_spots + 1)"
		}

		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf(`UPDATE parking_locations SET available_spots = %s, modified_at = $1 WHERE id = $2`, delta),
			timezone.Now(), row.LocationID); err != nil {
			return fmt.Errorf("failed to update location availability: %w", err)
		}

		changed = true

		return nil
	})

	return changed, err
}
