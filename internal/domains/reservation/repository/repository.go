package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"parkdz/infras/otel"
	"parkdz/infras/postgres"
	"parkdz/internal/domains/reservation/model"
	"parkdz/shared/constant"
	gDto "parkdz/shared/dto"
	"parkdz/shared/logger"
	gRepo "parkdz/shared/repository"
	"parkdz/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const detailSelect = `SELECT r.id, r.user_email, r.matricule, r.parking_location_id,
	r.parking_spot_id, r.reservation_start, r.reservation_end,
	r.base_amount_dzd, r.total_amount_dzd, r.confirmation_code, r.qr_code,
	r.status, r.created_at, r.modified_at, r.created_by, r.modified_by,
	l.name AS location_name, l.address, l.wilaya, l.price_per_hour,
	s.spot_number, s.spot_type
	FROM reservations r
	JOIN parking_locations l ON l.id = r.parking_location_id
	LEFT JOIN parking_spots s ON s.id = r.parking_spot_id`

type Reservation interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Create(ctx context.Context, res model.Reservation) (model.Reservation, error)
	Cancel(ctx context.Context, id string) (model.Reservation, error)
	Complete(ctx context.Context, id string) (model.Reservation, error)
	GetByCode(ctx context.Context, confirmationCode string) (model.Detail, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// lockedLocation is the slice of the parking location row a reservation
// mutation needs under lock.
type lockedLocation struct {
	ParkingType    string  `db:"parking_type"`
	AvailableSpots int     `db:"available_spots"`
	PricePerHour   float64 `db:"price_per_hour"`
	IsActive       bool    `db:"is_active"`
}

// Create inserts a confirmed reservation, decrements the location counter and
// claims the assigned spot, all in one transaction. The location row is
// locked first so the capacity check and the decrement cannot interleave with
// a concurrent create. A confirmation-code collision surfaces as
// ErrDuplicateCode so the caller can regenerate and retry.
func (repo *repositoryImpl) Create(ctx context.Context, res model.Reservation) (out model.Reservation, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		var location lockedLocation

		err := tx.GetContext(ctx, &location,
			`SELECT parking_type, available_spots, price_per_hour, is_active
			FROM parking_locations WHERE id = $1 FOR UPDATE`, res.ParkingLocationID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrLocationNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to lock parking location: %w", err)
		}

		if !location.IsActive {
			return ErrLocationNotFound
		}

		if location.AvailableSpots <= 0 {
			return ErrCapacityExceeded
		}

		spotID, err := repo.claimSpot(ctx, tx, res, location.ParkingType)
		if err != nil {
			return err
		}

		res.ParkingSpotID = spotID
		res.BaseAmountDzd = location.PricePerHour
		res.TotalAmountDzd = model.CalculateCost(res.ReservationStart, *res.ReservationEnd, location.PricePerHour)
		res.Status = model.StatusConfirmed

		if err := repo.InsertTx(ctx, tx, res); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
				return ErrDuplicateCode
			}

			return fmt.Errorf("failed to insert reservation: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE parking_locations SET available_spots = available_spots - 1, modified_at = $1 WHERE id = $2`,
			timezone.Now(), res.ParkingLocationID); err != nil {
			return fmt.Errorf("failed to decrement available spots: %w", err)
		}

		if res.ParkingSpotID != nil {
			if _, err := tx.ExecContext(ctx,
				`UPDATE parking_spots SET is_available = FALSE, modified_at = $1 WHERE id = $2`,
				timezone.Now(), *res.ParkingSpotID); err != nil {
				return fmt.Errorf("failed to claim parking spot: %w", err)
			}
		}

		out = res

		return nil
	})

	return out, err
}

// claimSpot resolves which spot the reservation takes. An explicit spot must
// exist at the location and be free. Organized locations without an explicit
// request get the lowest-numbered free spot; public locations get none.
func (repo *repositoryImpl) claimSpot(ctx context.Context, tx *sqlx.Tx, res model.Reservation, parkingType string) (*string, error) {
	if res.ParkingSpotID != nil {
		var available bool

		err := tx.GetContext(ctx, &available,
			`SELECT is_available FROM parking_spots
			WHERE id = $1 AND parking_location_id = $2 FOR UPDATE`,
			*res.ParkingSpotID, res.ParkingLocationID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpotUnavailable
		}

		if err != nil {
			return nil, fmt.Errorf("failed to lock parking spot: %w", err)
		}

		if !available {
			return nil, ErrSpotUnavailable
		}

		return res.ParkingSpotID, nil
	}

	if parkingType != "organized" {
		return nil, nil
	}

	var spotID string

	err := tx.GetContext(ctx, &spotID,
		`SELECT id FROM parking_spots
		WHERE parking_location_id = $1 AND is_available = TRUE
		ORDER BY spot_number LIMIT 1 FOR UPDATE`, res.ParkingLocationID)
	if errors.Is(err, sql.ErrNoRows) {
		// The counter said there is capacity; trust it and book spotless.
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to pick parking spot: %w", err)
	}

	return &spotID, nil
}

// Cancel moves a confirmed reservation to cancelled, gives the capacity unit
// back to the location and releases the spot. The reservation row is locked
// so a concurrent cancel or complete sees the terminal state.
func (repo *repositoryImpl) Cancel(ctx context.Context, id string) (out model.Reservation, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		res, err := lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		res.Status = model.StatusCancelled
		res.ModifiedAt = timezone.Now()

		if _, err := tx.ExecContext(ctx,
			`UPDATE reservations SET status = $1, modified_at = $2 WHERE id = $3`,
			res.Status, res.ModifiedAt, id); err != nil {
			return fmt.Errorf("failed to cancel reservation: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE parking_locations
			SET available_spots = LEAST(total_spots, available_spots + 1), modified_at = $1
			WHERE id = $2`,
			timezone.Now(), res.ParkingLocationID); err != nil {
			return fmt.Errorf("failed to restore available spots: %w", err)
		}

		if err := releaseSpot(ctx, tx, res.ParkingSpotID); err != nil {
			return err
		}

		out = res

		return nil
	})

	return out, err
}

// Complete moves a confirmed reservation to completed and releases the spot.
// The location counter is deliberately untouched: availability accounting
// happens only at create and cancel.
func (repo *repositoryImpl) Complete(ctx context.Context, id string) (out model.Reservation, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		res, err := lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		res.Status = model.StatusCompleted
		res.ModifiedAt = timezone.Now()

		if _, err := tx.ExecContext(ctx,
			`UPDATE reservations SET status = $1, modified_at = $2 WHERE id = $3`,
			res.Status, res.ModifiedAt, id); err != nil {
			return fmt.Errorf("failed to complete reservation: %w", err)
		}

		if err := releaseSpot(ctx, tx, res.ParkingSpotID); err != nil {
			return err
		}

		out = res

		return nil
	})

	return out, err
}

// GetByCode resolves one reservation by confirmation code, joined with its
// location and spot.
func (repo *repositoryImpl) GetByCode(ctx context.Context, confirmationCode string) (res model.Detail, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.GetByCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := detailSelect + ` WHERE r.confirmation_code = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &res, query, confirmationCode)
	if errors.Is(err, sql.ErrNoRows) {
		return res, ErrReservationNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get reservation by code: %w", err)
	}

	return res, nil
}

func lockReservation(ctx context.Context, tx *sqlx.Tx, id string) (model.Reservation, error) {
	var res model.Reservation

	err := tx.GetContext(ctx, &res,
		`SELECT id, user_email, matricule, parking_location_id, parking_spot_id,
			reservation_start, reservation_end, base_amount_dzd, total_amount_dzd,
			confirmation_code, qr_code, status, created_at, modified_at, created_by, modified_by
		FROM reservations WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return res, ErrReservationNotFound
	}

	if err != nil {
		return res, fmt.Errorf("failed to lock reservation: %w", err)
	}

	switch res.Status {
	case model.StatusCancelled:
		return res, ErrAlreadyCancelled
	case model.StatusCompleted:
		return res, ErrAlreadyCompleted
	}

	return res, nil
}

func releaseSpot(ctx context.Context, tx *sqlx.Tx, spotID *string) error {
	if spotID == nil {
		return nil
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE parking_spots SET is_available = TRUE, modified_at = $1 WHERE id = $2`,
		timezone.Now(), *spotID); err != nil {
		return fmt.Errorf("failed to release parking spot: %w", err)
	}

	return nil
}
