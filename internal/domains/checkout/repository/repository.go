// Package repository settles open drive-in sessions against the reservations
// table. Exit processing is one transaction: the session row is locked, the
// covering reservation (if any) is resolved, and the exit is stamped.
package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"parkdz/infras/otel"
	"parkdz/infras/postgres"
	"parkdz/internal/domains/checkout/model"
	reservationModel "parkdz/internal/domains/reservation/model"
	"parkdz/shared/constant"
	"parkdz/shared/timezone"

	"github.com/jmoiron/sqlx"
)

// ErrNoOpenSession is returned when no open session exists for the plate.
var ErrNoOpenSession = errors.New("no open parking session for this vehicle")

type Checkout interface {
	ProcessExit(ctx context.Context, matricule string, hourlyRateDzd float64) (model.ExitResult, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Checkout {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// coveringWindow is the confirmed reservation that may cover an open session.
type coveringWindow struct {
	ReservationEnd time.Time `db:"reservation_end"`
}

// ProcessExit closes the newest open session for the plate. A confirmed
// reservation overlapping the session window settles the exit as paid, or as
// overstay when the exit falls after the reservation end. Without one the
// session is billed at the flat hourly rate and marked unpaid.
func (repo *repositoryImpl) ProcessExit(ctx context.Context, matricule string, hourlyRateDzd float64) (res model.ExitResult, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".checkout.ProcessExit")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		var session model.Session

		err := tx.GetContext(ctx, &session,
			`SELECT r.id, r.matricule, r.parking_location_id, r.reservation_start,
				l.name AS location_name
			FROM reservations r
			JOIN parking_locations l ON l.id = r.parking_location_id
			WHERE r.matricule = $1 AND r.reservation_end IS NULL
			ORDER BY r.created_at DESC
			LIMIT 1
			FOR UPDATE OF r`, matricule)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoOpenSession
		}

		if err != nil {
			return fmt.Errorf("failed to lock open session: %w", err)
		}

		exitTime := timezone.Now()

		var covering coveringWindow

		err = tx.GetContext(ctx, &covering,
			`SELECT reservation_end
			FROM reservations
			WHERE matricule = $1
			AND parking_location_id = $2
			AND status = $3
			AND id <> $4
			AND reservation_start <= $5
			AND reservation_end >= $6
			ORDER BY reservation_end DESC
			LIMIT 1`,
			matricule, session.ParkingLocationID, reservationModel.StatusConfirmed,
			session.ID, exitTime, session.ReservationStart)

		hasCovering := err == nil
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to find covering reservation: %w", err)
		}

		res = settleExit(session, exitTime, covering, hasCovering, hourlyRateDzd)

		if _, err := tx.ExecContext(ctx,
			`UPDATE reservations
			SET reservation_end = $1, status = $2, total_amount_dzd = $3, modified_at = $1
			WHERE id = $4`,
			exitTime, res.Status, res.AmountDzd, session.ID); err != nil {
			return fmt.Errorf("failed to close session: %w", err)
		}

		return nil
	})

	return res, err
}

func settleExit(session model.Session, exitTime time.Time, covering coveringWindow, hasCovering bool, hourlyRateDzd float64) model.ExitResult {
	res := model.ExitResult{
		Session:         session,
		ExitTime:        exitTime,
		DurationMinutes: int(math.Ceil(exitTime.Sub(session.ReservationStart).Minutes())),
	}

	switch {
	case hasCovering && !exitTime.After(covering.ReservationEnd):
		res.Status = reservationModel.StatusPaid
		res.AmountDzd = 0
	case hasCovering:
		res.Status = reservationModel.StatusOverstay
		res.AmountDzd = 0
		res.OverstayMinutes = int(math.Ceil(exitTime.Sub(covering.ReservationEnd).Minutes()))
	default:
		res.Status = reservationModel.StatusUnpaid
		res.AmountDzd = float64(reservationModel.DurationHours(session.ReservationStart, exitTime)) * hourlyRateDzd
	}

	return res
}
