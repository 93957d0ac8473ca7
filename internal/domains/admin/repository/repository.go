// Package repository runs the read-only aggregate queries behind the admin
// dashboard. Each method is a single query so the service can fan them out
// in parallel.
package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"parkdz/infras/otel"
	"parkdz/infras/postgres"
	"parkdz/internal/domains/admin/model"
	parkingModel "parkdz/internal/domains/parking/model"
	reservationModel "parkdz/internal/domains/reservation/model"
	"parkdz/shared/constant"
	"parkdz/shared/logger"
)

type Admin interface {
	CountUsers(ctx context.Context) (int, error)
	CountLocations(ctx context.Context) (total, active int, err error)
	CountReservations(ctx context.Context) (int, error)
	StatusCounts(ctx context.Context) ([]model.StatusCount, error)
	CompletedRevenue(ctx context.Context) (float64, error)
	RecentReservations(ctx context.Context, limit int) ([]model.RecentReservation, error)
	RecentLocations(ctx context.Context, limit int) ([]parkingModel.ParkingLocation, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Admin {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) CountUsers(ctx context.Context) (res int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".admin.CountUsers")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Read.GetContext(ctx, &res, `SELECT COUNT(*) FROM users`)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) CountLocations(ctx context.Context) (total, active int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".admin.CountLocations")
	defer scope.End()
	defer scope.TraceIfError(err)

	var row struct {
		Total  int `db:"total"`
		Active int `db:"active"`
	}

	err = repo.db.Read.GetContext(ctx, &row,
		`SELECT COUNT(*) AS total, COUNT(*) FILTER (WHERE is_active) AS active
		FROM parking_locations`)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, 0, fmt.Errorf("failed to count parking locations: %w", err)
	}

	return row.Total, row.Active, nil
}

func (repo *repositoryImpl) CountReservations(ctx context.Context) (res int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".admin.CountReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Read.GetContext(ctx, &res, `SELECT COUNT(*) FROM reservations`)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) StatusCounts(ctx context.Context) (res []model.StatusCount, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".admin.StatusCounts")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Read.SelectContext(ctx, &res,
		`SELECT status, COUNT(*) AS count FROM reservations GROUP BY status ORDER BY status`)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) CompletedRevenue(ctx context.Context) (res float64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".admin.CompletedRevenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Read.GetContext(ctx, &res,
		`SELECT COALESCE(SUM(total_amount_dzd), 0) FROM reservations WHERE status = $1`,
		reservationModel.StatusCompleted)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to sum completed revenue: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) RecentReservations(ctx context.Context, limit int) (res []model.RecentReservation, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".admin.RecentReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Read.SelectContext(ctx, &res,
		`SELECT r.id, r.user_email, r.matricule, r.parking_location_id,
			r.parking_spot_id, r.reservation_start, r.reservation_end,
			r.base_amount_dzd, r.total_amount_dzd, r.confirmation_code, r.qr_code,
			r.status, r.created_at, r.modified_at, r.created_by, r.modified_by,
			l.name AS location_name
		FROM reservations r
		JOIN parking_locations l ON l.id = r.parking_location_id
		ORDER BY r.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get recent reservations: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) RecentLocations(ctx context.Context, limit int) (res []parkingModel.ParkingLocation, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".admin.RecentLocations")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Read.SelectContext(ctx, &res,
		`SELECT id, company_id, name, address, wilaya, commune,
			latitude, longitude, parking_type, total_spots, available_spots,
			price_per_hour, is_active, created_at, modified_at, created_by, modified_by
		FROM parking_locations
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get recent parking locations: %w", err)
	}

	return res, nil
}
