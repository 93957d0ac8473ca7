// Package repository persists companies. Registration creates the owning user
// account and the company row in one transaction.
package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"parkdz/infras/otel"
	"parkdz/infras/postgres"
	"parkdz/internal/domains/company/model"
	parkingModel "parkdz/internal/domains/parking/model"
	userModel "parkdz/internal/domains/user/model"
	"parkdz/shared/constant"
	gDto "parkdz/shared/dto"
	"parkdz/shared/logger"
	gRepo "parkdz/shared/repository"
	"parkdz/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	// ErrDuplicateEmail is returned when the company or user email is taken.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrCompanyNotFound is returned when no company matches.
	ErrCompanyNotFound = errors.New("company not found")
)

type Company interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Company, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Register(ctx context.Context, user userModel.User, company model.Company) error
	Locations(ctx context.Context, companyID string) ([]parkingModel.ParkingLocation, error)
	Analytics(ctx context.Context, companyID string) (model.Analytics, error)
	UpgradeSubscription(ctx context.Context, companyID, plan string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Company]
	userRepo gRepo.Repository[userModel.User]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Company {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Company](model.EntityName, model.TableName, model.FieldID, db, otel),
		userRepo:   gRepo.NewRepository[userModel.User](userModel.EntityName, userModel.TableName, userModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Register inserts the owning user and the company atomically. Either email
// colliding rolls both back and surfaces ErrDuplicateEmail.
func (repo *repositoryImpl) Register(ctx context.Context, user userModel.User, company model.Company) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".company.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.userRepo.InsertTx(ctx, tx, user); err != nil {
			return translateUnique(err)
		}

		if err := repo.InsertTx(ctx, tx, company); err != nil {
			return translateUnique(err)
		}

		return nil
	})

	return err
}

// Locations lists the parking locations a company operates.
func (repo *repositoryImpl) Locations(ctx context.Context, companyID string) (res []parkingModel.ParkingLocation, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".company.Locations")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Read.SelectContext(ctx, &res,
		`SELECT id, company_id, name, address, wilaya, commune,
			latitude, longitude, parking_type, total_spots, available_spots,
			price_per_hour, is_active, created_at, modified_at, created_by, modified_by
		FROM parking_locations
		WHERE company_id = $1
		ORDER BY name`, companyID)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get company locations: %w", err)
	}

	return res, nil
}

// Analytics rolls up the company's spots, reservation volume and a 7-day
// daily reservation series.
func (repo *repositoryImpl) Analytics(ctx context.Context, companyID string) (res model.Analytics, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".company.Analytics")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Read.GetContext(ctx, &res.TotalLocations,
		`SELECT COUNT(*) FROM parking_locations WHERE company_id = $1`, companyID)
	if err != nil {
		return res, fmt.Errorf("failed to count company locations: %w", err)
	}

	err = repo.db.Read.GetContext(ctx, &res.TotalSpots,
		`SELECT COALESCE(SUM(total_spots), 0) FROM parking_locations WHERE company_id = $1`, companyID)
	if err != nil {
		return res, fmt.Errorf("failed to sum company spots: %w", err)
	}

	err = repo.db.Read.GetContext(ctx, &res.TotalReservations,
		`SELECT COUNT(*)
		FROM reservations r
		JOIN parking_locations l ON l.id = r.parking_location_id
		WHERE l.company_id = $1`, companyID)
	if err != nil {
		return res, fmt.Errorf("failed to count company reservations: %w", err)
	}

	err = repo.db.Read.SelectContext(ctx, &res.Daily,
		`SELECT DATE_TRUNC('day', r.created_at) AS day, COUNT(*) AS count
		FROM reservations r
		JOIN parking_locations l ON l.id = r.parking_location_id
		WHERE l.company_id = $1 AND r.created_at >= $2
		GROUP BY day
		ORDER BY day`, companyID, timezone.Now().AddDate(0, 0, -7))
	if err != nil {
		return res, fmt.Errorf("failed to get daily reservation counts: %w", err)
	}

	return res, nil
}

// UpgradeSubscription sets the company's plan.
func (repo *repositoryImpl) UpgradeSubscription(ctx context.Context, companyID, plan string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".company.UpgradeSubscription")
	defer scope.End()
	defer scope.TraceIfError(err)

	result, err := repo.db.Write.ExecContext(ctx,
		`UPDATE companies SET subscription_plan = $1, modified_at = $2 WHERE id = $3`,
		plan, timezone.Now(), companyID)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to upgrade subscription: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}

	if affected == 0 {
		return ErrCompanyNotFound
	}

	return nil
}

func translateUnique(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return ErrDuplicateEmail
	}

	return fmt.Errorf("failed to register company: %w", err)
}
