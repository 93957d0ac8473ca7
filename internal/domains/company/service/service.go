package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"parkdz/infras/otel"
	"parkdz/infras/payment"
	"parkdz/internal/domains/company/model"
	"parkdz/internal/domains/company/model/dto"
	"parkdz/internal/domains/company/repository"
	"parkdz/shared"
	"parkdz/shared/constant"
	"parkdz/shared/failure"
	"parkdz/shared/password"

	"github.com/rs/zerolog/log"
)

type Company interface {
	Register(ctx context.Context, req dto.RegisterCompanyRequest) (dto.CompanyResponse, error)
	GetByID(ctx context.Context, id string) (dto.CompanyResponse, error)
	Locations(ctx context.Context, companyID string) (dto.CompanyLocationsResponse, error)
	Analytics(ctx context.Context, companyID string) (dto.AnalyticsResponse, error)
	ProcessPayment(ctx context.Context, req dto.PaymentRequest) (dto.PaymentResponse, error)
}

type serviceImpl struct {
	repo    repository.Company
	gateway payment.Gateway
	otel    otel.Otel
}

func New(repo repository.Company, gateway payment.Gateway, otel otel.Otel) Company {
	return &serviceImpl{
		repo:    repo,
		gateway: gateway,
		otel:    otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterCompanyRequest) (res dto.CompanyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user, company := req.ToModels(hashed)

	if err = s.repo.Register(ctx, user, company); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return res, failure.Conflict("email is already registered") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to register company")

		return res, fmt.Errorf("failed to register company: %w", err)
	}

	res.FromModel(company)

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res dto.CompanyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	company, err := s.getCompany(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(company)

	return res, nil
}

func (s *serviceImpl) Locations(ctx context.Context, companyID string) (res dto.CompanyLocationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.Locations")
	defer scope.End()
	defer scope.TraceIfError(err)

	company, err := s.getCompany(ctx, companyID)
	if err != nil {
		return res, err
	}

	locations, err := s.repo.Locations(ctx, companyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get company locations")

		return res, fmt.Errorf("failed to get company locations: %w", err)
	}

	res.FromModels(company, locations)

	return res, nil
}

func (s *serviceImpl) Analytics(ctx context.Context, companyID string) (res dto.AnalyticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.Analytics")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getCompany(ctx, companyID); err != nil {
		return res, err
	}

	analytics, err := s.repo.Analytics(ctx, companyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get company analytics")

		return res, fmt.Errorf("failed to get company analytics: %w", err)
	}

	res.FromModel(analytics)

	return res, nil
}

// ProcessPayment charges the subscription fee through the payment gateway and
// upgrades the company to the pro plan.
func (s *serviceImpl) ProcessPayment(ctx context.Context, req dto.PaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.ProcessPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getCompany(ctx, req.CompanyID); err != nil {
		return res, err
	}

	transaction, err := s.gateway.Charge(ctx, req.Token, req.AmountDzd)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidToken) {
			return res, failure.BadRequestFromString("payment token rejected by provider") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to charge payment")

		return res, fmt.Errorf("failed to charge payment: %w", err)
	}

	if err = s.repo.UpgradeSubscription(ctx, req.CompanyID, model.SubscriptionPlanPro); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return res, failure.NotFound("company not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to upgrade subscription")

		return res, fmt.Errorf("failed to upgrade subscription: %w", err)
	}

	res = dto.PaymentResponse{
		TransactionID:    transaction.ID,
		Provider:         transaction.Provider,
		AmountDzd:        transaction.AmountDzd,
		SubscriptionPlan: model.SubscriptionPlanPro,
	}

	return res, nil
}

func (s *serviceImpl) getCompany(ctx context.Context, id string) (model.Company, error) {
	company, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get company")

		return company, fmt.Errorf("failed to get company: %w", err)
	}

	if company.ID == constant.Empty {
		return company, failure.NotFound("company not found") // nolint:wrapcheck
	}

	return company, nil
}
