package service

import (
	"context"
	"errors"
	"fmt"

	"parkdz/config"
	"parkdz/infras/otel"
	"parkdz/internal/domains/checkout/model/dto"
	"parkdz/internal/domains/checkout/repository"
	reservationModel "parkdz/internal/domains/reservation/model"
	"parkdz/shared/constant"
	"parkdz/shared/failure"

	"github.com/rs/zerolog/log"
)

type Checkout interface {
	ProcessExit(ctx context.Context, req dto.ProcessExitRequest) (dto.ExitResponse, error)
}

type serviceImpl struct {
	repo repository.Checkout
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Checkout, cfg *config.Config, otel otel.Otel) Checkout {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) ProcessExit(ctx context.Context, req dto.ProcessExitRequest) (res dto.ExitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkout.ProcessExit")
	defer scope.End()
	defer scope.TraceIfError(err)

	result, err := s.repo.ProcessExit(ctx, req.Matricule, s.cfg.Checkout.HourlyRateDzd)
	if err != nil {
		if errors.Is(err, repository.ErrNoOpenSession) {
			return res, failure.NotFound("no open parking session for this vehicle") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to process parking exit")

		return res, fmt.Errorf("failed to process parking exit: %w", err)
	}

	var message string

	switch result.Status {
	case reservationModel.StatusPaid:
		message = "Exit authorized, covered by online reservation"
	case reservationModel.StatusOverstay:
		message = fmt.Sprintf("Exit authorized, reservation exceeded by %d minutes", result.OverstayMinutes)
	default:
		message = fmt.Sprintf("Please pay %.2f DZD at the exit gate", result.AmountDzd)
	}

	res.FromModel(result, message)

	return res, nil
}
