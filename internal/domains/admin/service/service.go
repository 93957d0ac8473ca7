package service

import (
	"context"
	"fmt"

	"parkdz/infras/otel"
	"parkdz/internal/domains/admin/model"
	"parkdz/internal/domains/admin/model/dto"
	"parkdz/internal/domains/admin/repository"
	"parkdz/shared/constant"

	"golang.org/x/sync/errgroup"
)

// recentItemLimit caps both dashboard feeds, reservations and locations.
const recentItemLimit = 10

type Admin interface {
	Metrics(ctx context.Context) (dto.MetricsResponse, error)
}

type serviceImpl struct {
	repo repository.Admin
	otel otel.Otel
}

func New(repo repository.Admin, otel otel.Otel) Admin {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Metrics fans the aggregate queries out in parallel and assembles the
// dashboard rollup. Any failing query fails the whole call.
func (s *serviceImpl) Metrics(ctx context.Context) (res dto.MetricsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Metrics")
	defer scope.End()
	defer scope.TraceIfError(err)

	var metrics model.Metrics

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		total, err := s.repo.CountUsers(groupCtx)
		metrics.TotalUsers = total

		return err
	})

	group.Go(func() error {
		total, active, err := s.repo.CountLocations(groupCtx)
		metrics.TotalLocations = total
		metrics.ActiveLocations = active

		return err
	})

	group.Go(func() error {
		total, err := s.repo.CountReservations(groupCtx)
		metrics.TotalReservations = total

		return err
	})

	group.Go(func() error {
		counts, err := s.repo.StatusCounts(groupCtx)
		metrics.StatusCounts = counts

		return err
	})

	group.Go(func() error {
		revenue, err := s.repo.CompletedRevenue(groupCtx)
		metrics.CompletedRevenueDzd = revenue

		return err
	})

	group.Go(func() error {
		recent, err := s.repo.RecentReservations(groupCtx, recentItemLimit)
		metrics.Recent = recent

		return err
	})

	group.Go(func() error {
		locations, err := s.repo.RecentLocations(groupCtx, recentItemLimit)
		metrics.RecentLocations = locations

		return err
	})

	if err = group.Wait(); err != nil {
		return res, fmt.Errorf("failed to collect admin metrics: %w", err)
	}

	res.FromModel(metrics)

	return res, nil
}
