package service

import (
	"context"
	"errors"
	"fmt"

	"parkdz/infras/otel"
	"parkdz/internal/domains/user/model"
	"parkdz/internal/domains/user/model/dto"
	"parkdz/internal/domains/user/repository"
	"parkdz/shared"
	"parkdz/shared/constant"
	"parkdz/shared/failure"
	"parkdz/shared/password"

	"github.com/rs/zerolog/log"
)

type User interface {
	Register(ctx context.Context, req dto.RegisterUserRequest) (dto.UserResponse, error)
	GetByEmail(ctx context.Context, email string) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(hashed)

	if err = s.repo.Register(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return res, failure.Conflict("email is already registered") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to register user")

		return res, fmt.Errorf("failed to register user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) GetByEmail(ctx context.Context, email string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.Get(ctx, shared.FilterByID(email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user by email")

		return res, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}
