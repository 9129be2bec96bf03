package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"roombook/infras/otel"
	"roombook/internal/domains/room/model"
	"roombook/internal/domains/room/model/dto"
	"roombook/internal/domains/room/repository"
	"roombook/shared/constant"
	gDto "roombook/shared/dto"
	"roombook/shared/failure"
	"roombook/shared/validator"
)

type Room interface {
	Register(ctx context.Context, req dto.RegisterRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	GetByName(ctx context.Context, name string) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo repository.Room
	otel otel.Otel
}

func New(repo repository.Room, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("invalid room registration")

		return res, failure.Wrap(http.StatusBadRequest, model.ErrValidation, err.Error()) // nolint:wrapcheck
	}

	room := req.ToModel()

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to register room")

		if errors.Is(err, model.ErrDuplicateName) {
			return res, failure.Conflict(err) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to register room: %w", err)
	}

	if err = res.FromModel(room); err != nil {
		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	log.Info().Str("id", room.ID).Str("name", room.Name).Stringer("category", room.Category).Msg("room registered")

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	from, to := req.Window(len(rooms))

	if err = res.FromModels(rooms[from:to], len(rooms), req.Limit); err != nil {
		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, lookupFailure(err)
	}

	if err = res.FromModel(room); err != nil {
		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) GetByName(ctx context.Context, name string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByName")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return res, lookupFailure(err)
	}

	if err = res.FromModel(room); err != nil {
		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	return res, nil
}

func lookupFailure(err error) error {
	if errors.Is(err, model.ErrRoomNotFound) {
		return failure.NotFound(err) // nolint:wrapcheck
	}

	log.Error().Err(err).Msg("failed to get room")

	return fmt.Errorf("failed to get room: %w", err)
}
