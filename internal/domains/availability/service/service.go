package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"roombook/infras/otel"
	"roombook/internal/domains/availability/model/dto"
	roomModel "roombook/internal/domains/room/model"
	roomRepo "roombook/internal/domains/room/repository"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"roombook/shared/validator"
)

type Availability interface {
	FindAvailable(ctx context.Context, req dto.FindAvailableRequest) (dto.AvailableRoomsResponse, error)
}

type serviceImpl struct {
	roomRepo roomRepo.Room
	otel     otel.Otel
}

func New(roomRepo roomRepo.Room, otel otel.Otel) Availability {
	return &serviceImpl{
		roomRepo: roomRepo,
		otel:     otel,
	}
}

// FindAvailable returns, in registration order, the rooms of the requested
// category with at least MinCapacity seats and no reservation overlapping the
// window. It never mutates the catalog.
func (s *serviceImpl) FindAvailable(ctx context.Context, req dto.FindAvailableRequest) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	window, err := req.ToInterval()
	if err != nil {
		if errors.Is(err, roomModel.ErrInvalidInterval) {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		return res, err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Wrap(http.StatusBadRequest, roomModel.ErrValidation, err.Error()) // nolint:wrapcheck
	}

	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	available := make([]roomModel.Room, 0, len(rooms))
	for i := range rooms {
		if req.Matches(&rooms[i]) && rooms[i].IsFreeDuring(window) {
			available = append(available, rooms[i])
		}
	}

	scope.SetAttributes(map[string]any{
		"availability.window":       window,
		"availability.category":     req.Category,
		"availability.min_capacity": req.MinCapacity,
		"availability.scanned":      len(rooms),
		"availability.matched":      len(available),
	})

	if err = res.FromModels(window, available); err != nil {
		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	return res, nil
}
