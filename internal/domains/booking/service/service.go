package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"roombook/infras/otel"
	"roombook/internal/domains/booking/model/dto"
	roomModel "roombook/internal/domains/room/model"
	roomRepo "roombook/internal/domains/room/repository"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"roombook/shared/timezone"
	"roombook/shared/validator"
)

type Booking interface {
	Book(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, roomID string) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	roomRepo roomRepo.Room
	otel     otel.Otel
}

func New(roomRepo roomRepo.Room, otel otel.Otel) Booking {
	return &serviceImpl{
		roomRepo: roomRepo,
		otel:     otel,
	}
}

// Book reserves [start, end) on the room. The conflict scan and the append run
// under the room's write lock, so two callers can never both claim a slot.
func (s *serviceImpl) Book(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Error().Err(err).Str("room", req.RoomID).Msg("invalid booking request")

		return res, err
	}

	candidate, err := req.ToInterval()
	if err != nil {
		log.Error().Err(err).Str("room", req.RoomID).Msg("invalid booking interval")

		return res, intervalFailure(err)
	}

	scope.SetAttributes(map[string]any{
		"room.id": req.RoomID,
		"booking": candidate,
	})

	room, err := s.roomRepo.Update(ctx, req.RoomID, func(room *roomModel.Room) error {
		if existing, busy := room.Conflict(candidate); busy {
			return fmt.Errorf("%w: %s overlaps %s - %s", roomModel.ErrConflict, room.Name,
				timezone.Format(existing.Start, constant.DateFormat), timezone.Format(existing.End, constant.DateFormat))
		}

		room.Reservations = append(room.Reservations, candidate)
		room.ModifiedAt = timezone.Now()

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("room", req.RoomID).Msg("failed to book room")

		switch {
		case errors.Is(err, roomModel.ErrConflict):
			return res, failure.Conflict(err) // nolint:wrapcheck
		case errors.Is(err, roomModel.ErrRoomNotFound):
			return res, failure.NotFound(err) // nolint:wrapcheck
		default:
			return res, fmt.Errorf("failed to book room: %w", err)
		}
	}

	res.FromModel(room, candidate)

	log.Info().
		Str("room", room.Name).
		Time("start", candidate.Start).
		Time("end", candidate.End).
		Dur("duration", candidate.Duration().Round(time.Minute)).
		Msg("room booked")

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, roomID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.roomRepo.Get(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomModel.ErrRoomNotFound) {
			return res, failure.NotFound(err) // nolint:wrapcheck
		}

		log.Error().Err(err).Str("room", roomID).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModel(room)

	return res, nil
}

func intervalFailure(err error) error {
	if errors.Is(err, roomModel.ErrInvalidInterval) {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	return err
}
