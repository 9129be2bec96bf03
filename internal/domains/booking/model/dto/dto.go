package dto

import (
	"fmt"
	"time"

	"roombook/internal/domains/room/model"
	roomDto "roombook/internal/domains/room/model/dto"
	"roombook/shared/failure"
	"roombook/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID string `json:"-"     validate:"required"`
	Start  string `json:"start" validate:"required"`
	End    string `json:"end"   validate:"required"`
}

// NewCreateBookingRequest builds a request for the given instants.
func NewCreateBookingRequest(roomID string, start, end time.Time) CreateBookingRequest {
	return CreateBookingRequest{
		RoomID: roomID,
		Start:  start.Format(time.RFC3339Nano),
		End:    end.Format(time.RFC3339Nano),
	}
}

// ToInterval parses both instants and checks that they form a valid interval.
func (c *CreateBookingRequest) ToInterval() (model.Interval, error) {
	return ParseInterval(c.Start, c.End)
}

// ParseInterval reads a [start, end) pair given as RFC 3339 or offset-less instants.
func ParseInterval(start, end string) (model.Interval, error) {
	startAt, err := timezone.ParseInstant(start)
	if err != nil {
		return model.Interval{}, failure.BadRequest(fmt.Errorf("start: %w", err)) // nolint:wrapcheck
	}

	endAt, err := timezone.ParseInstant(end)
	if err != nil {
		return model.Interval{}, failure.BadRequest(fmt.Errorf("end: %w", err)) // nolint:wrapcheck
	}

	return model.NewInterval(startAt, endAt)
}

type BookingResponse struct {
	RoomID   string `json:"room_id"`
	RoomName string `json:"room_name"`
	roomDto.ReservationResponse
}

func (r *BookingResponse) FromModel(room model.Room, reservation model.Interval) {
	r.RoomID = room.ID
	r.RoomName = room.Name
	r.ReservationResponse.FromModel(reservation)
}

type GetBookingsResponse struct {
	RoomID   string                        `json:"room_id"`
	RoomName string                        `json:"room_name"`
	Bookings []roomDto.ReservationResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModel(room model.Room) {
	r.RoomID = room.ID
	r.RoomName = room.Name

	r.Bookings = make([]roomDto.ReservationResponse, len(room.Reservations))
	for i, reservation := range room.Reservations {
		r.Bookings[i].FromModel(reservation)
	}
}
