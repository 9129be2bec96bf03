package dto

import (
	bookingDto "roombook/internal/domains/booking/model/dto"
	"roombook/internal/domains/room/model"
	roomDto "roombook/internal/domains/room/model/dto"
)

type FindAvailableRequest struct {
	Category    model.Category `json:"category"     validate:"valid"`
	MinCapacity int            `json:"min_capacity"`
	Start       string         `json:"start"        validate:"required"`
	End         string         `json:"end"          validate:"required"`
}

func (f *FindAvailableRequest) ToInterval() (model.Interval, error) {
	return bookingDto.ParseInterval(f.Start, f.End)
}

// Matches applies the attribute filter: same category and enough seats.
func (f *FindAvailableRequest) Matches(room *model.Room) bool {
	return room.Category == f.Category && room.Capacity >= f.MinCapacity
}

type AvailableRoomsResponse struct {
	Start string                 `json:"start"`
	End   string                 `json:"end"`
	Rooms []roomDto.RoomResponse `json:"rooms"`
}

func (r *AvailableRoomsResponse) FromModels(window model.Interval, rooms []model.Room) error {
	var reservation roomDto.ReservationResponse
	reservation.FromModel(window)

	r.Start = reservation.Start
	r.End = reservation.End

	r.Rooms = make([]roomDto.RoomResponse, len(rooms))
	for i, room := range rooms {
		if err := r.Rooms[i].FromModel(room); err != nil {
			return err
		}
	}

	return nil
}
