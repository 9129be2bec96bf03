package dto

import (
	"slices"

	"github.com/google/uuid"

	"roombook/internal/domains/room/model"
	"roombook/shared"
	"roombook/shared/constant"
	gDto "roombook/shared/dto"
	gModel "roombook/shared/model"
	"roombook/shared/timezone"
)

type RegisterRoomRequest struct {
	Name      string         `json:"name"      validate:"required,max=100"`
	Capacity  int            `json:"capacity"  validate:"required,gt=0"`
	Category  model.Category `json:"category"  validate:"valid"`
	Equipment []string       `json:"equipment" validate:"omitempty,dive,required"`
}

func (c *RegisterRoomRequest) ToModel() model.Room {
	now := timezone.Now()

	return model.Room{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Capacity:     c.Capacity,
		Category:     c.Category,
		Equipment:    slices.Clone(c.Equipment),
		Reservations: []model.Interval{},
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type ReservationResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r *ReservationResponse) FromModel(model model.Interval) {
	r.Start = timezone.Format(model.Start, constant.DateFormat)
	r.End = timezone.Format(model.End, constant.DateFormat)
}

type RoomResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Capacity     int                   `json:"capacity"`
	Category     string                `json:"category"`
	Equipment    []string              `json:"equipment,omitempty"`
	Reservations []ReservationResponse `json:"reservations"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) error {
	category, err := model.Category.MarshalText()
	if err != nil {
		return err
	}

	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.Category = string(category)
	r.Equipment = slices.Clone(model.Equipment)
	r.Reservations = make([]ReservationResponse, len(model.Reservations))

	for i, reservation := range model.Reservations {
		r.Reservations[i].FromModel(reservation)
	}

	r.Metadata.FromModel(model.Metadata)

	return nil
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) error {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		if err := r.Rooms[i].FromModel(mod); err != nil {
			return err
		}
	}

	return nil
}
