package dto

import (
	"time"

	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
)

type CreateRoomRequest struct {
	RoomNo     string `json:"room_no"      validate:"required,max=20"`
	FloorID    int64  `json:"floor_id"     validate:"required,min=1"`
	RoomTypeID int64  `json:"room_type_id" validate:"required,min=1"`
	Status     string `json:"status"       validate:"omitempty,oneof=available occupied reserved maintenance"`
}

func (c *CreateRoomRequest) ToModel(now time.Time, user string) model.Room {
	status := model.RoomStatusAvailable
	if c.Status != "" {
		status = model.RoomStatus(c.Status)
	}

	return model.Room{
		RoomNo:     c.RoomNo,
		FloorID:    c.FloorID,
		RoomTypeID: c.RoomTypeID,
		Status:     status,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNo     string `db:"room_no"      json:"room_no"      validate:"omitempty,max=20"`
	FloorID    int64  `db:"floor_id"     json:"floor_id"     validate:"omitempty,min=1"`
	RoomTypeID int64  `db:"room_type_id" json:"room_type_id" validate:"omitempty,min=1"`
}

type SetRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied reserved maintenance"`
}

type RoomResponse struct {
	ID         int64  `json:"id"`
	RoomNo     string `json:"room_no"`
	FloorID    int64  `json:"floor_id"`
	RoomTypeID int64  `json:"room_type_id"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNo = model.RoomNo
	r.FloorID = model.FloorID
	r.RoomTypeID = model.RoomTypeID
	r.Status = model.Status.String()
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
