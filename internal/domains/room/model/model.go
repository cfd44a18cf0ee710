package model

import "lodge/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNo     = "room_no"
	FieldFloorID    = "floor_id"
	FieldRoomTypeID = "room_type_id"
	FieldStatus     = "status"
)

const (
	HistoryTableName  = "room_status_history"
	HistoryEntityName = "room_status_history"

	HistoryFieldID         = "id"
	HistoryFieldRoomID     = "room_id"
	HistoryFieldFromStatus = "from_status"
	HistoryFieldToStatus   = "to_status"
)

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusReserved    RoomStatus = "reserved"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// Valid reports whether the status is one of the known room states.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusReserved, RoomStatusMaintenance:
		return true
	default:
		return false
	}
}

func (s RoomStatus) String() string {
	return string(s)
}

type Room struct {
	ID         int64      `db:"id"`
	RoomNo     string     `db:"room_no"`
	FloorID    int64      `db:"floor_id"`
	RoomTypeID int64      `db:"room_type_id"`
	Status     RoomStatus `db:"status"`
	model.Metadata
}

// RoomStatusHistory records one status transition of a room. Rows are
// written in the same transaction as the status update itself.
type RoomStatusHistory struct {
	ID         int64      `db:"id"`
	RoomID     int64      `db:"room_id"`
	FromStatus RoomStatus `db:"from_status"`
	ToStatus   RoomStatus `db:"to_status"`
	model.Metadata
}
