package model

import "lodge/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID        = "id"
	FieldName      = "name"
	FieldBasePrice = "base_price"
	FieldNoOfAdult = "no_of_adult"
	FieldNoOfChild = "no_of_child"
)

type RoomType struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	BasePrice float64 `db:"base_price"`
	NoOfAdult int     `db:"no_of_adult"`
	NoOfChild int     `db:"no_of_child"`
	model.Metadata
}
