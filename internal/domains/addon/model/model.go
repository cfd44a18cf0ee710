package model

import "lodge/shared/model"

const (
	TableName  = "addons"
	EntityName = "addon"

	FieldID        = "id"
	FieldName      = "name"
	FieldBasePrice = "base_price"
)

type Addon struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	BasePrice float64 `db:"base_price"`
	model.Metadata
}
