package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/shared/failure"
	"lodge/shared/validator"
)

type stayRequest struct {
	RoomID   int64  `json:"room_id"   validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid body",
			body: `{"room_id": 3, "check_in": "2025-06-10", "check_out": "2025-06-13"}`,
		},
		{
			name:    "malformed json",
			body:    `{"room_id": 3,`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"check_in": "2025-06-10", "check_out": "2025-06-13"}`,
			wantErr: true,
		},
		{
			name:    "bad date format",
			body:    `{"room_id": 3, "check_in": "10-06-2025", "check_out": "2025-06-13"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := stayRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(3), req.RoomID)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("available", "oneof=available occupied reserved maintenance"))
	assert.Error(t, validator.ValidateVar("demolished", "oneof=available occupied reserved maintenance"))
}
