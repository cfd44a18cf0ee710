package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/booking/model/dto"
	"lodge/shared/failure"
)

func TestCreateBookingRequest_ParseAddons(t *testing.T) {
	tests := []struct {
		name    string
		addons  []string
		want    []dto.AddonLine
		wantErr bool
	}{
		{
			name:   "valid lines",
			addons: []string{"1:2", "7:1"},
			want: []dto.AddonLine{
				{AddonID: 1, Quantity: 2},
				{AddonID: 7, Quantity: 1},
			},
		},
		{
			name:   "no addons",
			addons: nil,
			want:   []dto.AddonLine{},
		},
		{
			name:   "whitespace around parts is tolerated",
			addons: []string{" 3 : 4 "},
			want:   []dto.AddonLine{{AddonID: 3, Quantity: 4}},
		},
		{name: "missing separator", addons: []string{"12"}, wantErr: true},
		{name: "too many parts", addons: []string{"1:2:3"}, wantErr: true},
		{name: "non-numeric id", addons: []string{"x:1"}, wantErr: true},
		{name: "non-numeric quantity", addons: []string{"1:y"}, wantErr: true},
		{name: "zero quantity", addons: []string{"1:0"}, wantErr: true},
		{name: "negative id", addons: []string{"-1:2"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{Addons: tt.addons}

			lines, err := req.ParseAddons()

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, failure.KindInvalidAddon))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, lines)
			}
		})
	}
}

func TestCreateBookingRequest_ParseDates(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
		wantKind string
	}{
		{name: "valid window", checkIn: "2025-06-10", checkOut: "2025-06-13"},
		{name: "same day", checkIn: "2025-06-10", checkOut: "2025-06-10", wantErr: true, wantKind: failure.KindInvalidDateRange},
		{name: "reversed window", checkIn: "2025-06-13", checkOut: "2025-06-10", wantErr: true, wantKind: failure.KindInvalidDateRange},
		{name: "garbage check-in", checkIn: "tomorrow", checkOut: "2025-06-13", wantErr: true, wantKind: failure.KindBadRequest},
		{name: "garbage check-out", checkIn: "2025-06-10", checkOut: "never", wantErr: true, wantKind: failure.KindBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{CheckIn: tt.checkIn, CheckOut: tt.checkOut}

			in, out, err := req.ParseDates()

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), in)
				assert.Equal(t, time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), out)
			}
		})
	}
}
