package dto

import (
	"strconv"
	"strings"
	"time"

	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

// AddonLine is one parsed "id:quantity" addon request token.
type AddonLine struct {
	AddonID  int64
	Quantity int
}

type CreateBookingRequest struct {
	UserID   int64    `json:"user_id"   validate:"required,min=1"`
	RoomID   int64    `json:"room_id"   validate:"required,min=1"`
	CheckIn  string   `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string   `json:"check_out" validate:"required,datetime=2006-01-02"`
	Addons   []string `json:"addons"    validate:"omitempty,dive,required"`
}

// ParseDates returns the stay interval, rejecting any window where the
// check-out day is not strictly after the check-in day.
func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	return parseStay(c.CheckIn, c.CheckOut)
}

// ParseAddons converts the raw "id:quantity" tokens into addon lines. Any
// malformed token, non-positive id, or non-positive quantity fails the
// whole request before anything is written.
func (c *CreateBookingRequest) ParseAddons() ([]AddonLine, error) {
	lines := make([]AddonLine, 0, len(c.Addons))

	for _, token := range c.Addons {
		parts := strings.Split(token, ":")
		if len(parts) != 2 {
			return nil, failure.InvalidAddon(token) // nolint:wrapcheck
		}

		addonID, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil || addonID < 1 {
			return nil, failure.InvalidAddon(token) // nolint:wrapcheck
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || quantity < 1 {
			return nil, failure.InvalidAddon(token) // nolint:wrapcheck
		}

		lines = append(lines, AddonLine{AddonID: addonID, Quantity: quantity})
	}

	return lines, nil
}

type RescheduleBookingRequest struct {
	CheckIn  string `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

func (r *RescheduleBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	return parseStay(r.CheckIn, r.CheckOut)
}

func parseStay(in, out string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DayFormat, in)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check_in date: " + in) // nolint:wrapcheck
	}

	checkOut, err = time.Parse(constant.DayFormat, out)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check_out date: " + out) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.InvalidDateRange(in, out) // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	RoomID        int64   `json:"room_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	TotalAmount   float64 `json:"total_amount"`
	BookingStatus string  `json:"booking_status"`
	PaymentStatus string  `json:"payment_status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn.Format(constant.DayFormat)
	r.CheckOut = model.CheckOut.Format(constant.DayFormat)
	r.TotalAmount = model.TotalAmount
	r.BookingStatus = model.BookingStatus.String()
	r.PaymentStatus = model.PaymentStatus.String()
	r.Metadata.FromModel(model.Metadata)
}

type CancelBookingResponse struct {
	BookingID    int64   `json:"booking_id"`
	RefundAmount float64 `json:"refund_amount"`
	RefundStatus string  `json:"refund_status"`
	Reason       string  `json:"reason"`
}

// RescheduleBookingResponse either carries the updated booking or, when the
// requested window is taken, the candidate rooms matching the booking's
// room-type capacities.
type RescheduleBookingResponse struct {
	Rescheduled     bool             `json:"rescheduled"`
	Booking         *BookingResponse `json:"booking,omitempty"`
	CandidateRooms  []int64          `json:"candidate_rooms,omitempty"`
	TotalCandidates int              `json:"total_candidates"`
}
