package dto

import (
	"time"

	"lodge/shared/constant"
	"lodge/shared/failure"
)

// ParseWindow parses a check-in/check-out day pair, rejecting windows where
// the check-out day is not strictly after the check-in day.
func ParseWindow(in, out string) (checkIn, checkOut time.Time, err error) {
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

type CheckResponse struct {
	RoomID    int64  `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

type FreeDatesResponse struct {
	RoomID int64    `json:"room_id"`
	From   string   `json:"from"`
	To     string   `json:"to"`
	Dates  []string `json:"dates"`
	Total  int      `json:"total"`
}

type CandidateRoomsResponse struct {
	RoomIDs []int64 `json:"room_ids"`
	Total   int     `json:"total"`
}
