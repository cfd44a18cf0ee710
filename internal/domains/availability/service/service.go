package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/availability/model/dto"
	bookingRepo "lodge/internal/domains/booking/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/clock"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

type Availability interface {
	IsRoomAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	FreeDates(ctx context.Context, roomID int64) (dto.FreeDatesResponse, error)
	CandidateRooms(ctx context.Context, checkIn, checkOut time.Time, minAdult, minChild int) (dto.CandidateRoomsResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	cfg         *config.Config
	otel        otel.Otel
	clock       clock.Clock
}

func New(bookingRepo bookingRepo.Booking, roomRepo roomRepo.Room, cfg *config.Config, otel otel.Otel, clock clock.Clock) Availability {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		cfg:         cfg,
		otel:        otel,
		clock:       clock,
	}
}

// IsRoomAvailable reports whether no confirmed booking for the room overlaps
// the half-open window [checkIn, checkOut).
func (s *serviceImpl) IsRoomAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (available bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsRoomAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !checkOut.After(checkIn) {
		return false, failure.InvalidDateRange(checkIn.Format(constant.DayFormat), checkOut.Format(constant.DayFormat)) // nolint:wrapcheck
	}

	taken, err := s.bookingRepo.ExistsOverlap(ctx, roomID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Int64("roomID", roomID).Msg("failed to check booking overlap")

		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	return !taken, nil
}

// FreeDates lists the days within the availability horizon not covered by a
// confirmed booking, ascending. Past segments of ongoing stays are ignored.
func (s *serviceImpl) FreeDates(ctx context.Context, roomID int64) (res dto.FreeDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FreeDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exists {
		return res, failure.NotFoundWithID(roomModel.EntityName, roomID) // nolint:wrapcheck
	}

	today := s.clock.Today()
	horizonEnd := today.AddDate(0, 0, s.cfg.Availability.HorizonDays)

	bookings, err := s.bookingRepo.FutureConfirmedForRoom(ctx, roomID, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to get confirmed bookings")

		return res, fmt.Errorf("failed to get confirmed bookings: %w", err)
	}

	booked := map[string]struct{}{}

	for _, booking := range bookings {
		day := booking.CheckIn
		if day.Before(today) {
			day = today
		}

		// Check-out day itself stays free: the stay is half-open.
		for ; day.Before(booking.CheckOut) && !day.After(horizonEnd); day = day.Add(constant.DayDuration) {
			booked[day.Format(constant.DayFormat)] = struct{}{}
		}
	}

	free := []string{}

	for day := today; !day.After(horizonEnd); day = day.Add(constant.DayDuration) {
		key := day.Format(constant.DayFormat)
		if _, taken := booked[key]; !taken {
			free = append(free, key)
		}
	}

	if len(free) == 0 {
		return res, failure.NotFoundWithID("free dates for room", roomID) // nolint:wrapcheck
	}

	return dto.FreeDatesResponse{
		RoomID: roomID,
		From:   today.Format(constant.DayFormat),
		To:     horizonEnd.Format(constant.DayFormat),
		Dates:  free,
		Total:  len(free),
	}, nil
}

// CandidateRooms returns the rooms whose type satisfies both capacity
// minimums and that are free for the whole window.
func (s *serviceImpl) CandidateRooms(ctx context.Context, checkIn, checkOut time.Time, minAdult, minChild int) (res dto.CandidateRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CandidateRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !checkOut.After(checkIn) {
		return res, failure.InvalidDateRange(checkIn.Format(constant.DayFormat), checkOut.Format(constant.DayFormat)) // nolint:wrapcheck
	}

	rooms, err := s.roomRepo.Candidates(ctx, checkIn, checkOut, minAdult, minChild)
	if err != nil {
		log.Error().Err(err).Msg("failed to get candidate rooms")

		return res, fmt.Errorf("failed to get candidate rooms: %w", err)
	}

	ids := make([]int64, len(rooms))
	for i, room := range rooms {
		ids[i] = room.ID
	}

	return dto.CandidateRoomsResponse{
		RoomIDs: ids,
		Total:   len(ids),
	}, nil
}
