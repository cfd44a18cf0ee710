package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	otelMocks "lodge/infras/otel/mocks"
	"lodge/internal/domains/availability/service"
	bookingMocks "lodge/internal/domains/booking/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/clock"
	"lodge/shared/failure"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newService(t *testing.T, horizonDays int) (service.Availability, *bookingMocks.MockBooking, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)

	cfg := &config.Config{}
	cfg.Availability.HorizonDays = horizonDays

	svc := service.New(mockBookingRepo, mockRoomRepo, cfg, otelMocks.NewOtel(), clock.NewFixed(testNow))

	return svc, mockBookingRepo, mockRoomRepo
}

func TestAvailabilityService_IsRoomAvailable(t *testing.T) {
	tests := []struct {
		name      string
		checkIn   time.Time
		checkOut  time.Time
		overlap   bool
		wantFree  bool
		wantErr   bool
		wantKind  string
		skipQuery bool
	}{
		{name: "free window", checkIn: day(2025, 6, 10), checkOut: day(2025, 6, 13), overlap: false, wantFree: true},
		{name: "taken window", checkIn: day(2025, 6, 10), checkOut: day(2025, 6, 13), overlap: true, wantFree: false},
		{name: "reversed window", checkIn: day(2025, 6, 13), checkOut: day(2025, 6, 10), wantErr: true, wantKind: failure.KindInvalidDateRange, skipQuery: true},
		{name: "empty window", checkIn: day(2025, 6, 10), checkOut: day(2025, 6, 10), wantErr: true, wantKind: failure.KindInvalidDateRange, skipQuery: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockBookingRepo, _ := newService(t, 90)

			if !tt.skipQuery {
				mockBookingRepo.EXPECT().
					ExistsOverlap(gomock.Any(), int64(3), tt.checkIn, tt.checkOut).
					Return(tt.overlap, nil)
			}

			free, err := svc.IsRoomAvailable(context.Background(), 3, tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantFree, free)
			}
		})
	}
}

func TestAvailabilityService_FreeDates(t *testing.T) {
	t.Run("free and booked days partition the horizon", func(t *testing.T) {
		horizon := 9
		svc, mockBookingRepo, mockRoomRepo := newService(t, horizon)

		bookings := []bookingModel.Booking{
			{RoomID: 3, CheckIn: day(2025, 6, 3), CheckOut: day(2025, 6, 5), BookingStatus: bookingModel.BookingStatusConfirmed},
			{RoomID: 3, CheckIn: day(2025, 6, 8), CheckOut: day(2025, 6, 9), BookingStatus: bookingModel.BookingStatusConfirmed},
		}

		mockRoomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockBookingRepo.EXPECT().
			FutureConfirmedForRoom(gomock.Any(), int64(3), day(2025, 6, 1)).
			Return(bookings, nil)

		res, err := svc.FreeDates(context.Background(), 3)

		assert.NoError(t, err)
		assert.Equal(t, "2025-06-01", res.From)
		assert.Equal(t, "2025-06-10", res.To)
		assert.Equal(t, []string{
			"2025-06-01", "2025-06-02", "2025-06-05", "2025-06-06",
			"2025-06-07", "2025-06-09", "2025-06-10",
		}, res.Dates)

		// Booked days 06-03, 06-04 and 06-08 plus the free days cover the
		// whole horizon with no overlap.
		assert.Equal(t, horizon+1, res.Total+3)
	})

	t.Run("ongoing stay only blocks days from today", func(t *testing.T) {
		svc, mockBookingRepo, mockRoomRepo := newService(t, 3)

		bookings := []bookingModel.Booking{
			{RoomID: 3, CheckIn: day(2025, 5, 28), CheckOut: day(2025, 6, 3), BookingStatus: bookingModel.BookingStatusConfirmed},
		}

		mockRoomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockBookingRepo.EXPECT().
			FutureConfirmedForRoom(gomock.Any(), int64(3), day(2025, 6, 1)).
			Return(bookings, nil)

		res, err := svc.FreeDates(context.Background(), 3)

		assert.NoError(t, err)
		assert.Equal(t, []string{"2025-06-03", "2025-06-04"}, res.Dates)
	})

	t.Run("fully booked horizon is not found", func(t *testing.T) {
		svc, mockBookingRepo, mockRoomRepo := newService(t, 2)

		bookings := []bookingModel.Booking{
			{RoomID: 3, CheckIn: day(2025, 5, 30), CheckOut: day(2025, 7, 1), BookingStatus: bookingModel.BookingStatusConfirmed},
		}

		mockRoomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockBookingRepo.EXPECT().
			FutureConfirmedForRoom(gomock.Any(), int64(3), day(2025, 6, 1)).
			Return(bookings, nil)

		_, err := svc.FreeDates(context.Background(), 3)

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, _, mockRoomRepo := newService(t, 90)

		mockRoomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.FreeDates(context.Background(), 99)

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("no bookings frees the whole horizon", func(t *testing.T) {
		horizon := 90
		svc, mockBookingRepo, mockRoomRepo := newService(t, horizon)

		mockRoomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockBookingRepo.EXPECT().
			FutureConfirmedForRoom(gomock.Any(), int64(3), day(2025, 6, 1)).
			Return(nil, nil)

		res, err := svc.FreeDates(context.Background(), 3)

		assert.NoError(t, err)
		assert.Len(t, res.Dates, horizon+1)
		assert.Equal(t, "2025-06-01", res.From)
		assert.Equal(t, "2025-08-30", res.To)
		assert.Equal(t, res.From, res.Dates[0])
		assert.Equal(t, res.To, res.Dates[len(res.Dates)-1])
	})
}

func TestAvailabilityService_CandidateRooms(t *testing.T) {
	t.Run("returns matching room ids", func(t *testing.T) {
		svc, _, mockRoomRepo := newService(t, 90)

		mockRoomRepo.EXPECT().
			Candidates(gomock.Any(), day(2025, 6, 10), day(2025, 6, 13), 2, 1).
			Return([]roomModel.Room{{ID: 4}, {ID: 9}}, nil)

		res, err := svc.CandidateRooms(context.Background(), day(2025, 6, 10), day(2025, 6, 13), 2, 1)

		assert.NoError(t, err)
		assert.Equal(t, []int64{4, 9}, res.RoomIDs)
		assert.Equal(t, 2, res.Total)
	})

	t.Run("reversed window", func(t *testing.T) {
		svc, _, _ := newService(t, 90)

		_, err := svc.CandidateRooms(context.Background(), day(2025, 6, 13), day(2025, 6, 10), 2, 1)

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidDateRange))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, _, mockRoomRepo := newService(t, 90)

		mockRoomRepo.EXPECT().
			Candidates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.CandidateRooms(context.Background(), day(2025, 6, 10), day(2025, 6, 13), 2, 1)

		assert.Error(t, err)
	})
}
