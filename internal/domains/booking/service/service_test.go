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
	pgMocks "lodge/infras/postgres/mocks"
	addonMocks "lodge/internal/domains/addon/mocks"
	addonModel "lodge/internal/domains/addon/model"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	roomTypeMocks "lodge/internal/domains/roomtype/mocks"
	roomTypeModel "lodge/internal/domains/roomtype/model"
	eventMocks "lodge/internal/events/mocks"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/clock"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	repo         *bookingMocks.MockBooking
	roomRepo     *roomMocks.MockRoom
	roomTypeRepo *roomTypeMocks.MockRoomType
	addonRepo    *addonMocks.MockAddon
	cache        *cacheMocks.MockRedisCache
	publisher    *eventMocks.MockPublisher
	svc          service.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:         bookingMocks.NewMockBooking(ctrl),
		roomRepo:     roomMocks.NewMockRoom(ctrl),
		roomTypeRepo: roomTypeMocks.NewMockRoomType(ctrl),
		addonRepo:    addonMocks.NewMockAddon(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
		publisher:    eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.RefundRejectBelowDays = 3
	cfg.Booking.RefundFullFromDays = 7
	cfg.Booking.RescheduleCutoffDays = 3

	f.publisher.EXPECT().
		PublishBookingEvent(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	f.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	f.svc = service.New(
		f.repo, f.roomRepo, f.roomTypeRepo, f.addonRepo,
		cfg, f.cache, otelMocks.NewOtel(), pgMocks.NewTxer(),
		clock.NewFixed(testNow), f.publisher,
	)

	return f
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")
}

func TestBookingService_Create(t *testing.T) {
	room := roomModel.Room{ID: 3, RoomNo: "101", RoomTypeID: 2, Status: roomModel.RoomStatusAvailable}
	roomType := roomTypeModel.RoomType{ID: 2, Name: "Deluxe", BasePrice: 1000, NoOfAdult: 2, NoOfChild: 1}

	t.Run("three nights at base 1000 totals 3000", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
		f.repo.EXPECT().LockRoomTx(gomock.Any(), gomock.Any(), int64(3)).Return(nil)
		f.repo.EXPECT().ExistsOverlapTx(gomock.Any(), gomock.Any(), int64(3), gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().InsertReturningIDTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(42), nil)
		f.repo.EXPECT().InsertPaymentTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(testCtx(), dto.CreateBookingRequest{
			UserID:   1,
			RoomID:   3,
			CheckIn:  "2025-06-10",
			CheckOut: "2025-06-13",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(42), res.ID)
		assert.Equal(t, float64(3000), res.TotalAmount)
		assert.Equal(t, model.BookingStatusConfirmed.String(), res.BookingStatus)
	})

	t.Run("addon unit prices accumulate once per line", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
		f.addonRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(addonModel.Addon{ID: 1, BasePrice: 50}, nil)
		f.addonRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(addonModel.Addon{ID: 2, BasePrice: 100}, nil)
		f.repo.EXPECT().LockRoomTx(gomock.Any(), gomock.Any(), int64(3)).Return(nil)
		f.repo.EXPECT().ExistsOverlapTx(gomock.Any(), gomock.Any(), int64(3), gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().InsertReturningIDTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(43), nil)
		f.repo.EXPECT().InsertAddonTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.repo.EXPECT().InsertPaymentTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(testCtx(), dto.CreateBookingRequest{
			UserID:   1,
			RoomID:   3,
			CheckIn:  "2025-06-10",
			CheckOut: "2025-06-13",
			Addons:   []string{"1:2", "2:1"},
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(3150), res.TotalAmount)
	})

	t.Run("check-out not after check-in fails before any write", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(testCtx(), dto.CreateBookingRequest{
			UserID:   1,
			RoomID:   3,
			CheckIn:  "2025-06-13",
			CheckOut: "2025-06-10",
		})

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidDateRange))
	})

	t.Run("malformed addon token fails before any write", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(testCtx(), dto.CreateBookingRequest{
			UserID:   1,
			RoomID:   3,
			CheckIn:  "2025-06-10",
			CheckOut: "2025-06-13",
			Addons:   []string{"not-a-line"},
		})

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidAddon))
	})

	t.Run("overlapping confirmed booking yields room unavailable", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
		f.repo.EXPECT().LockRoomTx(gomock.Any(), gomock.Any(), int64(3)).Return(nil)
		f.repo.EXPECT().ExistsOverlapTx(gomock.Any(), gomock.Any(), int64(3), gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Create(testCtx(), dto.CreateBookingRequest{
			UserID:   1,
			RoomID:   3,
			CheckIn:  "2025-06-10",
			CheckOut: "2025-06-13",
		})

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindRoomUnavailable))
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := f.svc.Create(testCtx(), dto.CreateBookingRequest{
			UserID:   1,
			RoomID:   99,
			CheckIn:  "2025-06-10",
			CheckOut: "2025-06-13",
		})

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("unknown addon aborts the booking", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
		f.addonRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(addonModel.Addon{}, nil)

		_, err := f.svc.Create(testCtx(), dto.CreateBookingRequest{
			UserID:   1,
			RoomID:   3,
			CheckIn:  "2025-06-10",
			CheckOut: "2025-06-13",
			Addons:   []string{"77:1"},
		})

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	confirmed := func(leadDays int) model.Booking {
		checkIn := testNow.Truncate(24 * time.Hour).AddDate(0, 0, leadDays)

		return model.Booking{
			ID:            42,
			UserID:        1,
			RoomID:        3,
			CheckIn:       checkIn,
			CheckOut:      checkIn.AddDate(0, 0, 3),
			TotalAmount:   3000,
			BookingStatus: model.BookingStatusConfirmed,
			PaymentStatus: model.PaymentStatusPaid,
		}
	}

	payment := model.Payment{ID: 5, BookingID: 42, TotalAmount: 3000, Status: model.PaymentStatusPaid}

	expectSettlement := func(f *fixture) {
		f.repo.EXPECT().GetPaymentTx(gomock.Any(), gomock.Any(), int64(42)).Return(payment, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().UpdatePaymentTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().InsertRefundTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().InsertStatusHistoryTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	}

	tests := []struct {
		name       string
		leadDays   int
		wantAmount float64
		wantStatus model.RefundStatus
	}{
		{name: "ten days lead gets a full refund", leadDays: 10, wantAmount: 3000, wantStatus: model.RefundStatusApproved},
		{name: "eight days lead gets a full refund", leadDays: 8, wantAmount: 3000, wantStatus: model.RefundStatusApproved},
		{name: "five days lead gets half", leadDays: 5, wantAmount: 1500, wantStatus: model.RefundStatusApproved},
		{name: "one day lead is rejected with zero", leadDays: 1, wantAmount: 0, wantStatus: model.RefundStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed(tt.leadDays), nil)
			expectSettlement(f)

			res, err := f.svc.Cancel(testCtx(), 42)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAmount, res.RefundAmount)
			assert.Equal(t, tt.wantStatus.String(), res.RefundStatus)
		})
	}

	t.Run("cancelling a cancelled booking is an invalid transition", func(t *testing.T) {
		f := newFixture(t)

		booking := confirmed(10)
		booking.BookingStatus = model.BookingStatusCancelled
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		_, err := f.svc.Cancel(testCtx(), 42)

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Cancel(testCtx(), 99)

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("missing payment rolls back as not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed(10), nil)
		f.repo.EXPECT().GetPaymentTx(gomock.Any(), gomock.Any(), int64(42)).Return(model.Payment{}, nil)

		_, err := f.svc.Cancel(testCtx(), 42)

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("storage error surfaces as store failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed(10), nil)
		f.repo.EXPECT().GetPaymentTx(gomock.Any(), gomock.Any(), int64(42)).Return(payment, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("write failed"))

		_, err := f.svc.Cancel(testCtx(), 42)

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindStoreFailure))
	})
}

func TestBookingService_Reschedule(t *testing.T) {
	booking := model.Booking{
		ID:            42,
		UserID:        1,
		RoomID:        3,
		CheckIn:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
		TotalAmount:   3000,
		BookingStatus: model.BookingStatusConfirmed,
		PaymentStatus: model.PaymentStatusPaid,
	}

	req := dto.RescheduleBookingRequest{CheckIn: "2025-06-20", CheckOut: "2025-06-23"}

	t.Run("successful reschedule updates the interval", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.repo.EXPECT().ExistReschedule(gomock.Any(), int64(42)).Return(false, nil)
		f.repo.EXPECT().LockRoomTx(gomock.Any(), gomock.Any(), int64(3)).Return(nil)
		f.repo.EXPECT().ExistsOverlapTx(gomock.Any(), gomock.Any(), int64(3), gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().InsertRescheduleTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Reschedule(testCtx(), 42, req)

		assert.NoError(t, err)
		assert.True(t, res.Rescheduled)
		assert.NotNil(t, res.Booking)
		assert.Equal(t, "2025-06-20", res.Booking.CheckIn)
		assert.Equal(t, "2025-06-23", res.Booking.CheckOut)
	})

	t.Run("second reschedule always fails", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.repo.EXPECT().ExistReschedule(gomock.Any(), int64(42)).Return(true, nil)

		_, err := f.svc.Reschedule(testCtx(), 42, req)

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindAlreadyRescheduled))
	})

	t.Run("past the cutoff it is too late", func(t *testing.T) {
		f := newFixture(t)

		soon := booking
		soon.CheckIn = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
		soon.CheckOut = time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(soon, nil)

		_, err := f.svc.Reschedule(testCtx(), 42, req)

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindTooLateToReschedule))
	})

	t.Run("cancelled bookings cannot be rescheduled", func(t *testing.T) {
		f := newFixture(t)

		cancelled := booking
		cancelled.BookingStatus = model.BookingStatusCancelled
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)

		_, err := f.svc.Reschedule(testCtx(), 42, req)

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})

	t.Run("taken window falls back to candidate rooms", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.repo.EXPECT().ExistReschedule(gomock.Any(), int64(42)).Return(false, nil)
		f.repo.EXPECT().LockRoomTx(gomock.Any(), gomock.Any(), int64(3)).Return(nil)
		f.repo.EXPECT().ExistsOverlapTx(gomock.Any(), gomock.Any(), int64(3), gomock.Any(), gomock.Any()).Return(true, nil)
		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: 3, RoomTypeID: 2}, nil)
		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{ID: 2, NoOfAdult: 2, NoOfChild: 1}, nil)
		f.roomRepo.EXPECT().
			Candidates(gomock.Any(), gomock.Any(), gomock.Any(), 2, 1).
			Return([]roomModel.Room{{ID: 8}, {ID: 9}}, nil)

		res, err := f.svc.Reschedule(testCtx(), 42, req)

		assert.NoError(t, err)
		assert.False(t, res.Rescheduled)
		assert.Equal(t, []int64{8, 9}, res.CandidateRooms)
		assert.Equal(t, 2, res.TotalCandidates)
	})

	t.Run("invalid window fails before any read", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Reschedule(testCtx(), 42, dto.RescheduleBookingRequest{
			CheckIn:  "2025-06-23",
			CheckOut: "2025-06-20",
		})

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidDateRange))
	})
}
