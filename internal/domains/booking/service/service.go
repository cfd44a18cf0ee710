package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	addonModel "lodge/internal/domains/addon/model"
	addonRepo "lodge/internal/domains/addon/repository"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	roomTypeModel "lodge/internal/domains/roomtype/model"
	roomTypeRepo "lodge/internal/domains/roomtype/repository"
	"lodge/internal/events"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/clock"
	"lodge/shared/constant"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
)

const (
	cacheGetBooking = "booking:get"
)

// errRoomTaken aborts the reschedule transaction when the requested window
// is already booked; the caller then falls back to candidate rooms.
var errRoomTaken = errors.New("requested window is taken")

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id int64) (dto.CancelBookingResponse, error)
	Reschedule(ctx context.Context, id int64, req dto.RescheduleBookingRequest) (dto.RescheduleBookingResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	roomTypeRepo roomTypeRepo.RoomType
	addonRepo    addonRepo.Addon
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	txer         postgres.Txer
	clock        clock.Clock
	publisher    events.Publisher
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	roomTypeRepo roomTypeRepo.RoomType,
	addonRepo addonRepo.Addon,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	txer postgres.Txer,
	clock clock.Clock,
	publisher events.Publisher,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		addonRepo:    addonRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		txer:         txer,
		clock:        clock,
		publisher:    publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	lines, err := req.ParseAddons()
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFoundWithID(roomModel.EntityName, req.RoomID) // nolint:wrapcheck
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(room.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == 0 {
		return res, failure.NotFoundWithID(roomTypeModel.EntityName, room.RoomTypeID) // nolint:wrapcheck
	}

	// Each addon line contributes its unit price once, regardless of
	// quantity. Quantity is stored for fulfilment.
	addonAmount := 0.0

	for _, line := range lines {
		addon, err := s.addonRepo.Get(ctx, shared.FilterByID(line.AddonID, addonModel.FieldID, addonModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get addon")

			return res, fmt.Errorf("failed to get addon: %w", err)
		}

		if addon.ID == 0 {
			return res, failure.NotFoundWithID(addonModel.EntityName, line.AddonID) // nolint:wrapcheck
		}

		addonAmount += addon.BasePrice
	}

	nights := int(checkOut.Sub(checkIn) / constant.DayDuration)
	roomAmount := float64(nights) * roomType.BasePrice

	now := s.clock.Now()
	meta := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}

	booking := model.Booking{
		UserID:        req.UserID,
		RoomID:        req.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalAmount:   roomAmount + addonAmount,
		BookingStatus: model.BookingStatusConfirmed,
		PaymentStatus: model.PaymentStatusPaid,
		Metadata:      meta,
	}

	err = s.txer.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.LockRoomTx(ctx, tx, req.RoomID); err != nil {
			return err
		}

		taken, err := s.repo.ExistsOverlapTx(ctx, tx, req.RoomID, checkIn, checkOut)
		if err != nil {
			return err
		}

		if taken {
			return failure.RoomUnavailable(req.RoomID)
		}

		bookingID, err := s.repo.InsertReturningIDTx(ctx, tx, booking)
		if err != nil {
			return err
		}

		booking.ID = bookingID

		for _, line := range lines {
			addonLine := model.BookingAddon{
				BookingID: bookingID,
				AddonID:   line.AddonID,
				Quantity:  line.Quantity,
				Metadata:  meta,
			}
			if err := s.repo.InsertAddonTx(ctx, tx, addonLine); err != nil {
				return err
			}
		}

		payment := model.Payment{
			BookingID:   bookingID,
			TotalAmount: booking.TotalAmount,
			Status:      model.PaymentStatusPaid,
			Metadata:    meta,
		}

		return s.repo.InsertPaymentTx(ctx, tx, payment)
	})
	if err != nil {
		log.Error().Err(err).Int64("roomID", req.RoomID).Msg("failed to create booking")

		return res, failure.StoreFailure(err) // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		event := events.BookingEvent{
			Type:        events.TypeBookingCreated,
			BookingID:   booking.ID,
			UserID:      booking.UserID,
			RoomID:      booking.RoomID,
			CheckIn:     booking.CheckIn.Format(constant.DayFormat),
			CheckOut:    booking.CheckOut.Format(constant.DayFormat),
			TotalAmount: booking.TotalAmount,
			OccurredAt:  now,
		}
		if err := s.publisher.PublishBookingEvent(c, event); err != nil {
			log.Error().Err(err).Msg("failed to publish booking created event")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFoundWithID(model.EntityName, id) // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Cancel moves a confirmed booking to cancelled and settles the refund by
// lead time: under the reject threshold nothing is refunded, under the full
// threshold half, otherwise the full amount.
func (s *serviceImpl) Cancel(ctx context.Context, id int64) (res dto.CancelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFoundWithID(model.EntityName, id) // nolint:wrapcheck
	}

	if !booking.BookingStatus.CanTransitionTo(model.BookingStatusCancelled) {
		return res, failure.InvalidTransition(booking.BookingStatus.String(), model.BookingStatusCancelled.String()) // nolint:wrapcheck
	}

	leadDays := int(booking.CheckIn.Sub(s.clock.Today()) / constant.DayDuration)

	now := s.clock.Now()
	meta := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}

	var refund model.Refund

	err = s.txer.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		payment, err := s.repo.GetPaymentTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if payment.ID == 0 {
			return failure.NotFound(model.PaymentEntityName)
		}

		bookingFields := map[string]any{
			model.FieldBookingStatus: model.BookingStatusCancelled,
			model.FieldPaymentStatus: model.PaymentStatusRefunded,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}
		if err := s.repo.UpdateTx(ctx, tx, bookingFields, filter); err != nil {
			return err
		}

		paymentFields := map[string]any{
			model.PaymentFieldStatus: model.PaymentStatusRefunded,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}
		paymentFilter := shared.FilterByID(payment.ID, model.PaymentFieldID, model.PaymentTableName)
		if err := s.repo.UpdatePaymentTx(ctx, tx, paymentFields, paymentFilter); err != nil {
			return err
		}

		amount, status, reason := refundFor(payment.TotalAmount, leadDays, s.cfg.Booking.RefundRejectBelowDays, s.cfg.Booking.RefundFullFromDays)
		refund = model.Refund{
			PaymentID:    payment.ID,
			TotalAmount:  payment.TotalAmount,
			RefundAmount: amount,
			Status:       status,
			Reason:       reason,
			Metadata:     meta,
		}
		if err := s.repo.InsertRefundTx(ctx, tx, refund); err != nil {
			return err
		}

		history := model.BookingStatusHistory{
			BookingID:  id,
			FromStatus: booking.BookingStatus,
			ToStatus:   model.BookingStatusCancelled,
			Metadata:   meta,
		}

		return s.repo.InsertStatusHistoryTx(ctx, tx, history)
	})
	if err != nil {
		log.Error().Err(err).Int64("bookingID", id).Msg("failed to cancel booking")

		return res, failure.StoreFailure(err) // nolint:wrapcheck
	}

	res = dto.CancelBookingResponse{
		BookingID:    id,
		RefundAmount: refund.RefundAmount,
		RefundStatus: refund.Status.String(),
		Reason:       refund.Reason,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := events.BookingEvent{
			Type:         events.TypeBookingCancelled,
			BookingID:    booking.ID,
			UserID:       booking.UserID,
			RoomID:       booking.RoomID,
			CheckIn:      booking.CheckIn.Format(constant.DayFormat),
			CheckOut:     booking.CheckOut.Format(constant.DayFormat),
			TotalAmount:  booking.TotalAmount,
			RefundAmount: refund.RefundAmount,
			OccurredAt:   now,
		}
		if err := s.publisher.PublishBookingEvent(c, event); err != nil {
			log.Error().Err(err).Msg("failed to publish booking cancelled event")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}()

	return res, nil
}

// Reschedule moves a confirmed booking to a new window exactly once. When
// the same room is taken for the new window the booking stays untouched and
// candidate rooms matching the room-type capacities are returned instead.
func (s *serviceImpl) Reschedule(ctx context.Context, id int64, req dto.RescheduleBookingRequest) (res dto.RescheduleBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFoundWithID(model.EntityName, id) // nolint:wrapcheck
	}

	if booking.BookingStatus != model.BookingStatusConfirmed {
		return res, failure.InvalidTransition(booking.BookingStatus.String(), "rescheduled") // nolint:wrapcheck
	}

	deadline := booking.CheckIn.AddDate(0, 0, -s.cfg.Booking.RescheduleCutoffDays)
	if s.clock.Today().After(deadline) {
		return res, failure.TooLateToReschedule(deadline.Format(constant.DayFormat)) // nolint:wrapcheck
	}

	exists, err := s.repo.ExistReschedule(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing reschedule")

		return res, fmt.Errorf("failed to check existing reschedule: %w", err)
	}

	if exists {
		return res, failure.AlreadyRescheduled(id) // nolint:wrapcheck
	}

	now := s.clock.Now()
	meta := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}

	err = s.txer.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.LockRoomTx(ctx, tx, booking.RoomID); err != nil {
			return err
		}

		taken, err := s.repo.ExistsOverlapTx(ctx, tx, booking.RoomID, checkIn, checkOut)
		if err != nil {
			return err
		}

		if taken {
			return errRoomTaken
		}

		bookingFields := map[string]any{
			model.FieldCheckIn:       checkIn,
			model.FieldCheckOut:      checkOut,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}
		if err := s.repo.UpdateTx(ctx, tx, bookingFields, filter); err != nil {
			return err
		}

		reschedule := model.Reschedule{
			BookingID:   id,
			OldCheckIn:  booking.CheckIn,
			OldCheckOut: booking.CheckOut,
			NewCheckIn:  checkIn,
			NewCheckOut: checkOut,
			Metadata:    meta,
		}

		return s.repo.InsertRescheduleTx(ctx, tx, reschedule)
	})

	if errors.Is(err, errRoomTaken) {
		return s.rescheduleCandidates(ctx, booking, checkIn, checkOut)
	}

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.AlreadyRescheduled(id) // nolint:wrapcheck
		}

		log.Error().Err(err).Int64("bookingID", id).Msg("failed to reschedule booking")

		return res, failure.StoreFailure(err) // nolint:wrapcheck
	}

	booking.CheckIn = checkIn
	booking.CheckOut = checkOut
	booking.ModifiedAt = now
	booking.ModifiedBy = user

	bookingRes := dto.BookingResponse{}
	bookingRes.FromModel(booking)
	res = dto.RescheduleBookingResponse{
		Rescheduled: true,
		Booking:     &bookingRes,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := events.BookingEvent{
			Type:        events.TypeBookingRescheduled,
			BookingID:   booking.ID,
			UserID:      booking.UserID,
			RoomID:      booking.RoomID,
			CheckIn:     checkIn.Format(constant.DayFormat),
			CheckOut:    checkOut.Format(constant.DayFormat),
			TotalAmount: booking.TotalAmount,
			OccurredAt:  now,
		}
		if err := s.publisher.PublishBookingEvent(c, event); err != nil {
			log.Error().Err(err).Msg("failed to publish booking rescheduled event")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}()

	return res, nil
}

// rescheduleCandidates is the fallback path: the booking's own room is
// taken for the new window, so offer other rooms whose type meets the same
// capacities. The booking itself is left untouched.
func (s *serviceImpl) rescheduleCandidates(ctx context.Context, booking model.Booking, checkIn, checkOut time.Time) (res dto.RescheduleBookingResponse, err error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFoundWithID(roomModel.EntityName, booking.RoomID) // nolint:wrapcheck
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(room.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == 0 {
		return res, failure.NotFoundWithID(roomTypeModel.EntityName, room.RoomTypeID) // nolint:wrapcheck
	}

	candidates, err := s.roomRepo.Candidates(ctx, checkIn, checkOut, roomType.NoOfAdult, roomType.NoOfChild)
	if err != nil {
		log.Error().Err(err).Msg("failed to get candidate rooms")

		return res, fmt.Errorf("failed to get candidate rooms: %w", err)
	}

	ids := make([]int64, len(candidates))
	for i, candidate := range candidates {
		ids[i] = candidate.ID
	}

	return dto.RescheduleBookingResponse{
		Rescheduled:     false,
		CandidateRooms:  ids,
		TotalCandidates: len(ids),
	}, nil
}

// refundFor computes the refund amount, status and reason from the number
// of full days between today and check-in.
func refundFor(total float64, leadDays, rejectBelow, fullFrom int) (float64, model.RefundStatus, string) {
	switch {
	case leadDays < rejectBelow:
		return 0, model.RefundStatusRejected, fmt.Sprintf("cancelled less than %d days before check-in, refund deadline missed", rejectBelow)
	case leadDays < fullFrom:
		return total / 2, model.RefundStatusApproved, fmt.Sprintf("cancelled %d days before check-in, half refund", leadDays)
	default:
		return total, model.RefundStatusApproved, fmt.Sprintf("cancelled %d days before check-in, full refund", leadDays)
	}
}
