package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldRoomID        = "room_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldTotalAmount   = "total_amount"
	FieldBookingStatus = "booking_status"
	FieldPaymentStatus = "payment_status"
)

const (
	AddonTableName  = "booking_addons"
	AddonEntityName = "booking_addon"

	AddonFieldID = "id"
)

const (
	PaymentTableName  = "payments"
	PaymentEntityName = "payment"

	PaymentFieldID        = "id"
	PaymentFieldBookingID = "booking_id"
	PaymentFieldStatus    = "status"
)

const (
	RefundTableName  = "refunds"
	RefundEntityName = "refund"

	RefundFieldID = "id"
)

const (
	RescheduleTableName  = "reschedules"
	RescheduleEntityName = "reschedule"

	RescheduleFieldID        = "id"
	RescheduleFieldBookingID = "booking_id"
)

const (
	HistoryTableName  = "booking_status_history"
	HistoryEntityName = "booking_status_history"

	HistoryFieldID = "id"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) String() string {
	return string(s)
}

// CanTransitionTo encodes the booking state machine. Cancelled and
// completed are terminal.
func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return to == BookingStatusConfirmed
	case BookingStatusConfirmed:
		return to == BookingStatusCancelled || to == BookingStatusCompleted
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusFailed   PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

type RefundStatus string

const (
	RefundStatusApproved  RefundStatus = "approved"
	RefundStatusRejected  RefundStatus = "rejected"
	RefundStatusCompleted RefundStatus = "completed"
)

func (s RefundStatus) String() string {
	return string(s)
}

// Booking occupies the half-open interval [CheckIn, CheckOut).
type Booking struct {
	ID            int64         `db:"id"`
	UserID        int64         `db:"user_id"`
	RoomID        int64         `db:"room_id"`
	CheckIn       time.Time     `db:"check_in"`
	CheckOut      time.Time     `db:"check_out"`
	TotalAmount   float64       `db:"total_amount"`
	BookingStatus BookingStatus `db:"booking_status"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	model.Metadata
}

type BookingAddon struct {
	ID        int64 `db:"id"`
	BookingID int64 `db:"booking_id"`
	AddonID   int64 `db:"addon_id"`
	Quantity  int   `db:"quantity"`
	model.Metadata
}

type Payment struct {
	ID          int64         `db:"id"`
	BookingID   int64         `db:"booking_id"`
	TotalAmount float64       `db:"total_amount"`
	Status      PaymentStatus `db:"status"`
	model.Metadata
}

type Refund struct {
	ID           int64        `db:"id"`
	PaymentID    int64        `db:"payment_id"`
	TotalAmount  float64      `db:"total_amount"`
	RefundAmount float64      `db:"refund_amount"`
	Status       RefundStatus `db:"status"`
	Reason       string       `db:"reason"`
	model.Metadata
}

// Reschedule marks a booking as rescheduled. The table carries
// UNIQUE(booking_id), so a booking can only ever be rescheduled once.
type Reschedule struct {
	ID          int64     `db:"id"`
	BookingID   int64     `db:"booking_id"`
	OldCheckIn  time.Time `db:"old_check_in"`
	OldCheckOut time.Time `db:"old_check_out"`
	NewCheckIn  time.Time `db:"new_check_in"`
	NewCheckOut time.Time `db:"new_check_out"`
	model.Metadata
}

type BookingStatusHistory struct {
	ID         int64         `db:"id"`
	BookingID  int64         `db:"booking_id"`
	FromStatus BookingStatus `db:"from_status"`
	ToStatus   BookingStatus `db:"to_status"`
	model.Metadata
}
