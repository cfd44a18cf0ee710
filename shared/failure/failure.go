package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a machine-readable classification of a failure, stable across
// message wording changes. Handlers map it to HTTP codes; callers and tests
// branch on it.
const (
	KindInvalidDateRange    = "invalid_date_range"
	KindRoomUnavailable     = "room_unavailable"
	KindNotFound            = "not_found"
	KindInvalidAddon        = "invalid_addon"
	KindInvalidTransition   = "invalid_transition"
	KindTooLateToReschedule = "too_late_to_reschedule"
	KindAlreadyRescheduled  = "already_rescheduled"
	KindStoreFailure        = "store_failure"
	KindBadRequest          = "bad_request"
	KindUnauthorized        = "unauthorized"
	KindForbidden           = "forbidden"
	KindConflict            = "conflict"
	KindInternal            = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int            `json:"code"`
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindBadRequest, Message: "invalid limit parameter"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// WithDetail attaches a structured detail to the failure and returns it.
func (e *Failure) WithDetail(key string, value any) *Failure {
	if e.Details == nil {
		e.Details = map[string]any{}
	}

	e.Details[key] = value

	return e
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName + " not found",
		Details: map[string]any{"entity": entityName},
	}
}

// NotFoundWithID returns a NotFound failure carrying the entity id that was looked up.
func NotFoundWithID(entityName string, id int64) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s with id %d not found", entityName, id),
		Details: map[string]any{"entity": entityName, "id": id},
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// InvalidDateRange signals a stay interval where check-out is not after check-in.
func InvalidDateRange(checkIn, checkOut string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidDateRange,
		Message: "check_out must be after check_in",
		Details: map[string]any{"check_in": checkIn, "check_out": checkOut},
	}
}

// RoomUnavailable signals a confirmed booking already covering the requested interval.
func RoomUnavailable(roomID int64) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindRoomUnavailable,
		Message: "the requested room is not available for these dates",
		Details: map[string]any{"room_id": roomID},
	}
}

// InvalidAddon signals a malformed addon line token.
func InvalidAddon(token string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidAddon,
		Message: fmt.Sprintf("invalid addon token %q, expected \"id:quantity\"", token),
		Details: map[string]any{"token": token},
	}
}

// InvalidTransition signals a booking state change not permitted from the current status.
func InvalidTransition(from, to string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindInvalidTransition,
		Message: fmt.Sprintf("cannot transition booking from %s to %s", from, to),
		Details: map[string]any{"from": from, "to": to},
	}
}

// TooLateToReschedule signals a reschedule attempt past the cutoff deadline.
func TooLateToReschedule(deadline string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindTooLateToReschedule,
		Message: "too late to reschedule this booking",
		Details: map[string]any{"deadline": deadline},
	}
}

// AlreadyRescheduled signals a second reschedule attempt on the same booking.
func AlreadyRescheduled(bookingID int64) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindAlreadyRescheduled,
		Message: "this booking has already been rescheduled once",
		Details: map[string]any{"booking_id": bookingID},
	}
}

// StoreFailure wraps an underlying storage error after a rollback.
func StoreFailure(err error) error {
	if err == nil {
		return nil
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindStoreFailure,
		Message: err.Error(),
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind, or KindInternal for unclassified errors.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether the error carries the given failure kind.
func IsKind(err error, kind string) bool {
	return GetKind(err) == kind
}
