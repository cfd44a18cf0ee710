package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lodge/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Kind:    failure.KindBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestDomainFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{
			name: "InvalidDateRange",
			err:  failure.InvalidDateRange("2026-01-10", "2026-01-10"),
			code: http.StatusBadRequest,
			kind: failure.KindInvalidDateRange,
		},
		{
			name: "RoomUnavailable",
			err:  failure.RoomUnavailable(42),
			code: http.StatusConflict,
			kind: failure.KindRoomUnavailable,
		},
		{
			name: "InvalidAddon",
			err:  failure.InvalidAddon("breakfast"),
			code: http.StatusBadRequest,
			kind: failure.KindInvalidAddon,
		},
		{
			name: "InvalidTransition",
			err:  failure.InvalidTransition("cancelled", "cancelled"),
			code: http.StatusConflict,
			kind: failure.KindInvalidTransition,
		},
		{
			name: "TooLateToReschedule",
			err:  failure.TooLateToReschedule("2026-01-07"),
			code: http.StatusBadRequest,
			kind: failure.KindTooLateToReschedule,
		},
		{
			name: "AlreadyRescheduled",
			err:  failure.AlreadyRescheduled(7),
			code: http.StatusConflict,
			kind: failure.KindAlreadyRescheduled,
		},
		{
			name: "NotFoundWithID",
			err:  failure.NotFoundWithID("room", 9),
			code: http.StatusNotFound,
			kind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
			if !failure.IsKind(tt.err, tt.kind) {
				t.Errorf("expected kind to be %s, got %s", tt.kind, failure.GetKind(tt.err))
			}
		})
	}
}

func TestStoreFailure(t *testing.T) {
	t.Run("wraps plain errors", func(t *testing.T) {
		err := failure.StoreFailure(errors.New("connection reset"))

		if !failure.IsKind(err, failure.KindStoreFailure) {
			t.Errorf("expected kind store_failure, got %s", failure.GetKind(err))
		}
		if failure.GetCode(err) != http.StatusInternalServerError {
			t.Errorf("expected code 500, got %d", failure.GetCode(err))
		}
	})

	t.Run("preserves existing failures", func(t *testing.T) {
		inner := failure.RoomUnavailable(3)
		err := failure.StoreFailure(fmt.Errorf("create booking: %w", inner))

		if !failure.IsKind(err, failure.KindRoomUnavailable) {
			t.Errorf("expected kind room_unavailable, got %s", failure.GetKind(err))
		}
	})

	t.Run("nil in nil out", func(t *testing.T) {
		if err := failure.StoreFailure(nil); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})
}

func TestGetCode_UnknownError(t *testing.T) {
	if got := failure.GetCode(errors.New("boom")); got != http.StatusInternalServerError {
		t.Errorf("expected code 500 for unclassified error, got %d", got)
	}
}

func TestWithDetail(t *testing.T) {
	f := &failure.Failure{Code: http.StatusConflict, Kind: failure.KindConflict, Message: "conflict"}
	f.WithDetail("booking_id", int64(12))

	if f.Details["booking_id"] != int64(12) {
		t.Errorf("expected detail booking_id to be 12, got %v", f.Details["booking_id"])
	}
}
