package clock_test

import (
	"testing"
	"time"

	"lodge/shared/clock"
)

func TestFixedClock_Today(t *testing.T) {
	at := time.Date(2026, 3, 15, 18, 45, 12, 0, time.UTC)
	c := clock.NewFixed(at)

	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !c.Today().Equal(want) {
		t.Errorf("expected today to be %v, got %v", want, c.Today())
	}

	if !c.Now().Equal(at) {
		t.Errorf("expected now to be %v, got %v", at, c.Now())
	}
}

func TestUTCClock_TodayIsMidnight(t *testing.T) {
	today := clock.New().Today()

	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Errorf("expected midnight, got %v", today)
	}

	if today.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", today.Location())
	}
}
