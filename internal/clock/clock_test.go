package clock

import (
	"testing"
	"time"
)

func TestSystemClockIsUTC(t *testing.T) {
	if loc := (System{}).Now().Location(); loc != time.UTC {
		t.Fatalf("expected UTC, got %v", loc)
	}
}

func TestFakeClockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 8, 10, 0, 0, 0, time.FixedZone("CST", 8*3600))
	c := NewFakeClock(start)
	if !c.Now().Equal(start) || c.Now().Location() != time.UTC {
		t.Fatalf("unexpected now: %v", c.Now())
	}
	c.Advance(36 * time.Hour)
	if got := c.Now(); !got.Equal(start.Add(36 * time.Hour)) {
		t.Fatalf("unexpected advanced time: %v", got)
	}
}
