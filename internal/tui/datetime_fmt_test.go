package tui

import (
	"testing"
	"time"
)

func TestFmtEventTime(t *testing.T) {
	got := fmtEventTime(time.Date(2026, 1, 5, 14, 30, 0, 0, time.Local))
	if got != "5 tháng 1 2026 14:30" {
		t.Fatalf("fmtEventTime = %q", got)
	}

	got = fmtEventTime(time.Date(2026, 12, 31, 9, 5, 0, 0, time.Local))
	if got != "31 tháng 12 2026 09:05" {
		t.Fatalf("fmtEventTime = %q", got)
	}

	if fmtEventTime(time.Time{}) != "" {
		t.Fatal("zero time renders empty")
	}
}
