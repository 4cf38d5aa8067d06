package tui

import (
	"fmt"
	"time"
)

var viMonths = [...]string{
	"tháng 1", "tháng 2", "tháng 3", "tháng 4", "tháng 5", "tháng 6",
	"tháng 7", "tháng 8", "tháng 9", "tháng 10", "tháng 11", "tháng 12",
}

// fmtEventTime matches the web client's vi-VN rendering:
// "5 tháng 1 2026 14:30".
func fmtEventTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.Local()
	return fmt.Sprintf("%d %s %d %02d:%02d",
		t.Day(), viMonths[int(t.Month())-1], t.Year(), t.Hour(), t.Minute())
}
