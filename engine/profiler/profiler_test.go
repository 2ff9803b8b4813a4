package profiler

import (
	"testing"
	"time"
)

func TestTickReportsAfterInterval(t *testing.T) {
	p := NewProfiler(WithReportInterval(20 * time.Millisecond))

	if p.Tick() {
		t.Error("Tick should not report before the interval has elapsed")
	}

	time.Sleep(25 * time.Millisecond)
	if !p.Tick() {
		t.Error("Tick should report after the interval has elapsed")
	}

	// The interval restarts after a report.
	if p.Tick() {
		t.Error("Tick should not report immediately after a report")
	}
}

func TestWithReportIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithReportInterval(-1 * time.Second))
	if p.interval != time.Second {
		t.Errorf("interval = %v, want default 1s", p.interval)
	}
}
