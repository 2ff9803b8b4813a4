// Package profiler reports frame pacing and memory statistics for an
// interactive viewer loop.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame pacing across a report interval: frames per second,
// the worst frame time seen, and heap usage. Stats are written to the log
// once per interval.
type Profiler struct {
	frameCount int
	worstFrame time.Duration

	lastTick   time.Time
	lastReport time.Time
	interval   time.Duration

	memStats runtime.MemStats
}

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithReportInterval sets how often statistics are logged.
//
// Parameters:
//   - interval: time between reports (values <= 0 are ignored)
//
// Returns:
//   - ProfilerBuilderOption: functional option to set the report interval
func WithReportInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

// NewProfiler creates a new Profiler. The report interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		lastTick:   time.Now(),
		lastReport: time.Now(),
		interval:   time.Second,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Tick records one frame. Call it once per frame event; when a full report
// interval has elapsed it logs FPS, the worst frame time of the interval,
// and current heap usage.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	now := time.Now()
	frameTime := now.Sub(p.lastTick)
	p.lastTick = now

	p.frameCount++
	if frameTime > p.worstFrame {
		p.worstFrame = frameTime
	}

	elapsed := now.Sub(p.lastReport)
	if elapsed < p.interval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024

	log.Printf("[Profiler] FPS: %.2f | Worst frame: %.2f ms | Heap: %.2f MB",
		fps, float64(p.worstFrame.Microseconds())/1000, heapMB)

	p.frameCount = 0
	p.worstFrame = 0
	p.lastReport = now
	return true
}
