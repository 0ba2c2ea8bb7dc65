package engine

import (
	"sync/atomic"
	"time"
)

// Metrics tracks frame timing and input volume.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64

	// Input volume
	keyEvents      atomic.Uint64
	pointerEvents  atomic.Uint64
	scrollEvents   atomic.Uint64
	dispatchErrors atomic.Uint64

	// Start time for uptime calculation
	startTime atomic.Int64
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.startTime.Store(time.Now().UnixNano())
	// Initialize min to max int64 so first frame will be smaller
	m.frameMinNs.Store(1<<63 - 1)
	return m
}

// RecordFrame records the duration of one loop step.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordKey records a key callback.
func (m *Metrics) RecordKey() {
	m.keyEvents.Add(1)
}

// RecordPointer records a pointer move callback.
func (m *Metrics) RecordPointer() {
	m.pointerEvents.Add(1)
}

// RecordScroll records a scroll callback.
func (m *Metrics) RecordScroll() {
	m.scrollEvents.Add(1)
}

// RecordDispatchError records a failed key dispatch.
func (m *Metrics) RecordDispatchError() {
	m.dispatchErrors.Add(1)
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	MinFrameTimeNs int64
	MaxFrameTimeNs int64
	LastFrameNs    int64
	KeyEvents      uint64
	PointerEvents  uint64
	ScrollEvents   uint64
	DispatchErrors uint64
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()

	var avgFrameNs int64
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}

	minFrameNs := m.frameMinNs.Load()
	if minFrameNs == 1<<63-1 {
		minFrameNs = 0
	}

	return MetricsSnapshot{
		Uptime:         time.Since(time.Unix(0, m.startTime.Load())),
		FrameCount:     frameCount,
		AvgFrameTimeNs: avgFrameNs,
		MinFrameTimeNs: minFrameNs,
		MaxFrameTimeNs: m.frameMaxNs.Load(),
		LastFrameNs:    m.lastFrameNs.Load(),
		KeyEvents:      m.keyEvents.Load(),
		PointerEvents:  m.pointerEvents.Load(),
		ScrollEvents:   m.scrollEvents.Load(),
		DispatchErrors: m.dispatchErrors.Load(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.frameCount.Store(0)
	m.frameTotalNs.Store(0)
	m.frameMinNs.Store(1<<63 - 1)
	m.frameMaxNs.Store(0)
	m.lastFrameNs.Store(0)
	m.keyEvents.Store(0)
	m.pointerEvents.Store(0)
	m.scrollEvents.Store(0)
	m.dispatchErrors.Store(0)
	m.startTime.Store(time.Now().UnixNano())
}

// AvgFrameTime returns the average frame duration.
func (s MetricsSnapshot) AvgFrameTime() time.Duration {
	return time.Duration(s.AvgFrameTimeNs)
}

// FPS returns frames per second derived from the average frame time.
func (s MetricsSnapshot) FPS() float64 {
	if s.AvgFrameTimeNs <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.AvgFrameTimeNs)
}
