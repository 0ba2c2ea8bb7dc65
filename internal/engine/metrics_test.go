package engine

import (
	"testing"
	"time"
)

func TestMetricsFrameTiming(t *testing.T) {
	m := NewMetrics()

	m.RecordFrame(10 * time.Millisecond)
	m.RecordFrame(20 * time.Millisecond)
	m.RecordFrame(30 * time.Millisecond)

	snap := m.Snapshot()
	if snap.FrameCount != 3 {
		t.Errorf("FrameCount = %d, want 3", snap.FrameCount)
	}
	if snap.AvgFrameTime() != 20*time.Millisecond {
		t.Errorf("AvgFrameTime() = %v, want 20ms", snap.AvgFrameTime())
	}
	if snap.MinFrameTimeNs != int64(10*time.Millisecond) {
		t.Errorf("MinFrameTimeNs = %d, want %d", snap.MinFrameTimeNs, 10*time.Millisecond)
	}
	if snap.MaxFrameTimeNs != int64(30*time.Millisecond) {
		t.Errorf("MaxFrameTimeNs = %d, want %d", snap.MaxFrameTimeNs, 30*time.Millisecond)
	}
	if snap.LastFrameNs != int64(30*time.Millisecond) {
		t.Errorf("LastFrameNs = %d, want %d", snap.LastFrameNs, 30*time.Millisecond)
	}
	if fps := snap.FPS(); fps != 50 {
		t.Errorf("FPS() = %v, want 50", fps)
	}
}

func TestMetricsEmptySnapshot(t *testing.T) {
	snap := NewMetrics().Snapshot()

	if snap.MinFrameTimeNs != 0 {
		t.Errorf("MinFrameTimeNs = %d, want 0", snap.MinFrameTimeNs)
	}
	if snap.FPS() != 0 {
		t.Errorf("FPS() = %v, want 0", snap.FPS())
	}
}

func TestMetricsReset(t *testing.T) {
	m := NewMetrics()
	m.RecordFrame(time.Millisecond)
	m.RecordKey()
	m.RecordPointer()
	m.RecordScroll()
	m.RecordDispatchError()

	m.Reset()

	snap := m.Snapshot()
	if snap.FrameCount != 0 || snap.KeyEvents != 0 || snap.PointerEvents != 0 ||
		snap.ScrollEvents != 0 || snap.DispatchErrors != 0 {
		t.Errorf("Snapshot() after Reset = %+v, want zero counters", snap)
	}
}
