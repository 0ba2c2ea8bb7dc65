package main

import "testing"

func TestStatusLine(t *testing.T) {
	status := `{
		"frame": {"number": 12},
		"pointer": {"x": -3.5, "y": 4},
		"scroll": {"x": 0, "y": 1},
		"dispatch": {"subscriptions": 2},
		"metrics": {"key_events": 7, "fps": 59.94}
	}`

	want := "frame 12  pointer (-3.5, 4)  scroll (0, 1)  subs 2  keys 7  fps 59.9"
	if got := statusLine(status); got != want {
		t.Errorf("statusLine() = %q, want %q", got, want)
	}
}

func TestStatusLineEmpty(t *testing.T) {
	want := "frame 0  pointer (0, 0)  scroll (0, 0)  subs 0  keys 0  fps 0.0"
	if got := statusLine("{}"); got != want {
		t.Errorf("statusLine() = %q, want %q", got, want)
	}
}

func TestOpenSourceWindowWithoutGLFW(t *testing.T) {
	if openWindow != nil {
		t.Skip("built with glfw")
	}
	opts := cliOptions{window: true}
	if _, err := openSource(opts); err == nil {
		t.Error("openSource() error = nil, want error without glfw support")
	}
}
