package swipe

import "testing"

func TestTargetActive(t *testing.T) {
	tests := []struct {
		name    string
		active  int
		pace    int
		loop    bool
		count   int
		maxPace int
		want    int
	}{
		{name: "zero pace is identity", active: 2, pace: 0, loop: false, count: 5, maxPace: 4, want: 2},
		{name: "zero pace is identity in loop", active: 2, pace: 0, loop: true, count: 5, maxPace: 4, want: 2},
		{name: "forward within bounds", active: 1, pace: 1, loop: false, count: 5, maxPace: 4, want: 2},
		{name: "clamped at maxPace", active: 3, pace: 5, loop: false, count: 5, maxPace: 4, want: 4},
		{name: "clamped at zero", active: 1, pace: -4, loop: false, count: 5, maxPace: 4, want: 0},
		{name: "loop allows left overscan", active: 0, pace: -1, loop: true, count: 5, maxPace: 4, want: -1},
		{name: "loop allows right overscan", active: 4, pace: 1, loop: true, count: 5, maxPace: 4, want: 5},
		{name: "loop clamps past overscan", active: 4, pace: 7, loop: true, count: 5, maxPace: 4, want: 5},
		{name: "loop clamps before left overscan", active: 0, pace: -3, loop: true, count: 5, maxPace: 4, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := targetActive(tt.active, tt.pace, tt.loop, tt.count, tt.maxPace)
			if got != tt.want {
				t.Errorf("targetActive() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTargetOffset(t *testing.T) {
	// 5 panels of 300 in a 300-wide container: minOffset = -1200.
	const size, minOffset = 300.0, -1200.0

	tests := []struct {
		name   string
		target int
		extra  float64
		loop   bool
		want   float64
	}{
		{name: "first panel", target: 0, extra: 0, want: 0},
		{name: "second panel", target: 1, extra: 0, want: -300},
		{name: "last panel hits minOffset", target: 4, extra: 0, want: -1200},
		{name: "drag offset added", target: 1, extra: 40, want: -260},
		{name: "clamped at zero", target: 0, extra: 80, want: 0},
		{name: "clamped at minOffset", target: 4, extra: -90, want: -1200},
		{name: "loop keeps drag past zero", target: 0, extra: 80, loop: true, want: 80},
		{name: "loop keeps overscan offset", target: 5, extra: 0, loop: true, want: -1500},
		{name: "loop left overscan", target: -1, extra: 0, loop: true, want: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := targetOffset(tt.target, tt.extra, tt.loop, size, minOffset)
			if got != tt.want {
				t.Errorf("targetOffset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTargetOffset_NonLoopNeverScrollsPastLastPanel(t *testing.T) {
	// Position is capped at -minOffset so a clamped targetActive beyond
	// the track still resolves inside [minOffset, 0].
	got := targetOffset(4, 0, false, 300, -900)
	if got != -900 {
		t.Errorf("targetOffset() = %v, want -900", got)
	}
}
