package swipe

import "testing"

func TestGeometry(t *testing.T) {
	tests := []struct {
		name          string
		container     float64
		panel         float64
		count         int
		wantTrackSize float64
		wantMinOffset float64
		wantMaxPace   int
	}{
		{
			name:      "content overflows container",
			container: 300, panel: 300, count: 5,
			wantTrackSize: 1500, wantMinOffset: -1200, wantMaxPace: 4,
		},
		{
			name:      "content fits exactly",
			container: 300, panel: 300, count: 1,
			wantTrackSize: 300, wantMinOffset: 0, wantMaxPace: 0,
		},
		{
			name:      "content smaller than container clamps to zero",
			container: 500, panel: 100, count: 3,
			wantTrackSize: 300, wantMinOffset: 0, wantMaxPace: 0,
		},
		{
			name:      "partial slack rounds maxPace up",
			container: 250, panel: 100, count: 4,
			wantTrackSize: 400, wantMinOffset: -150, wantMaxPace: 2,
		},
		{
			name:      "zero panel size",
			container: 100, panel: 0, count: 3,
			wantTrackSize: 0, wantMinOffset: 0, wantMaxPace: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := geometry{containerSize: tt.container, panelSize: tt.panel, count: tt.count}
			if got := g.trackSize(); got != tt.wantTrackSize {
				t.Errorf("trackSize() = %v, want %v", got, tt.wantTrackSize)
			}
			if got := g.minOffset(); got != tt.wantMinOffset {
				t.Errorf("minOffset() = %v, want %v", got, tt.wantMinOffset)
			}
			if got := g.maxPace(); got != tt.wantMaxPace {
				t.Errorf("maxPace() = %v, want %v", got, tt.wantMaxPace)
			}
		})
	}
}
