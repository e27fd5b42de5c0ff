// Package swipe implements a gesture-driven carousel controller: it tracks
// which panel is active, maps drags and flicks onto panel navigation,
// supports seamless looping and autoplay, and reports committed index
// changes to its host as messages.
package swipe

import (
	"time"

	"github.com/swipedeck/swipedeck/internal/touch"
)

// Panel is one item in the swipeable sequence. The controller only needs
// panels for counting and rendering; their lifecycle belongs to the host.
type Panel interface {
	Title() string
	Render(width, height int) string
}

// defaultCommitVelocity is the flick speed (cells per millisecond) above
// which a released gesture commits to navigation. Empirical constant.
const defaultCommitVelocity = 0.25

// Options configures the controller.
type Options struct {
	Loop            bool          // wrap around past either end
	Vertical        bool          // swipe along the vertical axis
	Touchable       bool          // gesture handling enabled
	Autoplay        time.Duration // automatic advance interval, 0 disables
	Duration        time.Duration // transition duration hint for the renderer
	InitialIndex    int           // panel shown after initialization
	Width           int           // explicit panel width in cells, 0 = measured
	Height          int           // explicit panel height in cells, 0 = measured
	StopPropagation bool          // consume gesture events instead of passing them on
	ShowIndicators  bool          // render the indicator dots
	CommitVelocity  float64       // flick commit threshold in cells/ms
}

// DefaultOptions returns the standard configuration: looping, horizontal,
// touchable, indicators on, no autoplay.
func DefaultOptions() Options {
	return Options{
		Loop:            true,
		Touchable:       true,
		Duration:        500 * time.Millisecond,
		StopPropagation: true,
		ShowIndicators:  true,
		CommitVelocity:  defaultCommitVelocity,
	}
}

type rect struct {
	width  int
	height int
}

// Model is the carousel controller. It owns the track state exclusively;
// geometry and position resolution are pure derivations over it.
type Model[P Panel] struct {
	opts   Options
	panels []P

	// Track state
	rect        *rect // nil before the first measurement
	size        float64
	offset      float64
	active      int
	swiping     bool
	edgeOffsets []float64 // per-panel visual offsets for loop wrap

	tracker      touch.Tracker
	touchStartAt time.Time
	dragging     bool

	visible     bool
	initialized bool

	autoplayGen int // generation of the armed autoplay timer
	moveSeq     int // sequence of the pending two-phase move

	now func() time.Time
}

// New creates a controller over the given panels. The model stays
// unmeasured (and skips initialization) until the first resize message.
func New[P Panel](opts Options, panels []P) Model[P] {
	if opts.CommitVelocity <= 0 {
		opts.CommitVelocity = defaultCommitVelocity
	}
	if opts.Duration <= 0 {
		opts.Duration = 500 * time.Millisecond
	}
	return Model[P]{
		opts:        opts,
		panels:      panels,
		edgeOffsets: make([]float64, len(panels)),
		visible:     true,
		now:         time.Now,
	}
}

// initialize resets the track state at the requested index. It is skipped
// entirely while the container is unmeasured or hidden and retried on the
// next resize or focus event.
func (m *Model[P]) initialize(active int) {
	if m.rect == nil || !m.visible {
		return
	}
	m.stopAutoplay()
	m.initialized = true
	m.size = m.measureSize()
	m.swiping = true
	m.dragging = false
	if count := m.Count(); count > 0 {
		active = clampInt(active, 0, count-1)
	} else {
		active = 0
	}
	m.active = active
	g := m.geom()
	m.offset = targetOffset(active, 0, m.opts.Loop, g.panelSize, g.minOffset())
	m.edgeOffsets = make([]float64, m.Count())
	m.tracker.Reset()
}

// reinit re-runs initialization: at the configured initial index on the
// first run, at the current panel afterwards.
func (m *Model[P]) reinit() {
	index := m.opts.InitialIndex
	if m.initialized {
		index = m.ActiveIndicator()
	}
	m.initialize(index)
}

// measureSize resolves the main-axis panel size from the explicit override
// or the measured container.
func (m *Model[P]) measureSize() float64 {
	if m.opts.Vertical {
		if m.opts.Height > 0 {
			return float64(m.opts.Height)
		}
		return float64(m.rect.height)
	}
	if m.opts.Width > 0 {
		return float64(m.opts.Width)
	}
	return float64(m.rect.width)
}

// SetPanels replaces the panel registry and re-initializes, the same path
// a panel count change takes. Pending programmatic moves are superseded:
// their step messages target the old registry.
func (m *Model[P]) SetPanels(panels []P) {
	m.panels = panels
	m.edgeOffsets = make([]float64, len(panels))
	m.moveSeq++
	m.initialized = false
	m.initialize(m.opts.InitialIndex)
}

// Count returns the number of registered panels.
func (m Model[P]) Count() int { return len(m.panels) }

// Panels returns the panel registry in order.
func (m Model[P]) Panels() []P { return m.panels }

// Active returns the raw active index. In loop mode it may transiently
// sit at -1 or Count() until the next position correction.
func (m Model[P]) Active() int { return m.active }

// ActiveIndicator returns the active index normalized into [0, Count).
func (m Model[P]) ActiveIndicator() int {
	count := m.Count()
	if count == 0 {
		return 0
	}
	return ((m.active % count) + count) % count
}

// Offset returns the track's current main-axis translation in cells.
func (m Model[P]) Offset() float64 { return m.offset }

// Swiping reports whether transitions should render without animation.
func (m Model[P]) Swiping() bool { return m.swiping }

// Dragging reports whether a pointer gesture is in flight.
func (m Model[P]) Dragging() bool { return m.dragging }

// Size returns the resolved main-axis panel size in cells.
func (m Model[P]) Size() float64 { return m.size }

// Measured reports whether the container has been measured yet.
func (m Model[P]) Measured() bool { return m.rect != nil }

// PanelOffset returns the visual offset applied to a panel by the loop
// edge compensation, in cells along the main axis.
func (m Model[P]) PanelOffset(i int) float64 {
	if i < 0 || i >= len(m.edgeOffsets) {
		return 0
	}
	return m.edgeOffsets[i]
}

// Options returns the controller configuration.
func (m Model[P]) Options() Options { return m.opts }

// SetShowIndicators toggles the indicator dots without reinitializing.
func (m *Model[P]) SetShowIndicators(show bool) {
	m.opts.ShowIndicators = show
}

// TrackState is a snapshot of the controller state for host introspection
// and tests.
type TrackState struct {
	Width           int
	Height          int
	Measured        bool
	Size            float64
	Offset          float64
	Active          int
	ActiveIndicator int
	Swiping         bool
	Dragging        bool
}

// TrackState snapshots the current track state.
func (m Model[P]) TrackState() TrackState {
	s := TrackState{
		Measured:        m.rect != nil,
		Size:            m.size,
		Offset:          m.offset,
		Active:          m.active,
		ActiveIndicator: m.ActiveIndicator(),
		Swiping:         m.swiping,
		Dragging:        m.dragging,
	}
	if m.rect != nil {
		s.Width = m.rect.width
		s.Height = m.rect.height
	}
	return s
}
