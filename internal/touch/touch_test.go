package touch

import "testing"

func TestTracker_StartResetsState(t *testing.T) {
	var tr Tracker
	tr.Start(10, 10)
	tr.Move(20, 10)

	if tr.DeltaX() != 10 {
		t.Errorf("deltaX = %v, want 10", tr.DeltaX())
	}

	// A new gesture starts clean
	tr.Start(5, 5)
	if tr.DeltaX() != 0 || tr.DeltaY() != 0 {
		t.Errorf("deltas after Start = (%v, %v), want (0, 0)", tr.DeltaX(), tr.DeltaY())
	}
	if tr.Direction() != DirectionNone {
		t.Errorf("direction after Start = %v, want none", tr.Direction())
	}
}

func TestTracker_ClassifiesHorizontal(t *testing.T) {
	var tr Tracker
	tr.Start(0, 0)
	tr.Move(3, 1)

	if !tr.IsHorizontal() {
		t.Errorf("direction = %v, want horizontal", tr.Direction())
	}
	if tr.DeltaX() != 3 {
		t.Errorf("deltaX = %v, want 3", tr.DeltaX())
	}
	if tr.OffsetX() != 3 {
		t.Errorf("offsetX = %v, want 3", tr.OffsetX())
	}
}

func TestTracker_ClassifiesVertical(t *testing.T) {
	var tr Tracker
	tr.Start(0, 0)
	tr.Move(0, -2)

	if !tr.IsVertical() {
		t.Errorf("direction = %v, want vertical", tr.Direction())
	}
	if tr.DeltaY() != -2 {
		t.Errorf("deltaY = %v, want -2", tr.DeltaY())
	}
	if tr.OffsetY() != 2 {
		t.Errorf("offsetY = %v, want 2", tr.OffsetY())
	}
}

func TestTracker_DirectionLocksOnFirstClassification(t *testing.T) {
	var tr Tracker
	tr.Start(0, 0)
	tr.Move(4, 0)
	if !tr.IsHorizontal() {
		t.Fatalf("direction = %v, want horizontal", tr.Direction())
	}

	// Later vertical movement must not re-classify the gesture
	tr.Move(4, 9)
	if !tr.IsHorizontal() {
		t.Errorf("direction after vertical drift = %v, want horizontal", tr.Direction())
	}
}

func TestTracker_DiagonalStaysUnclassified(t *testing.T) {
	var tr Tracker
	tr.Start(0, 0)
	tr.Move(2, 2)

	if tr.Direction() != DirectionNone {
		t.Errorf("direction for equal offsets = %v, want none", tr.Direction())
	}
}

func TestTracker_Reset(t *testing.T) {
	var tr Tracker
	tr.Start(0, 0)
	tr.Move(5, 1)
	tr.Reset()

	if tr.DeltaX() != 0 || tr.OffsetX() != 0 {
		t.Errorf("after Reset deltaX = %v offsetX = %v, want 0, 0", tr.DeltaX(), tr.OffsetX())
	}
	if tr.Direction() != DirectionNone {
		t.Errorf("after Reset direction = %v, want none", tr.Direction())
	}

	// Direction can lock again after reset
	tr.Move(0, 3)
	if !tr.IsVertical() {
		t.Errorf("direction after Reset+Move = %v, want vertical", tr.Direction())
	}
}
