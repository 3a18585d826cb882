package view

import (
	"testing"
)

func TestBase_Defaults(t *testing.T) {
	var b Base

	if got := b.RequiredSize(XY(80, 24)); got != XY(1, 1) {
		t.Errorf("RequiredSize = %v, want %v", got, XY(1, 1))
	}
	if b.OnEvent(KeyEvent{Key: KeyEnter}).IsConsumed() {
		t.Error("OnEvent consumed, want ignored")
	}
	if b.TakeFocus(DirFromTop) {
		t.Error("TakeFocus = true, want false")
	}
	if b.FocusView(ByName("x")) {
		t.Error("FocusView = true, want false")
	}
	if !b.NeedsRelayout() {
		t.Error("NeedsRelayout = false, want true")
	}
	if got := b.ImportantArea(XY(10, 4)); got != RectOf(Zero(), XY(10, 4)) {
		t.Errorf("ImportantArea = %v, want the full view", got)
	}

	visits := 0
	b.CallOnAny(ByName("x"), func(View) { visits++ })
	if visits != 0 {
		t.Errorf("CallOnAny visits = %d, want 0", visits)
	}

	// Draw and Layout are no-ops; they just must not panic.
	b.Draw(NewRecorder(XY(2, 2)))
	b.Layout(XY(2, 2))
}

func TestDirection_String(t *testing.T) {
	dirs := map[Direction]string{
		DirNone:       "None",
		DirFromTop:    "FromTop",
		DirFromBottom: "FromBottom",
		DirFromLeft:   "FromLeft",
		DirFromRight:  "FromRight",
		Direction(99): "Unknown",
	}
	for d, want := range dirs {
		if d.String() != want {
			t.Errorf("%d.String() = %q, want %q", d, d.String(), want)
		}
	}
}
