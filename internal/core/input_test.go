package core

import (
	"slices"
	"testing"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)
	f.Set(ActionLeft)
	f.Set(ActionLeft) // auto-repeat
	f.Set(ActionNone)
	f.Set(ActionDown)

	want := []Action{ActionDown, ActionLeft, ActionDown}
	if got := f.Actions(); !slices.Equal(got, want) {
		t.Errorf("Actions() = %v, want %v", got, want)
	}
	if !f.Has(ActionLeft) || f.Has(ActionUp) {
		t.Error("Has() reported wrong membership")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if !clone.Has(ActionPause) {
		t.Error("clone should be independent of the original")
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionPause, ActionRestart, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%v should not be a direction", a)
		}
	}
}
