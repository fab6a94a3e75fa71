package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionFlip) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionFlip)
	f.Set(ActionLeft)
	if !f.Has(ActionFlip) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionFlip) {
		t.Error("Clear should remove actions")
	}
}

func TestInputFrameClick(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.ClickAt(); ok {
		t.Fatal("new frame should have no click")
	}

	f.SetClick(3, 4)
	f.SetClick(7, 9)
	p, ok := f.ClickAt()
	if !ok || p != (Point{X: 7, Y: 9}) {
		t.Errorf("ClickAt() = %v, %v; expected last click (7, 9)", p, ok)
	}

	f.Clear()
	if _, ok := f.ClickAt(); ok {
		t.Error("Clear should drop the click")
	}
}
