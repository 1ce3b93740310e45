package viewer

import "testing"

func TestZeroStateControls(t *testing.T) {
	var s State
	c := s.Controls(true)
	if !c.Select || !c.Connect || !c.Refresh {
		t.Errorf("Disconnected state should allow selection and connect: %+v", c)
	}
	if c.Disconnect || c.Freeze || c.Save || c.Fullscreen || c.FlipH || c.FlipV {
		t.Errorf("Disconnected state should disable camera actions: %+v", c)
	}
	if c.FreezeLabel != "Freeze (Space)" || !c.ShowPrimary {
		t.Errorf("Unexpected labels: %+v", c)
	}
	if s.Controls(false).Connect {
		t.Error("Connect needs a camera to choose")
	}
}

func TestFreezeRequiresFrame(t *testing.T) {
	var s State
	if s.freeze() {
		t.Fatal("Freeze while disconnected must fail")
	}
	s.connect("Camera 0")
	if s.freeze() {
		t.Fatal("Freeze without a current frame must fail")
	}
	s.setCurrent(numberedFrame(1))
	if !s.freeze() {
		t.Fatal("Freeze should succeed with a frame")
	}
	if s.freeze() {
		t.Error("Freezing twice should be rejected")
	}
}

func TestFrozenFrameIsACopy(t *testing.T) {
	var s State
	s.connect("Camera 0")
	f := numberedFrame(1)
	s.setCurrent(f)
	s.freeze()
	f.Data[0] = 99
	s.setCurrent(numberedFrame(2))

	got, ok := s.Displayed()
	if !ok || got.Data[0] != 1 {
		t.Errorf("Displayed should be the frozen copy, got first byte %d", got.Data[0])
	}
	s.unfreeze()
	got, _ = s.Displayed()
	if got.Data[0] != 2 {
		t.Errorf("Displayed should be the live frame after unfreeze, got %d", got.Data[0])
	}
}

func TestDisconnectResets(t *testing.T) {
	var s State
	s.connect("Camera 1")
	s.setCurrent(numberedFrame(1))
	s.freeze()
	s.Flip = Flip{Horizontal: true, Vertical: true}
	s.Display = Fullscreen
	s.disconnect()

	if s.Connection != Disconnected || s.Freeze != Live || s.Display != Windowed {
		t.Errorf("Unexpected state %+v", s)
	}
	if s.Flip != (Flip{}) {
		t.Error("Flip flags should reset")
	}
	if _, ok := s.Displayed(); ok {
		t.Error("Frames should be cleared")
	}
}

func TestCanEnterFullscreen(t *testing.T) {
	var s State
	if s.canEnterFullscreen() {
		t.Error("Disconnected state cannot go fullscreen")
	}
	s.connect("Camera 0")
	if s.canEnterFullscreen() {
		t.Error("No frame yet")
	}
	s.setCurrent(numberedFrame(1))
	if !s.canEnterFullscreen() {
		t.Error("Should allow fullscreen with a frame")
	}
	s.Display = Fullscreen
	if s.canEnterFullscreen() {
		t.Error("Already fullscreen")
	}
}

func TestStateStrings(t *testing.T) {
	if Connected.String() != "connected" || Frozen.String() != "frozen" || Fullscreen.String() != "fullscreen" {
		t.Error("Unexpected state names")
	}
}
