package viewer

import "philipredstone/camviewer/pkg/frame"

type Connection int

const (
	Disconnected Connection = iota
	Connected
)

func (c Connection) String() string {
	if c == Connected {
		return "connected"
	}
	return "disconnected"
}

type Freeze int

const (
	Live Freeze = iota
	Frozen
)

func (f Freeze) String() string {
	if f == Frozen {
		return "frozen"
	}
	return "live"
}

type Display int

const (
	Windowed Display = iota
	Fullscreen
)

func (d Display) String() string {
	if d == Fullscreen {
		return "fullscreen"
	}
	return "windowed"
}

// Flip holds the mirror flags applied to each live frame.
type Flip struct {
	Horizontal bool
	Vertical   bool
}

// State is the view state of the window. The zero value is disconnected,
// live, windowed and unflipped.
//
// Frozen is only ever set while connected and while a current frame
// exists. The frozen slot is a copy taken at freeze time; later flip
// changes never touch it.
type State struct {
	Connection Connection
	Freeze     Freeze
	Display    Display
	Flip       Flip
	Device     string

	current *frame.Frame
	frozen  *frame.Frame
}

// Current returns the latest processed live frame, if any.
func (s *State) Current() (frame.Frame, bool) {
	if s.current == nil {
		return frame.Frame{}, false
	}
	return *s.current, true
}

// FrozenFrame returns the frozen snapshot, if any.
func (s *State) FrozenFrame() (frame.Frame, bool) {
	if s.frozen == nil {
		return frame.Frame{}, false
	}
	return *s.frozen, true
}

// Displayed is the frame a save or fullscreen request works with: the
// frozen one when frozen, else the current one.
func (s *State) Displayed() (frame.Frame, bool) {
	if s.Freeze == Frozen {
		if f, ok := s.FrozenFrame(); ok {
			return f, true
		}
	}
	return s.Current()
}

func (s *State) connect(device string) {
	s.Connection = Connected
	s.Device = device
	s.Freeze = Live
	s.current = nil
	s.frozen = nil
}

func (s *State) disconnect() {
	s.Connection = Disconnected
	s.Freeze = Live
	s.Display = Windowed
	s.Flip = Flip{}
	s.Device = ""
	s.current = nil
	s.frozen = nil
}

func (s *State) setCurrent(f frame.Frame) {
	s.current = &f
}

// freeze copies the current frame into the frozen slot. It fails when
// there is nothing to freeze.
func (s *State) freeze() bool {
	if s.Connection != Connected || s.Freeze == Frozen || s.current == nil {
		return false
	}
	c := s.current.Clone()
	s.frozen = &c
	s.Freeze = Frozen
	return true
}

func (s *State) unfreeze() bool {
	if s.Freeze != Frozen {
		return false
	}
	s.Freeze = Live
	s.frozen = nil
	return true
}

func (s *State) canEnterFullscreen() bool {
	if s.Connection != Connected || s.Display == Fullscreen {
		return false
	}
	_, ok := s.Displayed()
	return ok
}

// Controls says which actions the window offers in its current state.
type Controls struct {
	Select     bool
	Refresh    bool
	Connect    bool
	Disconnect bool
	Freeze     bool
	Save       bool
	Fullscreen bool
	FlipH      bool
	FlipV      bool

	Flip          Flip
	FreezeLabel   string
	ShowPrimary   bool // false while fullscreen hides the control bar
	HaveSelection bool
}

const (
	freezeLabel   = "Freeze (Space)"
	unfreezeLabel = "Unfreeze (Space)"
)

// Controls derives control enablement from the state. haveCameras tells
// whether the selector lists at least one real device.
func (s *State) Controls(haveCameras bool) Controls {
	connected := s.Connection == Connected
	c := Controls{
		Select:        !connected,
		Refresh:       !connected,
		Connect:       !connected && haveCameras,
		Disconnect:    connected,
		Freeze:        connected,
		Save:          connected,
		Fullscreen:    connected,
		FlipH:         connected,
		FlipV:         connected,
		Flip:          s.Flip,
		FreezeLabel:   freezeLabel,
		ShowPrimary:   s.Display == Windowed,
		HaveSelection: haveCameras,
	}
	if s.Freeze == Frozen {
		c.FreezeLabel = unfreezeLabel
	}
	return c
}
