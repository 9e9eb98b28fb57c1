package viewport

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Mode is the pointer interaction state.
type Mode int

const (
	Idle Mode = iota
	DraggingLeft
	DraggingRight
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case DraggingLeft:
		return "dragging-left"
	case DraggingRight:
		return "dragging-right"
	default:
		return "unknown"
	}
}

// Interaction tracks which drag is active and where the pointer was last seen.
//
// Only one drag is active at a time. A second press replaces the mode of the
// first, and any release returns to Idle.
type Interaction struct {
	mode         Mode
	lastX, lastY float32
}

// Mode returns the current state.
func (i *Interaction) Mode() Mode {
	return i.mode
}

// LastPosition returns the last recorded pointer position.
func (i *Interaction) LastPosition() (x, y float32) {
	return i.lastX, i.lastY
}

// ButtonDown records the press position and enters the drag mode for b.
// Buttons other than left and right keep the current mode.
func (i *Interaction) ButtonDown(b Button, x, y float32) {
	i.lastX, i.lastY = x, y
	switch b {
	case ButtonLeft:
		i.mode = DraggingLeft
	case ButtonRight:
		i.mode = DraggingRight
	}
}

// ButtonUp ends any drag.
func (i *Interaction) ButtonUp(Button) {
	i.mode = Idle
}

// PointerMove records the new position and returns the delta from the
// previous one together with the mode it applies to.
func (i *Interaction) PointerMove(x, y float32) (dx, dy float32, mode Mode) {
	dx, dy = x-i.lastX, y-i.lastY
	i.lastX, i.lastY = x, y
	return dx, dy, i.mode
}
