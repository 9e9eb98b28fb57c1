package viewport

import "testing"

func TestInteractionTransitions(t *testing.T) {
	tests := []struct {
		name  string
		steps func(i *Interaction)
		want  Mode
	}{
		{"initial", func(i *Interaction) {}, Idle},
		{"left down", func(i *Interaction) { i.ButtonDown(ButtonLeft, 0, 0) }, DraggingLeft},
		{"right down", func(i *Interaction) { i.ButtonDown(ButtonRight, 0, 0) }, DraggingRight},
		{"middle down", func(i *Interaction) { i.ButtonDown(ButtonMiddle, 0, 0) }, Idle},
		{"left then right", func(i *Interaction) {
			i.ButtonDown(ButtonLeft, 0, 0)
			i.ButtonDown(ButtonRight, 0, 0)
		}, DraggingRight},
		{"release other button", func(i *Interaction) {
			i.ButtonDown(ButtonLeft, 0, 0)
			i.ButtonUp(ButtonRight)
		}, Idle},
		{"release while idle", func(i *Interaction) { i.ButtonUp(ButtonLeft) }, Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i Interaction
			tt.steps(&i)
			if got := i.Mode(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestInteractionDeltas(t *testing.T) {
	var i Interaction
	i.PointerMove(5, 5)
	i.ButtonDown(ButtonLeft, 10, 20)

	dx, dy, mode := i.PointerMove(13, 16)
	if dx != 3 || dy != -4 {
		t.Errorf("expected delta (3, -4), got (%v, %v)", dx, dy)
	}
	if mode != DraggingLeft {
		t.Errorf("expected %v, got %v", DraggingLeft, mode)
	}

	dx, dy, _ = i.PointerMove(14, 16)
	if dx != 1 || dy != 0 {
		t.Errorf("expected delta relative to last move, got (%v, %v)", dx, dy)
	}

	x, y := i.LastPosition()
	if x != 14 || y != 16 {
		t.Errorf("expected last position (14, 16), got (%v, %v)", x, y)
	}
}

func TestModeString(t *testing.T) {
	if DraggingRight.String() != "dragging-right" {
		t.Errorf("unexpected name %q", DraggingRight.String())
	}
	if Mode(9).String() != "unknown" {
		t.Errorf("unexpected name %q", Mode(9).String())
	}
	if ButtonMiddle.String() != "middle" {
		t.Errorf("unexpected name %q", ButtonMiddle.String())
	}
}
