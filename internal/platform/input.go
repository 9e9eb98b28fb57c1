package platform

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/col-workshop/internal/viewport"
)

// wheelNotch converts SDL wheel steps to the angle units Viewport.Wheel expects.
const wheelNotch = 120

// Result reports host-level requests collected by Pump.
type Result struct {
	Quit       bool
	Resized    bool
	Exposed    bool
	Screenshot bool
}

// Pump drains the SDL event queue, forwarding pointer and key input to vp.
func Pump(vp *viewport.Viewport) Result {
	var res Result

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			res.Quit = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				res.Resized = true
			case sdl.WINDOWEVENT_EXPOSED:
				res.Exposed = true
			}

		case *sdl.MouseButtonEvent:
			b, ok := button(e.Button)
			if !ok {
				continue
			}
			if e.State == sdl.PRESSED {
				vp.ButtonDown(b, float32(e.X), float32(e.Y))
			} else {
				vp.ButtonUp(b)
			}

		case *sdl.MouseMotionEvent:
			vp.PointerMove(float32(e.X), float32(e.Y))

		case *sdl.MouseWheelEvent:
			y := e.Y
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				y = -y
			}
			vp.Wheel(float32(y) * wheelNotch)

		case *sdl.KeyboardEvent:
			if e.State != sdl.PRESSED {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE:
				res.Quit = true
			case sdl.K_p, sdl.K_F12:
				res.Screenshot = true
			default:
				vp.Do(KeyAction(e.Keysym.Sym))
			}
		}
	}
	return res
}

func button(b uint8) (viewport.Button, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return viewport.ButtonLeft, true
	case sdl.BUTTON_RIGHT:
		return viewport.ButtonRight, true
	case sdl.BUTTON_MIDDLE:
		return viewport.ButtonMiddle, true
	}
	return 0, false
}

// KeyAction maps a key to its viewer action.
func KeyAction(key sdl.Keycode) viewport.Action {
	switch key {
	case sdl.K_UP:
		return viewport.ActionRotateXNeg
	case sdl.K_DOWN:
		return viewport.ActionRotateXPos
	case sdl.K_LEFT:
		return viewport.ActionRotateYNeg
	case sdl.K_RIGHT:
		return viewport.ActionRotateYPos
	case sdl.K_q:
		return viewport.ActionRotateZNeg
	case sdl.K_e:
		return viewport.ActionRotateZPos
	case sdl.K_PLUS, sdl.K_EQUALS, sdl.K_KP_PLUS:
		return viewport.ActionZoomIn
	case sdl.K_MINUS, sdl.K_KP_MINUS:
		return viewport.ActionZoomOut
	case sdl.K_r:
		return viewport.ActionReset
	case sdl.K_f:
		return viewport.ActionFit
	case sdl.K_w:
		return viewport.ActionToggleWireframe
	case sdl.K_m:
		return viewport.ActionToggleMesh
	case sdl.K_s:
		return viewport.ActionToggleSpheres
	case sdl.K_b:
		return viewport.ActionToggleBoxes
	case sdl.K_o:
		return viewport.ActionToggleBounds
	case sdl.K_h:
		return viewport.ActionToggleShadow
	case sdl.K_c:
		return viewport.ActionToggleCheckerboard
	}
	return viewport.ActionNone
}
