package viewport

import (
	"go.uber.org/zap"

	"github.com/Faultbox/col-workshop/internal/camera"
)

// RotateStep is the rotation applied by one discrete rotate action, in degrees.
const RotateStep = 15

// Action is a discrete viewer command, usually bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionRotateXPos
	ActionRotateXNeg
	ActionRotateYPos
	ActionRotateYNeg
	ActionRotateZPos
	ActionRotateZNeg
	ActionZoomIn
	ActionZoomOut
	ActionReset
	ActionFit
	ActionToggleWireframe
	ActionToggleMesh
	ActionToggleSpheres
	ActionToggleBoxes
	ActionToggleBounds
	ActionToggleShadow
	ActionToggleCheckerboard
)

var actionNames = map[Action]string{
	ActionNone:               "none",
	ActionRotateXPos:         "rotate-x+",
	ActionRotateXNeg:         "rotate-x-",
	ActionRotateYPos:         "rotate-y+",
	ActionRotateYNeg:         "rotate-y-",
	ActionRotateZPos:         "rotate-z+",
	ActionRotateZNeg:         "rotate-z-",
	ActionZoomIn:             "zoom-in",
	ActionZoomOut:            "zoom-out",
	ActionReset:              "reset",
	ActionFit:                "fit",
	ActionToggleWireframe:    "toggle-wireframe",
	ActionToggleMesh:         "toggle-mesh",
	ActionToggleSpheres:      "toggle-spheres",
	ActionToggleBoxes:        "toggle-boxes",
	ActionToggleBounds:       "toggle-bounds",
	ActionToggleShadow:       "toggle-shadow",
	ActionToggleCheckerboard: "toggle-checkerboard",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Do performs a. It reports false for ActionNone and unknown actions.
func (v *Viewport) Do(a Action) bool {
	switch a {
	case ActionRotateXPos:
		v.Rotate(camera.AxisX, RotateStep)
	case ActionRotateXNeg:
		v.Rotate(camera.AxisX, -RotateStep)
	case ActionRotateYPos:
		v.Rotate(camera.AxisY, RotateStep)
	case ActionRotateYNeg:
		v.Rotate(camera.AxisY, -RotateStep)
	case ActionRotateZPos:
		v.Rotate(camera.AxisZ, RotateStep)
	case ActionRotateZNeg:
		v.Rotate(camera.AxisZ, -RotateStep)
	case ActionZoomIn:
		v.ZoomIn()
	case ActionZoomOut:
		v.ZoomOut()
	case ActionReset:
		v.ResetView()
	case ActionFit:
		v.FitToModel()
	case ActionToggleWireframe, ActionToggleMesh, ActionToggleSpheres,
		ActionToggleBoxes, ActionToggleBounds, ActionToggleShadow, ActionToggleCheckerboard:
		v.toggle(a)
	default:
		return false
	}
	v.log.Debug("action", zap.Stringer("action", a))
	return true
}

func (v *Viewport) toggle(a Action) {
	v.mu.Lock()
	defer v.mu.Unlock()

	o := &v.opts
	switch a {
	case ActionToggleWireframe:
		o.ShowWireframe = !o.ShowWireframe
	case ActionToggleMesh:
		o.ShowMesh = !o.ShowMesh
	case ActionToggleSpheres:
		o.ShowSpheres = !o.ShowSpheres
	case ActionToggleBoxes:
		o.ShowBoxes = !o.ShowBoxes
	case ActionToggleBounds:
		o.ShowBounds = !o.ShowBounds
	case ActionToggleShadow:
		o.ShowShadowMesh = !o.ShowShadowMesh
	case ActionToggleCheckerboard:
		o.Checkerboard = !o.Checkerboard
	}
	v.dirty = true
}
