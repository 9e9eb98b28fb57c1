// Package camera implements the orbit camera used by the collision viewport.
//
// Angles are stored in degrees. The camera is positioned by translating the
// scene away from the eye and then rotating it in view space, so rotation
// always pivots on the world origin as seen from the current pan offset.
package camera

import (
	"github.com/Faultbox/col-workshop/pkg/math"
)

// Axis selects a rotation field.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// State is the camera pose.
type State struct {
	RotationX float32 // Pitch, degrees
	RotationY float32 // Yaw, degrees
	RotationZ float32 // Roll, degrees. Stored but not applied to the view.
	PanX      float32
	PanY      float32
	Zoom      float32 // Distance from the pivot
}

// DefaultState is the pose restored by Reset.
func DefaultState() State {
	return State{
		RotationX: 20,
		RotationY: 45,
		RotationZ: 0,
		PanX:      0,
		PanY:      0,
		Zoom:      10,
	}
}

// Settings controls sensitivities and limits.
type Settings struct {
	// Pan is scaled by PanSensitivity per input unit.
	PanSensitivity float32
	// DragSensitivity is degrees of rotation per pixel of left-drag.
	DragSensitivity float32
	// ZoomStep scales ZoomBy deltas. ZoomIn/ZoomOut pass unit deltas.
	ZoomStep float32
	// WheelSensitivity converts wheel angle units to ZoomBy deltas.
	WheelSensitivity float32

	MinZoom float32
	MaxZoom float32

	Default State
}

// DefaultSettings returns the stock viewport tuning.
func DefaultSettings() Settings {
	return Settings{
		PanSensitivity:   0.05,
		DragSensitivity:  0.5,
		ZoomStep:         1.0,
		WheelSensitivity: 0.01,
		MinZoom:          1.0,
		MaxZoom:          100.0,
		Default:          DefaultState(),
	}
}

// Controller owns one camera pose and applies input deltas to it.
type Controller struct {
	state    State
	settings Settings
}

// New creates a controller at the default pose of settings.
func New(settings Settings) *Controller {
	if settings.MinZoom > settings.MaxZoom {
		settings.MinZoom, settings.MaxZoom = settings.MaxZoom, settings.MinZoom
	}
	c := &Controller{settings: settings}
	c.Reset()
	return c
}

// NewDefault creates a controller with DefaultSettings.
func NewDefault() *Controller {
	return New(DefaultSettings())
}

// State returns a copy of the current pose.
func (c *Controller) State() State {
	return c.state
}

// SetState replaces the pose. Zoom is clamped into range.
func (c *Controller) SetState(s State) {
	s.Zoom = c.clampZoom(s.Zoom)
	c.state = s
}

// Settings returns the controller tuning.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Rotate adds degrees to one rotation field and wraps it into [0, 360).
func (c *Controller) Rotate(axis Axis, degrees float32) {
	switch axis {
	case AxisX:
		c.state.RotationX = math.WrapDegrees(c.state.RotationX + degrees)
	case AxisY:
		c.state.RotationY = math.WrapDegrees(c.state.RotationY + degrees)
	case AxisZ:
		c.state.RotationZ = math.WrapDegrees(c.state.RotationZ + degrees)
	}
}

// RotateX rotates about the X axis.
func (c *Controller) RotateX(degrees float32) { c.Rotate(AxisX, degrees) }

// RotateY rotates about the Y axis.
func (c *Controller) RotateY(degrees float32) { c.Rotate(AxisY, degrees) }

// RotateZ rotates about the Z axis.
func (c *Controller) RotateZ(degrees float32) { c.Rotate(AxisZ, degrees) }

// Pan moves the camera opposite to the input delta, so dragging right
// slides the view right.
func (c *Controller) Pan(dx, dy float32) {
	c.state.PanX -= dx * c.settings.PanSensitivity
	c.state.PanY -= dy * c.settings.PanSensitivity
}

// ZoomBy moves the camera by -delta*ZoomStep and clamps the distance.
func (c *Controller) ZoomBy(delta float32) {
	c.state.Zoom = c.clampZoom(c.state.Zoom - delta*c.settings.ZoomStep)
}

// ZoomIn increases the zoom distance by one step.
func (c *Controller) ZoomIn() { c.ZoomBy(-1) }

// ZoomOut decreases the zoom distance by one step.
func (c *Controller) ZoomOut() { c.ZoomBy(1) }

// Wheel applies a scroll wheel angle delta (120 units per notch on most mice).
func (c *Controller) Wheel(angleDelta float32) {
	c.ZoomBy(angleDelta * c.settings.WheelSensitivity)
}

// DragRotate applies a left-button drag. Unlike Rotate, the result is not wrapped.
func (c *Controller) DragRotate(dx, dy float32) {
	c.state.RotationY += dx * c.settings.DragSensitivity
	c.state.RotationX += dy * c.settings.DragSensitivity
}

// Reset snaps back to the default pose.
func (c *Controller) Reset() {
	c.state = c.settings.Default
	c.state.Zoom = c.clampZoom(c.state.Zoom)
}

// ViewMatrix returns Translate(panX, -panY, -zoom) * RotateX * RotateY.
func (c *Controller) ViewMatrix() math.Mat4 {
	return ViewMatrix(c.state)
}

// ViewMatrix builds the model-view matrix for s.
func ViewMatrix(s State) math.Mat4 {
	return math.Translate(s.PanX, -s.PanY, -s.Zoom).
		Mul(math.RotateX(math.DegToRad(s.RotationX))).
		Mul(math.RotateY(math.DegToRad(s.RotationY)))
}

func (c *Controller) clampZoom(z float32) float32 {
	return math.Clamp(z, c.settings.MinZoom, c.settings.MaxZoom)
}
