// Package trace provides a Surface that records draw calls instead of drawing.
package trace

import (
	"github.com/Faultbox/col-workshop/internal/scene"
	"github.com/Faultbox/col-workshop/pkg/math"
)

// Op identifies the recorded surface call.
type Op int

const (
	OpClear Op = iota
	OpProjection
	OpModelView
	OpLines
	OpTriangles
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpProjection:
		return "projection"
	case OpModelView:
		return "modelview"
	case OpLines:
		return "lines"
	case OpTriangles:
		return "triangles"
	default:
		return "unknown"
	}
}

// Call is one recorded surface call.
type Call struct {
	Op       Op
	Layer    scene.Layer
	Vertices []math.Vec3
	Color    scene.Color
	Style    scene.Style
	Matrix   math.Mat4
}

// Recorder is a headless scene.Surface. It keeps every call since the last Reset.
type Recorder struct {
	Width, Height int
	Calls         []Call
}

// New returns a recorder reporting the given size.
func New(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Reset drops recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

func (r *Recorder) Clear(bg scene.Color) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: bg})
}

func (r *Recorder) SetProjection(m math.Mat4) {
	r.Calls = append(r.Calls, Call{Op: OpProjection, Matrix: m})
}

func (r *Recorder) SetModelView(m math.Mat4) {
	r.Calls = append(r.Calls, Call{Op: OpModelView, Matrix: m})
}

func (r *Recorder) DrawLines(layer scene.Layer, vertices []math.Vec3, c scene.Color) {
	r.Calls = append(r.Calls, Call{
		Op:       OpLines,
		Layer:    layer,
		Vertices: append([]math.Vec3(nil), vertices...),
		Color:    c,
	})
}

func (r *Recorder) DrawTriangles(layer scene.Layer, vertices []math.Vec3, c scene.Color, style scene.Style) {
	r.Calls = append(r.Calls, Call{
		Op:       OpTriangles,
		Layer:    layer,
		Vertices: append([]math.Vec3(nil), vertices...),
		Color:    c,
		Style:    style,
	})
}

// Draws returns the line and triangle calls in order.
func (r *Recorder) Draws() []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == OpLines || c.Op == OpTriangles {
			out = append(out, c)
		}
	}
	return out
}

// Layer returns the draw calls tagged with layer.
func (r *Recorder) Layer(layer scene.Layer) []Call {
	var out []Call
	for _, c := range r.Draws() {
		if c.Layer == layer {
			out = append(out, c)
		}
	}
	return out
}

// LayerSequence returns the layer of each draw call with consecutive repeats collapsed.
func (r *Recorder) LayerSequence() []scene.Layer {
	var seq []scene.Layer
	for _, c := range r.Draws() {
		if len(seq) == 0 || seq[len(seq)-1] != c.Layer {
			seq = append(seq, c.Layer)
		}
	}
	return seq
}

var _ scene.Surface = (*Recorder)(nil)
