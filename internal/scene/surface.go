package scene

import (
	"github.com/Faultbox/col-workshop/pkg/math"
)

// Layer tags each draw call with the scene element it belongs to.
type Layer int

const (
	LayerGrid Layer = iota
	LayerAxes
	LayerMesh
	LayerSpheres
	LayerBoxes
	LayerBounds
	LayerShadow
)

var layerNames = [...]string{"grid", "axes", "mesh", "spheres", "boxes", "bounds", "shadow"}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[l]
}

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB builds an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Opaque reports whether alpha is 1.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// Style selects how DrawTriangles rasterizes.
type Style struct {
	// Wireframe draws triangle edges only.
	Wireframe bool
	// Lit applies flat Lambert shading from a fixed light in view space.
	Lit bool
}

// Surface is the render target a host hands to the renderer.
//
// Vertex slices are only valid for the duration of the call.
// DrawLines takes pairs of endpoints; DrawTriangles takes triples.
type Surface interface {
	// Size returns the pixel dimensions of the target.
	Size() (width, height int)
	// Clear resets the color buffer to bg and the depth buffer to far.
	Clear(bg Color)
	SetProjection(m math.Mat4)
	SetModelView(m math.Mat4)
	DrawLines(layer Layer, vertices []math.Vec3, c Color)
	DrawTriangles(layer Layer, vertices []math.Vec3, c Color, style Style)
}
