// Package scene draws collision models through a host-supplied Surface.
//
// Each frame is emitted in a fixed order: grid and axes, mesh, spheres,
// boxes, bounds, shadow mesh. Translucent overlays rely on that order and
// the depth test rather than per-object sorting.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/col-workshop/internal/camera"
	"github.com/Faultbox/col-workshop/internal/logger"
	"github.com/Faultbox/col-workshop/pkg/math"
)

// Config holds renderer constants.
type Config struct {
	GridHalfCount int     // Lines on each side of the origin
	GridStep      float32 // Spacing between grid lines
	AxisLength    float32

	SphereSlices int
	SphereStacks int

	FovY float32 // Vertical field of view, degrees
	Near float32
	Far  float32
}

// DefaultConfig returns the stock renderer constants.
func DefaultConfig() Config {
	return Config{
		GridHalfCount: 50,
		GridStep:      5,
		AxisLength:    10,
		SphereSlices:  16,
		SphereStacks:  16,
		FovY:          45,
		Near:          0.1,
		Far:           1000,
	}
}

// Axis colors.
var (
	AxisXColor = Color{1, 0, 0, 1}
	AxisYColor = Color{0, 1, 0, 1}
	AxisZColor = Color{0, 0, 1, 1}
)

// Renderer turns a camera pose and a snapshot into surface draw calls.
type Renderer struct {
	config Config

	width, height int
	projection    math.Mat4

	grid       []math.Vec3
	axes       [3][]math.Vec3
	unitSphere []math.Vec3

	// scratch is reused across primitives within a frame.
	scratch []math.Vec3

	log *zap.Logger
}

// NewRenderer creates a renderer with a 1×1 projection until the first Resize.
func NewRenderer(cfg Config) *Renderer {
	r := &Renderer{
		config:     cfg,
		grid:       GridLines(cfg.GridHalfCount, cfg.GridStep),
		axes:       AxisLines(cfg.AxisLength),
		unitSphere: UnitSphereWireframe(cfg.SphereSlices, cfg.SphereStacks),
		log:        logger.Named("scene"),
	}
	r.Resize(1, 1)
	return r
}

// Config returns the renderer constants.
func (r *Renderer) Config() Config {
	return r.config
}

// Resize recomputes the perspective projection for a width×height target.
// A zero height falls back to an aspect ratio of 1.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	r.projection = math.Perspective(math.DegToRad(r.config.FovY), Aspect(width, height), r.config.Near, r.config.Far)
	r.log.Debug("projection updated", zap.Int("width", width), zap.Int("height", height))
}

// Aspect returns width/height, or 1 when height is not positive.
func Aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Projection returns the current projection matrix.
func (r *Renderer) Projection() math.Mat4 {
	return r.projection
}

// Render draws one frame. A nil snapshot draws only the grid and axes.
func (r *Renderer) Render(s Surface, cam camera.State, snap *Snapshot, opts ViewOptions) {
	pal := opts.Palette

	s.Clear(pal.Background)
	s.SetProjection(r.projection)
	s.SetModelView(camera.ViewMatrix(cam))

	s.DrawLines(LayerGrid, r.grid, pal.Grid)
	s.DrawLines(LayerAxes, r.axes[0], AxisXColor)
	s.DrawLines(LayerAxes, r.axes[1], AxisYColor)
	s.DrawLines(LayerAxes, r.axes[2], AxisZColor)

	if snap == nil {
		return
	}

	if opts.ShowMesh && len(snap.Mesh) > 0 {
		if opts.ShowWireframe {
			s.DrawTriangles(LayerMesh, snap.Mesh, pal.Wireframe, Style{Wireframe: true})
		} else {
			s.DrawTriangles(LayerMesh, snap.Mesh, pal.Mesh, Style{Lit: true})
		}
	}

	if opts.ShowSpheres {
		for _, sp := range snap.Spheres {
			r.scratch = AppendTransformed(r.scratch[:0], r.unitSphere, sp.Center, sp.Radius)
			s.DrawLines(LayerSpheres, r.scratch, pal.Sphere)
		}
	}

	if opts.ShowBoxes {
		for _, b := range snap.Boxes {
			r.scratch = AppendBoxEdges(r.scratch[:0], b.Min, b.Max)
			s.DrawLines(LayerBoxes, r.scratch, pal.Box)
		}
	}

	if opts.ShowBounds && snap.Bounds != nil {
		r.scratch = AppendBoxEdges(r.scratch[:0], snap.Bounds.Min, snap.Bounds.Max)
		s.DrawLines(LayerBounds, r.scratch, pal.Bounds.WithAlpha(1))
	}

	if opts.ShowShadowMesh && snap.HasShadow && len(snap.Shadow) > 0 {
		s.DrawTriangles(LayerShadow, snap.Shadow, pal.Shadow, Style{Wireframe: true})
	}
}
