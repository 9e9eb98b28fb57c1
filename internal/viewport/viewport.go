// Package viewport ties pointer and keyboard input, a camera controller and
// the scene renderer into one host-facing collision model view.
//
// A Viewport is normally driven from a single UI thread, but model binding
// may happen from another goroutine: the bound model is compiled into an
// immutable snapshot under a reader-writer lock and picked up by the next
// frame.
package viewport

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/col-workshop/internal/camera"
	"github.com/Faultbox/col-workshop/internal/logger"
	"github.com/Faultbox/col-workshop/internal/scene"
	"github.com/Faultbox/col-workshop/pkg/col"
)

// Options configures a new Viewport.
type Options struct {
	Camera   camera.Settings
	Renderer scene.Config
	View     scene.ViewOptions
}

// DefaultOptions returns the stock camera, renderer and view settings.
func DefaultOptions() Options {
	return Options{
		Camera:   camera.DefaultSettings(),
		Renderer: scene.DefaultConfig(),
		View:     scene.DefaultViewOptions(),
	}
}

// Viewport is one collision model view with its own camera.
type Viewport struct {
	// modelMu guards model and snap.
	modelMu sync.RWMutex
	model   *col.Model
	snap    *scene.Snapshot

	// mu guards everything below. It is taken before modelMu, never after.
	mu            sync.Mutex
	cam           *camera.Controller
	input         Interaction
	renderer      *scene.Renderer
	opts          scene.ViewOptions
	width, height int
	dirty         bool

	log *zap.Logger
}

// New creates an empty viewport showing only the grid and axes.
func New(opts Options) *Viewport {
	return &Viewport{
		cam:      camera.New(opts.Camera),
		renderer: scene.NewRenderer(opts.Renderer),
		opts:     opts.View,
		dirty:    true,
		log:      logger.Named("viewport"),
	}
}

// NewDefault creates a viewport with DefaultOptions.
func NewDefault() *Viewport {
	return New(DefaultOptions())
}

// BindModel replaces the displayed model. nil clears the view to the grid.
// The model must not be mutated while bound; bind it again after editing.
func (v *Viewport) BindModel(m *col.Model) {
	snap := scene.Compile(m)

	v.modelMu.Lock()
	v.model = m
	v.snap = snap
	v.modelMu.Unlock()

	if snap != nil {
		v.log.Debug("model bound",
			zap.String("name", snap.Name),
			zap.Int("triangles", snap.MeshTriangles()),
			zap.Int("spheres", len(snap.Spheres)),
			zap.Int("boxes", len(snap.Boxes)),
			zap.Int("skipped", snap.Skipped.Total()),
		)
	} else {
		v.log.Debug("model cleared")
	}
	v.markDirty()
}

// Model returns the bound model, or nil.
func (v *Viewport) Model() *col.Model {
	v.modelMu.RLock()
	defer v.modelMu.RUnlock()
	return v.model
}

// Snapshot returns the compiled form of the bound model, or nil.
func (v *Viewport) Snapshot() *scene.Snapshot {
	v.modelMu.RLock()
	defer v.modelMu.RUnlock()
	return v.snap
}

// SetViewOptions applies a partial update. Omitted fields keep their value.
func (v *Viewport) SetViewOptions(u scene.ViewOptionsUpdate) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.opts = v.opts.Apply(u)
	v.dirty = true
}

// Options returns the current view options.
func (v *Viewport) Options() scene.ViewOptions {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.opts
}

// Resize recomputes the projection for a width×height target.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.resize(width, height)
}

func (v *Viewport) resize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.renderer.Resize(width, height)
	v.dirty = true
}

// Size returns the last size passed to Resize or picked up by Frame.
func (v *Viewport) Size() (width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

// RendererConfig returns the renderer constants.
func (v *Viewport) RendererConfig() scene.Config {
	return v.renderer.Config()
}

// Frame draws the current state onto s. The projection follows s.Size().
func (v *Viewport) Frame(s scene.Surface) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.resize(s.Size())
	v.renderer.Render(s, v.cam.State(), v.Snapshot(), v.opts)
	v.dirty = false
}

// Dirty reports whether anything changed since the last Frame.
func (v *Viewport) Dirty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dirty
}

// Invalidate forces the next Dirty call to report true.
func (v *Viewport) Invalidate() {
	v.markDirty()
}

func (v *Viewport) markDirty() {
	v.mu.Lock()
	v.dirty = true
	v.mu.Unlock()
}

// Camera returns the current camera pose.
func (v *Viewport) Camera() camera.State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cam.State()
}

// SetCamera replaces the camera pose. Zoom is clamped.
func (v *Viewport) SetCamera(s camera.State) {
	v.update(func(c *camera.Controller) { c.SetState(s) })
}

// update runs fn on the camera under the lock and marks the view dirty.
func (v *Viewport) update(fn func(c *camera.Controller)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(v.cam)
	v.dirty = true
}

// Rotate rotates the camera about axis by degrees, wrapping into [0, 360).
func (v *Viewport) Rotate(axis camera.Axis, degrees float32) {
	v.update(func(c *camera.Controller) { c.Rotate(axis, degrees) })
}

// Pan moves the camera opposite to the delta.
func (v *Viewport) Pan(dx, dy float32) {
	v.update(func(c *camera.Controller) { c.Pan(dx, dy) })
}

// ZoomBy applies a raw zoom delta.
func (v *Viewport) ZoomBy(delta float32) {
	v.update(func(c *camera.Controller) { c.ZoomBy(delta) })
}

// ZoomIn steps the camera distance up by one.
func (v *Viewport) ZoomIn() {
	v.update(func(c *camera.Controller) { c.ZoomIn() })
}

// ZoomOut steps the camera distance down by one.
func (v *Viewport) ZoomOut() {
	v.update(func(c *camera.Controller) { c.ZoomOut() })
}

// ResetView snaps the camera back to its default pose.
func (v *Viewport) ResetView() {
	v.update(func(c *camera.Controller) { c.Reset() })
}

// FitToModel zooms so the bound model fills the view. It reports false when
// there is no model or the model has no extent.
func (v *Viewport) FitToModel() bool {
	m := v.Model()
	if m == nil {
		return false
	}

	var bb col.BoundingBox
	if m.Bounds != nil && m.Bounds.Valid() {
		bb = *m.Bounds
	} else {
		var ok bool
		if bb, ok = m.ComputeBounds(); !ok {
			return false
		}
	}

	fov := v.renderer.Config().FovY
	v.update(func(c *camera.Controller) { c.FitToBounds(bb.Min, bb.Max, fov) })
	return true
}

// ButtonDown starts a drag. Left rotates and right pans.
func (v *Viewport) ButtonDown(b Button, x, y float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.input.ButtonDown(b, x, y)
}

// ButtonUp ends any drag.
func (v *Viewport) ButtonUp(b Button) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.input.ButtonUp(b)
}

// PointerMove applies the drag for the current mode. Hovering changes nothing
// but the tracked position.
func (v *Viewport) PointerMove(x, y float32) {
	v.mu.Lock()
	defer v.mu.Unlock()

	dx, dy, mode := v.input.PointerMove(x, y)
	switch mode {
	case DraggingLeft:
		v.cam.DragRotate(dx, dy)
	case DraggingRight:
		v.cam.Pan(dx, dy)
	default:
		return
	}
	v.dirty = true
}

// Wheel zooms by a scroll wheel angle delta.
func (v *Viewport) Wheel(angleDelta float32) {
	v.update(func(c *camera.Controller) { c.Wheel(angleDelta) })
}

// Mode returns the pointer interaction state.
func (v *Viewport) Mode() Mode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.input.Mode()
}
