package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/col-workshop/pkg/math"
)

// fitMargin leaves some room around the framed sphere.
const fitMargin = 1.1

// FitToBounds centres the view on the origin and picks the zoom distance
// at which a sphere enclosing [lo, hi] fills the vertical field of view.
// fovY is in degrees. Rotation is left as is.
func (c *Controller) FitToBounds(lo, hi math.Vec3, fovY float32) {
	radius := hi.Sub(lo).Length() * 0.5
	center := lo.Add(hi).Scale(0.5)

	// The pivot is the world origin, so an off-centre model needs the extra reach.
	reach := radius + center.Length()
	if reach <= 0 {
		return
	}

	half := math.DegToRad(fovY) / 2
	if half <= 0 {
		half = math.DegToRad(22.5)
	}
	dist := reach / math32.Sin(half) * fitMargin

	c.state.PanX = 0
	c.state.PanY = 0
	c.state.Zoom = c.clampZoom(dist)
}
