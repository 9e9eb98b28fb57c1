// Package soft implements scene.Surface with a z-buffered software rasterizer.
//
// It needs no GPU or window, which makes it the surface of choice for the
// headless renderer CLI and for pixel-level tests.
package soft

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/Faultbox/col-workshop/internal/scene"
	"github.com/Faultbox/col-workshop/pkg/math"
)

// Checkerboard colors and default cell size in pixels.
var (
	checkerLight = color.RGBA{200, 200, 200, 255}
	checkerDark  = color.RGBA{150, 150, 150, 255}
)

const DefaultCheckerSize = 16

// Surface renders into an RGBA image.
type Surface struct {
	img   *image.RGBA
	depth []float32

	projection math.Mat4
	modelView  math.Mat4
	mvp        math.Mat4

	// Checkerboard replaces the clear color with a two-tone pattern.
	Checkerboard bool
	CheckerSize  int

	// LightDir is the view-space direction towards the light used for Lit triangles.
	LightDir math.Vec3
	Ambient  float32
	Diffuse  float32
}

// New creates a surface of the given size. Dimensions below 1 are raised to 1.
func New(width, height int) *Surface {
	s := &Surface{
		projection:  math.Identity(),
		modelView:   math.Identity(),
		mvp:         math.Identity(),
		CheckerSize: DefaultCheckerSize,
		LightDir:    math.Vec3{X: 1, Y: 1, Z: 1}.Normalize(),
		Ambient:     0.3,
		Diffuse:     0.8,
	}
	s.Resize(width, height)
	return s
}

// Resize reallocates the color and depth buffers.
func (s *Surface) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if s.img != nil && s.img.Rect.Dx() == width && s.img.Rect.Dy() == height {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.depth = make([]float32, width*height)
	s.clearDepth()
}

// Image returns the color buffer. It is overwritten by the next frame.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Size implements scene.Surface.
func (s *Surface) Size() (int, int) {
	return s.img.Rect.Dx(), s.img.Rect.Dy()
}

// Clear implements scene.Surface.
func (s *Surface) Clear(bg scene.Color) {
	w, h := s.Size()
	if s.Checkerboard {
		size := s.CheckerSize
		if size < 1 {
			size = DefaultCheckerSize
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := checkerDark
				if (x/size+y/size)%2 == 0 {
					c = checkerLight
				}
				s.img.SetRGBA(x, y, c)
			}
		}
	} else {
		c := toRGBA(bg.WithAlpha(1))
		for i := 0; i < len(s.img.Pix); i += 4 {
			s.img.Pix[i+0] = c.R
			s.img.Pix[i+1] = c.G
			s.img.Pix[i+2] = c.B
			s.img.Pix[i+3] = 255
		}
	}
	s.clearDepth()
}

func (s *Surface) clearDepth() {
	for i := range s.depth {
		s.depth[i] = math32.Inf(1)
	}
}

// SetProjection implements scene.Surface.
func (s *Surface) SetProjection(m math.Mat4) {
	s.projection = m
	s.mvp = s.projection.Mul(s.modelView)
}

// SetModelView implements scene.Surface.
func (s *Surface) SetModelView(m math.Mat4) {
	s.modelView = m
	s.mvp = s.projection.Mul(s.modelView)
}

// DrawLines implements scene.Surface.
func (s *Surface) DrawLines(_ scene.Layer, vertices []math.Vec3, c scene.Color) {
	for i := 0; i+1 < len(vertices); i += 2 {
		s.line(s.mvp.Project(vertices[i]), s.mvp.Project(vertices[i+1]), c)
	}
}

// DrawTriangles implements scene.Surface. Both faces of each triangle are drawn.
func (s *Surface) DrawTriangles(_ scene.Layer, vertices []math.Vec3, c scene.Color, style scene.Style) {
	for i := 0; i+2 < len(vertices); i += 3 {
		a, b, d := vertices[i], vertices[i+1], vertices[i+2]
		ca, cb, cd := s.mvp.Project(a), s.mvp.Project(b), s.mvp.Project(d)

		if style.Wireframe {
			s.line(ca, cb, c)
			s.line(cb, cd, c)
			s.line(cd, ca, c)
			continue
		}

		shaded := c
		if style.Lit {
			shaded = s.shade(a, b, d, c)
		}
		s.triangle(ca, cb, cd, shaded)
	}
}

// shade applies two-sided flat Lambert lighting in view space.
func (s *Surface) shade(a, b, d math.Vec3, c scene.Color) scene.Color {
	va := s.modelView.TransformVec3(a)
	vb := s.modelView.TransformVec3(b)
	vd := s.modelView.TransformVec3(d)
	n := vb.Sub(va).Cross(vd.Sub(va)).Normalize()

	k := s.Ambient + s.Diffuse*math32.Abs(n.Dot(s.LightDir))
	if k > 1 {
		k = 1
	}
	return scene.Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

func toRGBA(c scene.Color) color.RGBA {
	return color.RGBA{
		R: uint8(math.Clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(math.Clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(math.Clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(math.Clamp(c.A, 0, 1)*255 + 0.5),
	}
}

var _ scene.Surface = (*Surface)(nil)
