package soft

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/col-workshop/internal/camera"
	"github.com/Faultbox/col-workshop/internal/scene"
	"github.com/Faultbox/col-workshop/pkg/col"
	"github.com/Faultbox/col-workshop/pkg/math"
)

var black = scene.Color{A: 1}

func newSurface(t *testing.T, size int) *Surface {
	t.Helper()
	s := New(size, size)
	s.SetProjection(math.Perspective(math.DegToRad(45), 1, 0.1, 1000))
	s.SetModelView(math.Identity())
	s.Clear(black)
	return s
}

// tri returns a triangle facing the camera at depth z that covers the view centre.
func tri(z float32) []math.Vec3 {
	return []math.Vec3{{X: -1, Y: -1, Z: z}, {X: 1, Y: -1, Z: z}, {X: 0, Y: 1, Z: z}}
}

func centre(s *Surface) [3]uint8 {
	w, h := s.Size()
	c := s.Image().RGBAAt(w/2, h/2)
	return [3]uint8{c.R, c.G, c.B}
}

func TestClear(t *testing.T) {
	s := New(8, 4)
	s.Clear(scene.RGB(10, 20, 30))
	c := s.Image().RGBAAt(7, 3)
	assert.Equal(t, [4]uint8{10, 20, 30, 255}, [4]uint8{c.R, c.G, c.B, c.A})

	w, h := s.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 4, h)
}

func TestResizeMinimum(t *testing.T) {
	s := New(0, -5)
	w, h := s.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestCheckerboard(t *testing.T) {
	s := New(64, 64)
	s.Checkerboard = true
	s.Clear(black)

	assert.Equal(t, checkerLight, s.Image().RGBAAt(0, 0))
	assert.Equal(t, checkerDark, s.Image().RGBAAt(16, 0))
	assert.Equal(t, checkerLight, s.Image().RGBAAt(16, 16))
}

func TestFilledTriangle(t *testing.T) {
	s := newSurface(t, 64)
	s.DrawTriangles(scene.LayerMesh, tri(-5), scene.RGB(255, 0, 0), scene.Style{})
	assert.Equal(t, [3]uint8{255, 0, 0}, centre(s))

	// Corners stay clear.
	assert.Equal(t, uint8(0), s.Image().RGBAAt(0, 0).R)
}

func TestDepthTest(t *testing.T) {
	s := newSurface(t, 64)
	s.DrawTriangles(scene.LayerMesh, tri(-5), scene.RGB(255, 0, 0), scene.Style{})
	s.DrawTriangles(scene.LayerMesh, tri(-10), scene.RGB(0, 255, 0), scene.Style{})
	assert.Equal(t, [3]uint8{255, 0, 0}, centre(s), "farther triangle must not overwrite nearer one")

	s.DrawTriangles(scene.LayerMesh, tri(-2), scene.RGB(0, 0, 255), scene.Style{})
	assert.Equal(t, [3]uint8{0, 0, 255}, centre(s))
}

func TestAlphaBlend(t *testing.T) {
	s := newSurface(t, 64)
	s.DrawTriangles(scene.LayerBoxes, tri(-5), scene.Color{R: 1, G: 1, B: 1, A: 0.5}, scene.Style{})
	got := centre(s)
	assert.InDelta(t, 128, int(got[0]), 1)
}

func TestLitShading(t *testing.T) {
	s := newSurface(t, 64)
	s.LightDir = math.Vec3{Z: 1}
	s.Ambient, s.Diffuse = 0.2, 0.5
	s.DrawTriangles(scene.LayerMesh, tri(-5), scene.RGB(255, 255, 255), scene.Style{Lit: true})

	// Facing the light: 0.2 + 0.5.
	assert.InDelta(t, 178, int(centre(s)[0]), 1)
}

func TestWireframeLeavesInteriorEmpty(t *testing.T) {
	s := newSurface(t, 64)
	s.DrawTriangles(scene.LayerMesh, tri(-5), scene.RGB(255, 0, 0), scene.Style{Wireframe: true})
	assert.Equal(t, [3]uint8{0, 0, 0}, centre(s))
	assert.NotZero(t, countNonBlack(s))
}

func TestLineBehindCamera(t *testing.T) {
	s := newSurface(t, 64)
	s.DrawLines(scene.LayerGrid, []math.Vec3{{X: -1, Z: 5}, {X: 1, Z: 5}}, scene.RGB(255, 255, 255))
	assert.Zero(t, countNonBlack(s))
}

func TestLineCrossingNearPlane(t *testing.T) {
	s := newSurface(t, 64)
	s.DrawLines(scene.LayerGrid, []math.Vec3{{X: 0.2, Y: -0.2, Z: 5}, {X: 0.2, Y: -0.2, Z: -50}}, scene.RGB(255, 255, 255))
	assert.NotZero(t, countNonBlack(s))
}

func TestTriangleCrossingNearPlane(t *testing.T) {
	s := newSurface(t, 64)
	verts := []math.Vec3{{X: -50, Y: -1, Z: 10}, {X: 50, Y: -1, Z: 10}, {X: 0, Y: -1, Z: -100}}
	s.DrawTriangles(scene.LayerMesh, verts, scene.RGB(0, 255, 0), scene.Style{})
	assert.NotZero(t, countNonBlack(s))
}

func TestOddVertexCountsIgnored(t *testing.T) {
	s := newSurface(t, 16)
	assert.NotPanics(t, func() {
		s.DrawLines(scene.LayerGrid, []math.Vec3{{Z: -5}}, scene.RGB(255, 255, 255))
		s.DrawTriangles(scene.LayerMesh, []math.Vec3{{Z: -5}, {X: 1, Z: -5}}, scene.RGB(255, 255, 255), scene.Style{})
	})
	assert.Zero(t, countNonBlack(s))
}

func TestRenderDemo(t *testing.T) {
	s := New(160, 120)
	r := scene.NewRenderer(scene.DefaultConfig())
	r.Resize(s.Size())

	opts := scene.DefaultViewOptions()
	opts.ShowWireframe = false
	r.Render(s, camera.DefaultState(), scene.Compile(col.Demo()), opts)

	bg := opts.Palette.Background
	bgR := uint8(bg.R*255 + 0.5)
	differs := 0
	img := s.Image()
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != bgR || img.Pix[i+1] != bgR {
			differs++
		}
	}
	assert.Greater(t, differs, 500)
}

func TestSavePNG(t *testing.T) {
	s := newSurface(t, 32)
	s.DrawTriangles(scene.LayerMesh, tri(-5), scene.RGB(255, 0, 0), scene.Style{})

	path := filepath.Join(t.TempDir(), "out", "frame.png")
	require.NoError(t, s.SavePNG(path))

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
}

func countNonBlack(s *Surface) int {
	n := 0
	img := s.Image()
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			n++
		}
	}
	return n
}
