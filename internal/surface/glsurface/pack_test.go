package glsurface

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/col-workshop/pkg/math"
)

func TestPackLines(t *testing.T) {
	buf := packLines(nil, []math.Vec3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}})
	require.Len(t, buf, 2*floatsPerVertex)
	assert.Equal(t, []float32{1, 2, 3, 0, 0, 0, 4, 5, 6, 0, 0, 0}, buf)
}

func TestPackTrianglesFlatNormal(t *testing.T) {
	verts := []math.Vec3{{}, {X: 1}, {Y: 1}, {X: 9}}
	buf := packTriangles(nil, verts)

	// The trailing vertex is not a full triangle.
	require.Len(t, buf, 3*floatsPerVertex)
	for i := 0; i < 3; i++ {
		n := buf[i*floatsPerVertex+3 : i*floatsPerVertex+6]
		assert.Equal(t, []float32{0, 0, 1}, n)
	}
}

func TestPackTrianglesDegenerate(t *testing.T) {
	// Collinear points have no area and no normal.
	buf := packTriangles(nil, []math.Vec3{{}, {X: 1}, {X: 2}})
	require.Len(t, buf, 3*floatsPerVertex)
	for i := 0; i < 3; i++ {
		n := buf[i*floatsPerVertex+3 : i*floatsPerVertex+6]
		assert.Equal(t, []float32{0, 0, 0}, n)
	}

	// Lit fragments must not normalize that zero vector.
	assert.Contains(t, fragmentShader, "if (length(vNormal) > 0.0)")
	assert.Less(t,
		strings.Index(fragmentShader, "length(vNormal) > 0.0"),
		strings.Index(fragmentShader, "normalize(vNormal)"))
}

func TestPackReusesBuffer(t *testing.T) {
	buf := make([]float32, 0, 64)
	out := packLines(buf, []math.Vec3{{}, {X: 1}})
	assert.Equal(t, cap(buf), cap(out))
}

func TestFlipRows(t *testing.T) {
	// Two rows: bottom red, top blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img := flipRows(pixels, 1, 2)

	assert.Equal(t, uint8(255), img.RGBAAt(0, 0).B, "top row comes from the last GL row")
	assert.Equal(t, uint8(255), img.RGBAAt(0, 1).R)
}

func TestCheckerCells(t *testing.T) {
	cells := checkerCells(32, 24, 16)

	// Top-left cell is light and sits at the top of GL window space.
	require.NotEmpty(t, cells)
	assert.Equal(t, image.Rect(0, 8, 16, 24), cells[0])
	assert.Len(t, cells, 2)
	assert.Equal(t, image.Rect(16, 0, 32, 8), cells[1])
}
