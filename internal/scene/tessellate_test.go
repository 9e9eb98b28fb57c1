package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/col-workshop/pkg/math"
)

func TestAppendBoxEdges(t *testing.T) {
	lo := math.Vec3{X: 0, Y: 0, Z: 0}
	hi := math.Vec3{X: 1, Y: 2, Z: 3}
	v := AppendBoxEdges(nil, lo, hi)
	assert.Len(t, v, BoxEdgeVertexCount)

	// Every edge is axis aligned and spans the full box on its axis.
	for i := 0; i < len(v); i += 2 {
		d := v[i+1].Sub(v[i])
		nonZero := 0
		for _, c := range []float32{d.X, d.Y, d.Z} {
			if c != 0 {
				nonZero++
			}
		}
		assert.Equal(t, 1, nonZero, "edge %d is not axis aligned: %v", i/2, d)
	}

	// Appending keeps existing content.
	v = AppendBoxEdges(v[:2], lo, hi)
	assert.Len(t, v, 2+BoxEdgeVertexCount)
}

func TestGridLines(t *testing.T) {
	v := GridLines(2, 5)
	assert.Len(t, v, 5*4)
	for _, p := range v {
		assert.Equal(t, float32(0), p.Y)
		assert.LessOrEqual(t, p.X, float32(10))
		assert.GreaterOrEqual(t, p.Z, float32(-10))
	}

	assert.Len(t, GridLines(0, 5), 4)
	assert.Len(t, GridLines(-3, 5), 4)
}

func TestUnitSphereWireframe(t *testing.T) {
	v := UnitSphereWireframe(16, 16)
	// 15 rings of 16 segments plus 16 meridians of 16 segments.
	assert.Len(t, v, (15*16+16*16)*2)
	for _, p := range v {
		assert.InDelta(t, 1, p.Length(), 0.0001)
	}

	// Degenerate densities are raised to the minimum.
	assert.Len(t, UnitSphereWireframe(0, 0), (1*3+3*2)*2)
}

func TestAppendTransformed(t *testing.T) {
	unit := []math.Vec3{{X: 1}, {Y: -1}}
	got := AppendTransformed(nil, unit, math.Vec3{X: 10}, 3)
	assert.Equal(t, []math.Vec3{{X: 13}, {X: 10, Y: -3}}, got)
}
