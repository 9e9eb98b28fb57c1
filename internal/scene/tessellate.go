package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/col-workshop/pkg/math"
)

// BoxEdgeVertexCount is the number of vertices in a box wireframe (12 edges × 2).
const BoxEdgeVertexCount = 24

// AppendBoxEdges appends the 12 edges of the box spanned by lo and hi as
// line endpoint pairs: 4 bottom edges, 4 top edges, 4 verticals.
func AppendBoxEdges(dst []math.Vec3, lo, hi math.Vec3) []math.Vec3 {
	c := [8]math.Vec3{
		{X: lo.X, Y: lo.Y, Z: lo.Z}, // 0
		{X: hi.X, Y: lo.Y, Z: lo.Z}, // 1
		{X: hi.X, Y: hi.Y, Z: lo.Z}, // 2
		{X: lo.X, Y: hi.Y, Z: lo.Z}, // 3
		{X: lo.X, Y: lo.Y, Z: hi.Z}, // 4
		{X: hi.X, Y: lo.Y, Z: hi.Z}, // 5
		{X: hi.X, Y: hi.Y, Z: hi.Z}, // 6
		{X: lo.X, Y: hi.Y, Z: hi.Z}, // 7
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // min-z face
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // max-z face
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting
	}
	for _, e := range edges {
		dst = append(dst, c[e[0]], c[e[1]])
	}
	return dst
}

// GridLines returns line pairs for a square grid on the XZ plane.
// Lines run at every step from -halfCount*step to +halfCount*step on both axes.
func GridLines(halfCount int, step float32) []math.Vec3 {
	if halfCount < 0 {
		halfCount = 0
	}
	extent := float32(halfCount) * step
	lines := make([]math.Vec3, 0, (2*halfCount+1)*4)
	for i := -halfCount; i <= halfCount; i++ {
		pos := float32(i) * step
		lines = append(lines,
			math.Vec3{X: pos, Y: 0, Z: -extent}, math.Vec3{X: pos, Y: 0, Z: extent},
			math.Vec3{X: -extent, Y: 0, Z: pos}, math.Vec3{X: extent, Y: 0, Z: pos},
		)
	}
	return lines
}

// AxisLines returns one line pair per axis, X then Y then Z, from the origin.
func AxisLines(length float32) [3][]math.Vec3 {
	o := math.Vec3{}
	return [3][]math.Vec3{
		{o, {X: length}},
		{o, {Y: length}},
		{o, {Z: length}},
	}
}

// UnitSphereWireframe returns line pairs for a unit sphere at the origin.
// Like a GLU line quadric it draws stacks-1 latitude rings and slices meridians,
// each split into segments to match the tessellation density.
func UnitSphereWireframe(slices, stacks int) []math.Vec3 {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	point := func(stack, slice int) math.Vec3 {
		phi := math32.Pi * float32(stack) / float32(stacks) // 0 at +Z pole
		theta := 2 * math32.Pi * float32(slice) / float32(slices)
		sp, cp := math32.Sincos(phi)
		st, ct := math32.Sincos(theta)
		return math.Vec3{X: sp * ct, Y: sp * st, Z: cp}
	}

	lines := make([]math.Vec3, 0, ((stacks-1)*slices+slices*stacks)*2)
	for j := 1; j < stacks; j++ {
		for i := 0; i < slices; i++ {
			lines = append(lines, point(j, i), point(j, (i+1)%slices))
		}
	}
	for i := 0; i < slices; i++ {
		for j := 0; j < stacks; j++ {
			lines = append(lines, point(j, i), point(j+1, i))
		}
	}
	return lines
}

// AppendTransformed appends unit-space vertices scaled by radius and moved to center.
func AppendTransformed(dst, unit []math.Vec3, center math.Vec3, radius float32) []math.Vec3 {
	for _, v := range unit {
		dst = append(dst, v.Scale(radius).Add(center))
	}
	return dst
}
