package col

import "github.com/Faultbox/col-workshop/pkg/math"

// Demo returns a small built-in model: a crate mesh with a ramp, two spheres,
// one box, its bounds and a two-triangle shadow mesh. The last mesh face points
// past the vertex list, as partially edited models sometimes do.
func Demo() *Model {
	v := func(x, y, z float32) Vertex { return Vertex{Position: math.Vec3{X: x, Y: y, Z: z}} }
	f := func(a, b, c int) Face { return Face{Indices: []int{a, b, c}} }

	m := &Model{
		Name: "demo_crate",
		Vertices: []Vertex{
			v(-2, 0, -2), v(2, 0, -2), v(2, 0, 2), v(-2, 0, 2),
			v(-2, 4, -2), v(2, 4, -2), v(2, 4, 2), v(-2, 4, 2),
			v(2, 0, 6), v(-2, 0, 6),
		},
		Faces: []Face{
			f(0, 1, 2), f(0, 2, 3), // bottom
			f(4, 6, 5), f(4, 7, 6), // top
			f(0, 4, 5), f(0, 5, 1), // back
			f(1, 5, 6), f(1, 6, 2), // right
			f(3, 2, 6), f(3, 6, 7), // front
			f(0, 3, 7), f(0, 7, 4), // left
			f(2, 8, 9), f(2, 9, 3), // ramp floor
			f(7, 6, 42), // dangling
		},
		Spheres: []Sphere{
			{Center: math.Vec3{X: 0, Y: 2, Z: 0}, Radius: 2.5},
			{Center: math.Vec3{X: 0, Y: 0.5, Z: 5}, Radius: 0.5},
		},
		Boxes: []Box{
			{Min: math.Vec3{X: -2, Y: 0, Z: 2}, Max: math.Vec3{X: 2, Y: 1, Z: 6}},
		},
		ShadowFaces: []Face{
			f(0, 1, 2), f(0, 2, 3),
		},
	}
	if bb, ok := m.ComputeBounds(); ok {
		m.Bounds = &bb
	}
	return m
}
