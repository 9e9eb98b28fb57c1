// Package col holds the in-memory collision model shown by the viewport.
//
// Models arrive already parsed from an external source; nothing in this
// package reads the binary COL format.
package col

import (
	"github.com/Faultbox/col-workshop/pkg/math"
)

// Vertex is a mesh vertex referenced by face indices.
type Vertex struct {
	Position math.Vec3
}

// Face is a triangle over the model's vertex list.
// Only the first three indices are used; a face with fewer is malformed.
type Face struct {
	Indices []int
}

// Sphere is a collision sphere.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// Box is an axis-aligned collision box.
type Box struct {
	Min math.Vec3
	Max math.Vec3
}

// BoundingBox is the axis-aligned bound of the whole model.
type BoundingBox struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Radius returns the radius of the sphere that encloses the box.
func (b BoundingBox) Radius() float32 {
	return b.Max.Sub(b.Min).Length() * 0.5
}

// Valid reports whether Min <= Max on every axis.
func (b BoundingBox) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Model aggregates the collision primitives of one COL entry.
// The viewport never mutates a bound model.
type Model struct {
	Name     string
	Vertices []Vertex
	Faces    []Face
	Spheres  []Sphere
	Boxes    []Box

	// Bounds is nil when the source carries no bounding box.
	Bounds *BoundingBox

	// ShadowFaces index into Vertices. nil means the model has no shadow mesh.
	ShadowFaces []Face
}

// Stats summarizes primitive counts.
type Stats struct {
	Vertices    int
	Faces       int
	Spheres     int
	Boxes       int
	ShadowFaces int
	HasBounds   bool
}

// Stats returns the primitive counts of the model.
func (m *Model) Stats() Stats {
	if m == nil {
		return Stats{}
	}
	return Stats{
		Vertices:    len(m.Vertices),
		Faces:       len(m.Faces),
		Spheres:     len(m.Spheres),
		Boxes:       len(m.Boxes),
		ShadowFaces: len(m.ShadowFaces),
		HasBounds:   m.Bounds != nil,
	}
}

// Triangle resolves a face to its three vertex positions.
// ok is false if the face has fewer than three indices or any index is out of range.
func (m *Model) Triangle(f Face) (tri [3]math.Vec3, ok bool) {
	if len(f.Indices) < 3 {
		return tri, false
	}
	for i, idx := range f.Indices[:3] {
		if idx < 0 || idx >= len(m.Vertices) {
			return tri, false
		}
		tri[i] = m.Vertices[idx].Position
	}
	return tri, true
}

// ComputeBounds derives an AABB from vertices, spheres and boxes.
// ok is false when the model has no geometry at all.
func (m *Model) ComputeBounds() (bb BoundingBox, ok bool) {
	if m == nil {
		return bb, false
	}
	grow := func(lo, hi math.Vec3) {
		if !ok {
			bb = BoundingBox{Min: lo, Max: hi}
			ok = true
			return
		}
		bb.Min = bb.Min.Min(lo)
		bb.Max = bb.Max.Max(hi)
	}

	for _, v := range m.Vertices {
		grow(v.Position, v.Position)
	}
	for _, s := range m.Spheres {
		if s.Radius < 0 {
			continue
		}
		r := math.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
		grow(s.Center.Sub(r), s.Center.Add(r))
	}
	for _, b := range m.Boxes {
		grow(b.Min.Min(b.Max), b.Min.Max(b.Max))
	}
	return bb, ok
}
