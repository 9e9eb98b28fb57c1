package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/col-workshop/internal/logger"
	"github.com/Faultbox/col-workshop/pkg/col"
	"github.com/Faultbox/col-workshop/pkg/math"
)

// Snapshot is a collision model resolved for drawing.
//
// Faces are expanded to vertex positions and malformed primitives are
// dropped once, when the model is bound, so the per-frame path never probes
// indices. A Snapshot is immutable after Compile.
type Snapshot struct {
	Name string

	// Mesh and Shadow hold three vertices per valid face.
	Mesh   []math.Vec3
	Shadow []math.Vec3

	// HasShadow is true when the model carries a shadow mesh, even an empty one.
	HasShadow bool

	Spheres []col.Sphere
	Boxes   []col.Box
	Bounds  *col.BoundingBox

	Skipped SkipCounts
}

// SkipCounts records primitives left out of a snapshot.
type SkipCounts struct {
	Faces       int
	ShadowFaces int
	Spheres     int
}

// Total returns the number of skipped primitives.
func (s SkipCounts) Total() int {
	return s.Faces + s.ShadowFaces + s.Spheres
}

// MeshTriangles returns the number of drawable mesh faces.
func (s *Snapshot) MeshTriangles() int {
	return len(s.Mesh) / 3
}

// ShadowTriangles returns the number of drawable shadow faces.
func (s *Snapshot) ShadowTriangles() int {
	return len(s.Shadow) / 3
}

// Compile resolves m into a Snapshot. A nil model yields a nil snapshot.
func Compile(m *col.Model) *Snapshot {
	if m == nil {
		return nil
	}

	snap := &Snapshot{
		Name:      m.Name,
		HasShadow: m.ShadowFaces != nil,
		Boxes:     append([]col.Box(nil), m.Boxes...),
	}

	snap.Mesh, snap.Skipped.Faces = resolveFaces(m, m.Faces)
	if snap.HasShadow {
		snap.Shadow, snap.Skipped.ShadowFaces = resolveFaces(m, m.ShadowFaces)
	}

	for _, s := range m.Spheres {
		if s.Radius < 0 {
			snap.Skipped.Spheres++
			continue
		}
		snap.Spheres = append(snap.Spheres, s)
	}

	if m.Bounds != nil {
		bb := *m.Bounds
		snap.Bounds = &bb
	}

	if snap.Skipped.Total() > 0 {
		logger.Named("scene").Debug("skipped malformed primitives",
			zap.String("model", m.Name),
			zap.Int("faces", snap.Skipped.Faces),
			zap.Int("shadow_faces", snap.Skipped.ShadowFaces),
			zap.Int("spheres", snap.Skipped.Spheres),
		)
	}

	return snap
}

func resolveFaces(m *col.Model, faces []col.Face) ([]math.Vec3, int) {
	out := make([]math.Vec3, 0, len(faces)*3)
	skipped := 0
	for _, f := range faces {
		tri, ok := m.Triangle(f)
		if !ok {
			skipped++
			continue
		}
		out = append(out, tri[0], tri[1], tri[2])
	}
	return out, skipped
}
