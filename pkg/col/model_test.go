package col

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/col-workshop/pkg/math"
)

func TestTriangle(t *testing.T) {
	m := &Model{
		Vertices: []Vertex{
			{Position: math.Vec3{X: 0}},
			{Position: math.Vec3{X: 1}},
			{Position: math.Vec3{X: 2}},
		},
	}

	tests := []struct {
		name    string
		indices []int
		wantOK  bool
	}{
		{"valid", []int{0, 1, 2}, true},
		{"extra indices ignored", []int{2, 1, 0, 99}, true},
		{"too few", []int{0, 1}, false},
		{"out of range", []int{0, 1, 3}, false},
		{"negative", []int{-1, 1, 2}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := m.Triangle(Face{Indices: tt.indices})
			if ok != tt.wantOK {
				t.Errorf("expected ok=%v, got %v", tt.wantOK, ok)
			}
		})
	}

	tri, _ := m.Triangle(Face{Indices: []int{2, 0, 1}})
	if tri[0].X != 2 || tri[1].X != 0 || tri[2].X != 1 {
		t.Errorf("expected vertices in face order, got %v", tri)
	}
}

func TestComputeBounds(t *testing.T) {
	m := &Model{
		Vertices: []Vertex{{Position: math.Vec3{X: -1, Y: 0, Z: 0}}},
		Spheres:  []Sphere{{Center: math.Vec3{X: 5, Y: 0, Z: 0}, Radius: 1}},
		Boxes:    []Box{{Min: math.Vec3{X: 0, Y: 3, Z: 0}, Max: math.Vec3{X: 0, Y: -3, Z: 2}}},
	}

	bb, ok := m.ComputeBounds()
	if !ok {
		t.Fatal("expected bounds for non-empty model")
	}
	want := BoundingBox{Min: math.Vec3{X: -1, Y: -3, Z: -1}, Max: math.Vec3{X: 6, Y: 3, Z: 2}}
	if bb != want {
		t.Errorf("expected %v, got %v", want, bb)
	}
	if !bb.Valid() {
		t.Error("computed bounds should be valid")
	}

	if _, ok := (&Model{}).ComputeBounds(); ok {
		t.Error("expected no bounds for empty model")
	}
}

func TestDemo(t *testing.T) {
	m := Demo()
	s := m.Stats()
	if s.Faces == 0 || s.Spheres != 2 || s.Boxes != 1 || !s.HasBounds || s.ShadowFaces != 2 {
		t.Errorf("unexpected demo stats: %+v", s)
	}

	invalid := 0
	for _, f := range m.Faces {
		if _, ok := m.Triangle(f); !ok {
			invalid++
		}
	}
	if invalid != 1 {
		t.Errorf("expected exactly one dangling demo face, got %d", invalid)
	}
}

func TestLoadYAML(t *testing.T) {
	doc := `
name: ramp
vertices:
  - [0, 0, 0]
  - [1, 0, 0]
  - [1, 1, 0]
faces:
  - [0, 1, 2]
  - [0, 1, 7]
spheres:
  - center: [0, 0, 0]
    radius: 0
  - center: [1, 1, 1]
boxes:
  - min: [0, 0, 0]
    max: [1, 1, 1]
  - min: [0, 0, 0]
bounds:
  min: [0, 0, 0]
  max: [1, 1, 0]
shadow_faces:
  - [0, 1, 2]
`
	m, err := LoadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("failed to load model: %v", err)
	}

	if m.Name != "ramp" {
		t.Errorf("expected name 'ramp', got %s", m.Name)
	}
	if len(m.Vertices) != 3 {
		t.Errorf("expected 3 vertices, got %d", len(m.Vertices))
	}
	// Faces are kept as written, even the dangling one.
	if len(m.Faces) != 2 {
		t.Errorf("expected 2 faces, got %d", len(m.Faces))
	}
	// The sphere without a radius is dropped, the zero-radius one is kept.
	if len(m.Spheres) != 1 || m.Spheres[0].Radius != 0 {
		t.Errorf("expected one zero-radius sphere, got %+v", m.Spheres)
	}
	if len(m.Boxes) != 1 {
		t.Errorf("expected 1 box, got %d", len(m.Boxes))
	}
	if m.Bounds == nil || m.Bounds.Max.Y != 1 {
		t.Errorf("expected bounds to be loaded, got %+v", m.Bounds)
	}
	if len(m.ShadowFaces) != 1 {
		t.Errorf("expected 1 shadow face, got %d", len(m.ShadowFaces))
	}
}

func TestLoadYAMLNoShadow(t *testing.T) {
	m, err := LoadYAML(strings.NewReader("name: plain\nvertices: [[0, 0, 0]]\n"))
	if err != nil {
		t.Fatalf("failed to load model: %v", err)
	}
	if m.ShadowFaces != nil {
		t.Error("expected nil shadow faces when the document has none")
	}
	if m.Bounds != nil {
		t.Error("expected nil bounds when the document has none")
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"empty", "", ErrEmptyDoc},
		{"short vertex", "vertices: [[0, 0]]", ErrBadVector},
		{"long sphere center", "spheres: [{center: [0, 0, 0, 0], radius: 1}]", ErrBadVector},
		{"bad bounds", "bounds: {min: [0], max: [1, 1, 1]}", ErrBadVector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := LoadYAML(strings.NewReader("vertices: {not: a list}")); err == nil {
		t.Error("expected decode error for malformed document")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	if err := os.WriteFile(path, []byte("name: disk\nvertices: [[1, 2, 3]]\n"), 0644); err != nil {
		t.Fatalf("failed to write model: %v", err)
	}

	m, err := LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load file: %v", err)
	}
	if m.Vertices[0].Position != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("unexpected vertex %v", m.Vertices[0].Position)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	demo := Demo()

	var buf bytes.Buffer
	if err := WriteYAML(&buf, demo); err != nil {
		t.Fatalf("failed to write model: %v", err)
	}
	if !strings.Contains(buf.String(), "- [-2, 0, -2]") {
		t.Errorf("expected flow-style vertices, got:\n%s", buf.String())
	}

	m, err := LoadYAML(&buf)
	if err != nil {
		t.Fatalf("failed to reload model: %v", err)
	}
	if m.Stats() != demo.Stats() {
		t.Errorf("expected stats %+v, got %+v", demo.Stats(), m.Stats())
	}
	if m.Name != demo.Name {
		t.Errorf("expected name %s, got %s", demo.Name, m.Name)
	}
	for i := range demo.Vertices {
		if m.Vertices[i] != demo.Vertices[i] {
			t.Errorf("vertex %d: expected %v, got %v", i, demo.Vertices[i], m.Vertices[i])
		}
	}
	if *m.Bounds != *demo.Bounds {
		t.Errorf("expected bounds %+v, got %+v", *demo.Bounds, *m.Bounds)
	}
	if m.Spheres[0] != demo.Spheres[0] {
		t.Errorf("expected sphere %+v, got %+v", demo.Spheres[0], m.Spheres[0])
	}
}
