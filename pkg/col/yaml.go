package col

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/col-workshop/pkg/math"
)

// Document errors.
var (
	ErrBadVector = errors.New("vector must have exactly 3 components")
	ErrEmptyDoc  = errors.New("empty model document")
)

// yamlModel mirrors the on-disk description of an already-parsed model.
// Optional primitive fields are pointers so absent values can be told apart from zero.
type yamlModel struct {
	Name        string       `yaml:"name"`
	Vertices    [][]float32  `yaml:"vertices"`
	Faces       [][]int      `yaml:"faces"`
	Spheres     []yamlSphere `yaml:"spheres,omitempty"`
	Boxes       []yamlBox    `yaml:"boxes,omitempty"`
	Bounds      *yamlBox     `yaml:"bounds,omitempty"`
	ShadowFaces [][]int      `yaml:"shadow_faces,omitempty"`
}

type yamlSphere struct {
	Center []float32 `yaml:"center"`
	Radius *float32  `yaml:"radius"`
}

type yamlBox struct {
	Min []float32 `yaml:"min"`
	Max []float32 `yaml:"max"`
}

// LoadFile reads a YAML model description from path.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return m, nil
}

// LoadYAML decodes a YAML model description.
//
// Vertices and box corners must be 3-component lists. Spheres without a
// center or radius and boxes without both corners are left out of the
// model; faces are kept as written and validated when the model is drawn.
func LoadYAML(r io.Reader) (*Model, error) {
	var doc yamlModel
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDoc
		}
		return nil, fmt.Errorf("decoding model: %w", err)
	}

	m := &Model{Name: doc.Name}

	for i, raw := range doc.Vertices {
		p, err := toVec3(raw)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		m.Vertices = append(m.Vertices, Vertex{Position: p})
	}

	m.Faces = toFaces(doc.Faces)
	if doc.ShadowFaces != nil {
		m.ShadowFaces = toFaces(doc.ShadowFaces)
	}

	for i, s := range doc.Spheres {
		if s.Center == nil || s.Radius == nil {
			continue
		}
		c, err := toVec3(s.Center)
		if err != nil {
			return nil, fmt.Errorf("sphere %d center: %w", i, err)
		}
		m.Spheres = append(m.Spheres, Sphere{Center: c, Radius: *s.Radius})
	}

	for i, b := range doc.Boxes {
		box, ok, err := toBox(b)
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		if ok {
			m.Boxes = append(m.Boxes, Box(box))
		}
	}

	if doc.Bounds != nil {
		bb, ok, err := toBox(*doc.Bounds)
		if err != nil {
			return nil, fmt.Errorf("bounds: %w", err)
		}
		if ok {
			m.Bounds = &bb
		}
	}

	return m, nil
}

func toVec3(raw []float32) (math.Vec3, error) {
	if len(raw) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: got %d", ErrBadVector, len(raw))
	}
	return math.Vec3{X: raw[0], Y: raw[1], Z: raw[2]}, nil
}

func toBox(b yamlBox) (BoundingBox, bool, error) {
	if b.Min == nil || b.Max == nil {
		return BoundingBox{}, false, nil
	}
	lo, err := toVec3(b.Min)
	if err != nil {
		return BoundingBox{}, false, fmt.Errorf("min: %w", err)
	}
	hi, err := toVec3(b.Max)
	if err != nil {
		return BoundingBox{}, false, fmt.Errorf("max: %w", err)
	}
	return BoundingBox{Min: lo, Max: hi}, true, nil
}

func toFaces(raw [][]int) []Face {
	faces := make([]Face, 0, len(raw))
	for _, idx := range raw {
		faces = append(faces, Face{Indices: idx})
	}
	return faces
}

// WriteYAML encodes m in the format LoadYAML reads. Vectors and faces are
// written in flow style; an empty shadow mesh is written as absent.
func WriteYAML(w io.Writer, m *Model) error {
	doc := yamlModel{Name: m.Name}
	for _, v := range m.Vertices {
		doc.Vertices = append(doc.Vertices, fromVec3(v.Position))
	}
	doc.Faces = fromFaces(m.Faces)
	doc.ShadowFaces = fromFaces(m.ShadowFaces)
	for _, s := range m.Spheres {
		r := s.Radius
		doc.Spheres = append(doc.Spheres, yamlSphere{Center: fromVec3(s.Center), Radius: &r})
	}
	for _, b := range m.Boxes {
		doc.Boxes = append(doc.Boxes, yamlBox{Min: fromVec3(b.Min), Max: fromVec3(b.Max)})
	}
	if m.Bounds != nil {
		doc.Bounds = &yamlBox{Min: fromVec3(m.Bounds.Min), Max: fromVec3(m.Bounds.Max)}
	}

	var node yaml.Node
	if err := node.Encode(doc); err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}
	flowLeaves(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("writing model: %w", err)
	}
	return enc.Close()
}

// flowLeaves switches sequences of scalars to flow style.
func flowLeaves(n *yaml.Node) {
	if n.Kind == yaml.SequenceNode {
		leaf := true
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				leaf = false
				break
			}
		}
		if leaf {
			n.Style = yaml.FlowStyle
			return
		}
	}
	for _, c := range n.Content {
		flowLeaves(c)
	}
}

func fromVec3(v math.Vec3) []float32 {
	return []float32{v.X, v.Y, v.Z}
}

func fromFaces(faces []Face) [][]int {
	if faces == nil {
		return nil
	}
	out := make([][]int, 0, len(faces))
	for _, f := range faces {
		out = append(out, f.Indices)
	}
	return out
}
