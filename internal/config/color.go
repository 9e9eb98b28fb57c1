package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/col-workshop/internal/scene"
)

// Color is a scene color written in YAML as "#rrggbb", "#rrggbbaa" or an
// SVG color name such as "orange".
type Color scene.Color

// ParseColor parses a hex triplet, a hex quadruplet or an SVG color name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, errors.New("empty color")
	}

	if !strings.HasPrefix(s, "#") {
		nc, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return Color{}, fmt.Errorf("unknown color name %q", s)
		}
		return Color(scene.RGB(nc.R, nc.G, nc.B)), nil
	}

	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	c := scene.RGB(uint8(v>>24), uint8(v>>16), uint8(v>>8))
	c.A = float32(uint8(v)) / 255
	return Color(c), nil
}

// String formats c as "#rrggbb", adding the alpha byte when not opaque.
func (c Color) String() string {
	b := func(f float32) uint8 {
		switch {
		case f <= 0:
			return 0
		case f >= 1:
			return 255
		}
		return uint8(f*255 + 0.5)
	}
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", b(c.R), b(c.G), b(c.B))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", b(c.R), b(c.G), b(c.B), b(c.A))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
