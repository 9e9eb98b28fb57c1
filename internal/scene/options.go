package scene

// ViewOptions selects which elements are drawn and how.
type ViewOptions struct {
	ShowMesh       bool
	ShowWireframe  bool
	ShowSpheres    bool
	ShowBoxes      bool
	ShowBounds     bool
	ShowShadowMesh bool

	// Checkerboard replaces the solid background where the surface supports it.
	Checkerboard bool

	Palette Palette
}

// Palette assigns a color to each element kind.
type Palette struct {
	Background Color
	Grid       Color
	Mesh       Color
	Wireframe  Color
	Sphere     Color
	Box        Color
	Bounds     Color
	Shadow     Color
}

// Translucency used for overlay primitives.
const (
	SphereAlpha = 0.4
	BoxAlpha    = 0.4
	ShadowAlpha = 0.3
)

// DefaultPalette returns the stock element colors.
func DefaultPalette() Palette {
	return Palette{
		Background: RGB(30, 30, 30),
		Grid:       RGB(77, 77, 77),
		Mesh:       RGB(0, 255, 0),
		Wireframe:  RGB(100, 255, 100),
		Sphere:     RGB(0, 200, 255).WithAlpha(SphereAlpha),
		Box:        RGB(255, 200, 0).WithAlpha(BoxAlpha),
		Bounds:     RGB(255, 0, 0),
		Shadow:     RGB(128, 128, 128).WithAlpha(ShadowAlpha),
	}
}

// DefaultViewOptions shows everything except the shadow mesh, in wireframe.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		ShowMesh:       true,
		ShowWireframe:  true,
		ShowSpheres:    true,
		ShowBoxes:      true,
		ShowBounds:     true,
		ShowShadowMesh: false,
		Palette:        DefaultPalette(),
	}
}

// ViewOptionsUpdate is a partial update. nil fields keep their current value.
type ViewOptionsUpdate struct {
	ShowMesh       *bool
	ShowWireframe  *bool
	ShowSpheres    *bool
	ShowBoxes      *bool
	ShowBounds     *bool
	ShowShadowMesh *bool
	Checkerboard   *bool
	Palette        *Palette
	Background     *Color
}

// Apply returns o with the non-nil fields of u applied.
// Background is applied after Palette.
func (o ViewOptions) Apply(u ViewOptionsUpdate) ViewOptions {
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&o.ShowMesh, u.ShowMesh)
	set(&o.ShowWireframe, u.ShowWireframe)
	set(&o.ShowSpheres, u.ShowSpheres)
	set(&o.ShowBoxes, u.ShowBoxes)
	set(&o.ShowBounds, u.ShowBounds)
	set(&o.ShowShadowMesh, u.ShowShadowMesh)
	set(&o.Checkerboard, u.Checkerboard)
	if u.Palette != nil {
		o.Palette = *u.Palette
	}
	if u.Background != nil {
		o.Palette.Background = *u.Background
	}
	return o
}

// Bool returns a pointer to b, for building updates.
func Bool(b bool) *bool {
	return &b
}
