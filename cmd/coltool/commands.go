package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/col-workshop/internal/camera"
	"github.com/Faultbox/col-workshop/internal/config"
	"github.com/Faultbox/col-workshop/internal/logger"
	"github.com/Faultbox/col-workshop/internal/scene"
	"github.com/Faultbox/col-workshop/internal/surface/soft"
	"github.com/Faultbox/col-workshop/internal/viewport"
	"github.com/Faultbox/col-workshop/pkg/col"
)

func cmdInfo(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: coltool info <model.yaml>")
	}

	m, err := col.LoadFile(args[0])
	if err != nil {
		return err
	}
	printInfo(os.Stdout, m)
	return nil
}

func printInfo(w io.Writer, m *col.Model) {
	st := m.Stats()
	snap := scene.Compile(m)

	fmt.Fprintf(w, "Model: %s\n", m.Name)
	fmt.Fprintf(w, "Vertices:     %d\n", st.Vertices)
	fmt.Fprintf(w, "Faces:        %d (%d drawable)\n", st.Faces, snap.MeshTriangles())
	fmt.Fprintf(w, "Spheres:      %d (%d drawable)\n", st.Spheres, len(snap.Spheres))
	fmt.Fprintf(w, "Boxes:        %d\n", st.Boxes)
	if snap.HasShadow {
		fmt.Fprintf(w, "Shadow faces: %d (%d drawable)\n", st.ShadowFaces, snap.ShadowTriangles())
	} else {
		fmt.Fprintln(w, "Shadow faces: none")
	}

	if m.Bounds != nil {
		fmt.Fprintf(w, "Bounds:       %v .. %v\n", m.Bounds.Min, m.Bounds.Max)
	} else if bb, ok := m.ComputeBounds(); ok {
		fmt.Fprintf(w, "Bounds:       %v .. %v (computed)\n", bb.Min, bb.Max)
	} else {
		fmt.Fprintln(w, "Bounds:       none")
	}

	if n := snap.Skipped.Total(); n > 0 {
		fmt.Fprintf(w, "Skipped:      %d (faces %d, shadow faces %d, spheres %d)\n",
			n, snap.Skipped.Faces, snap.Skipped.ShadowFaces, snap.Skipped.Spheres)
	}
}

// renderOptions are the render flags after parsing.
type renderOptions struct {
	common *config.Flags
	demo   bool
	out    string
	fit    bool

	wireframe, shadow, checkerboard bool

	pose camera.State
	set  map[string]bool
}

func parseRenderFlags(args []string) (*renderOptions, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	o := &renderOptions{common: config.RegisterFlags(fs)}

	var rx, ry, rz, zoom, panX, panY float64
	fs.BoolVar(&o.demo, "demo", false, "Render the built-in demo model")
	fs.StringVar(&o.out, "out", "", "Output PNG path")
	fs.BoolVar(&o.fit, "fit", false, "Zoom to fit the model")
	fs.BoolVar(&o.wireframe, "wireframe", false, "Draw the mesh as wireframe (config value when unset)")
	fs.BoolVar(&o.shadow, "shadow", false, "Draw the shadow mesh (config value when unset)")
	fs.BoolVar(&o.checkerboard, "checkerboard", false, "Checkerboard background (config value when unset)")
	fs.Float64Var(&rx, "rx", 0, "Rotation about X, degrees")
	fs.Float64Var(&ry, "ry", 0, "Rotation about Y, degrees")
	fs.Float64Var(&rz, "rz", 0, "Rotation about Z, degrees (stored only)")
	fs.Float64Var(&zoom, "zoom", 0, "Camera distance")
	fs.Float64Var(&panX, "panx", 0, "Horizontal pan")
	fs.Float64Var(&panY, "pany", 0, "Vertical pan")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.out == "" {
		return nil, errors.New("-out is required")
	}
	if o.demo == (o.common.Model != "") {
		return nil, errors.New("exactly one of -model or -demo is required")
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	o.pose = camera.State{
		RotationX: float32(rx),
		RotationY: float32(ry),
		RotationZ: float32(rz),
		PanX:      float32(panX),
		PanY:      float32(panY),
		Zoom:      float32(zoom),
	}
	return o, nil
}

// applyPose overrides the fields of s whose flags were given.
func (o *renderOptions) applyPose(s camera.State) camera.State {
	if o.set["rx"] {
		s.RotationX = o.pose.RotationX
	}
	if o.set["ry"] {
		s.RotationY = o.pose.RotationY
	}
	if o.set["rz"] {
		s.RotationZ = o.pose.RotationZ
	}
	if o.set["panx"] {
		s.PanX = o.pose.PanX
	}
	if o.set["pany"] {
		s.PanY = o.pose.PanY
	}
	if o.set["zoom"] {
		s.Zoom = o.pose.Zoom
	}
	return s
}

// viewUpdate holds the view toggles whose flags were given.
func (o *renderOptions) viewUpdate() scene.ViewOptionsUpdate {
	var u scene.ViewOptionsUpdate
	if o.set["wireframe"] {
		u.ShowWireframe = scene.Bool(o.wireframe)
	}
	if o.set["shadow"] {
		u.ShowShadowMesh = scene.Bool(o.shadow)
	}
	if o.set["checkerboard"] {
		u.Checkerboard = scene.Bool(o.checkerboard)
	}
	return u
}

func cmdRender(args []string) error {
	o, err := parseRenderFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(o.common.Config)
	if err != nil {
		return err
	}
	// Headless frames are 800x600 unless a config file or flags size them.
	if cfg.Source == "" {
		cfg.Window.Width, cfg.Window.Height = 800, 600
	}
	o.common.Apply(cfg)

	lc := cfg.LoggerConfig()
	lc.Console = o.common.Debug
	if err := logger.InitWithConfig(lc); err != nil {
		return err
	}
	defer logger.Sync()

	var m *col.Model
	if o.demo {
		m = col.Demo()
	} else if m, err = col.LoadFile(o.common.Model); err != nil {
		return err
	}

	vp := viewport.New(viewport.Options{
		Camera:   cfg.CameraSettings(),
		Renderer: scene.DefaultConfig(),
		View:     cfg.ViewOptions(),
	})
	vp.BindModel(m)
	vp.SetViewOptions(o.viewUpdate())
	if o.fit {
		vp.FitToModel()
	}
	vp.SetCamera(o.applyPose(vp.Camera()))

	surf := soft.New(cfg.Window.Width, cfg.Window.Height)
	surf.Checkerboard = vp.Options().Checkerboard
	vp.Frame(surf)

	if err := surf.SavePNG(o.out); err != nil {
		return err
	}
	logger.Info("frame written",
		zap.String("path", o.out),
		zap.String("model", m.Name),
		zap.Any("camera", vp.Camera()),
	)
	fmt.Println(o.out)
	return nil
}

func cmdDemo(args []string) error {
	if len(args) == 0 {
		return col.WriteYAML(os.Stdout, col.Demo())
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()
	return col.WriteYAML(f, col.Demo())
}
