// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/Faultbox/col-workshop/internal/camera"
	"github.com/Faultbox/col-workshop/internal/logger"
	"github.com/Faultbox/col-workshop/internal/scene"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	View    ViewConfig    `yaml:"view"`
	Logging LoggingConfig `yaml:"logging"`

	// Source is the file Load read, or empty when only defaults apply.
	Source string `yaml:"-"`
}

// WindowConfig holds display settings for the interactive viewer.
type WindowConfig struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	VSync         bool   `yaml:"vsync"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// CameraConfig holds input sensitivities, zoom limits and the reset pose.
type CameraConfig struct {
	PanSensitivity   float32    `yaml:"pan_sensitivity"`
	DragSensitivity  float32    `yaml:"drag_sensitivity"`
	ZoomStep         float32    `yaml:"zoom_step"`
	WheelSensitivity float32    `yaml:"wheel_sensitivity"`
	MinZoom          float32    `yaml:"min_zoom"`
	MaxZoom          float32    `yaml:"max_zoom"`
	Default          PoseConfig `yaml:"default"`
}

// PoseConfig is a camera pose. Angles are in degrees.
type PoseConfig struct {
	RotationX float32 `yaml:"rotation_x"`
	RotationY float32 `yaml:"rotation_y"`
	RotationZ float32 `yaml:"rotation_z"`
	PanX      float32 `yaml:"pan_x"`
	PanY      float32 `yaml:"pan_y"`
	Zoom      float32 `yaml:"zoom"`
}

// ViewConfig holds the initial visibility flags and colors.
type ViewConfig struct {
	ShowMesh       bool         `yaml:"show_mesh"`
	ShowWireframe  bool         `yaml:"show_wireframe"`
	ShowSpheres    bool         `yaml:"show_spheres"`
	ShowBoxes      bool         `yaml:"show_boxes"`
	ShowBounds     bool         `yaml:"show_bounds"`
	ShowShadowMesh bool         `yaml:"show_shadow_mesh"`
	Checkerboard   bool         `yaml:"checkerboard"`
	Colors         ColorsConfig `yaml:"colors"`
}

// ColorsConfig assigns a color to each element kind.
type ColorsConfig struct {
	Background Color `yaml:"background"`
	Grid       Color `yaml:"grid"`
	Mesh       Color `yaml:"mesh"`
	Wireframe  Color `yaml:"wireframe"`
	Sphere     Color `yaml:"sphere"`
	Box        Color `yaml:"box"`
	Bounds     Color `yaml:"bounds"`
	Shadow     Color `yaml:"shadow"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	cam := camera.DefaultSettings()
	view := scene.DefaultViewOptions()
	pal := view.Palette

	return &Config{
		Window: WindowConfig{
			Title:         "COL Viewer",
			Width:         1280,
			Height:        720,
			VSync:         true,
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			PanSensitivity:   cam.PanSensitivity,
			DragSensitivity:  cam.DragSensitivity,
			ZoomStep:         cam.ZoomStep,
			WheelSensitivity: cam.WheelSensitivity,
			MinZoom:          cam.MinZoom,
			MaxZoom:          cam.MaxZoom,
			Default:          poseFromState(cam.Default),
		},
		View: ViewConfig{
			ShowMesh:       view.ShowMesh,
			ShowWireframe:  view.ShowWireframe,
			ShowSpheres:    view.ShowSpheres,
			ShowBoxes:      view.ShowBoxes,
			ShowBounds:     view.ShowBounds,
			ShowShadowMesh: view.ShowShadowMesh,
			Checkerboard:   view.Checkerboard,
			Colors: ColorsConfig{
				Background: Color(pal.Background),
				Grid:       Color(pal.Grid),
				Mesh:       Color(pal.Mesh),
				Wireframe:  Color(pal.Wireframe),
				Sphere:     Color(pal.Sphere),
				Box:        Color(pal.Box),
				Bounds:     Color(pal.Bounds),
				Shadow:     Color(pal.Shadow),
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

func poseFromState(s camera.State) PoseConfig {
	return PoseConfig{
		RotationX: s.RotationX,
		RotationY: s.RotationY,
		RotationZ: s.RotationZ,
		PanX:      s.PanX,
		PanY:      s.PanY,
		Zoom:      s.Zoom,
	}
}

// CameraSettings converts the camera section for camera.New.
func (c *Config) CameraSettings() camera.Settings {
	cc := c.Camera
	return camera.Settings{
		PanSensitivity:   cc.PanSensitivity,
		DragSensitivity:  cc.DragSensitivity,
		ZoomStep:         cc.ZoomStep,
		WheelSensitivity: cc.WheelSensitivity,
		MinZoom:          cc.MinZoom,
		MaxZoom:          cc.MaxZoom,
		Default: camera.State{
			RotationX: cc.Default.RotationX,
			RotationY: cc.Default.RotationY,
			RotationZ: cc.Default.RotationZ,
			PanX:      cc.Default.PanX,
			PanY:      cc.Default.PanY,
			Zoom:      cc.Default.Zoom,
		},
	}
}

// ViewOptions converts the view section for the renderer.
func (c *Config) ViewOptions() scene.ViewOptions {
	v := c.View
	return scene.ViewOptions{
		ShowMesh:       v.ShowMesh,
		ShowWireframe:  v.ShowWireframe,
		ShowSpheres:    v.ShowSpheres,
		ShowBoxes:      v.ShowBoxes,
		ShowBounds:     v.ShowBounds,
		ShowShadowMesh: v.ShowShadowMesh,
		Checkerboard:   v.Checkerboard,
		Palette: scene.Palette{
			Background: scene.Color(v.Colors.Background),
			Grid:       scene.Color(v.Colors.Grid),
			Mesh:       scene.Color(v.Colors.Mesh),
			Wireframe:  scene.Color(v.Colors.Wireframe),
			Sphere:     scene.Color(v.Colors.Sphere),
			Box:        scene.Color(v.Colors.Box),
			Bounds:     scene.Color(v.Colors.Bounds),
			Shadow:     scene.Color(v.Colors.Shadow),
		},
	}
}

// LoggerConfig converts the logging section for logger.InitWithConfig.
func (c *Config) LoggerConfig() logger.Config {
	cfg := logger.Config{Level: c.Logging.Level, Console: true}
	if c.Logging.LogFile != "" {
		cfg.File = logger.DefaultFileConfig(c.Logging.LogFile)
	}
	return cfg
}
