// Package main is the interactive COL model viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/col-workshop/internal/config"
	"github.com/Faultbox/col-workshop/internal/logger"
	"github.com/Faultbox/col-workshop/internal/platform"
	"github.com/Faultbox/col-workshop/internal/scene"
	"github.com/Faultbox/col-workshop/internal/screenshot"
	"github.com/Faultbox/col-workshop/internal/surface/glsurface"
	"github.com/Faultbox/col-workshop/internal/viewport"
	"github.com/Faultbox/col-workshop/pkg/col"
)

// idleDelay is how long the loop sleeps when nothing needs redrawing, in ms.
const idleDelay = 8

func main() {
	// Parse CLI flags first
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(flags.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	flags.Apply(cfg)

	// Initialize logger
	if err := logger.InitWithConfig(cfg.LoggerConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== COL Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	model, err := loadModel(flags.Model)
	if err != nil {
		logger.Error("failed to load model", zap.Error(err))
		os.Exit(1)
	}

	if err := run(cfg, model); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func loadModel(path string) (*col.Model, error) {
	if path == "" {
		return col.Demo(), nil
	}
	return col.LoadFile(path)
}

func run(cfg *config.Config, model *col.Model) error {
	win, err := platform.NewWindow(platform.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	surf, err := glsurface.New(win.DrawableSize())
	if err != nil {
		return fmt.Errorf("creating GL surface: %w", err)
	}
	defer surf.Destroy()

	vp := viewport.New(viewport.Options{
		Camera:   cfg.CameraSettings(),
		Renderer: scene.DefaultConfig(),
		View:     cfg.ViewOptions(),
	})
	vp.BindModel(model)
	win.SetTitle(title(cfg.Window.Title, vp.Snapshot()))

	shots := screenshot.New(cfg.Window.ScreenshotDir, "colview")

	for {
		res := platform.Pump(vp)
		if res.Quit {
			return nil
		}
		if res.Resized {
			surf.Resize(win.DrawableSize())
			vp.Resize(surf.Size())
		}
		if res.Exposed {
			vp.Invalidate()
		}
		if !vp.Dirty() && !res.Screenshot {
			sdl.Delay(idleDelay)
			continue
		}

		surf.Checkerboard = vp.Options().Checkerboard
		vp.Frame(surf)

		if res.Screenshot {
			path, err := shots.Save(surf.ReadPixels())
			if err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("path", path))
			}
		}

		win.SwapBuffers()
	}
}

func title(base string, snap *scene.Snapshot) string {
	if snap == nil {
		return base
	}
	return fmt.Sprintf("%s - %s (%d tris, %d spheres, %d boxes)",
		base, snap.Name, snap.MeshTriangles(), len(snap.Spheres), len(snap.Boxes))
}
