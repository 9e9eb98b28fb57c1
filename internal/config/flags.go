package config

import "flag"

// Flags holds the command-line overrides shared by the viewer binaries.
type Flags struct {
	Config string
	Debug  bool
	Model  string
	Width  int
	Height int
}

// RegisterFlags defines the flags on fs. Call fs.Parse afterwards.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Model, "model", "", "Collision model YAML file (built-in demo when empty)")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	return f
}

// Apply applies CLI flag overrides to the config.
func (f *Flags) Apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
}
