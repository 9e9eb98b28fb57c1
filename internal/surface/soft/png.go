package soft

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// EncodePNG writes the current frame as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// SavePNG writes the current frame to path, creating parent directories.
func (s *Surface) SavePNG(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	return s.EncodePNG(file)
}
