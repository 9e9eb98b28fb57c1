// Package screenshot writes viewer frames to timestamped PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

const timeLayout = "2006-01-02_15-04-05"

// Capture saves images under a directory with a common file prefix.
type Capture struct {
	outputDir string
	prefix    string

	// Now is the clock used for file names.
	Now func() time.Time
}

// New creates a capture handler. An empty outputDir writes to the working directory.
func New(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		Now:       time.Now,
	}
}

// Filename returns the path a capture taken at t would use, before collision handling.
func (c *Capture) Filename(t time.Time) string {
	filename := fmt.Sprintf("%s_%s.png", c.prefix, t.Format(timeLayout))
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}

// Save encodes img as PNG and returns the path written. Captures within the
// same second get a numeric suffix instead of overwriting each other.
func (c *Capture) Save(img image.Image) (string, error) {
	// Create output directory if needed
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename(c.Now())
	base := filename[:len(filename)-len(".png")]
	for i := 1; ; i++ {
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			break
		}
		filename = fmt.Sprintf("%s_%d.png", base, i)
	}

	file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}
