package screenshot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
}

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 1, color.RGBA{255, 0, 0, 255})
	return img
}

func TestFilename(t *testing.T) {
	c := New("shots", "col")
	got := c.Filename(fixedClock())
	want := filepath.Join("shots", "col_2024-05-06_07-08-09.png")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	if got := New("", "x").Filename(fixedClock()); got != "x_2024-05-06_07-08-09.png" {
		t.Errorf("unexpected filename without dir: %s", got)
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "screens")
	c := New(dir, "col")
	c.Now = fixedClock

	path, err := c.Save(testImage())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved file: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("expected 4x3 image, got %v", img.Bounds())
	}
	if r, _, _, _ := img.At(1, 1).RGBA(); r>>8 != 255 {
		t.Errorf("expected red pixel at (1,1), got r=%d", r>>8)
	}
}

func TestSaveSameSecond(t *testing.T) {
	c := New(t.TempDir(), "col")
	c.Now = fixedClock

	first, err := c.Save(testImage())
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := c.Save(testImage())
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct files, both saved to %s", first)
	}
	if filepath.Base(second) != "col_2024-05-06_07-08-09_1.png" {
		t.Errorf("unexpected second name %s", filepath.Base(second))
	}
}
