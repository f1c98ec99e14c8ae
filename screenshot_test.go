package dock

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-sweep", "after-sweep"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := NewScene()
	s.Screenshot("a")
	s.Screenshot("b")
	s.Screenshot("c")
	if len(s.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(s.screenshotQueue))
	}
	if s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" || s.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", s.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	s := NewScene()
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 128})
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	r, _, _, a := got.At(1, 1).RGBA()
	if r>>8 != 255 || a>>8 != 128 {
		t.Errorf("pixel = r%d a%d, want r255 a128", r>>8, a>>8)
	}
}

func TestWritePNG_BadPath(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := writePNG(path, img); err == nil {
		t.Error("expected error for a missing directory")
	}
}
