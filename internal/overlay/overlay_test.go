package overlay

import (
	"image"
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"
)

func writeOverlayImages(t *testing.T, dir string, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		img := gocv.NewMatWithSize(137, 1280, gocv.MatTypeCV8UC3)
		img.SetTo(gocv.NewScalar(float64(i*20), 0, 0, 0))
		path := filepath.Join(dir, string(rune('a'+i))+".png")
		if ok := gocv.IMWrite(path, img); !ok {
			t.Fatalf("failed to write overlay image %s", path)
		}
		img.Close()
	}
}

func TestLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	t.Run("loads images from directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeOverlayImages(t, tmpDir, 3)

		s, err := Load(tmpDir, 1280, 137)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		defer s.Close()

		if s.Count() != 3 {
			t.Errorf("Count() = %d, want 3", s.Count())
		}
	})

	t.Run("missing directory falls back to labels", func(t *testing.T) {
		s, err := Load(filepath.Join(t.TempDir(), "nope"), 1280, 137)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		defer s.Close()

		if s.Count() != 0 {
			t.Errorf("Count() = %d, want 0 for missing dir", s.Count())
		}
	})

	t.Run("resizes images to the header strip", func(t *testing.T) {
		tmpDir := t.TempDir()

		img := gocv.NewMatWithSize(50, 300, gocv.MatTypeCV8UC3)
		if ok := gocv.IMWrite(filepath.Join(tmpDir, "small.png"), img); !ok {
			t.Fatal("failed to write overlay image")
		}
		img.Close()

		s, err := Load(tmpDir, 1280, 137)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		defer s.Close()

		if s.Count() != 1 {
			t.Fatalf("Count() = %d, want 1", s.Count())
		}
		if s.images[0].Cols() != 1280 || s.images[0].Rows() != 137 {
			t.Errorf("image size = %dx%d, want 1280x137", s.images[0].Cols(), s.images[0].Rows())
		}
	})
}

func TestApply(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	t.Run("copies the overlay into the top strip", func(t *testing.T) {
		tmpDir := t.TempDir()

		img := gocv.NewMatWithSize(137, 1280, gocv.MatTypeCV8UC3)
		img.SetTo(gocv.NewScalar(200, 50, 10, 0))
		if ok := gocv.IMWrite(filepath.Join(tmpDir, "banner.png"), img); !ok {
			t.Fatal("failed to write overlay image")
		}
		img.Close()

		s, err := Load(tmpDir, 1280, 137)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		defer s.Close()

		frame := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
		defer frame.Close()

		s.Apply(&frame, 0)

		// Header strip carries the overlay
		px := frame.GetVecbAt(60, 640)
		if px[0] != 200 || px[1] != 50 || px[2] != 10 {
			t.Errorf("header pixel = %v, want overlay color", px)
		}

		// Below the strip the frame is untouched
		px = frame.GetVecbAt(400, 640)
		if px[0] != 0 || px[1] != 0 || px[2] != 0 {
			t.Errorf("body pixel = %v, want untouched", px)
		}
	})

	t.Run("out of range index renders the label fallback", func(t *testing.T) {
		s, err := Load(filepath.Join(t.TempDir(), "nope"), 1280, 137)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		defer s.Close()

		frame := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
		defer frame.Close()

		s.Apply(&frame, 0)

		// Fallback fills the strip, so it can no longer be all black
		strip := frame.Region(image.Rect(0, 0, 1280, 137))
		defer strip.Close()
		sum := strip.Sum()
		if sum.Val1 == 0 && sum.Val2 == 0 && sum.Val3 == 0 {
			t.Error("fallback strip should not be blank")
		}
	})

	t.Run("handles nil and empty frames", func(t *testing.T) {
		s, err := Load(filepath.Join(t.TempDir(), "nope"), 1280, 137)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		defer s.Close()

		empty := gocv.NewMat()
		defer empty.Close()

		// Must not panic
		s.Apply(nil, 0)
		s.Apply(&empty, 0)
	})
}
