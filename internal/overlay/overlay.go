// Package overlay manages the header images swapped into the top strip
// of the displayed frame.
package overlay

import (
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sort"

	"gocv.io/x/gocv"
)

var (
	fallbackFill  = color.RGBA{R: 40, G: 40, B: 40, A: 0}
	fallbackLabel = color.RGBA{R: 255, G: 255, B: 255, A: 0}
)

// Set holds the pre-rendered header overlays, indexed by overlay index
// (mode banners 0-6, finger counts at 6+count). Purely cosmetic; when no
// images are available the header falls back to a label strip.
type Set struct {
	images []gocv.Mat
	height int
	labels []string
}

// Load reads every image in dir in filename order. Images are resized to
// width x height so they drop straight into the header strip. A missing
// or empty directory yields a Set that renders text fallbacks.
func Load(dir string, width, height int) (*Set, error) {
	s := &Set{
		height: height,
		labels: []string{
			"AIRDRAW", "DRAW", "ERASE", "SAVE", "SPEAK EN", "SPEAK FR",
			"FINGERS: 0", "FINGERS: 1", "FINGERS: 2", "FINGERS: 3", "FINGERS: 4", "FINGERS: 5",
		},
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("overlay dir %s not found, using label headers", dir)
			return s, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		img := gocv.IMRead(filepath.Join(dir, name), gocv.IMReadColor)
		if img.Empty() {
			continue
		}
		if img.Cols() != width || img.Rows() != height {
			gocv.Resize(img, &img, image.Pt(width, height), 0, 0, gocv.InterpolationLinear)
		}
		s.images = append(s.images, img)
	}

	log.Printf("Loaded %d header overlays from %s", len(s.images), dir)
	return s, nil
}

// Close releases the loaded images.
func (s *Set) Close() {
	for i := range s.images {
		s.images[i].Close()
	}
	s.images = nil
}

// Count returns the number of loaded overlay images.
func (s *Set) Count() int {
	return len(s.images)
}

// Apply draws the overlay with the given index over the top strip of the
// frame. Out-of-range indices and missing images render the label
// fallback instead.
func (s *Set) Apply(frame *gocv.Mat, index int) {
	if frame == nil || frame.Empty() {
		return
	}

	strip := frame.Region(image.Rect(0, 0, frame.Cols(), s.height))
	defer strip.Close()

	if index >= 0 && index < len(s.images) {
		s.images[index].CopyTo(&strip)
		return
	}

	strip.SetTo(gocv.NewScalar(float64(fallbackFill.B), float64(fallbackFill.G), float64(fallbackFill.R), 0))

	label := ""
	if index >= 0 && index < len(s.labels) {
		label = s.labels[index]
	}
	if label != "" {
		gocv.PutText(&strip, label, image.Pt(20, s.height/2+10),
			gocv.FontHersheySimplex, 1.5, fallbackLabel, 3)
	}
}
