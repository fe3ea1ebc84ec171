package detector

import (
	"image"
	"image/color"
	"log"

	"gocv.io/x/gocv"
)

// landmarkDotRadius is the radius of the circles drawn on detected landmarks.
const landmarkDotRadius = 5

var landmarkColor = color.RGBA{R: 255, G: 0, B: 255, A: 0}

// Tracker wraps a Detector and keeps the most recent detection result,
// exposing the query interface the paint loop works with: pixel-space
// landmark lists per hand and a finger state vector for the last
// queried hand.
type Tracker struct {
	detector Detector
	annotate bool
	hands    []HandLandmarks
	lmList   []Landmark
}

// NewTracker creates a Tracker over the given detector. When annotate is
// true, Detect draws the detected landmarks onto the frame.
func NewTracker(d Detector, annotate bool) *Tracker {
	return &Tracker{
		detector: d,
		annotate: annotate,
	}
}

// Detect runs hand detection on the frame and caches the result for
// subsequent Landmarks and FingersUp calls. Detection errors clear the
// cached hands so stale landmarks never drive the canvas.
func (t *Tracker) Detect(frame *gocv.Mat) error {
	hands, err := t.detector.Detect(frame)
	if err != nil {
		t.hands = nil
		t.lmList = nil
		return err
	}

	t.hands = hands
	return nil
}

// Hands returns the hands from the most recent Detect call.
func (t *Tracker) Hands() []HandLandmarks {
	return t.hands
}

// Landmarks returns the pixel-space landmark list for the given hand
// index, sized to the frame. Returns an empty list when no hand is
// present; an out-of-range hand index logs a warning and also returns
// empty, so callers treat both uniformly as "no data".
func (t *Tracker) Landmarks(frame *gocv.Mat, handIndex int) []Landmark {
	t.lmList = nil

	if len(t.hands) == 0 {
		return nil
	}

	if handIndex >= len(t.hands) {
		log.Printf("Warning: requested hand %d but only %d detected", handIndex, len(t.hands))
		return nil
	}

	t.lmList = t.hands[handIndex].ToPixels(frame.Cols(), frame.Rows())

	if t.annotate {
		for _, lm := range t.lmList {
			gocv.Circle(frame, image.Pt(lm.X, lm.Y), landmarkDotRadius, landmarkColor, -1)
		}
	}

	return t.lmList
}

// FingersUp returns the finger state vector computed from the most
// recent Landmarks query, or nil when there was none.
func (t *Tracker) FingersUp() []bool {
	if len(t.lmList) == 0 {
		return nil
	}
	return FingersUp(t.lmList)
}

// Close releases the underlying detector.
func (t *Tracker) Close() error {
	return t.detector.Close()
}
