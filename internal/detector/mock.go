package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PointingHandLandmarks returns a HandLandmarks in the drawing pose:
// index finger extended with its tip at the given normalized (x, y),
// middle/ring/pinky curled, thumb folded across the palm.
func PointingHandLandmarks(x, y float64) HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	// Wrist well below the fingertip
	landmarks.Points[Wrist] = Point3D{X: x, Y: y + 0.35, Z: 0.0}

	// Thumb folded: tip x greater than IP x means not raised
	landmarks.Points[ThumbCMC] = Point3D{X: x + 0.03, Y: y + 0.32, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: x + 0.05, Y: y + 0.28, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: x + 0.06, Y: y + 0.25, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: x + 0.08, Y: y + 0.24, Z: 0.0}

	// Index extended straight up, tip exactly at (x, y)
	landmarks.Points[IndexMCP] = Point3D{X: x, Y: y + 0.25, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: x, Y: y + 0.16, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: x, Y: y + 0.08, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: x, Y: y, Z: 0.0}

	// Middle curled: tip below the PIP joint
	landmarks.Points[MiddleMCP] = Point3D{X: x - 0.04, Y: y + 0.24, Z: -0.02}
	landmarks.Points[MiddlePIP] = Point3D{X: x - 0.04, Y: y + 0.20, Z: -0.05}
	landmarks.Points[MiddleDIP] = Point3D{X: x - 0.05, Y: y + 0.24, Z: -0.04}
	landmarks.Points[MiddleTip] = Point3D{X: x - 0.05, Y: y + 0.27, Z: -0.02}

	// Ring curled
	landmarks.Points[RingMCP] = Point3D{X: x - 0.08, Y: y + 0.25, Z: -0.02}
	landmarks.Points[RingPIP] = Point3D{X: x - 0.08, Y: y + 0.21, Z: -0.05}
	landmarks.Points[RingDIP] = Point3D{X: x - 0.09, Y: y + 0.25, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: x - 0.09, Y: y + 0.28, Z: -0.02}

	// Pinky curled
	landmarks.Points[PinkyMCP] = Point3D{X: x - 0.12, Y: y + 0.27, Z: -0.02}
	landmarks.Points[PinkyPIP] = Point3D{X: x - 0.12, Y: y + 0.23, Z: -0.05}
	landmarks.Points[PinkyDIP] = Point3D{X: x - 0.13, Y: y + 0.27, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: x - 0.13, Y: y + 0.30, Z: -0.02}

	return landmarks
}

// OpenPalmLandmarks returns a HandLandmarks with all five fingers
// extended (the eraser full-clear gesture), index tip at the given
// normalized (x, y).
func OpenPalmLandmarks(x, y float64) HandLandmarks {
	landmarks := PointingHandLandmarks(x, y)

	// Thumb extended sideways: tip x smaller than IP x
	landmarks.Points[ThumbIP] = Point3D{X: x + 0.06, Y: y + 0.22, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: x + 0.02, Y: y + 0.18, Z: 0.0}

	// Middle, ring and pinky extended: tips above their PIP joints
	landmarks.Points[MiddlePIP] = Point3D{X: x - 0.04, Y: y + 0.14, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: x - 0.04, Y: y + 0.06, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: x - 0.04, Y: y - 0.02, Z: 0.0}

	landmarks.Points[RingPIP] = Point3D{X: x - 0.08, Y: y + 0.16, Z: 0.0}
	landmarks.Points[RingDIP] = Point3D{X: x - 0.08, Y: y + 0.09, Z: 0.0}
	landmarks.Points[RingTip] = Point3D{X: x - 0.08, Y: y + 0.02, Z: 0.0}

	landmarks.Points[PinkyPIP] = Point3D{X: x - 0.12, Y: y + 0.20, Z: 0.0}
	landmarks.Points[PinkyDIP] = Point3D{X: x - 0.12, Y: y + 0.14, Z: 0.0}
	landmarks.Points[PinkyTip] = Point3D{X: x - 0.12, Y: y + 0.08, Z: 0.0}

	return landmarks
}

// TwoFingerLandmarks returns a HandLandmarks with index and middle
// extended and the rest folded (the "pause stroke" pose, count 2).
func TwoFingerLandmarks(x, y float64) HandLandmarks {
	landmarks := PointingHandLandmarks(x, y)

	landmarks.Points[MiddlePIP] = Point3D{X: x - 0.04, Y: y + 0.14, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: x - 0.04, Y: y + 0.06, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: x - 0.04, Y: y - 0.02, Z: 0.0}

	return landmarks
}

// FistLandmarks returns a HandLandmarks with every finger folded.
func FistLandmarks(x, y float64) HandLandmarks {
	landmarks := PointingHandLandmarks(x, y)

	// Fold the index: tip below the PIP joint
	landmarks.Points[IndexDIP] = Point3D{X: x, Y: y + 0.20, Z: -0.04}
	landmarks.Points[IndexTip] = Point3D{X: x, Y: y + 0.24, Z: -0.02}

	return landmarks
}
