// Package detector provides hand landmark detection for the air drawing interface.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// NumFingers is the length of a finger state vector.
const NumFingers = 5

// tipIDs lists the fingertip landmark indices in thumb-to-pinky order.
var tipIDs = [NumFingers]int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip}

// Point3D represents a normalized landmark position as reported by
// MediaPipe: x and y in [0,1] relative to the frame, z is relative depth.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks of one detected hand.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Landmark is one tracked hand point in pixel space.
type Landmark struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// ToPixels converts the normalized landmarks to pixel coordinates for a
// frame of the given dimensions. The result is ordered by landmark index.
func (h *HandLandmarks) ToPixels(width, height int) []Landmark {
	if h == nil {
		return nil
	}

	landmarks := make([]Landmark, NumLandmarks)
	for i := 0; i < NumLandmarks; i++ {
		landmarks[i] = Landmark{
			ID: i,
			X:  int(h.Points[i].X * float64(width)),
			Y:  int(h.Points[i].Y * float64(height)),
		}
	}
	return landmarks
}

// FingersUp derives the finger state vector from a pixel landmark set.
// The thumb compares its tip x against the IP joint (horizontal
// extension); the other four fingers compare tip y against the PIP joint
// two indices below the tip (tip above knuckle means raised).
// Returns nil when the landmark set is incomplete.
func FingersUp(landmarks []Landmark) []bool {
	if len(landmarks) < NumLandmarks {
		return nil
	}

	fingers := make([]bool, NumFingers)

	// Thumb extends sideways, so the x axis decides.
	fingers[0] = landmarks[tipIDs[0]].X < landmarks[tipIDs[0]-1].X

	for i := 1; i < NumFingers; i++ {
		fingers[i] = landmarks[tipIDs[i]].Y < landmarks[tipIDs[i]-2].Y
	}

	return fingers
}

// CountUp returns the number of raised fingers in a finger state vector.
func CountUp(fingers []bool) int {
	count := 0
	for _, up := range fingers {
		if up {
			count++
		}
	}
	return count
}
