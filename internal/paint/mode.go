// Package paint implements the air drawing core: the mode state machine
// driven by the header menu, the persistent stroke canvas, and the
// compositor that blends the canvas into the live camera frame.
package paint

// Mode is the active paint interface mode. Exactly one mode is active at
// a time; SaveCanvas and the two translate modes are one-shot actions
// that revert to Idle after firing.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawing
	ModeEraser
	ModeSaveCanvas
	ModeTranslateEnglish
	ModeTranslateFrench
	ModeFingerCounter
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDrawing:
		return "drawing"
	case ModeEraser:
		return "eraser"
	case ModeSaveCanvas:
		return "save_canvas"
	case ModeTranslateEnglish:
		return "translate_english"
	case ModeTranslateFrench:
		return "translate_french"
	case ModeFingerCounter:
		return "finger_counter"
	default:
		return "unknown"
	}
}

// Overlay indices into the header image list. Indices 6 through 11 show
// finger counts 0 through 5 in counter mode.
const (
	OverlayIdle        = 0
	OverlayDrawing     = 1
	OverlayEraser      = 2
	OverlaySave        = 3
	OverlayTranslateEN = 4
	OverlayTranslateFR = 5
	OverlayCounterBase = 6
	NumOverlays        = 12
)

// band is one selectable region of the header strip.
type band struct {
	minX, maxX int
	mode       Mode
	overlay    int
}

// headerBands maps horizontal fingertip ranges to candidate modes. The
// bands are disjoint; gaps between them select nothing. Tuned for a
// 1280px wide frame.
var headerBands = []band{
	{5, 190, ModeDrawing, OverlayDrawing},
	{200, 390, ModeEraser, OverlayEraser},
	{400, 590, ModeSaveCanvas, OverlaySave},
	{600, 790, ModeTranslateEnglish, OverlayTranslateEN},
	{800, 990, ModeTranslateFrench, OverlayTranslateFR},
	{1000, 1270, ModeFingerCounter, OverlayCounterBase},
}

// selectBand returns the band containing x, or nil when x falls in a gap.
func selectBand(x int) *band {
	for i := range headerBands {
		b := &headerBands[i]
		if x > b.minX && x < b.maxX {
			return b
		}
	}
	return nil
}
