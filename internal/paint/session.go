package paint

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"
	"time"

	"gocv.io/x/gocv"

	"github.com/jkatak/airdraw/internal/detector"
)

// cursorRadius is the radius of the filled fingertip cursor circle.
const cursorRadius = 15

// eraserColor matches the canvas background so eraser strokes remove paint.
var eraserColor = color.RGBA{}

// TextExtractor extracts text from a saved canvas image.
type TextExtractor interface {
	ExtractText(img gocv.Mat) (string, error)
}

// Speaker accepts fire-and-forget speech requests. Enqueue must not
// block the frame loop; it reports whether the request was accepted.
type Speaker interface {
	Enqueue(text string, translate bool) bool
}

// SnapshotRecorder records metadata about a written canvas snapshot.
type SnapshotRecorder interface {
	RecordSnapshot(path, trigger string) error
}

// MaskProvider exposes the most recent inverse canvas mask, the white
// page / dark strokes rendition that snapshots persist.
type MaskProvider interface {
	InverseMask() *gocv.Mat
}

// Config holds the tunable parameters of a paint session.
type Config struct {
	Width           int
	Height          int
	HeaderHeight    int
	CooldownFrames  int
	BrushColor      color.RGBA
	BrushThickness  int
	EraserThickness int
	SnapshotPath    string
}

// DefaultConfig returns the session parameters for a 1280x720 stream.
func DefaultConfig() Config {
	return Config{
		Width:           1280,
		Height:          720,
		HeaderHeight:    137,
		CooldownFrames:  30,
		BrushColor:      color.RGBA{R: 255, B: 255},
		BrushThickness:  25,
		EraserThickness: 100,
		SnapshotPath:    "portfolio_canvas.jpg",
	}
}

// Deps are the session's collaborators. Any of them may be nil; the
// corresponding mode then degrades to a logged no-op.
type Deps struct {
	Mask      MaskProvider
	OCR       TextExtractor
	Speech    Speaker
	Snapshots SnapshotRecorder
}

// Session owns all per-frame mutable paint state: the current mode, the
// mode-change cooldown, the stroke anchor and the persistent canvas.
// It is single-threaded; only the frame loop may call its methods.
type Session struct {
	cfg  Config
	deps Deps

	mode         Mode
	modeSelected bool
	cooldown     int
	anchor       image.Point // zero value is the "no previous point" sentinel
	headerIdx    int
	canvas       gocv.Mat
}

// NewSession creates a Session with a blank canvas of the configured size.
func NewSession(cfg Config, deps Deps) *Session {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	return &Session{
		cfg:    cfg,
		deps:   deps,
		mode:   ModeIdle,
		canvas: gocv.NewMatWithSize(cfg.Height, cfg.Width, gocv.MatTypeCV8UC3),
	}
}

// Close releases the canvas.
func (s *Session) Close() {
	s.canvas.Close()
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Cooldown returns the remaining mode-change cooldown in frames.
func (s *Session) Cooldown() int { return s.cooldown }

// HeaderIndex returns the overlay index the display should show.
func (s *Session) HeaderIndex() int { return s.headerIdx }

// Canvas returns the persistent stroke buffer.
func (s *Session) Canvas() *gocv.Mat { return &s.canvas }

// Update advances the state machine by one frame. lm is the pixel
// landmark list for the tracked hand (empty when none was detected) and
// fingers the matching finger state vector. A frame without a hand
// leaves mode, cooldown and canvas untouched; only the stroke anchor
// resets so the next stroke starts disconnected.
func (s *Session) Update(frame *gocv.Mat, lm []detector.Landmark, fingers []bool) {
	if len(lm) == 0 {
		s.anchor = image.Point{}
		return
	}

	tip := image.Pt(lm[detector.IndexTip].X, lm[detector.IndexTip].Y)

	// Header menu: only reachable with a cooled-down fingertip in the strip.
	transitioned := false
	if tip.Y < s.cfg.HeaderHeight && s.cooldown == 0 {
		if b := selectBand(tip.X); b != nil && b.mode != s.mode {
			s.mode = b.mode
			s.modeSelected = true
			s.cooldown = s.cfg.CooldownFrames
			s.headerIdx = b.overlay
			transitioned = true
			log.Printf("[mode change] -> %s", s.mode)
		}
	}

	if !transitioned && s.cooldown > 0 {
		s.cooldown--
	}

	if !s.modeSelected {
		return
	}

	switch s.mode {
	case ModeDrawing:
		s.stroke(frame, tip, fingers, s.cfg.BrushColor, s.cfg.BrushThickness)

	case ModeEraser:
		s.stroke(frame, tip, fingers, eraserColor, s.cfg.EraserThickness)
		// Full clear on an open palm, but never while the hand is in the
		// header strip: mode selection wins that overlap.
		if tip.Y >= s.cfg.HeaderHeight && len(fingers) == detector.NumFingers && detector.CountUp(fingers) == detector.NumFingers {
			s.ClearCanvas()
			log.Println("Canvas cleared by gesture")
		}

	case ModeSaveCanvas:
		if err := s.SaveSnapshot("gesture"); err != nil {
			log.Printf("save canvas: %v", err)
		}
		s.mode = ModeIdle

	case ModeTranslateEnglish:
		s.dispatchSpeech(false)
		s.mode = ModeIdle

	case ModeTranslateFrench:
		s.dispatchSpeech(true)
		s.mode = ModeIdle

	case ModeFingerCounter:
		count := detector.CountUp(fingers)
		s.headerIdx = OverlayCounterBase + count
	}
}

// stroke draws a line segment from the anchor to the fingertip on both
// the displayed frame and the canvas when the index finger is up and the
// middle finger is down. The anchor always follows the fingertip so a
// paused gesture resumes without a connecting line.
func (s *Session) stroke(frame *gocv.Mat, tip image.Point, fingers []bool, c color.RGBA, thickness int) {
	if len(fingers) >= 3 && fingers[1] && !fingers[2] {
		gocv.Circle(frame, tip, cursorRadius, c, -1)
		if s.anchor == (image.Point{}) {
			s.anchor = tip
		}
		gocv.Line(frame, s.anchor, tip, c, thickness)
		gocv.Line(&s.canvas, s.anchor, tip, c, thickness)
	}
	s.anchor = tip
}

// ClearCanvas resets the canvas to an all-zero buffer.
func (s *Session) ClearCanvas() {
	s.canvas.SetTo(gocv.NewScalar(0, 0, 0, 0))
}

// SaveSnapshot writes the inverse canvas image to the configured
// snapshot path, overwriting any previous snapshot, and records it.
// Falls back to the raw canvas when no compositor mask exists yet.
func (s *Session) SaveSnapshot(trigger string) error {
	img := &s.canvas
	if s.deps.Mask != nil {
		if mask := s.deps.Mask.InverseMask(); mask != nil && !mask.Empty() {
			img = mask
		}
	}

	if ok := gocv.IMWrite(s.cfg.SnapshotPath, *img); !ok {
		return fmt.Errorf("write snapshot %s", s.cfg.SnapshotPath)
	}

	if s.deps.Snapshots != nil {
		if err := s.deps.Snapshots.RecordSnapshot(s.cfg.SnapshotPath, trigger); err != nil {
			log.Printf("record snapshot: %v", err)
		}
	}

	return nil
}

// QuickSave writes the canvas to a uniquely named timestamped file and
// returns the filename.
func (s *Session) QuickSave() (string, error) {
	filename := fmt.Sprintf("quicksave_%s.png", time.Now().Format("20060102_150405.000"))
	if ok := gocv.IMWrite(filename, s.canvas); !ok {
		return "", fmt.Errorf("write quicksave %s", filename)
	}

	if s.deps.Snapshots != nil {
		if err := s.deps.Snapshots.RecordSnapshot(filename, "hotkey"); err != nil {
			log.Printf("record quicksave: %v", err)
		}
	}

	return filename, nil
}

// dispatchSpeech reads back the saved snapshot, extracts its text and
// hands it to the speech worker. Runs synchronously except for the
// enqueue; OCR and I/O failures are logged and dropped, never fatal.
func (s *Session) dispatchSpeech(translate bool) {
	if s.deps.OCR == nil || s.deps.Speech == nil {
		log.Println("speech dispatch skipped: no OCR or speech collaborator")
		return
	}

	img := gocv.IMRead(s.cfg.SnapshotPath, gocv.IMReadColor)
	if img.Empty() {
		log.Printf("no saved canvas at %s", s.cfg.SnapshotPath)
		return
	}
	defer img.Close()

	text, err := s.deps.OCR.ExtractText(img)
	if err != nil {
		log.Printf("ocr: %v", err)
		return
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Println("ocr: no text recognized")
		return
	}

	log.Printf("[ocr] %q (translate=%v)", text, translate)
	if !s.deps.Speech.Enqueue(text, translate) {
		log.Println("speech queue full, request dropped")
	}
}
