// Package app wires the capture, detection, paint and speech components
// into the AirDraw frame loop.
package app

import (
	"image/color"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/jkatak/airdraw/internal/capture"
	"github.com/jkatak/airdraw/internal/config"
	"github.com/jkatak/airdraw/internal/detector"
	"github.com/jkatak/airdraw/internal/ocr"
	"github.com/jkatak/airdraw/internal/overlay"
	"github.com/jkatak/airdraw/internal/paint"
	"github.com/jkatak/airdraw/internal/server"
	"github.com/jkatak/airdraw/internal/speech"
	"github.com/jkatak/airdraw/internal/store"
)

// IdleTimeoutMs is the time in milliseconds without motion before hand
// detection is suspended. The canvas keeps compositing either way.
const IdleTimeoutMs = 2000

// App is the main application that orchestrates the paint pipeline.
type App struct {
	settings config.Config
	store    *store.Store
	frames   *server.FrameBuffer

	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	tracker    *detector.Tracker
	session    *paint.Session
	compositor *paint.Compositor
	overlays   *overlay.Set
	speech     *speech.Worker

	enabled bool
	onMode  func(name string)
	mu      sync.RWMutex
	stopCh  chan struct{}
}

// New creates a new App instance with the given configuration. The store
// and frame buffer may be nil; persistence and HTTP publishing are then
// skipped.
func New(settings config.Config, st *store.Store, frames *server.FrameBuffer) *App {
	motionThreshold := settings.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		settings:   settings,
		store:      st,
		frames:     frames,
		camera:     capture.NewCamera(settings.Camera.DeviceID, settings.Camera.Width, settings.Camera.Height),
		motion:     capture.NewMotionDetector(motionThreshold),
		compositor: paint.NewCompositor(),
		enabled:    true,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}
	a.tracker = detector.NewTracker(a.detector, true)

	a.session = paint.NewSession(a.sessionConfig(), a.sessionDeps())

	return a
}

// sessionConfig maps the application settings onto the paint session.
func (a *App) sessionConfig() paint.Config {
	s := a.settings
	return paint.Config{
		Width:          s.Camera.Width,
		Height:         s.Camera.Height,
		HeaderHeight:   s.Header.Height,
		CooldownFrames: s.Header.CooldownFrames,
		BrushColor: color.RGBA{
			B: uint8(s.Brush.Color[0]),
			G: uint8(s.Brush.Color[1]),
			R: uint8(s.Brush.Color[2]),
		},
		BrushThickness:  s.Brush.Thickness,
		EraserThickness: s.Brush.EraserThickness,
		SnapshotPath:    s.Paths.SnapshotPath,
	}
}

// sessionDeps builds the session collaborators: the compositor mask, the
// OCR engine, the speech worker and the snapshot recorder. The speech
// worker is only created when Watson credentials are configured.
func (a *App) sessionDeps() paint.Deps {
	deps := paint.Deps{
		Mask: a.compositor,
		OCR:  ocr.New(a.settings.OCRLanguage),
	}

	if a.store != nil {
		deps.Snapshots = &snapshotRecorder{store: a.store}
	}

	if a.settings.Watson.TTSAPIKey != "" {
		synth := speech.NewWatson(speech.Config{
			TTSAPIKey:        a.settings.Watson.TTSAPIKey,
			TTSURL:           a.settings.Watson.TTSURL,
			TranslateAPIKey:  a.settings.Watson.TranslateAPIKey,
			TranslateURL:     a.settings.Watson.TranslateURL,
			TranslateVersion: a.settings.Watson.TranslateVersion,
			EnglishVoice:     a.settings.Watson.EnglishVoice,
			FrenchVoice:      a.settings.Watson.FrenchVoice,
			TranslateModel:   a.settings.Watson.TranslateModel,
			SpeechPath:       a.settings.Paths.SpeechPath,
		})

		var transcripts speech.TranscriptRecorder
		if a.store != nil {
			transcripts = &transcriptRecorder{store: a.store, audioPath: a.settings.Paths.SpeechPath}
		}

		a.speech = speech.NewWorker(synth, transcripts)
		deps.Speech = a.speech
	} else {
		log.Println("No Watson credentials configured, speech disabled")
	}

	return deps
}

// SetEnabled enables or disables hand detection. The camera keeps
// running and the canvas stays composited while disabled.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether hand detection is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// OnModeChange sets a callback invoked from the frame loop whenever the
// paint mode changes.
func (a *App) OnModeChange(fn func(name string)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onMode = fn
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
	a.tracker = detector.NewTracker(d, true)
}

// Session returns the paint session.
func (a *App) Session() *paint.Session {
	return a.session
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Stop signals the frame loop to exit.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}
}

// close releases all resources after the frame loop exits.
func (a *App) close() {
	if a.speech != nil {
		a.speech.Stop()
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.tracker != nil {
		if err := a.tracker.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	if a.overlays != nil {
		a.overlays.Close()
	}

	a.compositor.Close()
	a.session.Close()
}

// snapshotRecorder persists snapshot metadata to the store.
type snapshotRecorder struct {
	store *store.Store
}

func (r *snapshotRecorder) RecordSnapshot(path, trigger string) error {
	source := store.SnapshotSourceGesture
	if trigger == "hotkey" {
		source = store.SnapshotSourceHotkey
	}
	return r.store.Snapshots().Create(&store.Snapshot{
		ID:     uuid.NewString(),
		Path:   path,
		Source: source,
	})
}

// transcriptRecorder persists spoken text to the store.
type transcriptRecorder struct {
	store     *store.Store
	audioPath string
}

func (r *transcriptRecorder) RecordTranscript(text, language string) error {
	return r.store.Transcripts().Create(&store.Transcript{
		ID:        uuid.NewString(),
		Text:      text,
		Language:  language,
		AudioPath: r.audioPath,
	})
}
