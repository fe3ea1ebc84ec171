package app

import (
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/jkatak/airdraw/internal/detector"
	"github.com/jkatak/airdraw/internal/overlay"
)

// Hotkeys recognized by the display window.
const (
	keyEsc       = 27
	keyQuit      = 'q'
	keyClear     = 'c'
	keyQuickSave = 's'
)

// Run opens the camera and drives the paint loop until Stop is called or
// a quit key is pressed. It blocks the calling goroutine.
//
// Per frame:
//  1. Read a mirrored camera frame
//  2. Motion gating: suspend hand detection after 2s of stillness
//  3. Hand detection and landmark extraction
//  4. Advance the paint state machine (may draw on frame and canvas)
//  5. Composite the canvas into the frame
//  6. Apply the header overlay
//  7. Publish the frame for HTTP clients and show it in the window
func (a *App) Run() error {
	if err := a.camera.Open(); err != nil {
		return err
	}

	overlays, err := overlay.Load(a.settings.Paths.OverlayDir, a.camera.Width(), a.settings.Header.Height)
	if err != nil {
		return err
	}
	a.overlays = overlays

	if a.speech != nil {
		a.speech.Start()
	}

	a.mu.Lock()
	a.stopCh = make(chan struct{})
	stopCh := a.stopCh
	a.mu.Unlock()

	window := gocv.NewWindow("AirDraw")
	defer window.Close()
	defer a.close()

	log.Println("Paint loop started")

	active := false
	lastMotion := time.Now()
	lastMode := a.session.Mode()

	for {
		select {
		case <-stopCh:
			return nil
		default:
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			log.Printf("Error reading frame: %v", err)
			time.Sleep(100 * time.Millisecond)
			continue
		}

		// Motion gating: the detector subprocess is the expensive part of
		// the loop, so a still scene suspends it. Compositing continues
		// either way so the drawn canvas never flickers.
		motionDetected, _ := a.motion.Detect(frame)
		if motionDetected {
			lastMotion = time.Now()
			if !active {
				active = true
				log.Println("Motion detected, hand tracking resumed")
			}
		} else if active && time.Since(lastMotion) > IdleTimeoutMs*time.Millisecond {
			active = false
			log.Println("Scene still, hand tracking suspended")
		}

		var lm []detector.Landmark
		var fingers []bool
		var hands []detector.HandLandmarks

		if active && a.IsEnabled() {
			a.mu.RLock()
			tracker := a.tracker
			a.mu.RUnlock()

			if err := tracker.Detect(frame); err != nil {
				log.Printf("Error detecting hands: %v", err)
			}
			lm = tracker.Landmarks(frame, 0)
			fingers = tracker.FingersUp()
			hands = tracker.Hands()
		}

		a.session.Update(frame, lm, fingers)
		if mode := a.session.Mode(); mode != lastMode {
			lastMode = mode
			a.mu.RLock()
			onMode := a.onMode
			a.mu.RUnlock()
			if onMode != nil {
				onMode(mode.String())
			}
		}
		a.compositor.Blend(frame, a.session.Canvas())
		a.overlays.Apply(frame, a.session.HeaderIndex())

		a.publish(frame, hands)

		window.IMShow(*frame)
		key := window.WaitKey(1)
		frame.Close()

		if a.handleKey(key) {
			return nil
		}
	}
}

// publish encodes the composited frame as JPEG and hands it to the HTTP
// frame buffer.
func (a *App) publish(frame *gocv.Mat, hands []detector.HandLandmarks) {
	if a.frames == nil {
		return
	}

	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		log.Printf("Error encoding frame: %v", err)
		return
	}
	defer buf.Close()

	a.frames.Publish(buf.GetBytes(), hands)
}

// handleKey processes a display window keypress. Returns true on quit.
func (a *App) handleKey(key int) bool {
	switch key {
	case keyQuit, keyEsc:
		log.Println("Quit requested")
		return true
	case keyClear:
		a.session.ClearCanvas()
		log.Println("Canvas cleared")
	case keyQuickSave:
		filename, err := a.session.QuickSave()
		if err != nil {
			log.Printf("quick save: %v", err)
		} else {
			log.Printf("Canvas saved to %s", filename)
		}
	}
	return false
}
