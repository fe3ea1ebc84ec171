package paint

import (
	"gocv.io/x/gocv"
)

// MaskThreshold is the grayscale level separating canvas content from
// background when building the inverse mask.
const MaskThreshold = 50

// Compositor blends the persistent canvas into the live camera frame.
// Its scratch Mats are reused across frames; it is not safe for
// concurrent use, matching the single-threaded frame loop that owns it.
type Compositor struct {
	gray   gocv.Mat
	inv    gocv.Mat
	invBGR gocv.Mat
}

// NewCompositor creates a Compositor with empty scratch buffers.
func NewCompositor() *Compositor {
	return &Compositor{
		gray:   gocv.NewMat(),
		inv:    gocv.NewMat(),
		invBGR: gocv.NewMat(),
	}
}

// Close releases the scratch buffers.
func (c *Compositor) Close() {
	c.gray.Close()
	c.inv.Close()
	c.invBGR.Close()
}

// Blend merges the canvas into the frame in place:
//
//  1. canvas -> single channel intensity
//  2. inverse binary threshold (content 0, background 255)
//  3. frame AND mask, keeping live pixels only where the canvas is blank
//  4. frame OR canvas, overlaying the drawn strokes opaquely
//
// Untouched regions keep the unmodified camera image.
func (c *Compositor) Blend(frame, canvas *gocv.Mat) {
	if frame == nil || canvas == nil || frame.Empty() || canvas.Empty() {
		return
	}

	gocv.CvtColor(*canvas, &c.gray, gocv.ColorBGRToGray)
	gocv.Threshold(c.gray, &c.inv, MaskThreshold, 255, gocv.ThresholdBinaryInv)
	gocv.CvtColor(c.inv, &c.invBGR, gocv.ColorGrayToBGR)

	gocv.BitwiseAnd(*frame, c.invBGR, frame)
	gocv.BitwiseOr(*frame, *canvas, frame)
}

// InverseMask returns the BGR inverse mask from the most recent Blend:
// a white page with the drawn strokes in black, the rendition saved for
// OCR. Empty before the first Blend.
func (c *Compositor) InverseMask() *gocv.Mat {
	return &c.invBGR
}
