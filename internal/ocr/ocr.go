// Package ocr extracts text from canvas snapshots using the Tesseract engine.
package ocr

import (
	"fmt"
	"image"

	"github.com/otiai10/gosseract/v2"
	"gocv.io/x/gocv"
)

// Preprocessing constants tuned for hand-drawn strokes on a plain page.
const (
	ocrWidth       = 640
	ocrHeight      = 480
	binaryLevel    = 150
	medianBlurSize = 3
)

// Engine wraps a Tesseract client with the preprocessing the canvas
// snapshots need before recognition.
type Engine struct {
	language string
}

// New creates an Engine for the given Tesseract language (e.g. "eng").
func New(language string) *Engine {
	if language == "" {
		language = "eng"
	}
	return &Engine{language: language}
}

// ExtractText recognizes text in a BGR image. The image is resized,
// converted to grayscale, binarized and denoised before being handed to
// Tesseract.
func (e *Engine) ExtractText(img gocv.Mat) (string, error) {
	if img.Empty() {
		return "", fmt.Errorf("empty image")
	}

	prepared := gocv.NewMat()
	defer prepared.Close()

	gocv.Resize(img, &prepared, image.Pt(ocrWidth, ocrHeight), 0, 0, gocv.InterpolationLinear)
	gocv.CvtColor(prepared, &prepared, gocv.ColorBGRToGray)
	gocv.Threshold(prepared, &prepared, binaryLevel, 255, gocv.ThresholdBinary)
	gocv.MedianBlur(prepared, &prepared, medianBlurSize)

	buf, err := gocv.IMEncode(".png", prepared)
	if err != nil {
		return "", fmt.Errorf("encode for ocr: %w", err)
	}
	defer buf.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.language); err != nil {
		return "", fmt.Errorf("set ocr language: %w", err)
	}
	if err := client.SetImageFromBytes(buf.GetBytes()); err != nil {
		return "", fmt.Errorf("load ocr image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}

	return text, nil
}
