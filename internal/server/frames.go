package server

import (
	"sync"

	"github.com/jkatak/airdraw/internal/detector"
)

// FrameBuffer is the handoff point between the single-threaded paint
// loop and the HTTP handlers. The loop publishes the latest composited
// JPEG and hand set after every frame; handlers read snapshots of them.
type FrameBuffer struct {
	mu    sync.RWMutex
	jpeg  []byte
	hands []detector.HandLandmarks
	seq   uint64
}

// NewFrameBuffer creates an empty FrameBuffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// Publish stores the latest composited frame and detected hands.
// The JPEG bytes are copied so the caller may reuse its buffer.
func (b *FrameBuffer) Publish(jpeg []byte, hands []detector.HandLandmarks) {
	frame := make([]byte, len(jpeg))
	copy(frame, jpeg)

	b.mu.Lock()
	b.jpeg = frame
	b.hands = hands
	b.seq++
	b.mu.Unlock()
}

// Frame returns the latest JPEG frame and its sequence number.
// Returns nil before the first Publish.
func (b *FrameBuffer) Frame() ([]byte, uint64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.jpeg, b.seq
}

// Hands returns the latest detected hand set.
func (b *FrameBuffer) Hands() []detector.HandLandmarks {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.hands
}
