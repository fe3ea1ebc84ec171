package capture

import (
	"errors"
	"testing"
)

func TestNewCamera(t *testing.T) {
	tests := []struct {
		name       string
		deviceID   int
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "explicit resolution",
			deviceID:   0,
			width:      1280,
			height:     720,
			wantWidth:  1280,
			wantHeight: 720,
		},
		{
			name:       "zero dimensions fall back to defaults",
			deviceID:   1,
			width:      0,
			height:     0,
			wantWidth:  DefaultWidth,
			wantHeight: DefaultHeight,
		},
		{
			name:       "negative dimensions fall back to defaults",
			deviceID:   2,
			width:      -1,
			height:     -1,
			wantWidth:  DefaultWidth,
			wantHeight: DefaultHeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(tt.deviceID, tt.width, tt.height)

			if cam == nil {
				t.Fatal("NewCamera returned nil")
			}

			if got := cam.Width(); got != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", got, tt.wantWidth)
			}
			if got := cam.Height(); got != tt.wantHeight {
				t.Errorf("Height() = %d, want %d", got, tt.wantHeight)
			}

			// Camera should not be running initially
			if cam.IsOpen() {
				t.Error("camera should not be running initially")
			}
		})
	}
}

func TestCamera_ReadFrameWithoutOpen(t *testing.T) {
	cam := NewCamera(0, 1280, 720)

	_, err := cam.ReadFrame()
	if !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() error = %v, want %v", err, ErrCameraNotOpen)
	}
}

func TestCamera_CloseWithoutOpen(t *testing.T) {
	cam := NewCamera(0, 1280, 720)

	// Close before Open should be a no-op
	if err := cam.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if cam.IsOpen() {
		t.Error("camera should not be open after Close")
	}
}

func TestCamera_ImplementsInterface(t *testing.T) {
	var _ Camera = (*webcam)(nil)
	var _ Camera = (*MockCamera)(nil)
}
