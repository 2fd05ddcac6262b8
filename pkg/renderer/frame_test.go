package renderer

import (
	"image/color"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestFrame_Image(t *testing.T) {
	frame := NewFrame(2, 2)
	frame.set(0, 0, core.NewVec3(1, 0, 0), 0)
	frame.set(1, 0, core.NewVec3(0, 1, 0), 0)
	frame.set(0, 1, core.NewVec3(0, 0, 1), 0)
	frame.set(1, 1, core.NewVec3(1.5, -0.5, 0.5), 0) // out of range channels are clamped

	img := frame.Image()

	tests := []struct {
		x, y     int
		expected color.RGBA
	}{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{1, 0, color.RGBA{0, 255, 0, 255}},
		{0, 1, color.RGBA{0, 0, 255, 255}},
		{1, 1, color.RGBA{255, 0, 127, 255}},
	}

	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.expected {
			t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.expected, got)
		}
	}
}

func TestFrame_At(t *testing.T) {
	frame := NewFrame(3, 2)
	c := core.NewVec3(0.1, 0.2, 0.3)
	frame.set(2, 1, c, 0.25)

	if frame.At(2, 1) != c {
		t.Errorf("Expected %v at (2,1), got %v", c, frame.At(2, 1))
	}
	if len(frame.Pixels) != 6 {
		t.Errorf("Expected 6 pixels, got %d", len(frame.Pixels))
	}
	if frame.Variance[1*3+2] != 0.25 {
		t.Errorf("Expected variance 0.25 stored at (2,1), got %v", frame.Variance[1*3+2])
	}
}

func TestFrame_MeanVariance(t *testing.T) {
	frame := NewFrame(2, 2)
	frame.set(0, 0, core.Vec3{}, 0.5)
	frame.set(1, 0, core.Vec3{}, 0.25)
	frame.set(0, 1, core.Vec3{}, 0.25)

	if got := frame.meanVariance(); got != 0.25 {
		t.Errorf("Expected mean variance 0.25, got %v", got)
	}

	if got := NewFrame(0, 0).meanVariance(); got != 0 {
		t.Errorf("Expected 0 for an empty frame, got %v", got)
	}
}
