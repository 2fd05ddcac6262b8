package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Frame holds the gamma corrected color of every pixel of one render.
// Row 0 is the top of the image.
type Frame struct {
	Width    int
	Height   int
	Pixels   []core.Vec3 // Row-major, Width*Height entries
	Variance []float64   // Luminance variance of each pixel's samples, same layout as Pixels
	Time     float64     // Time value the frame was rendered with
	Stats    RenderStats
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:    width,
		Height:   height,
		Pixels:   make([]core.Vec3, width*height),
		Variance: make([]float64, width*height),
	}
}

// At returns the color at column x, row y (top-left origin)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

func (f *Frame) set(x, y int, c core.Vec3, variance float64) {
	f.Pixels[y*f.Width+x] = c
	f.Variance[y*f.Width+x] = variance
}

// meanVariance averages Variance in pixel order, so the result does not
// depend on which tile finished first
func (f *Frame) meanVariance() float64 {
	if len(f.Variance) == 0 {
		return 0
	}
	var sum float64
	for _, v := range f.Variance {
		sum += v
	}
	return sum / float64(len(f.Variance))
}

// Image converts the frame to an opaque RGBA image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(f.At(x, y)))
		}
	}
	return img
}

// vec3ToColor converts a gamma corrected Vec3 color to RGBA with clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
