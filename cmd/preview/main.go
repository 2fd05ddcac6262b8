// Command preview shows the default scene in a desktop window and re-renders
// it continuously with the elapsed time as the noise perturbation, the way a
// fragment shader host would.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

func main() {
	width := flag.Int("width", 320, "Render width in pixels")
	height := flag.Int("height", 180, "Render height in pixels")
	scale := flag.Int("scale", 2, "Window scale factor")
	samples := flag.Int("samples", core.DefaultSamplingConfig().SamplesPerPixel, "Samples per pixel")
	depth := flag.Int("depth", core.DefaultSamplingConfig().MaxDepth, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		fmt.Fprintf(os.Stderr, "invalid resolution %dx%d\n", *width, *height)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	raytracer := renderer.NewRaytracer(scene.NewDefaultScene(), *width, *height)
	raytracer.SetLogger(&quietLogger{})
	raytracer.MergeSamplingConfig(core.SamplingConfig{SamplesPerPixel: *samples, MaxDepth: *depth})
	raytracer.SetRenderConfig(renderer.RenderConfig{TileSize: renderer.DefaultTileSize, NumWorkers: *workers})

	game := newPreviewGame(ctx, raytracer, *width, *height)

	ebiten.SetWindowTitle("Sphere Path Tracer")
	ebiten.SetWindowSize(*width**scale, *height**scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(game)

	// Abort the frame still in flight, if any
	cancel()
	game.wait()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// quietLogger drops the per-frame progress lines
type quietLogger struct{}

func (*quietLogger) Printf(format string, args ...interface{}) {}

// previewGame renders frames in the background and shows the latest one
type previewGame struct {
	ctx       context.Context
	raytracer *renderer.Raytracer
	width     int
	height    int
	start     time.Time

	rendering atomic.Bool
	inflight  sync.WaitGroup

	mu     sync.Mutex
	latest *image.RGBA
	err    error
	frames int

	screenImg *ebiten.Image
}

func newPreviewGame(ctx context.Context, rt *renderer.Raytracer, width, height int) *previewGame {
	return &previewGame{
		ctx:       ctx,
		raytracer: rt,
		width:     width,
		height:    height,
		start:     time.Now(),
		screenImg: ebiten.NewImage(width, height),
	}
}

// Update starts a new frame whenever the previous one has finished
func (g *previewGame) Update() error {
	g.mu.Lock()
	err := g.err
	g.mu.Unlock()
	if err != nil {
		return err
	}

	if g.rendering.CompareAndSwap(false, true) {
		elapsed := time.Since(g.start).Seconds()
		g.inflight.Add(1)
		go g.renderFrame(elapsed)
	}
	return nil
}

func (g *previewGame) renderFrame(frameTime float64) {
	defer g.inflight.Done()
	defer g.rendering.Store(false)

	frame, err := g.raytracer.RenderFrame(g.ctx, frameTime)
	if err != nil {
		if g.ctx.Err() == nil {
			g.mu.Lock()
			g.err = fmt.Errorf("preview: %w", err)
			g.mu.Unlock()
		}
		return
	}

	img := frame.Image()
	g.mu.Lock()
	g.latest = img
	g.frames++
	g.mu.Unlock()
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	latest := g.latest
	g.latest = nil
	frames := g.frames
	g.mu.Unlock()

	if latest != nil {
		g.screenImg.WritePixels(latest.Pix)
		ebiten.SetWindowTitle(fmt.Sprintf("Sphere Path Tracer (frame %d)", frames))
	}
	screen.DrawImage(g.screenImg, nil)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// wait blocks until the background frame, if any, has returned
func (g *previewGame) wait() {
	g.inflight.Wait()
}
