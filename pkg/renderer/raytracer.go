package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// RenderConfig controls how a frame is split up for parallel rendering
type RenderConfig struct {
	TileSize   int // Edge length of each square tile
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   DefaultTileSize,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer renders a scene at a fixed resolution.
// The scene and camera are read-only once rendering starts, so one Raytracer
// can render many frames, but its setters must not race with RenderFrame.
type Raytracer struct {
	scene        *scene.Scene
	width        int
	height       int
	camera       *Camera
	config       core.SamplingConfig
	renderConfig RenderConfig
	integrator   integrator.Integrator
	logger       core.Logger
}

// NewRaytracer creates a new raytracer with default sampling and render configs
func NewRaytracer(sc *scene.Scene, width, height int) *Raytracer {
	config := core.DefaultSamplingConfig()
	return &Raytracer{
		scene:        sc,
		width:        width,
		height:       height,
		camera:       NewCamera(width, height),
		config:       config,
		renderConfig: DefaultRenderConfig(),
		integrator:   integrator.NewPathTracingIntegrator(config),
		logger:       NewDefaultLogger(),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config core.SamplingConfig) {
	rt.config = config
	rt.integrator = integrator.NewPathTracingIntegrator(config)
}

// MergeSamplingConfig applies only the positive fields of overrides
func (rt *Raytracer) MergeSamplingConfig(overrides core.SamplingConfig) {
	rt.SetSamplingConfig(rt.config.Merge(overrides))
}

// GetSamplingConfig returns the current sampling configuration
func (rt *Raytracer) GetSamplingConfig() core.SamplingConfig {
	return rt.config
}

// SetRenderConfig updates the tiling and worker configuration
func (rt *Raytracer) SetRenderConfig(config RenderConfig) {
	rt.renderConfig = config
}

// SetLogger replaces the logger used for frame progress messages
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// PixelColor returns the gamma corrected color of pixel (x, y), where y counts
// rows from the bottom of the image. Every call uses a fresh RandomStream
// seeded from the pixel center and frameTime, so the result depends on nothing
// but its arguments.
func (rt *Raytracer) PixelColor(x, y int, frameTime float64) core.Vec3 {
	var ps PixelStats
	rt.samplePixel(x, y, frameTime, &ps)
	return ps.GetColor().GammaCorrect()
}

// samplePixel accumulates SamplesPerPixel jittered camera samples into ps
func (rt *Raytracer) samplePixel(x, y int, frameTime float64, ps *PixelStats) {
	width, height := float64(rt.width), float64(rt.height)
	seed := core.NewVec2((float64(x)+0.5)/width, (float64(y)+0.5)/height)
	random := core.NewRandomStream(seed, frameTime)

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Jitter within one pixel's width, starting at the pixel center
		u := (float64(x) + 0.5 + random.Next()) / width
		v := (float64(y) + 0.5 + random.Next()) / height

		ray := rt.camera.GetRay(u, v)
		ps.AddSample(rt.integrator.RayColor(ray, rt.scene, random))
	}
}

// RenderFrame renders every pixel for the given time value. Tiles are
// rendered in parallel; cancelling ctx aborts the whole frame and no partial
// frame is returned. Output does not depend on worker count or scheduling.
func (rt *Raytracer) RenderFrame(ctx context.Context, frameTime float64) (*Frame, error) {
	if rt.width <= 0 || rt.height <= 0 {
		return nil, fmt.Errorf("render frame: invalid resolution %dx%d", rt.width, rt.height)
	}

	numWorkers := rt.renderConfig.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	tiles := NewTileGrid(rt.width, rt.height, rt.renderConfig.TileSize)

	rt.logger.Printf("Rendering %dx%d frame at t=%.3f: %d tiles, %d workers, %d samples, depth %d...\n",
		rt.width, rt.height, frameTime, len(tiles), numWorkers, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	startTime := time.Now()
	frame := NewFrame(rt.width, rt.height)
	frame.Time = frameTime

	g, tileCtx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)
	for _, tile := range tiles {
		if tileCtx.Err() != nil {
			break
		}
		tile := tile // per-iteration copy (module targets go 1.21 loop semantics)
		g.Go(func() error {
			if err := tileCtx.Err(); err != nil {
				return err
			}
			// Each tile has non-overlapping bounds, so writes never collide
			rt.renderTile(tile, frame, frameTime)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render frame: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render frame: %w", err)
	}

	frame.Stats = RenderStats{
		TotalPixels:           rt.width * rt.height,
		TotalSamples:          rt.width * rt.height * rt.config.SamplesPerPixel,
		Tiles:                 len(tiles),
		Workers:               numWorkers,
		Elapsed:               time.Since(startTime),
		MeanLuminanceVariance: frame.meanVariance(),
	}

	rt.logger.Printf("Frame completed in %v (%.0f samples/s, mean luminance variance %.4f)\n",
		frame.Stats.Elapsed, frame.Stats.SamplesPerSecond(), frame.Stats.MeanLuminanceVariance)

	return frame, nil
}

// renderTile fills the frame pixels covered by tile
func (rt *Raytracer) renderTile(tile Tile, frame *Frame, frameTime float64) {
	for row := tile.Bounds.Min.Y; row < tile.Bounds.Max.Y; row++ {
		// Image rows count from the top, pixel rows from the bottom
		y := rt.height - 1 - row
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			var ps PixelStats
			rt.samplePixel(x, y, frameTime, &ps)
			frame.set(x, row, ps.GetColor().GammaCorrect(), ps.LuminanceVariance())
		}
	}
}
