package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	Width      int
	Height     int
	Samples    int
	MaxDepth   int
	Time       float64
	NumWorkers int
	OutputDir  string
}

func main() {
	// Parse command line flags
	defaults := core.DefaultSamplingConfig()
	var config Config
	flag.IntVar(&config.Width, "width", 400, "Image width in pixels")
	flag.IntVar(&config.Height, "height", 225, "Image height in pixels")
	flag.IntVar(&config.Samples, "samples", defaults.SamplesPerPixel, "Samples per pixel")
	flag.IntVar(&config.MaxDepth, "depth", defaults.MaxDepth, "Maximum ray bounce depth")
	flag.Float64Var(&config.Time, "time", 0, "Time value in seconds used to perturb the noise")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flag.StringVar(&config.OutputDir, "out", "output", "Base output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Path Tracer")
		fmt.Println("Usage: spheretracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <out>/default/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting Sphere Path Tracer...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	filename, err := run(ctx, config, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// run renders one frame of the default scene and writes it as a PNG.
// It returns the path of the written file.
func run(ctx context.Context, config Config, logger core.Logger) (string, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return "", fmt.Errorf("invalid resolution %dx%d", config.Width, config.Height)
	}

	outputDir := createOutputDir(config.OutputDir, "default")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	raytracer := renderer.NewRaytracer(scene.NewDefaultScene(), config.Width, config.Height)
	raytracer.SetLogger(logger)
	raytracer.MergeSamplingConfig(core.SamplingConfig{
		SamplesPerPixel: config.Samples,
		MaxDepth:        config.MaxDepth,
	})
	raytracer.SetRenderConfig(renderer.RenderConfig{
		TileSize:   renderer.DefaultTileSize,
		NumWorkers: config.NumWorkers,
	})

	frame, err := raytracer.RenderFrame(ctx, config.Time)
	if err != nil {
		return "", err
	}

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	if err := savePNG(filename, frame); err != nil {
		return "", err
	}
	return filename, nil
}

// createOutputDir returns the directory renders of sceneType are written to
func createOutputDir(baseDir, sceneType string) string {
	return filepath.Join(baseDir, sceneType)
}

// savePNG encodes frame to a PNG file at filename
func savePNG(filename string, frame *renderer.Frame) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, frame.Image()); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}
	return nil
}
