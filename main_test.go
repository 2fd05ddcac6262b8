package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name      string
		baseDir   string
		sceneType string
		expected  string
	}{
		{"default output", "output", "default", filepath.Join("output", "default")},
		{"custom base", filepath.Join("tmp", "renders"), "default", filepath.Join("tmp", "renders", "default")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := createOutputDir(tt.baseDir, tt.sceneType); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRun_WritesPNG(t *testing.T) {
	config := Config{
		Width:     8,
		Height:    4,
		Samples:   2,
		MaxDepth:  3,
		Time:      0.5,
		OutputDir: t.TempDir(),
	}

	filename, err := run(context.Background(), config, discardLogger{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.HasPrefix(filename, filepath.Join(config.OutputDir, "default")) {
		t.Errorf("Expected file under %s, got %s", config.OutputDir, filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		t.Fatalf("Opening rendered file: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decoding rendered PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 4 {
		t.Errorf("Expected 8x4 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	_, _, _, a := img.At(0, 0).RGBA()
	if a != 0xffff {
		t.Errorf("Expected opaque pixels, got alpha %d", a)
	}
}

func TestRun_InvalidResolution(t *testing.T) {
	config := Config{Width: 0, Height: 10, OutputDir: t.TempDir()}

	if _, err := run(context.Background(), config, discardLogger{}); err == nil {
		t.Error("Expected error for zero width")
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	config := Config{Width: 16, Height: 16, OutputDir: t.TempDir()}
	if _, err := run(ctx, config, discardLogger{}); err == nil {
		t.Error("Expected error for cancelled render")
	}
}
