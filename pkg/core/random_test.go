package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func drawSequence(stream *RandomStream, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = stream.Next()
	}
	return values
}

func TestRandomStream_Deterministic(t *testing.T) {
	seed := NewVec2(0.3125, 0.6875)

	first := drawSequence(NewRandomStream(seed, 1.5), 500)
	second := drawSequence(NewRandomStream(seed, 1.5), 500)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Same seed and time produced different sequences (-first +second):\n%s", diff)
	}
}

func TestRandomStream_Range(t *testing.T) {
	seeds := []Vec2{
		NewVec2(0, 0),
		NewVec2(0.5, 0.5),
		NewVec2(0.999, 0.001),
		NewVec2(-3.25, 17.5),
	}

	for _, seed := range seeds {
		stream := NewRandomStream(seed, 12.75)
		for i := 0; i < 10000; i++ {
			value := stream.Next()
			if value < 0 || value >= 1 {
				t.Fatalf("Seed %v draw %d out of [0,1): %v", seed, i, value)
			}
		}
	}
}

func TestRandomStream_StateAdvances(t *testing.T) {
	stream := NewRandomStream(NewVec2(0.25, 0.75), 0)
	before := stream.State()

	value := stream.Next()
	after := stream.State()

	if after == before {
		t.Error("Next should rewrite the stream state")
	}
	if value != after.X {
		t.Errorf("Next should return the new X component: got %v, state %v", value, after)
	}
}

func TestRandomStream_TimePerturbsSequence(t *testing.T) {
	seed := NewVec2(0.5, 0.5)

	still := drawSequence(NewRandomStream(seed, 0), 16)
	later := drawSequence(NewRandomStream(seed, 0.016), 16)

	if cmp.Equal(still, later) {
		t.Error("Different frame times should produce different sequences")
	}
}

func TestRandomStream_Mean(t *testing.T) {
	stream := NewRandomStream(NewVec2(0.1, 0.9), 3)
	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += stream.Next()
	}
	mean := sum / n

	// Low quality generator, loose bound
	if mean < 0.45 || mean > 0.55 {
		t.Errorf("Expected mean near 0.5, got %f", mean)
	}
}

func TestFract(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{1.25, 0.25},
		{-1.25, 0.75},
		{3, 0},
		{-1e-20, 0},
	}

	for _, tt := range tests {
		got := fract(tt.input)
		if got != tt.expected {
			t.Errorf("fract(%v): expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}
