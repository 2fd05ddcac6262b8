package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{"Axis aligned", NewVec3(0, 0, -5), NewVec3(0, 0, -1)},
		{"Diagonal", NewVec3(3, 4, 0), NewVec3(0.6, 0.8, 0)},
		{"Zero vector stays zero", NewVec3(0, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-12
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Lerp(t *testing.T) {
	white := NewVec3(1, 1, 1)
	sky := NewVec3(0.5, 0.7, 1.0)

	if got := white.Lerp(sky, 0); got != white {
		t.Errorf("Lerp at t=0 should return start, got %v", got)
	}
	if got := white.Lerp(sky, 1); got != sky {
		t.Errorf("Lerp at t=1 should return end, got %v", got)
	}

	mid := white.Lerp(sky, 0.5)
	expected := NewVec3(0.75, 0.85, 1.0)
	if mid.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected midpoint %v, got %v", expected, mid)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	color := NewVec3(0.25, 0.0, 1.0)
	result := color.GammaCorrect()
	expected := NewVec3(0.5, 0.0, 1.0)

	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestVec3_Clamp(t *testing.T) {
	result := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)
	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 2), NewVec3(0, 0, -2))
	point := ray.At(0.75)
	if math.Abs(point.Z-0.5) > 1e-12 || point.X != 0 || point.Y != 0 {
		t.Errorf("Expected (0, 0, 0.5), got %v", point)
	}
}
