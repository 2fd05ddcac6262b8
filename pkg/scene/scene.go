package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// Scene is an immutable, ordered list of spheres plus the background gradient.
// It is built once and shared read-only by every pixel of a frame.
type Scene struct {
	spheres     []*geometry.Sphere
	topColor    core.Vec3
	bottomColor core.Vec3
}

// NewScene creates a scene from the given spheres. The list is copied, so
// later changes to the caller's slice do not affect the scene.
func NewScene(topColor, bottomColor core.Vec3, spheres ...*geometry.Sphere) *Scene {
	return &Scene{
		spheres:     append([]*geometry.Sphere(nil), spheres...),
		topColor:    topColor,
		bottomColor: bottomColor,
	}
}

// GetSpheres returns a copy of the sphere list in scene order
func (s *Scene) GetSpheres() []*geometry.Sphere {
	return append([]*geometry.Sphere(nil), s.spheres...)
}

// GetBackgroundColors returns the gradient colors for rays that miss everything
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.topColor, s.bottomColor
}

// Hit returns the nearest intersection along ray within [tMin, tMax].
// The scan is linear; each hit narrows tMax for the remaining spheres.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, sphere := range s.spheres {
		if hit, isHit := sphere.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
