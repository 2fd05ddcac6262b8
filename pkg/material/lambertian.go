package material

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Lambertian represents a diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// Lambertian surfaces always scatter.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, random *core.RandomStream) (ScatterResult, bool) {
	direction := diffuseDirection(hit.Point, hit.Normal, core.RandomInUnitSphere(random))

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo,
	}, true
}

// diffuseDirection aims at a point offset from the unit sphere tangent to the
// surface at point. A degenerate result falls back to the normal.
func diffuseDirection(point, normal, offset core.Vec3) core.Vec3 {
	target := point.Add(normal).Add(offset)
	direction := target.Subtract(point)

	if core.NearZero(direction) {
		return normal
	}
	return direction
}
