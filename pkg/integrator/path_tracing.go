package integrator

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

const (
	// RayTMin skips intersections right at the ray origin (shadow acne)
	RayTMin = 0.001
	// RayTMax bounds the intersection search
	RayTMax = 10000.0
)

// PathTracingIntegrator implements iterative unidirectional path tracing with
// a hard depth cap and no Russian roulette
type PathTracingIntegrator struct {
	config core.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config core.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor follows ray through at most MaxDepth bounces, multiplying the
// attenuation of each surface it scatters off.
//
// A miss multiplies in the background and ends the path. An absorbed ray
// returns black. If the depth cap is reached first the accumulated attenuation
// is returned as-is.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, random *core.RandomStream) core.Vec3 {
	color := core.NewVec3(1, 1, 1)

	for depth := 0; depth < pt.config.MaxDepth; depth++ {
		hit, isHit := sc.Hit(ray, RayTMin, RayTMax)
		if !isHit {
			return color.MultiplyVec(pt.backgroundGradient(ray, sc))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
		if !didScatter {
			return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
		}

		color = color.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return color
}

// backgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray, sc *scene.Scene) core.Vec3 {
	topColor, bottomColor := sc.GetBackgroundColors()

	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Lerp(topColor, t)
}
