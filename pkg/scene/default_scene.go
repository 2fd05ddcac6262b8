package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// NewDefaultScene creates the four sphere scene: a large diffuse ground, a
// diffuse center sphere and two metal spheres either side, under a white to
// sky blue gradient.
func NewDefaultScene() *Scene {
	// Create materials
	lambertianGround := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	// Create spheres with different materials
	ground := geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround)
	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianRed)
	sphereLeft := geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, metalSilver)
	sphereRight := geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold)

	return NewScene(
		core.NewVec3(0.5, 0.7, 1.0), // topColor (blue sky)
		core.NewVec3(1.0, 1.0, 1.0), // bottomColor (white horizon)
		ground, sphereCenter, sphereLeft, sphereRight,
	)
}
