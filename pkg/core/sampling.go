package core

import (
	"math"
)

// nearZeroEpsilon is the per-component threshold used by NearZero
const nearZeroEpsilon = 1e-8

// RandomInUnitSphere generates a point uniformly distributed by volume inside
// the unit ball using spherical coordinates instead of rejection sampling.
// Draw order is azimuth, polar cosine, then radius.
func RandomInUnitSphere(random *RandomStream) Vec3 {
	// φ = 2π * u₁ (azimuthal angle)
	// cos(θ) = 2 * u₂ - 1 (polar angle, uniform on [-1,1])
	// r = ∛(u₃) to account for volume scaling
	phi := 2 * math.Pi * random.Next()
	cosTheta := 2*random.Next() - 1
	u := random.Next()

	theta := math.Acos(cosTheta)
	// Cbrt, not Pow: Pow's last bits depend on the platform's Exp and Log
	r := math.Cbrt(u)

	// Convert spherical to Cartesian coordinates
	x := r * math.Sin(theta) * math.Cos(phi)
	y := r * math.Sin(theta) * math.Sin(phi)
	z := r * math.Cos(theta)

	return NewVec3(x, y, z)
}

// RandomUnitVector returns RandomInUnitSphere normalized.
//
// The result is only as uniform as RandomStream. The direction comes from two
// consecutive draws, so any correlation between them shows up on the sphere,
// and the radius draw is consumed even though normalizing discards it.
func RandomUnitVector(random *RandomStream) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// NearZero reports whether every component of v is within 1e-8 of zero
func NearZero(v Vec3) bool {
	return math.Abs(v.X) < nearZeroEpsilon &&
		math.Abs(v.Y) < nearZeroEpsilon &&
		math.Abs(v.Z) < nearZeroEpsilon
}
