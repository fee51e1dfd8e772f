package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// planeEpsilon is the smallest |normal·direction| accepted before a ray is considered parallel to a plane
const planeEpsilon = 1e-7

// IntersectPlane intersects a ray with the plane through planeOrigin with the given normal.
// It fails when the ray runs parallel to the plane or when the plane lies behind the ray origin.
func IntersectPlane(normal, planeOrigin, rayOrigin, rayDir mgl64.Vec3) (float64, bool) {
	denom := normal.Dot(rayDir)
	if mgl64.Abs(denom) < planeEpsilon {
		return 0, false
	}

	t := planeOrigin.Sub(rayOrigin).Dot(normal) / denom

	return t, t >= 0
}

// RayToPlaneOrigin returns the ray parameter of the plane hit and the distance
// between that hit and planeOrigin. Without a hit, the distance is math.MaxFloat64.
func RayToPlaneOrigin(normal, planeOrigin, rayOrigin, rayDir mgl64.Vec3) (float64, float64) {
	t, ok := IntersectPlane(normal, planeOrigin, rayOrigin, rayDir)
	if !ok {
		return t, math.MaxFloat64
	}

	p := rayOrigin.Add(rayDir.Mul(t))

	return t, p.Sub(planeOrigin).Len()
}
