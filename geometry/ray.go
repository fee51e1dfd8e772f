// Package geometry holds the stateless primitives used by the gizmo handles:
// closest points between lines and segments, ray-plane intersection and
// scalar snapping.
//
// All functions are pure and allocation-free. Degenerate inputs (parallel
// lines, a ray parallel to a plane) never panic: they resolve to a documented
// fallback value or a false ok flag.
package geometry

import "github.com/go-gl/mathgl/mgl64"

// Ray is a pointer ray cast into the scene.
// Direction is assumed to be normalized.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
