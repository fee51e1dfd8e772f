package gizmo

import (
	"github.com/akmonengine/gizmo/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// Visibility fade ranges. An arrow fades out as the view looks straight down
// its axis, a plane fades out as it is seen edge-on.
const (
	ARROW_FADE_START = 0.95
	ARROW_FADE_END   = 0.99
	PLANE_FADE_START = 0.70
	PLANE_FADE_END   = 0.86
)

// pickRayLength turns the pick ray into a segment long enough to cross any scene
const pickRayLength = 1e14

// PickResult is the outcome of hit-testing a ray against a handle
type PickResult struct {
	// Picked is true when the ray grabs the handle
	Picked bool
	// T is the ray parameter of the contact
	T float64
	// Visibility is the handle opacity factor, in [0, 1]
	Visibility float64
	// Point is the contact point on the handle, in world space
	Point mgl64.Vec3
}

// HitTester tests a pointer ray against the geometry of a handle
type HitTester interface {
	HitTestAxis(config *Config, direction Direction, ray geometry.Ray) PickResult
	HitTestPlane(config *Config, direction Direction, ray geometry.Ray) PickResult
}

// DefaultHitTester hit-tests the arrow and square geometry drawn for translation handles
type DefaultHitTester struct{}

// HitTestAxis tests the ray against the arrow shaft.
//
// The shaft starts slightly off the gizmo center and spans GizmoSize*ScaleFactor
// along the handle normal. The ray is clamped to a very long segment and the
// closest points between both segments decide the pick: the arrow is grabbed
// when it is visible and the ray passes within FocusDistance of it.
func (DefaultHitTester) HitTestAxis(config *Config, direction Direction, ray geometry.Ray) PickResult {
	normal := config.Normal(direction)
	length := config.ScaleFactor * config.GizmoSize
	start := config.Translation.Add(normal.Mul(length * 0.1))
	end := start.Add(normal.Mul(length))

	rayT, handleT := geometry.SegmentToSegment(ray.Origin, ray.At(pickRayLength), start, end)
	rayDist := pickRayLength * rayT
	rayPoint := ray.At(rayDist)
	handlePoint := start.Add(end.Sub(start).Mul(handleT))
	dist := rayPoint.Sub(handlePoint).Len()

	dot := mgl64.Abs(viewDirection(config, ray).Dot(normal))
	visibility := fade(dot, ARROW_FADE_START, ARROW_FADE_END)

	return PickResult{
		Picked:     visibility > 0 && dist <= config.FocusDistance,
		T:          rayDist,
		Visibility: visibility,
		Point:      handlePoint,
	}
}

// HitTestPlane tests the ray against the square plane handle
func (DefaultHitTester) HitTestPlane(config *Config, direction Direction, ray geometry.Ray) PickResult {
	origin := config.PlaneGlobalOrigin(direction)
	normal := config.Normal(direction)

	t, distFromOrigin := geometry.RayToPlaneOrigin(normal, origin, ray.Origin, ray.Direction)

	dot := mgl64.Abs(viewDirection(config, ray).Dot(normal))
	visibility := fade(1-dot, PLANE_FADE_START, PLANE_FADE_END)

	return PickResult{
		Picked:     visibility > 0 && distFromOrigin <= config.PlaneSize(),
		T:          t,
		Visibility: visibility,
		Point:      ray.At(t),
	}
}

func viewDirection(config *Config, ray geometry.Ray) mgl64.Vec3 {
	if config.ViewForward.LenSqr() < 1e-12 {
		return ray.Direction
	}

	return config.ViewForward.Normalize()
}

// fade is 1 below start, 0 above end, linear in between
func fade(value, start, end float64) float64 {
	return mgl64.Clamp(1-(value-start)/(end-start), 0, 1)
}
