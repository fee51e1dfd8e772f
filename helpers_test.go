package gizmo

import (
	"math"

	"github.com/akmonengine/gizmo/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

func vec3Equal(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance &&
		math.Abs(a.Z()-b.Z()) < tolerance
}

func floatEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

// fixedHitTester reports the same pick for every ray
type fixedHitTester struct {
	result PickResult
	calls  []TransformKind
}

func (f *fixedHitTester) HitTestAxis(config *Config, direction Direction, ray geometry.Ray) PickResult {
	f.calls = append(f.calls, TransformKindAxis)
	return f.result
}

func (f *fixedHitTester) HitTestPlane(config *Config, direction Direction, ray geometry.Ray) PickResult {
	f.calls = append(f.calls, TransformKindPlane)
	return f.result
}

// grabbedHandle returns a handle already picked at grab
func grabbedHandle(config *Config, direction Direction, kind TransformKind, grab mgl64.Vec3) *TranslationHandle {
	h := NewTranslationHandle(config, direction, kind)
	h.HitTester = &fixedHitTester{result: PickResult{Picked: true, T: 1, Visibility: 1, Point: grab}}
	h.Pick(geometry.Ray{Direction: mgl64.Vec3{0, 0, -1}})

	return h
}

// downRay points straight down -Y onto the X axis at x
func downRay(x float64) geometry.Ray {
	return geometry.Ray{Origin: mgl64.Vec3{x, 3, 0}, Direction: mgl64.Vec3{0, -1, 0}}
}

// topRay points straight down -Z onto the XY plane at (x, y)
func topRay(x, y float64) geometry.Ray {
	return geometry.Ray{Origin: mgl64.Vec3{x, y, 10}, Direction: mgl64.Vec3{0, 0, -1}}
}
