// Package gizmo implements the translation handles of an on-screen 3D
// manipulation widget.
//
// A handle is driven once per frame by the host loop:
//  1. Pick(ray) hit-tests the pointer ray and resets the interaction state
//  2. Update(ray) is called on each following frame while the pointer drags
//  3. Draw() renders the handle through the configured Renderer
//
// There is no explicit release: the host stops calling Update, and the next
// Pick starts a fresh interaction.
package gizmo

import (
	"github.com/akmonengine/gizmo/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// snapEpsilon is the smallest length a delta must have to be snapped
const snapEpsilon = 1e-5

// TranslationState is the transient record of one drag interaction.
// The zero value is the idle state.
type TranslationState struct {
	// StartPoint is the world-space point grabbed by the last Pick
	StartPoint mgl64.Vec3
	// LastPoint is the most recently computed drag point
	LastPoint mgl64.Vec3
	// CurrentDelta is LastPoint - StartPoint, snapped when snapping is enabled
	CurrentDelta mgl64.Vec3
}

// TranslationHandle is a single draggable arrow (Axis kind) or square (Plane kind).
// Each handle exclusively owns its interaction state; handles must not be shared
// between goroutines.
type TranslationHandle struct {
	Config    *Config
	Direction Direction
	Kind      TransformKind
	// Opacity is refreshed on every Pick from the hit-test visibility
	Opacity float64
	// HitTester defaults to DefaultHitTester when nil
	HitTester HitTester
	// Renderer is optional, Draw is a no-op without it
	Renderer Renderer

	state TranslationState
}

// NewTranslationHandle creates an idle handle bound to a shared configuration
func NewTranslationHandle(config *Config, direction Direction, kind TransformKind) *TranslationHandle {
	return &TranslationHandle{
		Config:    config,
		Direction: direction,
		Kind:      kind,
		Opacity:   1,
	}
}

// State returns a copy of the interaction state
func (h *TranslationHandle) State() TranslationState {
	return h.state
}

// Reset returns the handle to the idle state
func (h *TranslationHandle) Reset() {
	h.state = TranslationState{}
}

// Normal returns the handle normal in world space
func (h *TranslationHandle) Normal() mgl64.Vec3 {
	return h.Config.Normal(h.Direction)
}

func (h *TranslationHandle) hitTester() HitTester {
	if h.HitTester == nil {
		return DefaultHitTester{}
	}
	return h.HitTester
}

// Pick hit-tests the ray against the handle and returns the ray parameter of the contact.
//
// Whatever the outcome, the opacity takes the hit-test visibility and the
// interaction state restarts at the contact point, so a following Update always
// measures from a consistent grab point. ok is false when the handle is not grabbed.
func (h *TranslationHandle) Pick(ray geometry.Ray) (float64, bool) {
	var pick PickResult
	switch h.Kind {
	case TransformKindAxis:
		pick = h.hitTester().HitTestAxis(h.Config, h.Direction, ray)
	case TransformKindPlane:
		pick = h.hitTester().HitTestPlane(h.Config, h.Direction, ray)
	}

	h.Opacity = pick.Visibility

	h.state = TranslationState{
		StartPoint: pick.Point,
		LastPoint:  pick.Point,
	}

	if !pick.Picked {
		return 0, false
	}

	return pick.T, true
}

// Update moves the drag point to follow the ray and returns the new transform.
//
// The translation is accumulated from the previous frame point rather than
// recomputed from the grab point, so snapping applied in earlier frames is never
// applied twice. ok is false when the ray cannot reach the handle geometry this
// frame (a ray parallel to, or facing away from, a plane handle); the caller then
// keeps its previous transform.
func (h *TranslationHandle) Update(ray geometry.Ray) (Result, bool) {
	var newPoint mgl64.Vec3
	switch h.Kind {
	case TransformKindAxis:
		newPoint = h.pointOnAxis(ray)
	case TransformKindPlane:
		point, ok := pointOnPlane(h.Normal(), h.Config.PlaneGlobalOrigin(h.Direction), ray)
		if !ok {
			return Result{}, false
		}
		newPoint = point
	}

	newDelta := newPoint.Sub(h.state.StartPoint)

	if h.Config.Snapping {
		switch h.Kind {
		case TransformKindAxis:
			newDelta = SnapAxis(newDelta, h.Config.SnapDistance)
		case TransformKindPlane:
			newDelta = SnapPlane(h.Config, h.Direction, newDelta)
		}
		newPoint = h.state.StartPoint.Add(newDelta)
	}

	newTranslation := h.Config.Translation.Add(newPoint.Sub(h.state.LastPoint))

	h.state.LastPoint = newPoint
	h.state.CurrentDelta = newDelta

	return Result{
		Scale:       h.Config.Scale,
		Rotation:    h.Config.Rotation,
		Translation: newTranslation,
		Mode:        ModeTranslate,
		Delta:       newDelta,
	}, true
}

// Draw renders the handle with the configured Renderer
func (h *TranslationHandle) Draw() {
	if h.Renderer == nil {
		return
	}

	switch h.Kind {
	case TransformKindAxis:
		h.Renderer.DrawAxisHandle(h)
	case TransformKindPlane:
		h.Renderer.DrawPlaneHandle(h)
	}
}

// pointOnAxis finds the point of the handle axis line closest to the ray
func (h *TranslationHandle) pointOnAxis(ray geometry.Ray) mgl64.Vec3 {
	origin := h.Config.Translation
	direction := h.Normal()

	_, axisT := geometry.RayToRay(ray.Origin, ray.Direction, origin, direction)

	return origin.Add(direction.Mul(axisT))
}

func pointOnPlane(normal, origin mgl64.Vec3, ray geometry.Ray) (mgl64.Vec3, bool) {
	t, ok := geometry.IntersectPlane(normal, origin, ray.Origin, ray.Direction)
	if !ok {
		return mgl64.Vec3{}, false
	}

	return ray.At(t), true
}

// SnapAxis snaps the length of delta to a multiple of interval, keeping its direction.
// Deltas shorter than 1e-5 are returned unchanged.
func SnapAxis(delta mgl64.Vec3, interval float64) mgl64.Vec3 {
	length := delta.Len()
	if length <= snapEpsilon {
		return delta
	}

	return delta.Mul(geometry.RoundToInterval(length, interval) / length)
}

// SnapPlane snaps an in-plane delta to the SnapDistance grid spanned by the
// plane binormal and tangent.
//
// The components along each basis vector are measured through cross products:
// |delta x tangent| is the extent along the binormal and |delta x -binormal| the
// extent along the tangent. The sign of each cross product against the plane
// normal restores the orientation the magnitude lost. When delta is (nearly)
// aligned with one basis vector, or near zero, it is returned unchanged.
func SnapPlane(config *Config, direction Direction, delta mgl64.Vec3) mgl64.Vec3 {
	binormal := PlaneBinormal(direction)
	tangent := PlaneTangent(direction)
	if config.LocalSpace {
		binormal = config.Rotation.Rotate(binormal)
		tangent = config.Rotation.Rotate(tangent)
	}

	cb := delta.Cross(binormal.Mul(-1))
	ct := delta.Cross(tangent)
	lb := cb.Len()
	lt := ct.Len()
	n := config.Normal(direction)

	if lb <= snapEpsilon || lt <= snapEpsilon {
		return delta
	}

	alongBinormal := geometry.RoundToInterval(lt, config.SnapDistance) * sign(ct.Mul(1/lt).Dot(n))
	alongTangent := geometry.RoundToInterval(lb, config.SnapDistance) * sign(cb.Mul(1/lb).Dot(n))

	return binormal.Mul(alongBinormal).Add(tangent.Mul(alongTangent))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
