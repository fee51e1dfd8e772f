package gizmo

import "github.com/go-gl/mathgl/mgl64"

const (
	DEFAULT_GIZMO_SIZE     = 75.0
	DEFAULT_STROKE_WIDTH   = 4.0
	DEFAULT_FOCUS_DISTANCE = DEFAULT_GIZMO_SIZE * 0.1
	DEFAULT_SNAP_DISTANCE  = 1.0
)

// Direction is the world (or local) axis a handle is attached to
type Direction int

const (
	DirectionX Direction = iota
	DirectionY
	DirectionZ
)

// Vector returns the unit vector of the direction
func (d Direction) Vector() mgl64.Vec3 {
	switch d {
	case DirectionY:
		return mgl64.Vec3{0, 1, 0}
	case DirectionZ:
		return mgl64.Vec3{0, 0, 1}
	default:
		return mgl64.Vec3{1, 0, 0}
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionY:
		return "Y"
	case DirectionZ:
		return "Z"
	default:
		return "X"
	}
}

// TransformKind selects whether a handle constrains motion to a line or to a plane
type TransformKind int

const (
	// TransformKindAxis drags along the handle direction
	TransformKindAxis TransformKind = iota
	// TransformKindPlane drags in the plane whose normal is the handle direction
	TransformKindPlane
)

func (k TransformKind) String() string {
	if k == TransformKindPlane {
		return "Plane"
	}
	return "Axis"
}

// Mode tags which kind of transformation a Result carries
type Mode int

const (
	// ModeNone is carried by the zero Result, when no transformation was produced
	ModeNone Mode = iota
	ModeTranslate
	ModeRotate
	ModeScale
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case ModeTranslate:
		return "Translate"
	case ModeRotate:
		return "Rotate"
	case ModeScale:
		return "Scale"
	default:
		return "Unknown"
	}
}

// Config is shared by every handle of a gizmo and owned by the caller.
// Handles only read it; applying Result.Translation back is left to the caller.
type Config struct {
	Transform

	// Snapping quantizes drag deltas to SnapDistance
	Snapping     bool
	SnapDistance float64
	// LocalSpace orients handles by Transform.Rotation instead of the world axes
	LocalSpace bool

	// Hit-testing inputs, in world units
	ScaleFactor   float64
	GizmoSize     float64
	StrokeWidth   float64
	FocusDistance float64
	// ViewForward is the camera viewing direction, used to fade handles seen edge-on.
	// A zero vector makes hit tests use the ray direction instead.
	ViewForward mgl64.Vec3
}

// NewConfig creates a world-space configuration around an identity transform
func NewConfig() Config {
	return Config{
		Transform:     NewTransform(),
		SnapDistance:  DEFAULT_SNAP_DISTANCE,
		ScaleFactor:   1,
		GizmoSize:     DEFAULT_GIZMO_SIZE,
		StrokeWidth:   DEFAULT_STROKE_WIDTH,
		FocusDistance: DEFAULT_FOCUS_DISTANCE,
	}
}

// Normal returns the handle direction, rotated into the object frame in local space
func (c *Config) Normal(d Direction) mgl64.Vec3 {
	normal := d.Vector()
	if c.LocalSpace {
		normal = c.Rotation.Rotate(normal)
	}

	return normal
}

// PlaneBinormal returns the first in-plane basis vector of the plane normal to d
func PlaneBinormal(d Direction) mgl64.Vec3 {
	switch d {
	case DirectionY:
		return mgl64.Vec3{0, 0, 1}
	case DirectionZ:
		return mgl64.Vec3{1, 0, 0}
	default:
		return mgl64.Vec3{0, 1, 0}
	}
}

// PlaneTangent returns the second in-plane basis vector of the plane normal to d
func PlaneTangent(d Direction) mgl64.Vec3 {
	switch d {
	case DirectionY:
		return mgl64.Vec3{1, 0, 0}
	case DirectionZ:
		return mgl64.Vec3{0, 1, 0}
	default:
		return mgl64.Vec3{0, 0, 1}
	}
}

// PlaneSize is the half-extent within which a plane handle can be picked
func (c *Config) PlaneSize() float64 {
	return c.ScaleFactor * (c.GizmoSize*0.1 + c.StrokeWidth*2)
}

// PlaneLocalOrigin is the center of the plane handle relative to the gizmo
// center, offset diagonally between its two basis vectors.
func (c *Config) PlaneLocalOrigin(d Direction) mgl64.Vec3 {
	offset := c.ScaleFactor * c.GizmoSize * 0.4

	return PlaneBinormal(d).Add(PlaneTangent(d)).Mul(offset)
}

// PlaneGlobalOrigin returns the world-space center of the plane handle
func (c *Config) PlaneGlobalOrigin(d Direction) mgl64.Vec3 {
	origin := c.PlaneLocalOrigin(d)
	if c.LocalSpace {
		origin = c.Rotation.Rotate(origin)
	}

	return origin.Add(c.Translation)
}
