package gizmo

import "github.com/go-gl/mathgl/mgl64"

// Transform represents the placement of the manipulated object in 3D space
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Translation: mgl64.Vec3{0, 0, 0},
		Rotation:    mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}
