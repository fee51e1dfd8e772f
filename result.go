package gizmo

import "github.com/go-gl/mathgl/mgl64"

// Result is emitted by a handle for each frame of a drag
type Result struct {
	Scale       mgl64.Vec3
	Rotation    mgl64.Quat
	Translation mgl64.Vec3
	Mode        Mode
	// Delta is the total displacement since the handle was picked,
	// snapped when snapping is enabled
	Delta mgl64.Vec3
}
