package main

import (
	"fmt"

	"github.com/akmonengine/gizmo"
	"github.com/akmonengine/gizmo/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// PrintRenderer prints the draw calls instead of rasterizing them
type PrintRenderer struct{}

func (r *PrintRenderer) DrawAxisHandle(h *gizmo.TranslationHandle) {
	fmt.Printf("   draw arrow %v: normal=%v opacity=%.2f\n", h.Direction, h.Normal(), h.Opacity)
}

func (r *PrintRenderer) DrawPlaneHandle(h *gizmo.TranslationHandle) {
	fmt.Printf("   draw plane %v: origin=%v opacity=%.2f\n", h.Direction, h.Config.PlaneGlobalOrigin(h.Direction), h.Opacity)
}

// SetupScene creates a snapping configuration with an X arrow and a Z plane handle
func SetupScene() (*gizmo.Config, *gizmo.TranslationHandle, *gizmo.TranslationHandle) {
	config := gizmo.NewConfig()
	config.Snapping = true
	config.SnapDistance = 5.0
	config.ViewForward = mgl64.Vec3{0, -0.6, -0.8}

	renderer := &PrintRenderer{}

	arrow := gizmo.NewTranslationHandle(&config, gizmo.DirectionX, gizmo.TransformKindAxis)
	arrow.Renderer = renderer

	plane := gizmo.NewTranslationHandle(&config, gizmo.DirectionZ, gizmo.TransformKindPlane)
	plane.Renderer = renderer

	return &config, arrow, plane
}

// drag runs one pick followed by an update per ray, applying each result to the config
func drag(config *gizmo.Config, handle *gizmo.TranslationHandle, grab geometry.Ray, moves []geometry.Ray) {
	t, ok := handle.Pick(grab)
	handle.Draw()
	if !ok {
		fmt.Println("   missed")
		return
	}
	fmt.Printf("   picked at t=%.3g, grab point %v\n", t, handle.State().StartPoint)

	for i, ray := range moves {
		result, ok := handle.Update(ray)
		if !ok {
			fmt.Printf("   frame %d: ray cannot reach the handle, transform kept\n", i+1)
			continue
		}
		config.Translation = result.Translation
		fmt.Printf("   frame %d: translation=%v delta=%v\n", i+1, result.Translation, result.Delta)
	}
}

func main() {
	config, arrow, plane := SetupScene()

	fmt.Println("Axis drag along X")
	down := mgl64.Vec3{0, -1, 0}
	drag(config, arrow,
		geometry.Ray{Origin: mgl64.Vec3{40, 10, 0}, Direction: down},
		[]geometry.Ray{
			{Origin: mgl64.Vec3{43, 10, 0}, Direction: down},
			{Origin: mgl64.Vec3{47.6, 10, 0}, Direction: down},
			{Origin: mgl64.Vec3{52.9, 10, 0}, Direction: down},
		},
	)

	fmt.Println("Plane drag in XY")
	top := mgl64.Vec3{0, 0, -1}
	origin := config.PlaneGlobalOrigin(gizmo.DirectionZ)
	drag(config, plane,
		geometry.Ray{Origin: origin.Add(mgl64.Vec3{0, 0, 50}), Direction: top},
		[]geometry.Ray{
			{Origin: origin.Add(mgl64.Vec3{6.2, -3.1, 50}), Direction: top},
			{Origin: origin, Direction: mgl64.Vec3{1, 0, 0}},
			{Origin: origin.Add(mgl64.Vec3{11.9, 8.4, 50}), Direction: top},
		},
	)

	fmt.Printf("Final translation: %v\n", config.Translation)
}
