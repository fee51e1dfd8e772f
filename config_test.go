package gizmo

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewConfig(t *testing.T) {
	config := NewConfig()

	if config.Rotation != mgl64.QuatIdent() {
		t.Errorf("Rotation = %v, want identity", config.Rotation)
	}
	if config.Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, want (1, 1, 1)", config.Scale)
	}
	if config.Snapping || config.LocalSpace {
		t.Error("snapping and local space should be off by default")
	}
	if config.SnapDistance != DEFAULT_SNAP_DISTANCE {
		t.Errorf("SnapDistance = %v, want %v", config.SnapDistance, DEFAULT_SNAP_DISTANCE)
	}
}

func TestPlaneBasisIsOrthonormal(t *testing.T) {
	for _, d := range []Direction{DirectionX, DirectionY, DirectionZ} {
		t.Run(d.String(), func(t *testing.T) {
			b := PlaneBinormal(d)
			tg := PlaneTangent(d)
			n := d.Vector()

			if !floatEqual(b.Dot(tg), 0, 1e-12) || !floatEqual(b.Dot(n), 0, 1e-12) || !floatEqual(tg.Dot(n), 0, 1e-12) {
				t.Errorf("basis (%v, %v, %v) is not orthogonal", b, tg, n)
			}
			if !vec3Equal(b.Cross(tg), n, 1e-12) {
				t.Errorf("binormal x tangent = %v, want the normal %v", b.Cross(tg), n)
			}
		})
	}
}

func TestConfigNormal(t *testing.T) {
	config := NewConfig()
	config.Rotation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})

	if got := config.Normal(DirectionX); got != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("world Normal(X) = %v, want (1, 0, 0)", got)
	}

	config.LocalSpace = true
	if got := config.Normal(DirectionX); !vec3Equal(got, mgl64.Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("local Normal(X) = %v, want (0, 1, 0)", got)
	}
}

func TestConfigPlaneGlobalOrigin(t *testing.T) {
	config := NewConfig()
	config.Translation = mgl64.Vec3{1, 2, 3}

	if got := config.PlaneGlobalOrigin(DirectionZ); !vec3Equal(got, mgl64.Vec3{31, 32, 3}, 1e-9) {
		t.Errorf("PlaneGlobalOrigin(Z) = %v, want (31, 32, 3)", got)
	}

	config.LocalSpace = true
	config.Rotation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	if got := config.PlaneGlobalOrigin(DirectionZ); !vec3Equal(got, mgl64.Vec3{-29, 32, 3}, 1e-9) {
		t.Errorf("local PlaneGlobalOrigin(Z) = %v, want (-29, 32, 3)", got)
	}
}

func TestConfigPlaneSize(t *testing.T) {
	config := NewConfig()
	config.ScaleFactor = 2

	if got := config.PlaneSize(); !floatEqual(got, 31, 1e-12) {
		t.Errorf("PlaneSize() = %v, want 31", got)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeNone, "None"},
		{ModeTranslate, "Translate"},
		{ModeRotate, "Rotate"},
		{ModeScale, "Scale"},
		{Mode(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.expected {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.expected)
		}
	}

	if (Result{}).Mode != ModeNone {
		t.Errorf("zero Result mode = %v, want None", (Result{}).Mode)
	}
}
