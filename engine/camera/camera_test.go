package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-view/common"
)

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera()

	if got, want := cam.Fov(), float32(70.0*(math.Pi/180.0)); !nearlyEqual(got, want, 1e-6) {
		t.Errorf("Fov = %v, want %v", got, want)
	}
	if got := cam.Aspect(); !nearlyEqual(got, 1, 1e-6) {
		t.Errorf("Aspect = %v, want 1", got)
	}
	if got := cam.Near(); !nearlyEqual(got, 0.1, 1e-6) {
		t.Errorf("Near = %v, want 0.1", got)
	}
	if got := cam.Far(); !nearlyEqual(got, 1000, 1e-3) {
		t.Errorf("Far = %v, want 1000", got)
	}
}

func TestCameraBuilderOptions(t *testing.T) {
	pose := common.Translation(1, 2, 3)
	cam := NewCamera(
		WithFov(1.0),
		WithAspect(1.5),
		WithNear(0.5),
		WithFar(100),
		WithPose(pose),
	)

	if got := cam.Fov(); !nearlyEqual(got, 1.0, 1e-6) {
		t.Errorf("Fov = %v, want 1.0", got)
	}
	if got := cam.Aspect(); !nearlyEqual(got, 1.5, 1e-6) {
		t.Errorf("Aspect = %v, want 1.5", got)
	}
	if got := cam.Pose().Position; got != pose.Position {
		t.Errorf("Pose position = %v, want %v", got, pose.Position)
	}
}

func TestCameraViewMatrixInvertsPose(t *testing.T) {
	cam := NewCamera(WithPose(common.Translation(0, 0, 5)))

	// The world origin lands 5 units ahead of the camera, on the -Z axis
	// in view space.
	view := cam.ViewMatrix()
	x := view[12]
	y := view[13]
	z := view[14]
	if !nearlyEqual(x, 0, 1e-5) || !nearlyEqual(y, 0, 1e-5) || !nearlyEqual(z, -5, 1e-5) {
		t.Errorf("view-space origin = (%v, %v, %v), want (0, 0, -5)", x, y, z)
	}
}

func TestCameraFrustumOrientation(t *testing.T) {
	cam := NewCamera()
	frustum := cam.Frustum()

	// An identity-pose camera looks down -Z.
	if !frustum.ContainsSphere(0, 0, -5, 0.5, 1e-4) {
		t.Error("sphere ahead of the camera should be inside the frustum")
	}
	if frustum.ContainsSphere(0, 0, 5, 0.5, 1e-4) {
		t.Error("sphere behind the camera should be outside the frustum")
	}
}
