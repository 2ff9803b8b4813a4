package common

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5, 0, 1) = %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5, 0, 1) = %v, want 0", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Errorf("Clamp(0.25, 0, 1) = %v, want 0.25", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 10, 0); got != 2 {
		t.Errorf("Lerp(2, 10, 0) = %v, want 2", got)
	}
	if got := Lerp(2, 10, 1); got != 10 {
		t.Errorf("Lerp(2, 10, 1) = %v, want 10", got)
	}
	if got := Lerp(2, 10, 0.5); got != 6 {
		t.Errorf("Lerp(2, 10, 0.5) = %v, want 6", got)
	}
}

func TestRadians(t *testing.T) {
	approx(t, "Radians(180)", Radians(180), math.Pi, 1e-6)
	approx(t, "Radians(90)", Radians(90), math.Pi/2, 1e-6)
	approx(t, "Radians(0)", Radians(0), 0, 1e-9)
}

func TestLookAtMatchesTransformInverse(t *testing.T) {
	// The slice-based view matrix and the Transform look-at agree: a view
	// matrix is the inverse of the camera's world transform.
	var view [16]float32
	LookAt(view[:], 3, 4, 5, 0, 1, 0, 0, 1, 0)

	var want [16]float32
	NewLookAt(3, 4, 5, 0, 1, 0).Inverse().Mat4(want[:])

	for i := range view {
		approx(t, "view matrix", view[i], want[i], 1e-5)
	}
}

func TestPerspectiveInvert(t *testing.T) {
	var proj, inv, id [16]float32
	Perspective(proj[:], Radians(70), 16.0/9.0, 0.1, 1000)
	if !Invert4(inv[:], proj[:]) {
		t.Fatal("perspective matrix should be invertible")
	}
	Mul4(id[:], proj[:], inv[:])

	var want [16]float32
	Identity(want[:])
	for i := range id {
		approx(t, "proj * inv", id[i], want[i], 1e-4)
	}
}
