package common

import (
	"math"
	"testing"
)

func approx(t *testing.T, name string, got, want, tolerance float32) {
	t.Helper()
	if math.Abs(float64(got-want)) > float64(tolerance) {
		t.Errorf("%s = %v, want %v (tolerance %v)", name, got, want, tolerance)
	}
}

func approxPoint(t *testing.T, name string, gx, gy, gz, wx, wy, wz, tolerance float32) {
	t.Helper()
	approx(t, name+".x", gx, wx, tolerance)
	approx(t, name+".y", gy, wy, tolerance)
	approx(t, name+".z", gz, wz, tolerance)
}

func TestRotationApply(t *testing.T) {
	x, y, z := RotationY(math.Pi / 2).Apply(0, 0, 1)
	approxPoint(t, "RotationY(pi/2)(0,0,1)", x, y, z, 1, 0, 0, 1e-6)

	x, y, z = RotationX(math.Pi / 2).Apply(0, 1, 0)
	approxPoint(t, "RotationX(pi/2)(0,1,0)", x, y, z, 0, 0, 1, 1e-6)

	x, y, z = Translation(1, 2, 3).Apply(1, 1, 1)
	approxPoint(t, "Translation(1,2,3)(1,1,1)", x, y, z, 2, 3, 4, 1e-6)
}

func TestMulComposesRightToLeft(t *testing.T) {
	m := Translation(1, 0, 0).Mul(RotationY(math.Pi / 2))

	// The rotation applies first, then the translation.
	x, y, z := m.Apply(0, 0, 1)
	approxPoint(t, "compose", x, y, z, 2, 0, 0, 1e-6)
}

func TestInverseRoundtrip(t *testing.T) {
	m := Translation(3, -2, 7).Mul(RotationY(0.7)).Mul(RotationX(0.3))
	id := m.Mul(m.Inverse())

	want := IdentityTransform()
	for i := range id.Basis {
		approx(t, "roundtrip basis", id.Basis[i], want.Basis[i], 1e-5)
	}
	for i := range id.Position {
		approx(t, "roundtrip position", id.Position[i], 0, 1e-5)
	}
}

func TestNewLookAt(t *testing.T) {
	m := NewLookAt(0, 0, 5, 0, 0, 0)
	fx, fy, fz := m.Forward()
	approxPoint(t, "forward", fx, fy, fz, 0, 0, -1, 1e-6)
	approxPoint(t, "eye", m.Position[0], m.Position[1], m.Position[2], 0, 0, 5, 1e-6)

	// Off-axis eye still aims the forward axis at the target.
	m = NewLookAt(3, 4, 5, 0, 0, 0)
	fx, fy, fz = m.Forward()
	invLen := float32(1.0 / math.Sqrt(9+16+25))
	approxPoint(t, "off-axis forward", fx, fy, fz, -3*invLen, -4*invLen, -5*invLen, 1e-5)

	// Degenerate cases fall back to an identity basis.
	m = NewLookAt(1, 2, 3, 1, 2, 3)
	if m.Basis != IdentityTransform().Basis {
		t.Errorf("coincident eye/target basis = %v, want identity", m.Basis)
	}
	m = NewLookAt(0, 5, 0, 0, 0, 0)
	if m.Basis != IdentityTransform().Basis {
		t.Errorf("straight-down basis = %v, want identity", m.Basis)
	}
}

func TestOrthonormalizeRestoresBasis(t *testing.T) {
	m := RotationY(0.5).Mul(RotationX(-0.3))
	for i := range m.Basis {
		m.Basis[i] += 0.01
	}
	m = m.Orthonormalize()

	// Columns are unit length and mutually orthogonal.
	for col := 0; col < 3; col++ {
		x := m.Basis[col*3]
		y := m.Basis[col*3+1]
		z := m.Basis[col*3+2]
		approx(t, "column length", x*x+y*y+z*z, 1, 1e-5)
	}
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 3; b++ {
			dot := m.Basis[a*3]*m.Basis[b*3] +
				m.Basis[a*3+1]*m.Basis[b*3+1] +
				m.Basis[a*3+2]*m.Basis[b*3+2]
			approx(t, "column dot", dot, 0, 1e-5)
		}
	}
}

func TestTransformLerp(t *testing.T) {
	a := Translation(0, 0, 0)
	b := Translation(10, 0, 0).Mul(RotationY(math.Pi / 2))

	at := a.Lerp(b, 0)
	approxPoint(t, "alpha 0", at.Position[0], at.Position[1], at.Position[2], 0, 0, 0, 1e-6)

	bt := a.Lerp(b, 1)
	approxPoint(t, "alpha 1 position", bt.Position[0], bt.Position[1], bt.Position[2], 10, 0, 0, 1e-5)
	x, y, z := bt.Apply(0, 0, 1)
	approxPoint(t, "alpha 1 rotation", x, y, z, 11, 0, 0, 1e-5)

	// The halfway rotation is a quarter of the way around, not a linear
	// blend of matrix entries.
	mid := a.Lerp(b, 0.5)
	approx(t, "midpoint position", mid.Position[0], 5, 1e-5)
	x, y, z = mid.Apply(0, 0, 1)
	half := float32(math.Sqrt(2) / 2)
	approxPoint(t, "midpoint rotation", x-mid.Position[0], y-mid.Position[1], z-mid.Position[2], half, 0, half, 1e-5)
}

func TestDistanceTo(t *testing.T) {
	a := Translation(1, 2, 3)
	b := Translation(4, 6, 3)
	approx(t, "distance", a.DistanceTo(b), 5, 1e-6)
	approx(t, "self distance", a.DistanceTo(a), 0, 1e-6)
}

func TestMat4MatchesApply(t *testing.T) {
	m := Translation(1, -2, 3).Mul(RotationY(0.9)).Mul(RotationX(0.4))
	var mat [16]float32
	m.Mat4(mat[:])

	px, py, pz := float32(0.5), float32(-1.5), float32(2.0)
	wantX, wantY, wantZ := m.Apply(px, py, pz)

	gotX := mat[0]*px + mat[4]*py + mat[8]*pz + mat[12]
	gotY := mat[1]*px + mat[5]*py + mat[9]*pz + mat[13]
	gotZ := mat[2]*px + mat[6]*py + mat[10]*pz + mat[14]
	approxPoint(t, "mat4 apply", gotX, gotY, gotZ, wantX, wantY, wantZ, 1e-6)
}
