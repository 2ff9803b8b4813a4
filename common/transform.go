// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"math"
)

// Transform is a rigid transform: a 3x3 rotation basis plus a translation.
// The basis is stored in column-major order; its columns are the local
// right, up, and back axes. A camera transform therefore looks along the
// negated third column (see Forward).
type Transform struct {
	// Basis is the rotation part, column-major: Basis[col*3+row].
	Basis [9]float32

	// Position is the translation part in world space.
	Position [3]float32
}

// IdentityTransform returns the identity transform (no rotation, origin position).
//
// Returns:
//   - Transform: the identity transform
func IdentityTransform() Transform {
	return Transform{
		Basis: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
	}
}

// Translation returns a pure translation transform.
//
// Parameters:
//   - x, y, z: translation components
//
// Returns:
//   - Transform: translation by (x, y, z) with identity rotation
func Translation(x, y, z float32) Transform {
	t := IdentityTransform()
	t.Position = [3]float32{x, y, z}
	return t
}

// RotationX returns a rotation transform about the X axis.
//
// Parameters:
//   - angle: rotation angle in radians
//
// Returns:
//   - Transform: the rotation transform
func RotationX(angle float32) Transform {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Transform{
		Basis: [9]float32{
			1, 0, 0,
			0, c, s,
			0, -s, c,
		},
	}
}

// RotationY returns a rotation transform about the Y axis.
//
// Parameters:
//   - angle: rotation angle in radians
//
// Returns:
//   - Transform: the rotation transform
func RotationY(angle float32) Transform {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Transform{
		Basis: [9]float32{
			c, 0, -s,
			0, 1, 0,
			s, 0, c,
		},
	}
}

// NewLookAt builds a transform positioned at eye and oriented so its
// forward axis points at target, using world up (0, 1, 0). If eye and
// target coincide, or the view direction is parallel to world up, the
// rotation falls back to identity.
//
// Parameters:
//   - eyeX, eyeY, eyeZ: transform position in world space
//   - targetX, targetY, targetZ: point the forward axis aims at
//
// Returns:
//   - Transform: the look-at transform
func NewLookAt(eyeX, eyeY, eyeZ, targetX, targetY, targetZ float32) Transform {
	bx := eyeX - targetX
	by := eyeY - targetY
	bz := eyeZ - targetZ
	bLen := float32(math.Sqrt(float64(bx*bx + by*by + bz*bz)))
	if bLen < 1e-8 {
		t := IdentityTransform()
		t.Position = [3]float32{eyeX, eyeY, eyeZ}
		return t
	}
	bx /= bLen
	by /= bLen
	bz /= bLen

	// right = normalize(cross(worldUp, back)) with worldUp = (0, 1, 0)
	rx := bz
	rz := -bx
	rLen := float32(math.Sqrt(float64(rx*rx + rz*rz)))
	if rLen < 1e-8 {
		t := IdentityTransform()
		t.Position = [3]float32{eyeX, eyeY, eyeZ}
		return t
	}
	rx /= rLen
	rz /= rLen

	// up = cross(back, right)
	ux := by * rz
	uy := bz*rx - bx*rz
	uz := -by * rx

	return Transform{
		Basis: [9]float32{
			rx, 0, rz,
			ux, uy, uz,
			bx, by, bz,
		},
		Position: [3]float32{eyeX, eyeY, eyeZ},
	}
}

// Mul composes two transforms. The result applies o first, then t,
// matching 4x4 matrix multiplication t * o.
//
// Parameters:
//   - o: the right-hand transform
//
// Returns:
//   - Transform: the composed transform
func (t Transform) Mul(o Transform) Transform {
	var out Transform
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			sum := float32(0)
			for k := 0; k < 3; k++ {
				sum += t.Basis[k*3+row] * o.Basis[col*3+k]
			}
			out.Basis[col*3+row] = sum
		}
	}
	out.Position[0], out.Position[1], out.Position[2] = t.Apply(o.Position[0], o.Position[1], o.Position[2])
	return out
}

// Apply transforms a world-space point by this transform.
//
// Parameters:
//   - x, y, z: point components
//
// Returns:
//   - px, py, pz: the transformed point
func (t Transform) Apply(x, y, z float32) (px, py, pz float32) {
	px = t.Basis[0]*x + t.Basis[3]*y + t.Basis[6]*z + t.Position[0]
	py = t.Basis[1]*x + t.Basis[4]*y + t.Basis[7]*z + t.Position[1]
	pz = t.Basis[2]*x + t.Basis[5]*y + t.Basis[8]*z + t.Position[2]
	return
}

// Forward returns the transform's forward axis (the negated third basis column).
//
// Returns:
//   - x, y, z: unit forward vector components
func (t Transform) Forward() (x, y, z float32) {
	return -t.Basis[6], -t.Basis[7], -t.Basis[8]
}

// Inverse returns the rigid inverse of the transform.
// Only valid when the basis is orthonormal.
//
// Returns:
//   - Transform: the inverse transform
func (t Transform) Inverse() Transform {
	var out Transform
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out.Basis[col*3+row] = t.Basis[row*3+col]
		}
	}
	x, y, z := t.Position[0], t.Position[1], t.Position[2]
	out.Position[0] = -(out.Basis[0]*x + out.Basis[3]*y + out.Basis[6]*z)
	out.Position[1] = -(out.Basis[1]*x + out.Basis[4]*y + out.Basis[7]*z)
	out.Position[2] = -(out.Basis[2]*x + out.Basis[5]*y + out.Basis[8]*z)
	return out
}

// Orthonormalize re-orthonormalizes the rotation basis using Gram-Schmidt,
// eliminating accumulated floating-point drift. The back axis is treated as
// authoritative, matching the LookAt construction order.
//
// Returns:
//   - Transform: the transform with an orthonormal basis
func (t Transform) Orthonormalize() Transform {
	bx, by, bz := t.Basis[6], t.Basis[7], t.Basis[8]
	bLen := float32(math.Sqrt(float64(bx*bx + by*by + bz*bz)))
	if bLen < 1e-8 {
		t.Basis = IdentityTransform().Basis
		return t
	}
	bx /= bLen
	by /= bLen
	bz /= bLen

	ux, uy, uz := t.Basis[3], t.Basis[4], t.Basis[5]
	// right = normalize(cross(up, back))
	rx := uy*bz - uz*by
	ry := uz*bx - ux*bz
	rz := ux*by - uy*bx
	rLen := float32(math.Sqrt(float64(rx*rx + ry*ry + rz*rz)))
	if rLen < 1e-8 {
		t.Basis = IdentityTransform().Basis
		return t
	}
	rx /= rLen
	ry /= rLen
	rz /= rLen

	// up = cross(back, right)
	ux = by*rz - bz*ry
	uy = bz*rx - bx*rz
	uz = bx*ry - by*rx

	t.Basis = [9]float32{
		rx, ry, rz,
		ux, uy, uz,
		bx, by, bz,
	}
	return t
}

// Lerp interpolates between two transforms: positions linearly, rotations by
// quaternion slerp. alpha = 0 yields t, alpha = 1 yields to.
//
// Parameters:
//   - to: the destination transform
//   - alpha: interpolation factor, typically in [0, 1]
//
// Returns:
//   - Transform: the interpolated transform
func (t Transform) Lerp(to Transform, alpha float32) Transform {
	var out Transform
	for i := 0; i < 3; i++ {
		out.Position[i] = Lerp(t.Position[i], to.Position[i], alpha)
	}

	qa := basisToQuat(t.Basis)
	qb := basisToQuat(to.Basis)
	out.Basis = quatToBasis(slerp(qa, qb, alpha))
	return out
}

// DistanceTo returns the Euclidean distance between the positions of two transforms.
//
// Parameters:
//   - o: the other transform
//
// Returns:
//   - float32: positional distance
func (t Transform) DistanceTo(o Transform) float32 {
	dx := t.Position[0] - o.Position[0]
	dy := t.Position[1] - o.Position[1]
	dz := t.Position[2] - o.Position[2]
	return float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

// Mat4 writes the transform as a 4x4 column-major matrix.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
func (t Transform) Mat4(out []float32) {
	out[0], out[1], out[2], out[3] = t.Basis[0], t.Basis[1], t.Basis[2], 0
	out[4], out[5], out[6], out[7] = t.Basis[3], t.Basis[4], t.Basis[5], 0
	out[8], out[9], out[10], out[11] = t.Basis[6], t.Basis[7], t.Basis[8], 0
	out[12], out[13], out[14], out[15] = t.Position[0], t.Position[1], t.Position[2], 1
}

// quat is a unit quaternion (x, y, z, w).
type quat [4]float32

// basisToQuat converts an orthonormal column-major basis to a quaternion
// using Shepperd's method (branch on the largest diagonal term).
func basisToQuat(m [9]float32) quat {
	trace := m[0] + m[4] + m[8]
	var q quat
	switch {
	case trace > 0:
		s := float32(math.Sqrt(float64(trace+1))) * 2
		q[3] = s / 4
		q[0] = (m[5] - m[7]) / s
		q[1] = (m[6] - m[2]) / s
		q[2] = (m[1] - m[3]) / s
	case m[0] > m[4] && m[0] > m[8]:
		s := float32(math.Sqrt(float64(1+m[0]-m[4]-m[8]))) * 2
		q[3] = (m[5] - m[7]) / s
		q[0] = s / 4
		q[1] = (m[3] + m[1]) / s
		q[2] = (m[6] + m[2]) / s
	case m[4] > m[8]:
		s := float32(math.Sqrt(float64(1+m[4]-m[0]-m[8]))) * 2
		q[3] = (m[6] - m[2]) / s
		q[0] = (m[3] + m[1]) / s
		q[1] = s / 4
		q[2] = (m[7] + m[5]) / s
	default:
		s := float32(math.Sqrt(float64(1+m[8]-m[0]-m[4]))) * 2
		q[3] = (m[1] - m[3]) / s
		q[0] = (m[6] + m[2]) / s
		q[1] = (m[7] + m[5]) / s
		q[2] = s / 4
	}
	return q
}

// quatToBasis converts a unit quaternion back to a column-major rotation basis.
func quatToBasis(q quat) [9]float32 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return [9]float32{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy),
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx),
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy),
	}
}

// slerp spherically interpolates between two unit quaternions, taking the
// shortest arc. Falls back to normalized linear interpolation when the
// quaternions are nearly parallel.
func slerp(a, b quat, alpha float32) quat {
	dot := a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
	if dot < 0 {
		for i := range b {
			b[i] = -b[i]
		}
		dot = -dot
	}

	var out quat
	if dot > 0.9995 {
		for i := range out {
			out[i] = Lerp(a[i], b[i], alpha)
		}
	} else {
		theta := float32(math.Acos(float64(Clamp(dot, -1, 1))))
		sinTheta := float32(math.Sin(float64(theta)))
		wa := float32(math.Sin(float64((1-alpha)*theta))) / sinTheta
		wb := float32(math.Sin(float64(alpha*theta))) / sinTheta
		for i := range out {
			out[i] = wa*a[i] + wb*b[i]
		}
	}

	norm := float32(math.Sqrt(float64(out[0]*out[0] + out[1]*out[1] + out[2]*out[2] + out[3]*out[3])))
	if norm < 1e-8 {
		return a
	}
	for i := range out {
		out[i] /= norm
	}
	return out
}
