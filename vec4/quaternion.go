// Copyright 2025 go-vec4 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec4

// Quaternion is a rotation stored as a Vector: (x, y, z) is the imaginary
// part and w the real part. It is representationally identical to Vector;
// convert explicitly in either direction. Rotate requires unit norm, which is
// the caller's obligation and never enforced here.
type Quaternion Vector

// QuaternionIdentity returns the identity rotation (0, 0, 0, 1).
func QuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// QuaternionZero returns the all-zero quaternion.
func QuaternionZero() Quaternion {
	return Quaternion{}
}

// QuaternionFromSlice loads a quaternion from the first four floats of s. No
// alignment requirement.
func QuaternionFromSlice(s []float32) Quaternion {
	return Quaternion(FromSlice(s))
}

// QuaternionFromSliceAligned loads a quaternion from the first four floats of
// s. The backing array must be 16-byte aligned.
func QuaternionFromSliceAligned(s []float32) Quaternion {
	return Quaternion(FromSliceAligned(s))
}

// Vector reinterprets the quaternion as a plain vector.
func (q Quaternion) Vector() Vector {
	return Vector(q)
}

// Conjugate returns (-x, -y, -z, w).
func (q Quaternion) Conjugate() Quaternion {
	return quatConjugateImpl(q)
}

// Inverse returns the conjugate scaled by the reciprocal squared norm. A
// zero-norm quaternion propagates infinities and NaNs, matching the
// catalogue's unguarded division policy.
func (q Quaternion) Inverse() Quaternion {
	return quatInverseImpl(q)
}

// Neg negates all four components. q and -q represent the same rotation.
func (q Quaternion) Neg() Quaternion {
	return Quaternion(Vector(q).Neg())
}

// Normalize returns q scaled to unit norm.
func (q Quaternion) Normalize() Quaternion {
	return Quaternion(Vector(q).Normalize())
}

// Add returns the componentwise sum q + q1.
func (q Quaternion) Add(q1 Quaternion) Quaternion {
	return Quaternion(Vector(q).Add(Vector(q1)))
}

// Sub returns the componentwise difference q - q1.
func (q Quaternion) Sub(q1 Quaternion) Quaternion {
	return Quaternion(Vector(q).Sub(Vector(q1)))
}

// Mul returns the Hamilton product of q1 acting on q. The product is
// non-commutative; operand order follows the rotation-composition convention
// where the combined rotation applies q first, then q1.
func (q Quaternion) Mul(q1 Quaternion) Quaternion {
	return quatMulImpl(q, q1)
}

// Slerp spherically interpolates from q to q1. When the quaternions lie on
// opposite hemispheres the target is negated first so the interpolation takes
// the short arc. Coincident or zero-angle inputs return the (possibly
// negated) target directly.
func (q Quaternion) Slerp(q1 Quaternion, factor float32) Quaternion {
	return quatSlerpImpl(q, q1, factor)
}

// Rotate rotates v by the unit quaternion q. The w lane of the result is 1,
// treating the output as an affine point. A non-unit q silently produces a
// scaled result.
func (q Quaternion) Rotate(v Vector) Vector {
	return quatRotateImpl(q, v)
}

// Equal reports whether every component of q is within 100 ULPs of the
// matching component of q1.
func (q Quaternion) Equal(q1 Quaternion) bool {
	return Vector(q).Equal(Vector(q1))
}
