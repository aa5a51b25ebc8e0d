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

import "math"

// Portable scalar implementations of the quaternion catalogue.

func quatConjugateBase(q Quaternion) Quaternion {
	return Quaternion{-q[0], -q[1], -q[2], q[3]}
}

func quatInverseBase(q Quaternion) Quaternion {
	norm := lengthSqrBase(Vector(q))[0]
	invNorm := 1 / norm
	return Quaternion{-q[0] * invNorm, -q[1] * invNorm, -q[2] * invNorm, q[3] * invNorm}
}

func quatMulBase(q0, q1 Quaternion) Quaternion {
	return Quaternion{
		q1[3]*q0[0] + q1[0]*q0[3] + q1[1]*q0[2] - q1[2]*q0[1],
		q1[3]*q0[1] - q1[0]*q0[2] + q1[1]*q0[3] + q1[2]*q0[0],
		q1[3]*q0[2] + q1[0]*q0[1] - q1[1]*q0[0] + q1[2]*q0[3],
		q1[3]*q0[3] - q1[0]*q0[0] - q1[1]*q0[1] - q1[2]*q0[2],
	}
}

// angleEpsilon is the threshold below which a slerp angle counts as zero.
const angleEpsilon = 1.1920929e-7 // FLT_EPSILON

func quatSlerpBase(q0, q1 Quaternion, factor float32) Quaternion {
	var qd Quaternion
	cosval := dotBase(Vector(q0), Vector(q1))[0]

	// A negative cosine means the long way around; slerp towards the negated
	// target instead to keep the arc acute.
	if cosval < 0 {
		qd = q1.Neg()
		cosval = dotBase(Vector(q0), Vector(qd))[0]
	} else {
		qd = q1
	}

	var angle float32
	if -1 < cosval {
		if cosval < 1 {
			angle = acos32(cosval)
		} else {
			// Coincident orientations, nothing to interpolate.
			return qd
		}
	} else {
		angle = math.Pi
	}

	if abs32(angle) < angleEpsilon {
		return qd
	}

	sinval := sin32(angle)
	invsin := 1 / sinval
	c0 := sin32((1-factor)*angle) * invsin
	c1 := sin32(factor*angle) * invsin

	return Quaternion(addBase(scaleBase(Vector(q0), c0), scaleBase(Vector(qd), c1)))
}

// quatRotateBase computes q * (0, v) * conj(q) through the expanded
// double-cross form: with v1 = w*v + q x v, the rotated vector is
// q*(q.v) + v1*w - (v1 x q). The scalar part of the triple product is
// identically zero, so only the vector part is built; the w lane is set to 1
// to mark the result as an affine point.
func quatRotateBase(q Quaternion, v Vector) Vector {
	v1 := cross3Base(Vector(q), v)
	v1[0] += v[0] * q[3]
	v1[1] += v[1] * q[3]
	v1[2] += v[2] * q[3]

	v2 := cross3Base(v1, Vector(q))
	dot := q[0]*v[0] + q[1]*v[1] + q[2]*v[2]

	return Vector{
		q[0]*dot + v1[0]*q[3] - v2[0],
		q[1]*dot + v1[1]*q[3] - v2[1],
		q[2]*dot + v1[2]*q[3] - v2[2],
		1,
	}
}
