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

// Portable scalar implementations of the vector catalogue. These are the
// reference semantics; accelerated backends must agree with them within
// floating-point tolerance.

func addBase(v0, v1 Vector) Vector {
	return Vector{v0[0] + v1[0], v0[1] + v1[1], v0[2] + v1[2], v0[3] + v1[3]}
}

func subBase(v0, v1 Vector) Vector {
	return Vector{v0[0] - v1[0], v0[1] - v1[1], v0[2] - v1[2], v0[3] - v1[3]}
}

func mulBase(v0, v1 Vector) Vector {
	return Vector{v0[0] * v1[0], v0[1] * v1[1], v0[2] * v1[2], v0[3] * v1[3]}
}

func divBase(v0, v1 Vector) Vector {
	return Vector{v0[0] / v1[0], v0[1] / v1[1], v0[2] / v1[2], v0[3] / v1[3]}
}

func negBase(v Vector) Vector {
	return Vector{0 - v[0], 0 - v[1], 0 - v[2], 0 - v[3]}
}

func scaleBase(v Vector, s float32) Vector {
	return Vector{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// lerpBase computes factor*to + (from - factor*from), which returns the
// endpoints exactly for factors of 0 and 1.
func lerpBase(from, to Vector, factor float32) Vector {
	var r Vector
	for i := range r {
		r[i] = factor*to[i] + (from[i] - factor*from[i])
	}
	return r
}

func reflectBase(v, at Vector) Vector {
	normal := normalize3Base(at)
	doubleProj := scaleBase(normal, 2*dot3Base(normal, v)[0])
	return subBase(doubleProj, v)
}

func minBase(v0, v1 Vector) Vector {
	var r Vector
	for i := range r {
		if v0[i] < v1[i] {
			r[i] = v0[i]
		} else {
			r[i] = v1[i]
		}
	}
	return r
}

func maxBase(v0, v1 Vector) Vector {
	var r Vector
	for i := range r {
		if v0[i] > v1[i] {
			r[i] = v0[i]
		} else {
			r[i] = v1[i]
		}
	}
	return r
}

func dotBase(v0, v1 Vector) Vector {
	s := v0[0]*v1[0] + v0[1]*v1[1] + v0[2]*v1[2] + v0[3]*v1[3]
	return Vector{s, s, s, s}
}

func dot3Base(v0, v1 Vector) Vector {
	s := v0[0]*v1[0] + v0[1]*v1[1] + v0[2]*v1[2]
	return Vector{s, s, s, s}
}

func cross3Base(v0, v1 Vector) Vector {
	return Vector{
		v0[1]*v1[2] - v0[2]*v1[1],
		v0[2]*v1[0] - v0[0]*v1[2],
		v0[0]*v1[1] - v0[1]*v1[0],
		0,
	}
}

func normalizeBase(v Vector) Vector {
	inv := 1 / sqrt32(dotBase(v, v)[0])
	return scaleBase(v, inv)
}

// normalize3Base normalizes the xyz sub-vector and preserves the w lane.
func normalize3Base(v Vector) Vector {
	inv := 1 / sqrt32(dot3Base(v, v)[0])
	return Vector{v[0] * inv, v[1] * inv, v[2] * inv, v[3]}
}

// lengthBase leaves the broadcast squared length in lanes 1-3; only lane 0
// is part of the contract.
func lengthBase(v Vector) Vector {
	r := dotBase(v, v)
	r[0] = sqrt32(r[0])
	return r
}

func lengthSqrBase(v Vector) Vector {
	return dotBase(v, v)
}

func length3Base(v Vector) Vector {
	r := dot3Base(v, v)
	r[0] = sqrt32(r[0])
	return r
}

func length3SqrBase(v Vector) Vector {
	return dot3Base(v, v)
}

// float32 scalar helpers. Round-tripping through float64 matches the
// correctly rounded result for sqrt and keeps acos/sin well inside the
// catalogue's 100 ULP tolerance.

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func acos32(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
