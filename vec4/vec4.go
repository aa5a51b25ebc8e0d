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

import (
	"math"
	"unsafe"
)

// Vector is a 4-lane float32 value with components x, y, z, w. The w lane
// doubles as the homogeneous weight for points and the scalar part of a
// quaternion.
type Vector [4]float32

// New returns the vector (x, y, z, w).
func New(x, y, z, w float32) Vector {
	return Vector{x, y, z, w}
}

// Zero returns the all-zero vector.
func Zero() Vector {
	return Vector{}
}

// One returns the vector (1, 1, 1, 1).
func One() Vector {
	return Vector{1, 1, 1, 1}
}

// Half returns the vector (0.5, 0.5, 0.5, 0.5).
func Half() Vector {
	return Vector{0.5, 0.5, 0.5, 0.5}
}

// Two returns the vector (2, 2, 2, 2).
func Two() Vector {
	return Vector{2, 2, 2, 2}
}

// Uniform returns a vector with all lanes set to s.
func Uniform(s float32) Vector {
	return Vector{s, s, s, s}
}

// XAxis returns the unit vector (1, 0, 0, 0).
func XAxis() Vector {
	return Vector{1, 0, 0, 0}
}

// YAxis returns the unit vector (0, 1, 0, 0).
func YAxis() Vector {
	return Vector{0, 1, 0, 0}
}

// ZAxis returns the unit vector (0, 0, 1, 0).
func ZAxis() Vector {
	return Vector{0, 0, 1, 0}
}

// Origo returns the homogeneous origin (0, 0, 0, 1).
func Origo() Vector {
	return Vector{0, 0, 0, 1}
}

// FromSlice loads a vector from the first four floats of s. No alignment
// requirement. Panics if len(s) < 4.
func FromSlice(s []float32) Vector {
	var v Vector
	copy(v[:], s[:4])
	return v
}

// FromSliceAligned loads a vector from the first four floats of s. The
// backing array must be 16-byte aligned; a misaligned slice panics.
func FromSliceAligned(s []float32) Vector {
	assertAligned16(unsafe.Pointer(unsafe.SliceData(s)))
	return FromSlice(s)
}

func assertAligned16(p unsafe.Pointer) {
	if uintptr(p)&15 != 0 {
		panic("vec4: input not 16-byte aligned")
	}
}

// Store writes the vector to the first four floats of dst.
func (v Vector) Store(dst []float32) {
	copy(dst[:4], v[:])
}

// X returns the first lane.
func (v Vector) X() float32 { return v[0] }

// Y returns the second lane.
func (v Vector) Y() float32 { return v[1] }

// Z returns the third lane.
func (v Vector) Z() float32 { return v[2] }

// W returns the fourth lane.
func (v Vector) W() float32 { return v[3] }

// Component returns lane c. Panics if c is outside [0, 3].
func (v Vector) Component(c int) float32 {
	return v[c]
}

// Quaternion reinterprets the vector as a quaternion.
func (v Vector) Quaternion() Quaternion {
	return Quaternion(v)
}

// equalULPs is the per-lane tolerance for approximate equality, in units in
// the last place.
const equalULPs = 100

// Equal reports whether every lane of v is within 100 ULPs of the matching
// lane of v1.
func (v Vector) Equal(v1 Vector) bool {
	for i := range v {
		if !realEq(v[i], v1[i], equalULPs) {
			return false
		}
	}
	return true
}

// realEq reports whether a and b differ by at most ulps representable floats.
func realEq(a, b float32, ulps int64) bool {
	d := ulpOrder(a) - ulpOrder(b)
	if d < 0 {
		d = -d
	}
	return d <= ulps
}

// ulpOrder maps a float32 onto an integer scale where adjacent representable
// floats are adjacent integers, negative floats descending below zero.
func ulpOrder(f float32) int64 {
	b := int64(math.Float32bits(f))
	if b&0x80000000 != 0 {
		return 0x80000000 - b
	}
	return b
}
