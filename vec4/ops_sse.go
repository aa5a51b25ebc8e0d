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

//go:build amd64 && goexperiment.simd

package vec4

import "simd/archsimd"

// 128-bit backend built on archsimd Float32x4. SSE2 is baseline on amd64, so
// these claims are unconditional for this build configuration. Operations
// with shuffle-heavy sequences (cross products, Hamilton product, transpose)
// stay on the portable path; partial claiming is the point of the layering.

func init() {
	if NoSimdEnv() {
		return
	}

	addImpl = addSSE
	subImpl = subSSE
	mulImpl = mulSSE
	divImpl = divSSE
	negImpl = negSSE
	scaleImpl = scaleSSE
	lerpImpl = lerpSSE
	minImpl = minSSE
	maxImpl = maxSSE
	dotImpl = dotSSE
	dot3Impl = dot3SSE
	normalizeImpl = normalizeSSE
	normalize3Impl = normalize3SSE
	lengthImpl = lengthSSE
	lengthFastImpl = lengthSSE
	lengthSqrImpl = lengthSqrSSE
	length3Impl = length3SSE
	length3FastImpl = length3SSE
	length3SqrImpl = length3SqrSSE

	quatConjugateImpl = quatConjugateSSE
	quatInverseImpl = quatInverseSSE

	matMulImpl = matMulSSE
	matRotateImpl = matRotateSSE
	matTransformImpl = matTransformSSE
}

func load4(v Vector) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4Slice(v[:])
}

func store4(x archsimd.Float32x4) Vector {
	var r Vector
	x.StoreSlice(r[:])
	return r
}

func addSSE(v0, v1 Vector) Vector {
	return store4(load4(v0).Add(load4(v1)))
}

func subSSE(v0, v1 Vector) Vector {
	return store4(load4(v0).Sub(load4(v1)))
}

func mulSSE(v0, v1 Vector) Vector {
	return store4(load4(v0).Mul(load4(v1)))
}

func divSSE(v0, v1 Vector) Vector {
	return store4(load4(v0).Div(load4(v1)))
}

func negSSE(v Vector) Vector {
	return store4(archsimd.BroadcastFloat32x4(0).Sub(load4(v)))
}

func scaleSSE(v Vector, s float32) Vector {
	return store4(load4(v).Mul(archsimd.BroadcastFloat32x4(s)))
}

func lerpSSE(from, to Vector, factor float32) Vector {
	s := archsimd.BroadcastFloat32x4(factor)
	vf := load4(from)
	vt := load4(to)
	return store4(s.Mul(vt).Add(vf.Sub(s.Mul(vf))))
}

func minSSE(v0, v1 Vector) Vector {
	return store4(load4(v0).Min(load4(v1)))
}

func maxSSE(v0, v1 Vector) Vector {
	return store4(load4(v0).Max(load4(v1)))
}

func dotSSE(v0, v1 Vector) Vector {
	// Horizontal reduction through a temp array, then broadcast.
	var t [4]float32
	load4(v0).Mul(load4(v1)).StoreSlice(t[:])
	return Uniform(t[0] + t[1] + t[2] + t[3])
}

func dot3SSE(v0, v1 Vector) Vector {
	var t [4]float32
	load4(v0).Mul(load4(v1)).StoreSlice(t[:])
	return Uniform(t[0] + t[1] + t[2])
}

func normalizeSSE(v Vector) Vector {
	inv := 1 / sqrt32(dotSSE(v, v)[0])
	return store4(load4(v).Mul(archsimd.BroadcastFloat32x4(inv)))
}

func normalize3SSE(v Vector) Vector {
	inv := 1 / sqrt32(dot3SSE(v, v)[0])
	r := store4(load4(v).Mul(archsimd.BroadcastFloat32x4(inv)))
	r[3] = v[3]
	return r
}

func lengthSSE(v Vector) Vector {
	r := dotSSE(v, v)
	r[0] = sqrt32(r[0])
	return r
}

func lengthSqrSSE(v Vector) Vector {
	return dotSSE(v, v)
}

func length3SSE(v Vector) Vector {
	r := dot3SSE(v, v)
	r[0] = sqrt32(r[0])
	return r
}

func length3SqrSSE(v Vector) Vector {
	return dot3SSE(v, v)
}

// conjugateSign flips the imaginary components and keeps the scalar part.
var conjugateSign = Vector{-1, -1, -1, 1}

func quatConjugateSSE(q Quaternion) Quaternion {
	return Quaternion(store4(load4(Vector(q)).Mul(load4(conjugateSign))))
}

func quatInverseSSE(q Quaternion) Quaternion {
	invNorm := 1 / dotSSE(Vector(q), Vector(q))[0]
	conj := load4(Vector(q)).Mul(load4(conjugateSign))
	return Quaternion(store4(conj.Mul(archsimd.BroadcastFloat32x4(invNorm))))
}

// matMulSSE accumulates each result row as a broadcast-multiply of m0's row
// entries against m1's rows. MulAdd fuses the accumulation; the fused
// rounding stays well inside the catalogue's equality tolerance.
func matMulSSE(m0, m1 Matrix) Matrix {
	var r Matrix
	rows := [4]archsimd.Float32x4{load4(m1[0]), load4(m1[1]), load4(m1[2]), load4(m1[3])}
	for row := 0; row < 4; row++ {
		acc := archsimd.BroadcastFloat32x4(m0[row][0]).Mul(rows[0])
		acc = archsimd.BroadcastFloat32x4(m0[row][1]).MulAdd(rows[1], acc)
		acc = archsimd.BroadcastFloat32x4(m0[row][2]).MulAdd(rows[2], acc)
		acc = archsimd.BroadcastFloat32x4(m0[row][3]).MulAdd(rows[3], acc)
		acc.StoreSlice(r[row][:])
	}
	return r
}

func matTransformSSE(m Matrix, v Vector) Vector {
	acc := archsimd.BroadcastFloat32x4(v[0]).Mul(load4(m[0]))
	acc = archsimd.BroadcastFloat32x4(v[1]).MulAdd(load4(m[1]), acc)
	acc = archsimd.BroadcastFloat32x4(v[2]).MulAdd(load4(m[2]), acc)
	acc = archsimd.BroadcastFloat32x4(v[3]).MulAdd(load4(m[3]), acc)
	return store4(acc)
}

func matRotateSSE(m Matrix, v Vector) Vector {
	acc := archsimd.BroadcastFloat32x4(v[0]).Mul(load4(m[0]))
	acc = archsimd.BroadcastFloat32x4(v[1]).MulAdd(load4(m[1]), acc)
	acc = archsimd.BroadcastFloat32x4(v[2]).MulAdd(load4(m[2]), acc)
	r := store4(acc)
	r[3] = v[3]
	return r
}
