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

import (
	"simd/archsimd"
	"unsafe"
)

// 256-bit matrix kernels, claimed only when the CPU has AVX2. They layer on
// top of the 128-bit claims: matrix add/sub move to Float32x8 over row pairs
// while everything else keeps its 128-bit or portable definition.

func init() {
	if NoSimdEnv() || !archsimd.X86.AVX2() {
		return
	}
	matAddImpl = matAddAVX2
	matSubImpl = matSubAVX2
}

// flat16 views a matrix as its 16 contiguous row-major floats. Matrix is an
// array of arrays, so the layout is guaranteed.
func flat16(m *Matrix) *[16]float32 {
	return (*[16]float32)(unsafe.Pointer(m))
}

func matAddAVX2(m0, m1 Matrix) Matrix {
	a := flat16(&m0)
	b := flat16(&m1)
	var r Matrix
	out := flat16(&r)
	for i := 0; i < 16; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		va.Add(vb).StoreSlice(out[i:])
	}
	return r
}

func matSubAVX2(m0, m1 Matrix) Matrix {
	a := flat16(&m0)
	b := flat16(&m1)
	var r Matrix
	out := flat16(&r)
	for i := 0; i < 16; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		va.Sub(vb).StoreSlice(out[i:])
	}
	return r
}
