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

import "unsafe"

// Matrix is a 4x4 float32 matrix stored as four row vectors, equivalently 16
// contiguous floats in row-major order. No structural invariants are
// enforced; it need not be orthogonal or invertible.
type Matrix [4]Vector

// MatrixZero returns the all-zero matrix.
func MatrixZero() Matrix {
	return Matrix{}
}

// MatrixIdentity returns the 4x4 identity matrix.
func MatrixIdentity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// MatrixFromRows builds a matrix from four row vectors.
func MatrixFromRows(r0, r1, r2, r3 Vector) Matrix {
	return Matrix{r0, r1, r2, r3}
}

// MatrixFromSlice loads a matrix from the first 16 floats of s in row-major
// order. No alignment requirement. Panics if len(s) < 16.
func MatrixFromSlice(s []float32) Matrix {
	return Matrix{
		FromSlice(s),
		FromSlice(s[4:]),
		FromSlice(s[8:]),
		FromSlice(s[12:]),
	}
}

// MatrixFromSliceAligned loads a matrix from the first 16 floats of s. The
// backing array must be 16-byte aligned.
func MatrixFromSliceAligned(s []float32) Matrix {
	assertAligned16(unsafe.Pointer(unsafe.SliceData(s)))
	return MatrixFromSlice(s)
}

// Store writes the matrix to the first 16 floats of dst in row-major order.
func (m Matrix) Store(dst []float32) {
	for i, row := range m {
		row.Store(dst[i*4:])
	}
}

// Row returns row r. Panics if r is outside [0, 3].
func (m Matrix) Row(r int) Vector {
	return m[r]
}

// Component returns the entry at the given row and column. Panics if either
// index is outside [0, 3].
func (m Matrix) Component(row, col int) float32 {
	return m[row][col]
}

// Transpose returns the matrix with rows and columns exchanged.
func (m Matrix) Transpose() Matrix {
	return matTransposeImpl(m)
}

// Mul returns the row-by-column product m * m1.
func (m Matrix) Mul(m1 Matrix) Matrix {
	return matMulImpl(m, m1)
}

// Add returns the rowwise sum m + m1.
func (m Matrix) Add(m1 Matrix) Matrix {
	return matAddImpl(m, m1)
}

// Sub returns the rowwise difference m - m1.
func (m Matrix) Sub(m1 Matrix) Matrix {
	return matSubImpl(m, m1)
}

// Rotate applies only the upper-left 3x3 block to the first three lanes of v,
// ignoring the translation row and passing w through unchanged. Use it for
// direction vectors.
func (m Matrix) Rotate(v Vector) Vector {
	return matRotateImpl(m, v)
}

// Transform applies the full homogeneous transform to v, including the
// fourth-row translation weighted by v's w lane. Use it for points.
func (m Matrix) Transform(v Vector) Vector {
	return matTransformImpl(m, v)
}

// Equal reports whether every entry of m is within 100 ULPs of the matching
// entry of m1.
func (m Matrix) Equal(m1 Matrix) bool {
	for i := range m {
		if !m[i].Equal(m1[i]) {
			return false
		}
	}
	return true
}
