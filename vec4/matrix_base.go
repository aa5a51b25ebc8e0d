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

// Portable scalar implementations of the matrix catalogue.

func matTransposeBase(m Matrix) Matrix {
	var mt Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			mt[row][col] = m[col][row]
		}
	}
	return mt
}

func matMulBase(m0, m1 Matrix) Matrix {
	var r Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row][col] = m0[row][0]*m1[0][col] +
				m0[row][1]*m1[1][col] +
				m0[row][2]*m1[2][col] +
				m0[row][3]*m1[3][col]
		}
	}
	return r
}

func matAddBase(m0, m1 Matrix) Matrix {
	return Matrix{
		addBase(m0[0], m1[0]),
		addBase(m0[1], m1[1]),
		addBase(m0[2], m1[2]),
		addBase(m0[3], m1[3]),
	}
}

func matSubBase(m0, m1 Matrix) Matrix {
	return Matrix{
		subBase(m0[0], m1[0]),
		subBase(m0[1], m1[1]),
		subBase(m0[2], m1[2]),
		subBase(m0[3], m1[3]),
	}
}

// matRotateBase treats v as a row vector: result = v * M over the upper-left
// 3x3 block. The translation row does not contribute and w passes through.
func matRotateBase(m Matrix, v Vector) Vector {
	return Vector{
		m[0][0]*v[0] + m[1][0]*v[1] + m[2][0]*v[2],
		m[0][1]*v[0] + m[1][1]*v[1] + m[2][1]*v[2],
		m[0][2]*v[0] + m[1][2]*v[1] + m[2][2]*v[2],
		v[3],
	}
}

// matTransformBase is the full homogeneous row-vector transform v * M.
func matTransformBase(m Matrix, v Vector) Vector {
	return Vector{
		m[0][0]*v[0] + m[1][0]*v[1] + m[2][0]*v[2] + m[3][0]*v[3],
		m[0][1]*v[0] + m[1][1]*v[1] + m[2][1]*v[2] + m[3][1]*v[3],
		m[0][2]*v[0] + m[1][2]*v[1] + m[2][2]*v[2] + m[3][2]*v[3],
		m[0][3]*v[0] + m[1][3]*v[1] + m[2][3]*v[2] + m[3][3]*v[3],
	}
}
