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

// Implementation table. Every entry starts as the portable reference
// implementation; an accelerated backend claims an operation by overwriting
// its entry from a build-tag-guarded init (ops_sse.go, ops_avx2.go). Entries
// not claimed keep the portable path, so the catalogue is complete for every
// build configuration. The table is written only during package
// initialization and read-only afterwards.
var (
	addImpl         = addBase
	subImpl         = subBase
	mulImpl         = mulBase
	divImpl         = divBase
	negImpl         = negBase
	scaleImpl       = scaleBase
	lerpImpl        = lerpBase
	reflectImpl     = reflectBase
	minImpl         = minBase
	maxImpl         = maxBase
	dotImpl         = dotBase
	dot3Impl        = dot3Base
	cross3Impl      = cross3Base
	normalizeImpl   = normalizeBase
	normalize3Impl  = normalize3Base
	lengthImpl      = lengthBase
	lengthFastImpl  = lengthBase
	lengthSqrImpl   = lengthSqrBase
	length3Impl     = length3Base
	length3FastImpl = length3Base
	length3SqrImpl  = length3SqrBase

	quatConjugateImpl = quatConjugateBase
	quatInverseImpl   = quatInverseBase
	quatMulImpl       = quatMulBase
	quatSlerpImpl     = quatSlerpBase
	quatRotateImpl    = quatRotateBase

	matTransposeImpl = matTransposeBase
	matMulImpl       = matMulBase
	matAddImpl       = matAddBase
	matSubImpl       = matSubBase
	matRotateImpl    = matRotateBase
	matTransformImpl = matTransformBase
)

// Add returns the lanewise sum v + v1.
func (v Vector) Add(v1 Vector) Vector {
	return addImpl(v, v1)
}

// Sub returns the lanewise difference v - v1.
func (v Vector) Sub(v1 Vector) Vector {
	return subImpl(v, v1)
}

// Mul returns the lanewise product v * v1.
func (v Vector) Mul(v1 Vector) Vector {
	return mulImpl(v, v1)
}

// Div returns the lanewise quotient v / v1. Zero divisors propagate IEEE-754
// infinities and NaNs.
func (v Vector) Div(v1 Vector) Vector {
	return divImpl(v, v1)
}

// Neg returns 0 - v.
func (v Vector) Neg() Vector {
	return negImpl(v)
}

// Scale returns v with every lane multiplied by s.
func (v Vector) Scale(s float32) Vector {
	return scaleImpl(v, s)
}

// Lerp interpolates lanewise from v to "to". The factor is unconstrained;
// values outside [0, 1] extrapolate. Factors of exactly 0 and 1 return the
// endpoints exactly.
func (v Vector) Lerp(to Vector, factor float32) Vector {
	return lerpImpl(v, to, factor)
}

// Reflect mirrors v about the normal obtained by normalizing the first three
// lanes of at: 2(n.v)n - v.
func (v Vector) Reflect(at Vector) Vector {
	return reflectImpl(v, at)
}

// Min returns the lanewise minimum of v and v1.
func (v Vector) Min(v1 Vector) Vector {
	return minImpl(v, v1)
}

// Max returns the lanewise maximum of v and v1.
func (v Vector) Max(v1 Vector) Vector {
	return maxImpl(v, v1)
}

// Dot returns the 4-D dot product broadcast to all four lanes.
func (v Vector) Dot(v1 Vector) Vector {
	return dotImpl(v, v1)
}

// Dot3 returns the dot product of the first three lanes broadcast to all
// four lanes.
func (v Vector) Dot3(v1 Vector) Vector {
	return dot3Impl(v, v1)
}

// Cross3 returns the 3-D cross product of v and v1. The w lane of the result
// is zero.
func (v Vector) Cross3(v1 Vector) Vector {
	return cross3Impl(v, v1)
}

// Normalize returns v scaled to unit 4-D length. A zero vector produces NaN
// lanes.
func (v Vector) Normalize() Vector {
	return normalizeImpl(v)
}

// Normalize3 returns v with its first three lanes scaled to unit 3-D length
// and the w lane unchanged.
func (v Vector) Normalize3() Vector {
	return normalize3Impl(v)
}

// Length returns the 4-D magnitude of v in lane 0. The remaining lanes are
// unspecified.
func (v Vector) Length() Vector {
	return lengthImpl(v)
}

// LengthFast returns the 4-D magnitude of v in lane 0, possibly trading
// precision for speed. The portable implementation is exact.
func (v Vector) LengthFast() Vector {
	return lengthFastImpl(v)
}

// LengthSqr returns the squared 4-D magnitude broadcast to all lanes.
func (v Vector) LengthSqr() Vector {
	return lengthSqrImpl(v)
}

// Length3 returns the magnitude of the first three lanes in lane 0. The
// remaining lanes are unspecified.
func (v Vector) Length3() Vector {
	return length3Impl(v)
}

// Length3Fast returns the 3-D magnitude in lane 0, possibly trading precision
// for speed. The portable implementation is exact.
func (v Vector) Length3Fast() Vector {
	return length3FastImpl(v)
}

// Length3Sqr returns the squared 3-D magnitude broadcast to all lanes.
func (v Vector) Length3Sqr() Vector {
	return length3SqrImpl(v)
}
