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

import "testing"

func TestDispatchState(t *testing.T) {
	t.Logf("backend: %s (level %d, width %d bytes)",
		CurrentName(), CurrentLevel(), CurrentWidth())

	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel().String() = %q",
			CurrentName(), CurrentLevel().String())
	}
	if CurrentWidth() != 16 && CurrentWidth() != 32 {
		t.Errorf("CurrentWidth() = %d", CurrentWidth())
	}
	if NoSimdEnv() && CurrentLevel() != DispatchScalar {
		t.Errorf("VEC4_NO_SIMD set but level is %s", CurrentLevel())
	}
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchLevel(99), "scalar"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

// Parity corpus: signs, zeros, magnitudes apart, non-unit w lanes. Division
// inputs come from the non-zero tail.
var parityInputs = []Vector{
	{0, 0, 0, 0},
	{1, 2, 3, 4},
	{-1, -2, -3, -4},
	{0.5, -0.25, 8, 1},
	{1e-3, 2e3, -5, 0.1},
	{3, 4, 0, 7},
	{-0.70710677, 0.70710677, 0, 0.70710677},
	{1, -2, 3, -4},
}

// TestBackendParityVector pins every claimed implementation to the portable
// reference. In scalar builds the table entries are the reference functions
// and the test is vacuous; in accelerated builds it is the contract check.
func TestBackendParityVector(t *testing.T) {
	binary := []struct {
		name      string
		impl, ref func(Vector, Vector) Vector
	}{
		{"add", addImpl, addBase},
		{"sub", subImpl, subBase},
		{"mul", mulImpl, mulBase},
		{"min", minImpl, minBase},
		{"max", maxImpl, maxBase},
		{"dot", dotImpl, dotBase},
		{"dot3", dot3Impl, dot3Base},
		{"cross3", cross3Impl, cross3Base},
		{"reflect", reflectImpl, reflectBase},
	}
	for _, op := range binary {
		for _, a := range parityInputs {
			for _, b := range parityInputs {
				got, want := op.impl(a, b), op.ref(a, b)
				if !got.Equal(want) {
					t.Errorf("%s(%v, %v) = %v, reference %v", op.name, a, b, got, want)
				}
			}
		}
	}

	// Division skips zero lanes; NaN propagation is covered elsewhere.
	nonZero := parityInputs[1:3]
	for _, a := range parityInputs {
		for _, b := range nonZero {
			got, want := divImpl(a, b), divBase(a, b)
			if !got.Equal(want) {
				t.Errorf("div(%v, %v) = %v, reference %v", a, b, got, want)
			}
		}
	}

	unary := []struct {
		name      string
		impl, ref func(Vector) Vector
	}{
		{"neg", negImpl, negBase},
		{"lengthSqr", lengthSqrImpl, lengthSqrBase},
		{"length3Sqr", length3SqrImpl, length3SqrBase},
	}
	for _, op := range unary {
		for _, a := range parityInputs {
			got, want := op.impl(a), op.ref(a)
			if !got.Equal(want) {
				t.Errorf("%s(%v) = %v, reference %v", op.name, a, got, want)
			}
		}
	}

	// Length and normalize contracts cover lane 0 (plus preserved w for
	// normalize3); the remaining lanes are unspecified.
	nonDegenerate := parityInputs[1:]
	for _, a := range nonDegenerate {
		if got, want := lengthImpl(a)[0], lengthBase(a)[0]; !realEq(got, want, equalULPs) {
			t.Errorf("length(%v) = %v, reference %v", a, got, want)
		}
		if got, want := length3Impl(a)[0], length3Base(a)[0]; !realEq(got, want, equalULPs) {
			t.Errorf("length3(%v) = %v, reference %v", a, got, want)
		}
		if got, want := normalizeImpl(a), normalizeBase(a); !got.Equal(want) {
			t.Errorf("normalize(%v) = %v, reference %v", a, got, want)
		}
		if got, want := normalize3Impl(a), normalize3Base(a); !got.Equal(want) {
			t.Errorf("normalize3(%v) = %v, reference %v", a, got, want)
		}
	}

	for _, a := range parityInputs {
		for _, b := range parityInputs {
			for _, f := range []float32{0, 0.25, 1, 2, -0.5} {
				got, want := lerpImpl(a, b, f), lerpBase(a, b, f)
				if !got.Equal(want) {
					t.Errorf("lerp(%v, %v, %v) = %v, reference %v", a, b, f, got, want)
				}
			}
			got, want := scaleImpl(a, b[0]), scaleBase(a, b[0])
			if !got.Equal(want) {
				t.Errorf("scale(%v, %v) = %v, reference %v", a, b[0], got, want)
			}
		}
	}
}

func TestBackendParityQuaternion(t *testing.T) {
	for _, a := range parityInputs[1:] {
		q := Quaternion(a)
		if got, want := quatConjugateImpl(q), quatConjugateBase(q); !got.Equal(want) {
			t.Errorf("conjugate(%v) = %v, reference %v", q, got, want)
		}
		if got, want := quatInverseImpl(q), quatInverseBase(q); !got.Equal(want) {
			t.Errorf("inverse(%v) = %v, reference %v", q, got, want)
		}
		for _, b := range parityInputs[1:] {
			p := Quaternion(b)
			if got, want := quatMulImpl(q, p), quatMulBase(q, p); !got.Equal(want) {
				t.Errorf("mul(%v, %v) = %v, reference %v", q, p, got, want)
			}
			if got, want := quatRotateImpl(q, b), quatRotateBase(q, b); !got.Equal(want) {
				t.Errorf("rotate(%v, %v) = %v, reference %v", q, b, got, want)
			}
			if got, want := quatSlerpImpl(q, p, 0.5), quatSlerpBase(q, p, 0.5); !got.Equal(want) {
				t.Errorf("slerp(%v, %v) = %v, reference %v", q, p, got, want)
			}
		}
	}
}

func TestBackendParityMatrix(t *testing.T) {
	mats := []Matrix{
		MatrixIdentity(),
		testMatrix(),
		{
			{0.5, -1, 2, 0},
			{3, 0.25, -4, 1},
			{-2, 8, 0.125, 5},
			{10, 20, 30, 1},
		},
	}

	for _, a := range mats {
		if got, want := matTransposeImpl(a), matTransposeBase(a); !got.Equal(want) {
			t.Errorf("transpose parity: %v vs %v", got, want)
		}
		for _, b := range mats {
			if got, want := matMulImpl(a, b), matMulBase(a, b); !got.Equal(want) {
				t.Errorf("mul parity: %v vs %v", got, want)
			}
			if got, want := matAddImpl(a, b), matAddBase(a, b); !got.Equal(want) {
				t.Errorf("add parity: %v vs %v", got, want)
			}
			if got, want := matSubImpl(a, b), matSubBase(a, b); !got.Equal(want) {
				t.Errorf("sub parity: %v vs %v", got, want)
			}
		}
		for _, v := range parityInputs {
			if got, want := matRotateImpl(a, v), matRotateBase(a, v); !got.Equal(want) {
				t.Errorf("rotate parity: %v vs %v", got, want)
			}
			if got, want := matTransformImpl(a, v), matTransformBase(a, v); !got.Equal(want) {
				t.Errorf("transform parity: %v vs %v", got, want)
			}
		}
	}
}

var (
	benchVector     Vector
	benchQuaternion Quaternion
	benchMatrix     Matrix
)

func BenchmarkDot(b *testing.B) {
	v0 := New(1, 2, 3, 4)
	v1 := New(5, 6, 7, 8)
	for i := 0; i < b.N; i++ {
		benchVector = v0.Dot(v1)
	}
}

func BenchmarkNormalize(b *testing.B) {
	v := New(1, -2, 3, -4)
	for i := 0; i < b.N; i++ {
		benchVector = v.Normalize()
	}
}

func BenchmarkQuaternionMul(b *testing.B) {
	q0 := Quaternion(New(1, -2, 3, -4).Normalize())
	q1 := Quaternion(New(4, 3, -2, 1).Normalize())
	for i := 0; i < b.N; i++ {
		benchQuaternion = q0.Mul(q1)
	}
}

func BenchmarkQuaternionSlerp(b *testing.B) {
	q0 := QuaternionIdentity()
	q1 := Quaternion(New(1, -2, 3, -4).Normalize())
	for i := 0; i < b.N; i++ {
		benchQuaternion = q0.Slerp(q1, 0.5)
	}
}

func BenchmarkQuaternionRotate(b *testing.B) {
	q := Quaternion(New(1, -2, 3, -4).Normalize())
	v := New(5, 6, 7, 0)
	for i := 0; i < b.N; i++ {
		benchVector = q.Rotate(v)
	}
}

func BenchmarkMatrixMul(b *testing.B) {
	m := testMatrix()
	for i := 0; i < b.N; i++ {
		benchMatrix = m.Mul(m)
	}
}

func BenchmarkMatrixTransform(b *testing.B) {
	m := testMatrix()
	v := New(1, -2, 3, 1)
	for i := 0; i < b.N; i++ {
		benchVector = m.Transform(v)
	}
}
