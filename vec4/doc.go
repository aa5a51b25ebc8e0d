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

// Package vec4 provides 4-component float32 vector, quaternion and 4x4 matrix
// math with interchangeable backends.
//
// Every operation is a pure function of its by-value arguments: no shared
// state, no allocation, safe to call from any number of goroutines. All three
// types are plain fixed-size values (16 or 64 bytes).
//
// # Backends
//
// A portable scalar implementation defines the full operation catalogue. On
// amd64 with GOEXPERIMENT=simd, accelerated backends claim a subset of the
// catalogue at package initialization:
//
//   - a 128-bit backend (simd/archsimd Float32x4) claims the lanewise vector
//     arithmetic, the dot/length/normalize family, quaternion conjugate and
//     inverse, and the matrix multiply/transform kernels
//   - a 256-bit backend (Float32x8, AVX2 only) claims matrix add and sub
//
// Operations not claimed by a backend keep the portable implementation, so
// every operation has exactly one definition regardless of which subset a
// build accelerates. Set VEC4_NO_SIMD=1 to force the portable path.
//
// # Numeric contract
//
// Division-based operations are not guarded: dividing by a zero-length vector
// or inverting a zero quaternion propagates IEEE-754 infinities and NaNs.
// Precondition violations (out-of-range component index, misaligned input to
// an aligned constructor) panic; they are programmer errors, not recoverable
// conditions.
package vec4
