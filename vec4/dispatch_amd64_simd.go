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

func init() {
	if NoSimdEnv() {
		return
	}
	if archsimd.X86.AVX2() {
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	} else {
		// SSE2 is baseline for amd64; the 128-bit backend is always usable.
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}

// HasSSE2 reports whether the CPU supports SSE2. Always true on amd64.
func HasSSE2() bool { return true }

// HasAVX2 reports whether the CPU supports AVX2.
func HasAVX2() bool { return archsimd.X86.AVX2() }

// HasAVX512 reports whether the CPU supports AVX-512.
func HasAVX512() bool { return archsimd.X86.AVX512() }
