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

import "os"

// DispatchLevel identifies which backend tier claimed operations at package
// initialization.
type DispatchLevel int

const (
	// DispatchScalar means every operation uses the portable reference path.
	DispatchScalar DispatchLevel = iota
	// DispatchSSE2 means the 128-bit archsimd backend claimed its subset.
	DispatchSSE2
	// DispatchAVX2 means the 256-bit matrix kernels claimed their subset in
	// addition to the 128-bit ones.
	DispatchAVX2
)

func (l DispatchLevel) String() string {
	switch l {
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	default:
		return "scalar"
	}
}

// Backend selection state, written once during package initialization by the
// dispatch_*.go init functions and read-only afterwards.
var (
	currentLevel = DispatchScalar
	currentWidth = 16
	currentName  = "scalar"
)

// CurrentLevel returns the backend tier active for this process.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes used by the widest
// claimed operations.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the human-readable name of the active backend.
func CurrentName() string {
	return currentName
}

// NoSimdEnv reports whether VEC4_NO_SIMD requests the portable path. Claims
// are skipped entirely when it is set, which is the supported way to test the
// reference implementations on hardware that would otherwise accelerate them.
func NoSimdEnv() bool {
	switch os.Getenv("VEC4_NO_SIMD") {
	case "1", "true", "yes":
		return true
	}
	return false
}
