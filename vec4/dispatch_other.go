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

//go:build !amd64

package vec4

// Non-amd64 architectures use the portable path. There is no goat/NEON
// assembly pipeline in this repository, so arm64 is served by the reference
// implementations as well.

// HasSSE2 reports whether the CPU supports SSE2.
func HasSSE2() bool { return false }

// HasAVX2 reports whether the CPU supports AVX2.
func HasAVX2() bool { return false }

// HasAVX512 reports whether the CPU supports AVX-512.
func HasAVX512() bool { return false }
