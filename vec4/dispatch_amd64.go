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

//go:build amd64 && !goexperiment.simd

package vec4

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd no accelerated backend is compiled, so nothing
// claims operations and the level stays scalar. Feature queries still report
// what the hardware could do, for diagnostics (cmd/vec4info).

// HasSSE2 reports whether the CPU supports SSE2. Always true on amd64.
func HasSSE2() bool { return cpu.X86.HasSSE2 }

// HasAVX2 reports whether the CPU supports AVX2.
func HasAVX2() bool { return cpu.X86.HasAVX2 }

// HasAVX512 reports whether the CPU supports AVX-512 foundation.
func HasAVX512() bool { return cpu.X86.HasAVX512F }
