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

// Command vec4info prints which vec4 backend a build selects and the CPU
// features the selection is based on.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-vec4/vec4"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("vec4 dispatch level: %s\n", vec4.CurrentLevel())
	fmt.Printf("vec4 dispatch width: %d bytes\n", vec4.CurrentWidth())
	fmt.Printf("vec4 VEC4_NO_SIMD: %v\n", vec4.NoSimdEnv())
	fmt.Println()

	fmt.Printf("vec4 HasSSE2:   %v\n", vec4.HasSSE2())
	fmt.Printf("vec4 HasAVX2:   %v\n", vec4.HasAVX2())
	fmt.Printf("vec4 HasAVX512: %v\n", vec4.HasAVX512())
	fmt.Println()

	switch runtime.GOARCH {
	case "amd64":
		printAMD64Features()
	case "arm64":
		printARM64Features()
	}
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE3:    %v\n", cpu.X86.HasSSE3)
	fmt.Printf("  HasSSE41:   %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasSSE42:   %v\n", cpu.X86.HasSSE42)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD: %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:    %v\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasSVE:   %v\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:  %v\n", cpu.ARM64.HasSVE2)
}
