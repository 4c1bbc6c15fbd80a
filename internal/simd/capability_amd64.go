//go:build amd64

package simd

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

func detectFeatures() {
	hasAVX = cpu.X86.HasAVX
	hasAVX2 = cpu.X86.HasAVX && cpu.X86.HasAVX2
	// x/sys/cpu does not expose the ERMS leaf.
	hasERMS = cpuid.CPU.Supports(cpuid.ERMS)
}
