package simd

import (
	"os"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents pure Go implementation (no SIMD).
	Generic ISA = iota
	// AVX represents x86-64 AVX (256-bit aligned moves).
	AVX
	// AVX2 represents x86-64 AVX2 (adds 256-bit streaming loads).
	AVX2
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case AVX:
		return "avx"
	case AVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "avx":
		return AVX, true
	case "avx2":
		return AVX2, true
	default:
		return Generic, false
	}
}

// OverrideEnv names the environment variable that caps the active ISA.
const OverrideEnv = "MEMCOPY_SIMD"

// Package-level state, resolved during variable initialization so it is
// ready before any init function selects kernels.
var (
	// CPU feature flags (set by platform-specific detectFeatures)
	hasAVX  bool // x86-64 AVX
	hasAVX2 bool // x86-64 AVX2
	hasERMS bool // x86-64 enhanced REP MOVSB/STOSB

	// hasOverride is true if MEMCOPY_SIMD was set to a valid, available ISA.
	hasOverride bool

	// activeISA is the selected SIMD implementation.
	activeISA = initCapabilities()
)

func initCapabilities() ISA {
	detectFeatures()

	if override := os.Getenv(OverrideEnv); override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			hasOverride = true
			return isa
		}
		// Invalid or unavailable override - fall through to auto-detection
	}

	return selectBestISA()
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case AVX:
		return asmEnabled && hasAVX
	case AVX2:
		return asmEnabled && hasAVX2
	default:
		return false
	}
}

// selectBestISA chooses the optimal ISA for the current platform.
func selectBestISA() ISA {
	if isISAAvailable(AVX2) {
		return AVX2
	}
	if isISAAvailable(AVX) {
		return AVX
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if MEMCOPY_SIMD selected the active ISA.
func IsOverridden() bool {
	return hasOverride
}

// HasAVX returns true if x86-64 AVX is available.
func HasAVX() bool {
	return hasAVX
}

// HasAVX2 returns true if x86-64 AVX2 is available.
func HasAVX2() bool {
	return hasAVX2
}

// HasERMS returns true if the CPU advertises enhanced REP MOVSB.
func HasERMS() bool {
	return hasERMS
}

// Topology describes the cache hierarchy and core counts of the host CPU.
// Cache sizes are in bytes; -1 means unknown.
type Topology struct {
	Brand         string
	CacheLine     int
	L1D           int
	L2            int
	L3            int
	PhysicalCores int
	LogicalCores  int
}

// CPUTopology reports the host cache topology. A missing cache line size
// defaults to 64 bytes.
func CPUTopology() Topology {
	t := Topology{
		Brand:         cpuid.CPU.BrandName,
		CacheLine:     cpuid.CPU.CacheLine,
		L1D:           cpuid.CPU.Cache.L1D,
		L2:            cpuid.CPU.Cache.L2,
		L3:            cpuid.CPU.Cache.L3,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
	}
	if t.CacheLine <= 0 {
		t.CacheLine = 64
	}
	return t
}
