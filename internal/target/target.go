// Package target enumerates the supported build targets of the HUD rendering
// engine and the per-target toolchain settings handed to conan and cmake.
package target

import (
	"fmt"
	"runtime"
	"slices"
)

// Platform is one of the four deployment environments the engine ships on.
type Platform string

const (
	Windows Platform = "windows"
	Linux   Platform = "linux"
	Android Platform = "android"
	QNX     Platform = "qnx"
)

// Arch is a CPU architecture name in conan's spelling.
type Arch string

const (
	X86    Arch = "x86"
	X86_64 Arch = "x86_64"
	ARMv7  Arch = "armv7"
	ARMv8  Arch = "armv8"
)

// Platforms lists all buildable platforms in flag-help order.
func Platforms() []Platform {
	return []Platform{Windows, Linux, Android, QNX}
}

// Arches lists all supported architectures in flag-help order.
func Arches() []Arch {
	return []Arch{X86, X86_64, ARMv7, ARMv8}
}

// Detect maps the host operating system to a buildable platform. Cross-only
// platforms (android, qnx) are never detected; they must be requested
// explicitly.
func Detect() (Platform, error) {
	switch runtime.GOOS {
	case "windows":
		return Windows, nil
	case "linux":
		return Linux, nil
	case "darwin":
		return "", fmt.Errorf("macos is not a supported build platform, pass --platform explicitly")
	}
	return "", fmt.Errorf("unsupported host platform %q", runtime.GOOS)
}

// DefaultArch returns the architecture used when none is requested.
func (p Platform) DefaultArch() Arch {
	switch p {
	case Android:
		return ARMv8
	case QNX:
		return ARMv7
	default:
		return X86_64
	}
}

// ConanSettings holds the -s settings passed to `conan install` for one
// platform. The architecture is appended separately.
type ConanSettings struct {
	OS              string
	Compiler        string
	CompilerVersion string
	Cppstd          string
}

var conanSettings = map[Platform]ConanSettings{
	Windows: {OS: "Windows", Compiler: "msvc", CompilerVersion: "195", Cppstd: "17"},
	Linux:   {OS: "Linux", Compiler: "gcc", CompilerVersion: "11", Cppstd: "17"},
	Android: {OS: "Android", Compiler: "clang", CompilerVersion: "12", Cppstd: "17"},
	QNX:     {OS: "Neutrino", Compiler: "qcc", CompilerVersion: "5.4", Cppstd: "17"},
}

// Conan returns the conan settings table entry for the platform.
func (p Platform) Conan() ConanSettings {
	return conanSettings[p]
}

var supportedArches = map[Platform][]Arch{
	Windows: {X86, X86_64, ARMv8},
	Linux:   {X86, X86_64, ARMv7, ARMv8},
	Android: {X86, X86_64, ARMv7, ARMv8},
	QNX:     {X86, ARMv7, ARMv8},
}

// Validate reports whether arch is buildable on the platform.
func Validate(p Platform, a Arch) error {
	arches, ok := supportedArches[p]
	if !ok {
		return fmt.Errorf("unsupported platform: %s", p)
	}
	if !slices.Contains(arches, a) {
		return fmt.Errorf("unsupported %s architecture: %s", p, a)
	}
	return nil
}

var androidABIs = map[Arch]string{
	ARMv7:  "armeabi-v7a",
	ARMv8:  "arm64-v8a",
	X86:    "x86",
	X86_64: "x86_64",
}

// AndroidABI maps an architecture to the NDK ABI name.
func AndroidABI(a Arch) (string, error) {
	abi, ok := androidABIs[a]
	if !ok {
		return "", fmt.Errorf("unsupported Android architecture: %s", a)
	}
	return abi, nil
}

var qnxCPUs = map[Arch]string{
	X86:   "x86",
	ARMv7: "armv7",
	ARMv8: "aarch64le",
}

// QNXTargetCPU maps an architecture to the QNX_TARGET_CPU value.
func QNXTargetCPU(a Arch) (string, error) {
	cpu, ok := qnxCPUs[a]
	if !ok {
		return "", fmt.Errorf("unsupported QNX architecture: %s", a)
	}
	return cpu, nil
}
