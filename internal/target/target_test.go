package target

import "testing"

func TestDefaultArch(t *testing.T) {
	tests := []struct {
		platform Platform
		want     Arch
	}{
		{Windows, X86_64},
		{Linux, X86_64},
		{Android, ARMv8},
		{QNX, ARMv7},
	}
	for _, tt := range tests {
		if got := tt.platform.DefaultArch(); got != tt.want {
			t.Errorf("%s: default arch = %s, want %s", tt.platform, got, tt.want)
		}
	}
}

func TestConanSettingsTable(t *testing.T) {
	tests := []struct {
		platform Platform
		want     ConanSettings
	}{
		{Windows, ConanSettings{OS: "Windows", Compiler: "msvc", CompilerVersion: "195", Cppstd: "17"}},
		{Linux, ConanSettings{OS: "Linux", Compiler: "gcc", CompilerVersion: "11", Cppstd: "17"}},
		{Android, ConanSettings{OS: "Android", Compiler: "clang", CompilerVersion: "12", Cppstd: "17"}},
		{QNX, ConanSettings{OS: "Neutrino", Compiler: "qcc", CompilerVersion: "5.4", Cppstd: "17"}},
	}
	for _, tt := range tests {
		if got := tt.platform.Conan(); got != tt.want {
			t.Errorf("%s: conan settings = %+v, want %+v", tt.platform, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := []struct {
		platform Platform
		arch     Arch
	}{
		{Windows, X86}, {Windows, X86_64}, {Windows, ARMv8},
		{Linux, X86}, {Linux, X86_64}, {Linux, ARMv7}, {Linux, ARMv8},
		{Android, X86}, {Android, X86_64}, {Android, ARMv7}, {Android, ARMv8},
		{QNX, X86}, {QNX, ARMv7}, {QNX, ARMv8},
	}
	for _, tt := range valid {
		if err := Validate(tt.platform, tt.arch); err != nil {
			t.Errorf("%s/%s should be valid: %v", tt.platform, tt.arch, err)
		}
	}

	invalid := []struct {
		platform Platform
		arch     Arch
	}{
		{Windows, ARMv7},
		{QNX, X86_64},
		{Platform("freebsd"), X86_64},
	}
	for _, tt := range invalid {
		if err := Validate(tt.platform, tt.arch); err == nil {
			t.Errorf("%s/%s should be rejected", tt.platform, tt.arch)
		}
	}
}

func TestAndroidABI(t *testing.T) {
	tests := []struct {
		arch Arch
		want string
	}{
		{ARMv7, "armeabi-v7a"},
		{ARMv8, "arm64-v8a"},
		{X86, "x86"},
		{X86_64, "x86_64"},
	}
	for _, tt := range tests {
		got, err := AndroidABI(tt.arch)
		if err != nil {
			t.Errorf("%s: %v", tt.arch, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: abi = %s, want %s", tt.arch, got, tt.want)
		}
	}

	if _, err := AndroidABI(Arch("mips")); err == nil {
		t.Error("expected error for unknown arch")
	}
}

func TestQNXTargetCPU(t *testing.T) {
	tests := []struct {
		arch Arch
		want string
	}{
		{X86, "x86"},
		{ARMv7, "armv7"},
		{ARMv8, "aarch64le"},
	}
	for _, tt := range tests {
		got, err := QNXTargetCPU(tt.arch)
		if err != nil {
			t.Errorf("%s: %v", tt.arch, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: cpu = %s, want %s", tt.arch, got, tt.want)
		}
	}

	if _, err := QNXTargetCPU(X86_64); err == nil {
		t.Error("expected error for x86_64")
	}
}
