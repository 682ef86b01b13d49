package builder

import (
	"fmt"

	"github.com/hudengine/hudbuild/internal/target"
)

// windowsPipeline builds with the Visual Studio generator. The -A platform
// flag selects the MSVC target architecture.
type windowsPipeline struct{}

const vsGenerator = "Visual Studio 18 2026"

func (windowsPipeline) BuildSubdir() string { return "build" }

func (windowsPipeline) InstallDeps(in Inputs) (Command, error) {
	return conanInstall(target.Windows, in), nil
}

func (p windowsPipeline) Configure(in Inputs) (Command, error) {
	args := []string{
		"-S", ".",
		"-B", p.BuildSubdir(),
		"-G", vsGenerator,
		"-DCMAKE_TOOLCHAIN_FILE=" + conanToolchain(in),
		"-DCMAKE_PREFIX_PATH=" + in.ConanDir,
		"-DCMAKE_BUILD_TYPE=" + in.BuildType,
	}

	switch in.Arch {
	case target.X86:
		args = append(args, "-A", "Win32")
	case target.X86_64:
		args = append(args, "-A", "x64")
	case target.ARMv8:
		args = append(args, "-A", "ARM64")
	default:
		return Command{}, fmt.Errorf("unsupported Windows architecture: %s", in.Arch)
	}

	args = append(args, manifestDefines(in)...)
	return Command{Name: "cmake", Args: args, Dir: in.ProjectRoot}, nil
}

// Compile uses --config instead of -j: multi-config generators pick the
// configuration at build time and msbuild handles its own parallelism.
func (p windowsPipeline) Compile(in Inputs) (Command, error) {
	return Command{
		Name: "cmake",
		Args: []string{"--build", p.BuildSubdir(), "--config", in.BuildType},
		Dir:  in.ProjectRoot,
	}, nil
}
