package builder

import (
	"strconv"

	"github.com/hudengine/hudbuild/internal/target"
)

// linuxPipeline builds with the default Makefiles generator, natively or
// cross-compiling via a checked-in cmake toolchain file.
type linuxPipeline struct{}

func (linuxPipeline) BuildSubdir() string { return "build" }

func (linuxPipeline) InstallDeps(in Inputs) (Command, error) {
	return conanInstall(target.Linux, in), nil
}

func (p linuxPipeline) Configure(in Inputs) (Command, error) {
	args := []string{
		"-S", ".",
		"-B", p.BuildSubdir(),
		"-DCMAKE_BUILD_TYPE=" + in.BuildType,
		"-DCMAKE_PREFIX_PATH=" + in.ConanDir,
		"-DCMAKE_TOOLCHAIN_FILE=" + conanToolchain(in),
	}

	// Cross builds override the conan toolchain file with the target one;
	// cmake takes the last -DCMAKE_TOOLCHAIN_FILE it sees.
	switch in.Arch {
	case target.X86:
		args = append(args, "-DCMAKE_C_FLAGS=-m32", "-DCMAKE_CXX_FLAGS=-m32")
	case target.ARMv7:
		args = append(args, "-DCMAKE_TOOLCHAIN_FILE=cmake/arm-linux-gnueabihf.cmake")
	case target.ARMv8:
		args = append(args, "-DCMAKE_TOOLCHAIN_FILE=cmake/aarch64-linux-gnu.cmake")
	}

	args = append(args, manifestDefines(in)...)
	return Command{Name: "cmake", Args: args, Dir: in.ProjectRoot}, nil
}

func (p linuxPipeline) Compile(in Inputs) (Command, error) {
	return Command{
		Name: "cmake",
		Args: []string{"--build", p.BuildSubdir(), "-j", strconv.Itoa(in.Jobs)},
		Dir:  in.ProjectRoot,
	}, nil
}
