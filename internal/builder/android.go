package builder

import (
	"path/filepath"

	"github.com/hudengine/hudbuild/internal/target"
)

// androidPipeline cross-compiles against the NDK. The NDK's own cmake
// toolchain file selects the clang toolchain for the requested ABI.
type androidPipeline struct{}

const androidPlatformLevel = "android-24"

func (androidPipeline) BuildSubdir() string { return filepath.Join("build", "android") }

func (androidPipeline) InstallDeps(in Inputs) (Command, error) {
	if _, err := target.AndroidABI(in.Arch); err != nil {
		return Command{}, err
	}
	return conanInstall(target.Android, in), nil
}

func (p androidPipeline) Configure(in Inputs) (Command, error) {
	abi, err := target.AndroidABI(in.Arch)
	if err != nil {
		return Command{}, err
	}

	args := []string{
		"-S", ".",
		"-B", p.BuildSubdir(),
		"-DCMAKE_TOOLCHAIN_FILE=" + filepath.Join(in.NDKHome, "build", "cmake", "android.toolchain.cmake"),
		"-DANDROID_ABI=" + abi,
		"-DANDROID_PLATFORM=" + androidPlatformLevel,
		"-DCMAKE_BUILD_TYPE=" + in.BuildType,
		"-DHUD_ENGINE_PLATFORM_ANDROID=ON",
		"-DHUD_ENGINE_USE_EGL=ON",
		"-DCMAKE_PREFIX_PATH=" + in.ConanDir,
		// Last toolchain file wins; conan's must come after the NDK's so
		// dependency lookup still goes through the conan generators.
		"-DCMAKE_TOOLCHAIN_FILE=" + conanToolchain(in),
	}

	args = append(args, manifestDefines(in)...)
	return Command{Name: "cmake", Args: args, Dir: in.ProjectRoot}, nil
}

func (p androidPipeline) Compile(in Inputs) (Command, error) {
	return Command{
		Name: "cmake",
		Args: []string{"--build", p.BuildSubdir(), "-j", "4"},
		Dir:  in.ProjectRoot,
	}, nil
}
