package builder

import (
	"path/filepath"

	"github.com/hudengine/hudbuild/internal/target"
)

// qnxPipeline cross-compiles against the QNX SDP with the qcc toolchain.
type qnxPipeline struct{}

func (qnxPipeline) BuildSubdir() string { return filepath.Join("build", "qnx") }

func (qnxPipeline) InstallDeps(in Inputs) (Command, error) {
	if _, err := target.QNXTargetCPU(in.Arch); err != nil {
		return Command{}, err
	}
	return conanInstall(target.QNX, in), nil
}

func (p qnxPipeline) Configure(in Inputs) (Command, error) {
	cpu, err := target.QNXTargetCPU(in.Arch)
	if err != nil {
		return Command{}, err
	}

	args := []string{
		"-S", ".",
		"-B", p.BuildSubdir(),
		"-DCMAKE_TOOLCHAIN_FILE=" + filepath.Join(in.SDPHome, "qnx710", "cmake", "toolchain.cmake"),
		"-DCMAKE_BUILD_TYPE=" + in.BuildType,
		"-DHUD_ENGINE_PLATFORM_QNX=ON",
		"-DHUD_ENGINE_USE_EGL=ON",
		"-DCMAKE_PREFIX_PATH=" + in.ConanDir,
		"-DCMAKE_TOOLCHAIN_FILE=" + conanToolchain(in),
		"-DQNX_TARGET_CPU=" + cpu,
	}

	args = append(args, manifestDefines(in)...)
	return Command{Name: "cmake", Args: args, Dir: in.ProjectRoot}, nil
}

func (p qnxPipeline) Compile(in Inputs) (Command, error) {
	return Command{
		Name: "cmake",
		Args: []string{"--build", p.BuildSubdir(), "-j", "4"},
		Dir:  in.ProjectRoot,
	}, nil
}
