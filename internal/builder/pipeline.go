package builder

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/hudengine/hudbuild/internal/target"
)

// Inputs carries everything a pipeline needs to produce its command lines.
type Inputs struct {
	ProjectRoot string
	ConanDir    string
	BuildType   string
	Arch        target.Arch
	Jobs        int

	// NDKHome and SDPHome are read from the environment by the orchestrator;
	// only the android and qnx pipelines look at them.
	NDKHome string
	SDPHome string

	// Manifest extras.
	Defines      map[string]string
	ConanArgs    []string
	ConanProfile string
}

// Pipeline produces the three external commands that build the engine for
// one target platform: dependency install, configure, compile.
type Pipeline interface {
	// InstallDeps returns the `conan install` command.
	InstallDeps(in Inputs) (Command, error)
	// Configure returns the `cmake -S ... -B ...` command.
	Configure(in Inputs) (Command, error)
	// Compile returns the `cmake --build ...` command.
	Compile(in Inputs) (Command, error)
	// BuildSubdir is the cmake binary dir relative to the project root.
	BuildSubdir() string
}

func newPipeline(p target.Platform) Pipeline {
	switch p {
	case target.Windows:
		return windowsPipeline{}
	case target.Linux:
		return linuxPipeline{}
	case target.Android:
		return androidPipeline{}
	case target.QNX:
		return qnxPipeline{}
	default:
		panic("newPipeline: unreachable")
	}
}

// conanInstall builds the platform's `conan install` command from the static
// settings table, plus any extras from the manifest.
func conanInstall(p target.Platform, in Inputs) Command {
	s := p.Conan()
	args := []string{
		"install", ".",
		"--output-folder", in.ConanDir,
		"--build", "missing",
		"-s", "os=" + s.OS,
		"-s", "arch=" + string(in.Arch),
		"-s", "compiler=" + s.Compiler,
		"-s", "compiler.version=" + s.CompilerVersion,
		"-s", "compiler.cppstd=" + s.Cppstd,
	}
	args = append(args, in.ConanArgs...)
	if in.ConanProfile != "" {
		args = append(args, "--profile:host", in.ConanProfile)
	}
	return Command{Name: "conan", Args: args, Dir: in.ProjectRoot}
}

// conanToolchain is the toolchain file conan generates under the output folder.
func conanToolchain(in Inputs) string {
	return filepath.Join(in.ConanDir, "build", "generators", "conan_toolchain.cmake")
}

// manifestDefines renders the manifest's extra cmake defines in stable order.
func manifestDefines(in Inputs) []string {
	if len(in.Defines) == 0 {
		return nil
	}
	keys := make([]string, 0, len(in.Defines))
	for k := range in.Defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	defs := make([]string, 0, len(keys))
	for _, k := range keys {
		defs = append(defs, fmt.Sprintf("-D%s=%s", k, in.Defines[k]))
	}
	return defs
}
