// Package builder orchestrates the engine build: it derives the conan and
// cmake command lines for the requested target and runs them in order, with
// the project root as working directory.
package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/hudengine/hudbuild/internal/config"
	"github.com/hudengine/hudbuild/internal/msg"
	"github.com/hudengine/hudbuild/internal/target"
)

// Options selects what to build.
type Options struct {
	Platform     target.Platform
	Arch         target.Arch // empty: platform default
	BuildType    string      // empty: manifest default, then Release
	Verbose      bool        // append --verbose to every external command
	Clean        bool        // remove build/ and conan/ first
	Jobs         int         // 0: NumCPU
	ConanProfile string      // resolved conan profile preset path, optional
}

type Builder struct {
	root   string
	runner Runner
}

// New returns a Builder rooted at the project directory.
func New(root string, runner Runner) (*Builder, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return &Builder{root: root, runner: runner}, nil
}

// BuildDir is the build output directory for the project root.
func (b *Builder) BuildDir() string { return filepath.Join(b.root, "build") }

// ConanDir is the conan output folder for the project root.
func (b *Builder) ConanDir() string { return filepath.Join(b.root, "conan") }

// Clean removes the build and conan directories.
func (b *Builder) Clean() error {
	for _, dir := range []string{b.BuildDir(), b.ConanDir()} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
		msg.Info("cleaned %s", dir)
	}
	return nil
}

// Build runs the full sequence for one target: manifest resolution, prepare
// script, dependency install, configure, compile, artifact collection, build
// record.
func (b *Builder) Build(opts Options) error {
	if opts.Arch == "" {
		opts.Arch = opts.Platform.DefaultArch()
	}
	if err := target.Validate(opts.Platform, opts.Arch); err != nil {
		return err
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}

	// The manifest is resolved against the final platform/arch pair, so
	// conditional sections see what is actually being built. When no build
	// type was requested the expressions see "Release"; a [build] type
	// override from the manifest itself wins afterwards.
	envBuildType := opts.BuildType
	if envBuildType == "" {
		envBuildType = "Release"
	}
	env := config.NewEnv(b.root, opts.Platform, opts.Arch, envBuildType)
	cfg, err := config.Load(b.root, env)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	if opts.BuildType == "" {
		opts.BuildType = cfg.Build.Type
		if opts.BuildType == "" {
			opts.BuildType = "Release"
		}
	}

	msg.Info("target platform: %s", opts.Platform)
	msg.Info("target architecture: %s", opts.Arch)
	msg.Info("build type: %s", opts.BuildType)
	msg.Info("build directory: %s", b.BuildDir())
	msg.Info("conan directory: %s", b.ConanDir())

	if opts.Clean {
		if err := b.Clean(); err != nil {
			return err
		}
	}

	pipe := newPipeline(opts.Platform)
	if err := os.MkdirAll(filepath.Join(b.root, pipe.BuildSubdir()), 0755); err != nil {
		return err
	}
	if err := os.MkdirAll(b.ConanDir(), 0755); err != nil {
		return err
	}

	if err := cfg.RunPrepareScript(env); err != nil {
		return err
	}

	in := Inputs{
		ProjectRoot:  b.root,
		ConanDir:     b.ConanDir(),
		BuildType:    opts.BuildType,
		Arch:         opts.Arch,
		Jobs:         opts.Jobs,
		NDKHome:      os.Getenv("ANDROID_NDK_HOME"),
		SDPHome:      os.Getenv("QNX_SDP_HOME"),
		Defines:      cfg.Build.Defines,
		ConanArgs:    cfg.Build.ConanArgs,
		ConanProfile: opts.ConanProfile,
	}

	record := newBuildRecord(opts)

	steps := []struct {
		verb string
		what string
		cmd  func(Inputs) (Command, error)
	}{
		{"Installing", "dependencies (conan)", pipe.InstallDeps},
		{"Configuring", "project (cmake)", pipe.Configure},
		{"Compiling", "project (cmake)", pipe.Compile},
	}

	for _, step := range steps {
		cmd, err := step.cmd(in)
		if err != nil {
			return err
		}
		if opts.Verbose {
			cmd.Args = append(cmd.Args, "--verbose")
		}

		msg.Step(step.verb, "%s", step.what)
		record.Commands = append(record.Commands, cmd.Argv())
		if err := b.runner.Run(cmd); err != nil {
			return fmt.Errorf("%s %s: %w", cmd.Name, cmd.Args[0], err)
		}
	}

	if len(cfg.Artifacts.Paths) > 0 {
		destDir := filepath.Join(b.root, "dist", fmt.Sprintf("%s-%s", opts.Platform, opts.Arch))
		n, err := b.collectArtifacts(cfg.Artifacts.Paths, destDir)
		if err != nil {
			return fmt.Errorf("failed to collect artifacts: %w", err)
		}
		msg.Step("Collected", "%d artifact(s) into %s", n, destDir)
	}

	record.FinishedAt = time.Now()
	if err := record.save(b.BuildDir()); err != nil {
		msg.Warn("failed to save build record: %v", err)
	}

	msg.Info("build completed successfully")
	return nil
}
