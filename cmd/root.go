// hudbuild [path], hudbuild build [path]
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hudengine/hudbuild/internal/builder"
	"github.com/hudengine/hudbuild/internal/msg"
	"github.com/hudengine/hudbuild/internal/prereq"
	"github.com/hudengine/hudbuild/internal/profiles"
	"github.com/hudengine/hudbuild/internal/target"
)

var (
	flagPlatform EnumValue = NewEnumValue("", map[string]string{
		"windows": "Build for Windows (MSVC)",
		"linux":   "Build for Linux (gcc)",
		"android": "Cross-build for Android (NDK clang)",
		"qnx":     "Cross-build for QNX Neutrino (qcc)",
	})
	flagArch EnumValue = NewEnumValue("", map[string]string{
		"x86":    "32-bit x86",
		"x86_64": "64-bit x86",
		"armv7":  "32-bit ARM",
		"armv8":  "64-bit ARM",
	})
	flagBuildType EnumValue = NewEnumValue("Release", map[string]string{
		"Debug":          "No optimization, debug info",
		"Release":        "Full optimization",
		"RelWithDebInfo": "Full optimization with debug info",
	})
	flagVerbose      bool
	flagClean        bool
	flagJobs         int
	flagConanProfile string
)

// resolvePlatform returns the requested platform, falling back to host
// detection.
func resolvePlatform() target.Platform {
	if v := flagPlatform.Value(); v != "" {
		return target.Platform(v)
	}
	p, err := target.Detect()
	if err != nil {
		msg.Fatal("%v", err)
	}
	return p
}

func doBuild(cmd *cobra.Command, args []string) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	platform := resolvePlatform()
	if err := prereq.Check(cmd.Context(), platform); err != nil {
		msg.Fatal("%v", err)
	}

	var profilePath string
	if flagConanProfile != "" {
		var err error
		profilePath, err = profiles.Resolve(flagConanProfile)
		if err != nil {
			msg.Fatal("%v", err)
		}
	}

	// Only pass the build type through when given, so the manifest default
	// can take effect.
	buildType := ""
	if cmd.Flags().Changed("build-type") {
		buildType = flagBuildType.Value()
	}

	b, err := builder.New(dir, builder.ExecRunner{})
	if err != nil {
		msg.Fatal("%v", err)
	}
	err = b.Build(builder.Options{
		Platform:     platform,
		Arch:         target.Arch(flagArch.Value()),
		BuildType:    buildType,
		Verbose:      flagVerbose,
		Clean:        flagClean,
		Jobs:         flagJobs,
		ConanProfile: profilePath,
	})
	if err != nil {
		msg.Fatal("%v", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hudbuild [project path]",
	Short: "Cross-platform build orchestrator for the HUD rendering engine",
	Long: `Cross-platform build orchestrator for the HUD rendering engine.
Installs dependencies with conan and configures and compiles with cmake for
windows, linux, android and qnx targets.`,
	Args: cobra.MaximumNArgs(1),
	Run:  doBuild,
}

var buildCmd = &cobra.Command{
	Use:   "build [project path]",
	Short: "Build the engine",
	Long:  `Build the engine. If no project path is given, uses "."`,
	Args:  cobra.MaximumNArgs(1),
	Run:   doBuild,
}

func init() {
	addBuildFlags(rootCmd)

	// hudbuild build subcommand
	rootCmd.AddCommand(buildCmd)
	addBuildFlags(buildCmd)
}

func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().Var(&flagPlatform, "platform", "Target platform, one of "+flagPlatform.HelpString()+" (default: auto-detect)")
	cmd.RegisterFlagCompletionFunc("platform", flagPlatform.CompletionFunc())
}

func addBuildFlags(cmd *cobra.Command) {
	addTargetFlags(cmd)
	cmd.Flags().Var(&flagArch, "arch", "Target architecture, one of "+flagArch.HelpString()+" (default: per-platform)")
	cmd.RegisterFlagCompletionFunc("arch", flagArch.CompletionFunc())
	cmd.Flags().Var(&flagBuildType, "build-type", "Build type, one of "+flagBuildType.HelpString())
	cmd.RegisterFlagCompletionFunc("build-type", flagBuildType.CompletionFunc())
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Pass --verbose to conan and cmake")
	cmd.Flags().BoolVar(&flagClean, "clean", false, "Remove build and conan directories first")
	cmd.Flags().IntVarP(&flagJobs, "jobs", "j", 0, "Parallel compile jobs for single-config generators (default: CPU count)")
	cmd.Flags().StringVar(&flagConanProfile, "conan-profile", "", "Use a cached conan profile preset (see `hudbuild profiles`)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
