// Package prereq validates that the external collaborators (conan, cmake)
// and per-platform SDKs are available before a build is attempted.
package prereq

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hudengine/hudbuild/internal/msg"
	"github.com/hudengine/hudbuild/internal/target"
)

// toolOutput runs a version probe and returns its stdout. Replaced in tests.
var toolOutput = func(ctx context.Context, name string, arg ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, arg...).Output()
}

func conanVersion(ctx context.Context) (string, error) {
	out, err := toolOutput(ctx, "conan", "--version")
	if err != nil {
		return "", fmt.Errorf("conan not installed or not in PATH")
	}
	return strings.TrimSpace(string(out)), nil
}

func cmakeVersion(ctx context.Context) (string, error) {
	out, err := toolOutput(ctx, "cmake", "--version")
	if err != nil {
		return "", fmt.Errorf("cmake not installed or not in PATH")
	}
	// First line reads "cmake version X.Y.Z".
	fields := strings.Fields(strings.SplitN(string(out), "\n", 2)[0])
	if len(fields) < 3 {
		return "", fmt.Errorf("unexpected cmake version output: %q", strings.TrimSpace(string(out)))
	}
	return fields[2], nil
}

// envDir resolves an environment variable that must point to an existing
// directory.
func envDir(name string) (string, error) {
	path := os.Getenv(name)
	if path == "" {
		return "", fmt.Errorf("%s environment variable is not set", name)
	}
	stat, err := os.Stat(path)
	if err != nil || !stat.IsDir() {
		return "", fmt.Errorf("%s path does not exist: %s", name, path)
	}
	return path, nil
}

// Check verifies that conan and cmake respond to version probes and that the
// platform's SDK prerequisites are met. The two tool probes run concurrently.
func Check(ctx context.Context, p target.Platform) error {
	msg.Info("checking build prerequisites")

	var conanVer, cmakeVer string
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		conanVer, err = conanVersion(ctx)
		return err
	})
	eg.Go(func() (err error) {
		cmakeVer, err = cmakeVersion(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	msg.Info("conan version: %s", conanVer)
	msg.Info("cmake version: %s", cmakeVer)

	switch p {
	case target.Android:
		ndk, err := envDir("ANDROID_NDK_HOME")
		if err != nil {
			return err
		}
		msg.Info("Android NDK path: %s", ndk)
	case target.QNX:
		sdp, err := envDir("QNX_SDP_HOME")
		if err != nil {
			return err
		}
		msg.Info("QNX SDP path: %s", sdp)
	case target.Windows:
		// CMake can still locate a toolset on its own, so a missing setup
		// instance only warns.
		if name, err := findVisualStudio(); err != nil {
			msg.Warn("no Visual Studio installation found: %v", err)
		} else {
			msg.Info("Visual Studio: %s", name)
		}
	}

	msg.Info("prerequisites check completed")
	return nil
}
