// Package profiles manages a local cache of shared conan profile presets,
// kept as a shallow git checkout under the user cache directory.
package profiles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"

	"github.com/hudengine/hudbuild/internal/msg"
)

const (
	presetRepoURL = "https://github.com/hudengine/conan-profiles.git"
	presetBranch  = "main"

	// presetExt marks preset files inside the checkout.
	presetExt = ".profile"
)

// Dir returns the preset cache directory.
// On windows: %LocalAppData%/hudbuild/profiles
// On linux: ~/.cache/hudbuild/profiles
func Dir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "hudbuild", "profiles"), nil
}

// Update clones the preset repository into the cache, or pulls when a
// checkout already exists.
func Update() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if _, err := os.Stat(filepath.Join(dir, ".git")); os.IsNotExist(err) {
		fmt.Printf("  %s conan profile presets\n", color.HiGreenString("Fetching"))
		_, err := git.PlainClone(dir, &git.CloneOptions{
			URL:           presetRepoURL,
			ReferenceName: plumbing.NewBranchReferenceName(presetBranch),
			SingleBranch:  true,
			Depth:         1,
			Progress:      &msg.IndentWriter{Indent: "    ", W: os.Stdout},
		})
		return err
	}

	repo, err := git.PlainOpen(dir)
	if err != nil {
		return err
	}
	w, err := repo.Worktree()
	if err != nil {
		return err
	}
	err = w.Pull(&git.PullOptions{
		RemoteName:    "origin",
		ReferenceName: plumbing.NewBranchReferenceName(presetBranch),
		SingleBranch:  true,
		Depth:         1,
		Progress:      msg.NewProgressBar(0, 4, os.Stdout),
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return err
	}
	return nil
}

// List returns the preset names available in the cache, without extension,
// sorted.
func List() ([]string, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return listIn(dir)
}

func listIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), presetExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), presetExt))
	}
	sort.Strings(names)
	return names, nil
}

// Resolve returns the on-disk path of a named preset. The name may be given
// with or without the extension.
func Resolve(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return resolveIn(dir, name)
}

func resolveIn(dir, name string) (string, error) {
	if !strings.HasSuffix(name, presetExt) {
		name += presetExt
	}
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no such profile preset %q (run `hudbuild profiles update` first)", strings.TrimSuffix(name, presetExt))
		}
		return "", err
	}
	return path, nil
}
