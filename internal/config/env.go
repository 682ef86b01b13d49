package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Env is the environment visible to manifest expressions. Its exported
// methods double as functions callable from expression scripts.
type Env struct {
	Platform  string            `expr:"platform"`
	Arch      string            `expr:"arch"`
	BuildType string            `expr:"build_type"`
	Environ   map[string]string `expr:"environ"`
	basedir   string
}

// Patch applies a diff-match-patch text patch to a file under the project
// root. Returns false when no hunk applied (nothing written). Used by prepare
// scripts that need to touch up generated toolchain files.
func (env Env) Patch(path, patchText string) bool {
	fullPath := filepath.Join(env.basedir, path)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		panic(err)
	}
	origText := string(data)

	dmp := diffmatchpatch.New()
	patches, err := dmp.PatchFromText(patchText)
	if err != nil {
		panic(err)
	}
	patchedText, results := dmp.PatchApply(patches, origText)
	for _, ok := range results {
		if ok {
			goto applied
		}
	}
	return false // nothing was applied, nothing to write

applied:
	err = os.WriteFile(fullPath, []byte(patchedText), 0644)
	if err != nil {
		panic(err)
	}

	return true
}

// ReadFile reads a file under the project root for use in an expression.
func (env Env) ReadFile(path string) (string, error) {
	fullPath := filepath.Join(env.basedir, path)
	_, err := filepath.Rel(env.basedir, fullPath)
	if err != nil {
		panic(fmt.Sprintf("path %q is outside of project directory %q", path, env.basedir))
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		panic(err)
	}

	return string(data), nil
}
