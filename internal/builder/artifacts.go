package builder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// collectArtifacts copies everything matching the manifest's artifact
// patterns (relative to the project root) into destDir, preserving relative
// paths. Returns the number of files copied.
func (b *Builder) collectArtifacts(patterns []string, destDir string) (int, error) {
	fsys := os.DirFS(b.root)

	var files []string
	for _, pat := range patterns {
		matches, err := doublestar.Glob(fsys, filepath.ToSlash(pat), doublestar.WithFilesOnly())
		if err != nil {
			return 0, fmt.Errorf("bad artifact pattern %q: %w", pat, err)
		}
		files = append(files, matches...)
	}

	for _, rel := range files {
		src := filepath.Join(b.root, filepath.FromSlash(rel))
		dst := filepath.Join(destDir, filepath.FromSlash(rel))
		if err := copyFile(src, dst); err != nil {
			return 0, err
		}
	}

	return len(files), nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
