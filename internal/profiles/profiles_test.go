package profiles

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writePreset(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("[settings]\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestListIn(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "imx8-qnx.profile")
	writePreset(t, dir, "aurix-linux.profile")
	writePreset(t, dir, "README.md") // not a preset
	if err := os.Mkdir(filepath.Join(dir, "old.profile"), 0755); err != nil {
		t.Fatal(err)
	}

	names, err := listIn(dir)
	if err != nil {
		t.Fatalf("listIn failed: %v", err)
	}

	want := []string{"aurix-linux", "imx8-qnx"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("wrong preset list:\n got %q\nwant %q", names, want)
	}
}

func TestListInMissingCache(t *testing.T) {
	names, err := listIn(filepath.Join(t.TempDir(), "never-updated"))
	if err != nil {
		t.Fatalf("missing cache should not be an error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected empty list, got %q", names)
	}
}

func TestResolveIn(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "imx8-qnx.profile")

	tests := []struct {
		name string
	}{
		{"imx8-qnx"},
		{"imx8-qnx.profile"}, // extension is optional
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := resolveIn(dir, tt.name)
			if err != nil {
				t.Fatalf("resolveIn failed: %v", err)
			}
			if want := filepath.Join(dir, "imx8-qnx.profile"); path != want {
				t.Errorf("wrong path:\n got %q\nwant %q", path, want)
			}
		})
	}
}

func TestResolveInUnknown(t *testing.T) {
	_, err := resolveIn(t.TempDir(), "no-such-board")
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestDirUnderUserCache(t *testing.T) {
	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}
	if filepath.Base(dir) != "profiles" || filepath.Base(filepath.Dir(dir)) != "hudbuild" {
		t.Errorf("unexpected cache location: %q", dir)
	}
}
