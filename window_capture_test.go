package logo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNextCapturePath(t *testing.T) {
	dir := t.TempDir()

	path, err := nextCapturePath(dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "capture-000.png" {
		t.Errorf("first capture = %s, want capture-000.png", filepath.Base(path))
	}

	// existing captures are skipped and the first free slot is reused
	for _, name := range []string{"capture-000.png", "capture-001.png", "capture-003.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0664); err != nil {
			t.Fatal(err)
		}
	}

	path, err = nextCapturePath(dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "capture-002.png" {
		t.Errorf("next capture = %s, want capture-002.png", filepath.Base(path))
	}
}
