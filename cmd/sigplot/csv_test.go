package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadMatrix(t *testing.T) {
	path := writeTemp(t, "m.csv", "1,2,3\n4,5,6\n")
	m, err := loadMatrix(path)
	if err != nil {
		t.Fatalf("loadMatrix: %v", err)
	}
	r, c := m.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("dims = %dx%d want 2x3", r, c)
	}
	if m.At(1, 2) != 6 {
		t.Fatalf("m[1][2] = %v want 6", m.At(1, 2))
	}
}

func TestLoadMatrixRejectsNonNumeric(t *testing.T) {
	path := writeTemp(t, "bad.csv", "1,2\n3,abc\n")
	if _, err := loadMatrix(path); err == nil {
		t.Fatalf("expected error for non-numeric field")
	}
}

func TestLoadMatrixRejectsEmpty(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")
	if _, err := loadMatrix(path); err == nil {
		t.Fatalf("expected error for empty file")
	}
}

func TestLoadMatrixRejectsRagged(t *testing.T) {
	// encoding/csv flags ragged rows itself; make sure the error surfaces
	path := writeTemp(t, "ragged.csv", "1,2,3\n4,5\n")
	if _, err := loadMatrix(path); err == nil {
		t.Fatalf("expected error for ragged rows")
	}
}
