package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestWalker_Walk(t *testing.T) {
	tmpDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	sub := filepath.Join(tmpDir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "b.txt"), []byte("b"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	logger, _ := zap.NewDevelopment()
	walker := NewWalker(nil, logger)

	var visited []string
	err := walker.Walk(tmpDir, func(entry Entry) error {
		visited = append(visited, entry.Path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(visited) != 4 {
		t.Fatalf("Walk() visited %d entries, want 4: %v", len(visited), visited)
	}

	// Pre-order: the root comes first, directories before their contents
	if visited[0] != tmpDir {
		t.Errorf("Walk() first entry = %s, want root %s", visited[0], tmpDir)
	}
	indexOf := func(path string) int {
		for i, p := range visited {
			if p == path {
				return i
			}
		}
		return -1
	}
	if indexOf(sub) > indexOf(filepath.Join(sub, "b.txt")) {
		t.Error("Walk() visited directory contents before the directory itself")
	}
}

func TestWalker_Walk_PrunesExcluded(t *testing.T) {
	tmpDir := t.TempDir()

	recycled := filepath.Join(tmpDir, "$RECYCLE.BIN")
	if err := os.Mkdir(recycled, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(recycled, "inside.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "keep.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	logger, _ := zap.NewDevelopment()
	walker := NewWalker([]string{"$RECYCLE.BIN"}, logger)

	var visited []string
	if err := walker.Walk(tmpDir, func(entry Entry) error {
		visited = append(visited, entry.Path)
		return nil
	}); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	for _, path := range visited {
		if filepath.Base(path) == "$RECYCLE.BIN" || filepath.Base(path) == "inside.txt" {
			t.Errorf("Walk() visited excluded path %s", path)
		}
	}
	if len(visited) != 2 {
		t.Errorf("Walk() visited %d entries, want 2 (root + keep.txt): %v", len(visited), visited)
	}
}

func TestWalker_Walk_RootNotExcluded(t *testing.T) {
	tmpDir := t.TempDir()

	root := filepath.Join(tmpDir, "$RECYCLE.BIN")
	if err := os.Mkdir(root, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	logger, _ := zap.NewDevelopment()
	walker := NewWalker([]string{"$RECYCLE.BIN"}, logger)

	var visited []string
	if err := walker.Walk(root, func(entry Entry) error {
		visited = append(visited, entry.Path)
		return nil
	}); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	// Exclusions apply to descendants only: a root matching the exclusion
	// set is still walked.
	if len(visited) != 2 {
		t.Errorf("Walk() visited %d entries, want 2: %v", len(visited), visited)
	}
}
