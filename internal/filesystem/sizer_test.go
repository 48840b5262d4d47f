package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func writeFileOfSize(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.Repeat("x", size)), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
}

func TestSizer_SizeOf(t *testing.T) {
	tmpDir := t.TempDir()

	writeFileOfSize(t, filepath.Join(tmpDir, "a.txt"), 100)

	sub := filepath.Join(tmpDir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	writeFileOfSize(t, filepath.Join(sub, "b.txt"), 200)

	logger, _ := zap.NewDevelopment()
	sizer := NewSizer(nil, logger)

	if got := sizer.SizeOf(tmpDir); got != 300 {
		t.Errorf("SizeOf() = %d, want 300", got)
	}
}

func TestSizer_SizeOf_ExcludedAtEveryDepth(t *testing.T) {
	tmpDir := t.TempDir()

	writeFileOfSize(t, filepath.Join(tmpDir, "a.txt"), 100)

	// Excluded folder at the top level
	recycled := filepath.Join(tmpDir, "$RECYCLE.BIN")
	if err := os.Mkdir(recycled, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	writeFileOfSize(t, filepath.Join(recycled, "big.bin"), 9999)

	// Excluded folder nested deeper
	sub := filepath.Join(tmpDir, "sub")
	nested := filepath.Join(sub, "System Volume Information")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("Failed to create dirs: %v", err)
	}
	writeFileOfSize(t, filepath.Join(sub, "b.txt"), 200)
	writeFileOfSize(t, filepath.Join(nested, "hidden.bin"), 5000)

	logger, _ := zap.NewDevelopment()
	sizer := NewSizer([]string{"$RECYCLE.BIN", "System Volume Information"}, logger)

	if got := sizer.SizeOf(tmpDir); got != 300 {
		t.Errorf("SizeOf() = %d, want 300 (excluded subtrees must contribute nothing)", got)
	}
}

func TestSizer_SizeOf_UnreadableDirectory(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	sizer := NewSizer(nil, logger)

	// Missing directory: the aggregation logs and returns zero, never fails
	if got := sizer.SizeOf(filepath.Join(t.TempDir(), "missing")); got != 0 {
		t.Errorf("SizeOf() = %d, want 0 for unreadable directory", got)
	}
}

func TestSizer_SizeOf_EmptyDirectory(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	sizer := NewSizer(nil, logger)

	if got := sizer.SizeOf(t.TempDir()); got != 0 {
		t.Errorf("SizeOf() = %d, want 0 for empty directory", got)
	}
}
