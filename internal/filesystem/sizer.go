package filesystem

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Ramakrishna-scripts/filediscovery/internal/fserrors"
)

// Sizer computes the total byte size of a directory subtree. Each call
// re-descends from scratch: aggregation is self-contained and shares no
// state with the traversal, so a partial failure inside one directory's sum
// cannot leak into another's.
type Sizer struct {
	exclude map[string]bool
	logger  *zap.Logger
}

// NewSizer creates a sizer that skips the given basenames at every depth
func NewSizer(exclude []string, logger *zap.Logger) *Sizer {
	ex := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		ex[name] = true
	}

	return &Sizer{
		exclude: ex,
		logger:  logger,
	}
}

// SizeOf recursively sums the sizes of all non-excluded files under dir.
// Entries that cannot be read contribute zero and the remaining siblings are
// still summed, so an aggregation never fails outright.
func (s *Sizer) SizeOf(dir string) int64 {
	var total int64

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Warn("Error listing directory during aggregation",
			zap.String("path", dir),
			zap.Error(fserrors.NewAggregateError(dir, err)))
		return total
	}

	for _, entry := range entries {
		if s.exclude[entry.Name()] {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			total += s.SizeOf(path)
			continue
		}

		info, err := entry.Info()
		if err != nil {
			s.logger.Warn("Error sizing entry",
				zap.String("path", path),
				zap.Error(fserrors.NewAggregateError(path, err)))
			continue
		}
		total += info.Size()
	}

	return total
}
