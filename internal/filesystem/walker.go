package filesystem

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Entry is one discovery event from the walker
type Entry struct {
	Path  string
	IsDir bool
}

// Walker drives the top-down traversal of the scan root. Discovery runs on
// the calling goroutine; only per-entry processing is concurrent.
type Walker struct {
	exclude map[string]bool
	logger  *zap.Logger
}

// NewWalker creates a walker that prunes the given basenames before descent
func NewWalker(exclude []string, logger *zap.Logger) *Walker {
	ex := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		ex[name] = true
	}

	return &Walker{
		exclude: ex,
		logger:  logger,
	}
}

// Walk visits every non-excluded entry under root in pre-order, directories
// before their contents. Excluded directories are pruned before descent:
// they are never listed, never reported, and none of their contents are
// discovered. Exclusions apply to descendants only, never to root itself.
func (w *Walker) Walk(root string, callback func(Entry) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			w.logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
			return nil // Continue walking
		}

		if info.IsDir() && path != root && w.exclude[info.Name()] {
			w.logger.Debug("Skipping excluded directory", zap.String("path", path))
			return filepath.SkipDir
		}

		return callback(Entry{
			Path:  path,
			IsDir: info.IsDir(),
		})
	})
}
