package core

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Ramakrishna-scripts/filediscovery/internal/fserrors"
	"github.com/Ramakrishna-scripts/filediscovery/internal/filesystem"
	"github.com/Ramakrishna-scripts/filediscovery/pkg/models"
)

// Processor builds one FileRecord per filesystem entry
type Processor struct {
	provider filesystem.MetadataProvider
	sizer    *filesystem.Sizer
	exclude  map[string]bool
	logger   *zap.Logger
}

// NewProcessor creates an entry processor
func NewProcessor(provider filesystem.MetadataProvider, sizer *filesystem.Sizer, exclude []string, logger *zap.Logger) *Processor {
	ex := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		ex[name] = true
	}

	return &Processor{
		provider: provider,
		sizer:    sizer,
		exclude:  ex,
		logger:   logger,
	}
}

// Process returns the fully populated record for path, or nil when the path
// cannot be stat'ed at all. A nil return is logged and the entry dropped; it
// never fails the scan.
func (p *Processor) Process(path string) *models.FileRecord {
	md, err := p.provider.Describe(path)
	if err != nil {
		p.logger.Warn("Error retrieving information", zap.String("path", path), zap.Error(err))
		return nil
	}

	record := &models.FileRecord{
		Name:        filepath.Base(path),
		Path:        absolutePath(path),
		Kind:        md.Kind,
		Extension:   md.Extension,
		Permissions: md.Permissions,
		Owner:       md.Owner,
		CreatedAt:   md.CreatedAt,
		ModifiedAt:  md.ModifiedAt,
	}

	if md.Kind == models.KindFile {
		size := md.Size
		record.Size = &size
		return record
	}

	// Exclusions apply to descendants; the scan root is seeded even when its
	// own name matches, in which case it carries no child counts and the
	// scanner supplies the size.
	if !p.exclude[record.Name] {
		p.countChildren(record, path)
		size := p.sizer.SizeOf(path)
		record.Size = &size
	}

	return record
}

// countChildren fills the immediate-children counts for a directory record.
// Files are always counted; subdirectories only when not excluded.
func (p *Processor) countChildren(record *models.FileRecord, path string) {
	entries, err := os.ReadDir(path)
	if err != nil {
		p.logger.Warn("Error counting directory children",
			zap.String("path", path),
			zap.Error(fserrors.NewMetadataError(path, err)))
		return
	}

	files, folders := 0, 0
	for _, entry := range entries {
		if entry.IsDir() {
			if !p.exclude[entry.Name()] {
				folders++
			}
		} else {
			files++
		}
	}

	items := files + folders
	record.FileCount = &files
	record.FolderCount = &folders
	record.ItemCount = &items
}

// absolutePath normalizes path to absolute form for the record identity key
func absolutePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
