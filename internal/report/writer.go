package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Ramakrishna-scripts/filediscovery/internal/config"
	"github.com/Ramakrishna-scripts/filediscovery/internal/fserrors"
	"github.com/Ramakrishna-scripts/filediscovery/pkg/models"
)

const (
	// timestampLayout names report files <prefix>_YYYYMMDD_HHMMSS.csv
	timestampLayout = "20060102_150405"
	// dateLayout renders the CreatedDate and ModifiedDate columns
	dateLayout = "2006-01-02 15:04:05"
)

// columns is the fixed report column order
var columns = []string{
	"Name", "Path", "Type", "Extension",
	"CreatedDate", "ModifiedDate", "Permissions", "Owner",
	"Size", "NumberOfItems", "FolderCount", "FileCount",
}

// Generator writes the sorted CSV discovery report
type Generator struct {
	config *config.Config
	logger *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		config: cfg,
		logger: logger,
	}
}

// Generate sorts records by path (case-insensitive, ascending) and writes
// them to a timestamped CSV file in outputDir. The write is atomic: the
// report appears under its final name only if every row serialized, and a
// failure leaves no partial file behind.
func (g *Generator) Generate(records []*models.FileRecord, outputDir string) (string, error) {
	sort.Slice(records, func(i, j int) bool {
		return strings.ToLower(records[i].Path) < strings.ToLower(records[j].Path)
	})

	name := fmt.Sprintf("%s_%s.csv", g.config.ReportPrefix, time.Now().Format(timestampLayout))
	finalPath := filepath.Join(outputDir, name)

	tmp, err := os.CreateTemp(outputDir, name+".tmp-*")
	if err != nil {
		return "", fserrors.NewWriteReportError(finalPath, err)
	}
	tmpPath := tmp.Name()

	if err := writeRows(tmp, records); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fserrors.NewWriteReportError(finalPath, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fserrors.NewWriteReportError(finalPath, err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fserrors.NewWriteReportError(finalPath, err)
	}

	g.logger.Info("Report written",
		zap.String("path", finalPath),
		zap.Int("rows", len(records)))

	return finalPath, nil
}

// writeRows serializes the header and one row per record
func writeRows(w io.Writer, records []*models.FileRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return err
	}

	for _, record := range records {
		if err := cw.Write(row(record)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// row renders one record in the fixed column order. Absent fields render as
// empty cells.
func row(r *models.FileRecord) []string {
	return []string{
		r.Name,
		r.Path,
		string(r.Kind),
		r.Extension,
		r.CreatedAt.Format(dateLayout),
		r.ModifiedAt.Format(dateLayout),
		r.Permissions,
		r.Owner,
		FormatSize(r.Size),
		formatCount(r.ItemCount),
		formatCount(r.FolderCount),
		formatCount(r.FileCount),
	}
}

func formatCount(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
