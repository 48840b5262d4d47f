package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Ramakrishna-scripts/filediscovery/internal/config"
	"github.com/Ramakrishna-scripts/filediscovery/internal/filesystem"
	"github.com/Ramakrishna-scripts/filediscovery/pkg/models"
)

// Scanner lifecycle states
const (
	stateNotStarted int32 = iota
	stateRunning
	stateDraining
	stateDone
)

// Scanner drives the tree traversal and fans per-entry metadata collection
// out to a bounded worker pool. A scanner runs exactly one scan.
type Scanner struct {
	config    *config.Config
	logger    *zap.Logger
	walker    *filesystem.Walker
	sizer     *filesystem.Sizer
	processor *Processor
	collector *Collector

	state      atomic.Int32
	totalFiles atomic.Int64
	totalDirs  atomic.Int64
	dropped    atomic.Int64
}

// NewScanner creates a scanner wired to the OS metadata provider
func NewScanner(cfg *config.Config, logger *zap.Logger) *Scanner {
	provider := filesystem.NewOSProvider(logger)
	sizer := filesystem.NewSizer(cfg.Exclude, logger)

	return &Scanner{
		config:    cfg,
		logger:    logger,
		walker:    filesystem.NewWalker(cfg.Exclude, logger),
		sizer:     sizer,
		processor: NewProcessor(provider, sizer, cfg.Exclude, logger),
		collector: NewCollector(),
	}
}

// NormalizeRoot appends a separator to a bare drive designator ("D:") so a
// full-drive scan opens the drive root rather than the drive-relative
// working directory.
func NormalizeRoot(root string) string {
	if strings.HasSuffix(root, ":") {
		return root + string(os.PathSeparator)
	}
	return root
}

// Scan walks the tree under root and returns every collected record along
// with summary statistics. Records come back unordered; the report writer
// owns the final sort.
func (s *Scanner) Scan(root string) ([]*models.FileRecord, *models.ScanResults, error) {
	if !s.state.CompareAndSwap(stateNotStarted, stateRunning) {
		return nil, nil, fmt.Errorf("scanner already started")
	}

	root = NormalizeRoot(root)
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, fmt.Errorf("accessing path %q: %w", root, err)
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = config.DefaultWorkers
	}

	results := &models.ScanResults{
		Root:        root,
		StartTime:   time.Now(),
		WorkersUsed: workers,
	}

	s.logger.Info("Starting scan",
		zap.String("path", root),
		zap.Int("workers", workers))

	// Seed the root's own record before traversal. Exclusions never apply
	// to the root itself, and its size is always the full aggregate.
	if rootRecord := s.processor.Process(root); rootRecord != nil {
		if info.IsDir() {
			size := s.sizer.SizeOf(root)
			rootRecord.Size = &size
			results.TotalBytes = size
		} else if rootRecord.Size != nil {
			results.TotalBytes = *rootRecord.Size
		}
		s.collector.Offer(rootRecord)
	} else {
		s.dropped.Add(1)
	}

	// Worker pool: traversal stays on this goroutine, per-entry processing
	// is fanned out.
	entryChan := make(chan string, workers*2)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go s.worker(&wg, entryChan)
	}

	var walkErr error
	if info.IsDir() {
		walkErr = s.walker.Walk(root, func(entry filesystem.Entry) error {
			if entry.Path == root {
				return nil // already seeded
			}
			if entry.IsDir {
				s.totalDirs.Add(1)
			} else {
				s.totalFiles.Add(1)
			}
			entryChan <- entry.Path
			return nil
		})
	}

	// Join every submitted task before the drain may start
	close(entryChan)
	wg.Wait()

	s.state.Store(stateDraining)
	records := s.collector.DrainAll()
	s.state.Store(stateDone)

	results.EndTime = time.Now()
	results.Duration = results.EndTime.Sub(results.StartTime)
	results.TotalFiles = int(s.totalFiles.Load())
	results.TotalDirs = int(s.totalDirs.Load())
	results.Dropped = int(s.dropped.Load())
	results.Records = len(records)

	s.logger.Info("Scan completed",
		zap.Duration("duration", results.Duration),
		zap.Int("records", results.Records),
		zap.Int("dropped", results.Dropped))

	return records, results, walkErr
}

// worker processes entry paths from the channel until it closes
func (s *Scanner) worker(wg *sync.WaitGroup, entries <-chan string) {
	defer wg.Done()

	for path := range entries {
		record := s.processor.Process(path)
		if record == nil {
			s.dropped.Add(1)
			continue
		}
		s.collector.Offer(record)
	}
}

// Done reports whether the scan has finished and drained
func (s *Scanner) Done() bool {
	return s.state.Load() == stateDone
}
