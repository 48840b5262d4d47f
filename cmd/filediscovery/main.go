package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ramakrishna-scripts/filediscovery/internal/config"
	"github.com/Ramakrishna-scripts/filediscovery/internal/core"
	"github.com/Ramakrishna-scripts/filediscovery/internal/report"
	"github.com/Ramakrishna-scripts/filediscovery/pkg/models"
)

// ANSI colors
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorGreen = "\033[32m"
	colorGray  = "\033[38;5;245m"
)

var (
	version = "0.1.0"
	logger  *zap.Logger
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "filediscovery",
		Short: "File Discovery - directory tree metadata audit tool",
		Long: heredoc.Doc(`
			filediscovery enumerates every file and directory beneath a root
			path, collects metadata (size, ownership, permissions, timestamps,
			child counts) in parallel, and writes a sorted CSV report for
			storage and ownership audits.
		`),
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.AddCommand(scanCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// scanCmd creates the scan command
func scanCmd() *cobra.Command {
	var (
		workers     int
		exclude     []string
		excludeFile string
		prefix      string
	)

	cmd := &cobra.Command{
		Use:   "scan [path] [output-dir]",
		Short: "Scan a directory tree and write the discovery report",
		Long: heredoc.Doc(`
			Recursively scan a directory tree (or a bare drive designator such
			as "D:") and write a FileDiscovery_<timestamp>.csv report into the
			given output directory.

			System folders ($RECYCLE.BIN, System Volume Information) and any
			additional excluded names are pruned before descent: they never
			appear in the report and never count toward directory sizes.
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			searchPath := args[0]
			outputDir := args[1]

			// Initialize logger based on verbose flag
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				// Silent logger - only errors
				cfg := zap.Config{
					Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
					Encoding:         "json",
					OutputPaths:      []string{"stderr"},
					ErrorOutputPaths: []string{"stderr"},
					EncoderConfig:    zap.NewProductionEncoderConfig(),
				}
				logger, err = cfg.Build()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
				return err
			}
			defer logger.Sync()

			// Load configuration
			cfg, err := config.LoadConfig()
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			// Override config with CLI flags
			if workers > 0 {
				cfg.Workers = workers
			}
			if len(exclude) > 0 {
				cfg.Exclude = exclude
			}
			if excludeFile != "" {
				cfg.ExcludeFile = excludeFile
			}
			if prefix != "" {
				cfg.ReportPrefix = prefix
			}
			cfg.OutputDir = outputDir

			if err := cfg.ApplyExcludeFile(); err != nil {
				logger.Error("Failed to load exclude file", zap.Error(err))
				return err
			}

			if info, err := os.Stat(outputDir); err != nil || !info.IsDir() {
				return fmt.Errorf("output directory %q is not accessible", outputDir)
			}

			// Run scan
			scanner := core.NewScanner(cfg, logger)
			records, results, err := scanner.Scan(searchPath)
			if err != nil {
				logger.Error("Scan failed", zap.Error(err))
				return err
			}

			// Write report
			generator := report.NewGenerator(cfg, logger)
			reportPath, err := generator.Generate(records, outputDir)
			if err != nil {
				logger.Error("Failed to write report", zap.Error(err))
				return err
			}
			results.ReportPath = reportPath

			printSummary(results)
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of worker goroutines (default 100)")
	cmd.Flags().StringSliceVarP(&exclude, "exclude", "e", nil, "Directory basenames to exclude (replaces defaults)")
	cmd.Flags().StringVar(&excludeFile, "exclude-file", "", "YAML file with additional excluded basenames")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Report filename prefix (default FileDiscovery)")

	return cmd
}

// printSummary prints the operator summary block after a completed scan
func printSummary(results *models.ScanResults) {
	bold, gray, green, reset := colorBold, colorGray, colorGreen, colorReset
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		bold, gray, green, reset = "", "", "", ""
	}

	fmt.Println()
	fmt.Printf("%sFILE DISCOVERY COMPLETE%s\n", bold, reset)
	fmt.Println()
	fmt.Printf("  %sPath:%s     %s\n", gray, reset, results.Root)
	fmt.Printf("  %sRecords:%s  %d (%d files, %d folders)\n", gray, reset, results.Records, results.TotalFiles, results.TotalDirs)
	if results.Dropped > 0 {
		fmt.Printf("  %sDropped:%s  %d entries could not be read\n", gray, reset, results.Dropped)
	}
	fmt.Printf("  %sSize:%s     %s\n", gray, reset, humanize.IBytes(uint64(results.TotalBytes)))
	fmt.Printf("  %sReport:%s   %s\n", gray, reset, results.ReportPath)
	fmt.Println()
	fmt.Printf("  %s✓ Time taken for the scan: %s%s\n", green, report.FormatDuration(results.Duration), reset)
	fmt.Println()
}
