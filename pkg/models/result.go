package models

import (
	"time"
)

// ScanResults summarizes a completed discovery scan
type ScanResults struct {
	Root        string        // Normalized scan root
	StartTime   time.Time     // Scan start
	EndTime     time.Time     // Scan end
	Duration    time.Duration // Wall-clock duration
	TotalFiles  int           // Files discovered by the traversal
	TotalDirs   int           // Directories discovered by the traversal
	Dropped     int           // Entries that could not be stat'ed at all
	Records     int           // Records handed to the report writer
	TotalBytes  int64         // Aggregate size of the scan root
	ReportPath  string        // Path of the written report
	WorkersUsed int           // Worker pool size
}
