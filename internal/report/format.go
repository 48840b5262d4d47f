package report

import (
	"fmt"
	"time"
)

// Byte-size scale steps
const (
	sizeKB = 1 << 10
	sizeMB = 1 << 20
	sizeGB = 1 << 30
)

// FormatSize renders a byte count as a human-scaled string: whole bytes
// below 1 KB, two decimal places above. A nil size renders as "0 B".
func FormatSize(size *int64) string {
	if size == nil {
		return "0 B"
	}

	n := *size
	switch {
	case n < sizeKB:
		return fmt.Sprintf("%d B", n)
	case n < sizeMB:
		return fmt.Sprintf("%.2f KB", float64(n)/sizeKB)
	case n < sizeGB:
		return fmt.Sprintf("%.2f MB", float64(n)/sizeMB)
	default:
		return fmt.Sprintf("%.2f GB", float64(n)/sizeGB)
	}
}

// FormatDuration formats duration to a human-readable string with max 2 decimal places
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		// Milliseconds
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	} else if d < time.Minute {
		// Seconds
		return fmt.Sprintf("%.2fs", d.Seconds())
	} else if d < time.Hour {
		// Minutes and seconds
		mins := int(d.Minutes())
		secs := d.Seconds() - float64(mins*60)
		return fmt.Sprintf("%dm%.2fs", mins, secs)
	}
	// Hours, minutes and seconds
	hours := int(d.Hours())
	mins := int(d.Minutes()) - hours*60
	secs := d.Seconds() - float64(hours*3600) - float64(mins*60)
	return fmt.Sprintf("%dh%dm%.2fs", hours, mins, secs)
}
