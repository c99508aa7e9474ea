package size

import (
	"fmt"
	"strconv"
)

// FormatSize renders a byte count in du style: bare integer below 1 KiB,
// otherwise one decimal with a K/M/G suffix at 1024-power thresholds.
// Pure; used identically for entries, category totals, and the grand total.
func FormatSize(b int64) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
		gib = 1 << 30
	)
	switch {
	case b >= gib:
		return fmt.Sprintf("%.1fG", float64(b)/gib)
	case b >= mib:
		return fmt.Sprintf("%.1fM", float64(b)/mib)
	case b >= kib:
		return fmt.Sprintf("%.1fK", float64(b)/kib)
	default:
		return strconv.FormatInt(b, 10)
	}
}
