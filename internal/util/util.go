// Package util holds small formatting helpers shared by logs and responses.
package util

import (
	"fmt"
	"time"
)

// FormatCents renders minor currency units as dollars, e.g. 5000 -> "$50.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats sub-minute vendor waits with millisecond precision
// ("1.5s") and longer ones as minutes and seconds ("2m30s").
func FormatDuration(duration time.Duration) string {
	if duration < time.Minute {
		return fmt.Sprintf("%.1fs", duration.Round(100*time.Millisecond).Seconds())
	}

	duration = duration.Round(time.Second)
	m := int(duration.Minutes())
	s := int(duration.Seconds()) % 60

	return fmt.Sprintf("%dm%ds", m, s)
}
