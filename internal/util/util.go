// Package util holds display formatting shared by the server and the map client.
package util

import (
	"fmt"
	"strconv"
)

// FormatNumber prints v with the fewest digits that round-trip ("50", "12.5").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRupees prints a price, e.g. "₹50".
func FormatRupees(v float64) string {
	return "₹" + FormatNumber(v)
}

// FormatKm prints a query distance, e.g. "1.2km".
func FormatKm(d float64) string {
	return FormatNumber(d) + "km"
}

// FormatSize prints the dimensions of a space, e.g. "5x4m".
func FormatSize(length, breadth float64) string {
	return FormatNumber(length) + "x" + FormatNumber(breadth) + "m"
}

// FormatArea prints an area with two decimals, e.g. "20.00 m²".
func FormatArea(area float64) string {
	return fmt.Sprintf("%.2f m²", area)
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
