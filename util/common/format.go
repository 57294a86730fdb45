package common

import (
	"fmt"
)

// FormatSize renders a byte count with a binary unit suffix, e.g. "16.00MB".
func FormatSize(size int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB", "PB"}
	unitIndex := 0
	value := float64(size)

	for value >= 1024 && unitIndex < len(units)-1 {
		value /= 1024
		unitIndex++
	}
	return fmt.Sprintf("%.2f%s", value, units[unitIndex])
}
