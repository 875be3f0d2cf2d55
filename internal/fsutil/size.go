// Package fsutil derives display metadata from files: sizes, line counts
// and image signatures.
package fsutil

import (
	"math"
	"strconv"
)

var sizeUnits = []string{"", "KB", "MB", "GB", "TB"}

// HumanBytes renders a byte count with binary prefixes: values below 1024
// have no unit, larger values are divided by 1024 until they fit (or TB is
// reached) and rounded to the nearest integer.
func HumanBytes(size int64) string {
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return strconv.FormatInt(int64(math.Round(value)), 10) + sizeUnits[unit]
}
