package gallery

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const compactThreshold = 10000

// nextPrefix is the SI prefix one step up, for values that round to 1000.
var nextPrefix = map[string]string{"k": "M", "M": "G", "G": "T", "T": "P", "P": "E"}

// FormatCount renders a vote or view counter for compact display.
// Small values get thousands separators, large ones a k/M suffix.
func FormatCount(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if abs < compactThreshold {
		return humanize.Comma(int64(n))
	}

	value, prefix := humanize.ComputeSI(float64(n))
	text := fmt.Sprintf("%.1f", value)
	if rounded, err := strconv.ParseFloat(text, 64); err == nil && math.Abs(rounded) >= 1000 {
		if up, ok := nextPrefix[prefix]; ok {
			text, prefix = fmt.Sprintf("%.1f", rounded/1000), up
		}
	}
	return strings.TrimSuffix(text, ".0") + prefix
}
