package request

import (
	"math"
	"strconv"
	"strings"
)

// sizeWindow is the tolerance applied to a single size value.
const sizeWindow = 0.2

var sizeReplacer = strings.NewReplacer("–", "-", "—", "-", "‒", "-", " ", "")

// ParseSize parses "N-M" into an inclusive range and "N" into a ±20% window.
// A "pages" suffix, typographic dashes and spacing are tolerated. Reversed
// bounds are swapped. ok is false for anything unparsable.
func ParseSize(raw string) (SizeRange, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, "pages")
	s = strings.TrimSuffix(s, "page")
	s = sizeReplacer.Replace(s)
	if s == "" {
		return SizeRange{}, false
	}

	if lo, hi, found := strings.Cut(s, "-"); found {
		minV, ok1 := parseSizeValue(lo)
		maxV, ok2 := parseSizeValue(hi)
		if !ok1 || !ok2 {
			return SizeRange{}, false
		}
		if minV > maxV {
			minV, maxV = maxV, minV
		}
		return SizeRange{Min: minV, Max: maxV}, true
	}

	n, ok := parseSizeValue(s)
	if !ok {
		return SizeRange{}, false
	}
	return SizeRange{Min: n * (1 - sizeWindow), Max: n * (1 + sizeWindow)}, true
}

func parseSizeValue(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
