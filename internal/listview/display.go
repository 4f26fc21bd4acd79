package listview

import (
	"math"
	"strconv"
	"strings"
)

// Placeholder is shown for fields a record does not carry.
const Placeholder = "N/A"

// Text returns s, or Placeholder when s is blank.
func Text(s string) string {
	return Or(s, Placeholder)
}

// Or returns s, or fallback when s is blank.
func Or(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// Number renders v with the given precision. NaN and infinities render as 0.
func Number(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
