package services

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber parses an authored decimal string into a float64. It is
// deliberately lenient: thousands separators are ignored, surrounding
// whitespace is trimmed and anything after the leading numeric prefix
// is dropped. Unparsable input yields 0 so that a half-filled document
// still renders.
func ParseNumber(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")

	// Take the longest prefix that still looks like a signed decimal.
	end := 0
	seenDot := false
scan:
	for end < len(s) {
		c := s[end]
		switch {
		case c >= '0' && c <= '9':
		case (c == '+' || c == '-') && end == 0:
		case c == '.' && !seenDot:
			seenDot = true
		default:
			break scan
		}
		end++
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatAmount renders a currency amount with thousands grouping and
// exactly two decimal places. Zero renders as the empty string: blank
// cells read better than a column of "0.00" on a printed budget.
func FormatAmount(v float64) string {
	if v == 0 {
		return ""
	}

	negative := false
	if v < 0 {
		negative = true
		v = -v
	}

	raw := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(raw, ".", 2)

	result := groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas into an integer string every three
// digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// FXRate returns the parsed conversion rate between the primary and
// secondary currencies. 0 means no conversion is available.
func FXRate(meta DocumentMeta) float64 {
	return ParseNumber(meta.FXRate)
}

// QtyMultiplier returns the document-wide quantity multiplier. 0 means
// the multiplier is inactive and raw quantities are used as-is.
func QtyMultiplier(meta DocumentMeta) float64 {
	return ParseNumber(meta.MultiplierValue)
}
