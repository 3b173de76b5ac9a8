// Package parser implements the multi-block table discovery and
// extraction engine over raw cell grids.
package parser

import (
	"math"
	"strconv"
	"strings"
)

// CleanPercent converts a raw cell value into a finite percentage number.
// Textual values tolerate surrounding whitespace, a trailing percent sign,
// and thousands separators; blanks, "nan" markers, and unparseable text
// report ok=false. Parse failures never propagate as errors because real
// spreadsheets put footnote markers and placeholders in numeric columns.
func CleanPercent(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case int64:
		return float64(x), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	}

	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, false
	}
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParsePeriod classifies a raw cell value as a period label (e.g. an
// election year). A value qualifies only if its text form is exactly four
// ASCII digits and the number falls within [min, max]; the dual check keeps
// arbitrary 4-digit data values (like a count of 1000) out of header
// detection.
func ParsePeriod(v any, min, max int) (int, bool) {
	s := cellText(v)
	if len(s) != 4 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < min || n > max {
		return 0, false
	}
	return n, true
}

// matchVariant classifies a sub-header cell against the known metric
// variant labels by case-insensitive prefix match. Returns the matched
// variant name, or ok=false when the cell matches none.
func matchVariant(v any, variants []string) (string, bool) {
	s := strings.ToLower(cellText(v))
	if s == "" {
		return "", false
	}
	for _, name := range variants {
		if strings.HasPrefix(s, name) {
			return name, true
		}
	}
	return "", false
}

// cellText renders a raw cell as trimmed text. Numeric cells format
// without an exponent so integral values like 2020 keep their 4-digit
// form; NaN renders empty.
func cellText(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		if math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}
