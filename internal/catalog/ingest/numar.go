package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

var rxKeepPrice = regexp.MustCompile(`[^0-9.]`)
var rxKeepStock = regexp.MustCompile(`[^0-9-]`)

// ParsePrice parses Argentinian formatting: "1.678,73" -> 1678.73.
// Dots are thousands separators, the comma is the decimal mark.
func ParsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	repl := strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", ".", "", ",", ".")
	s = repl.Replace(s)
	s = rxKeepPrice.ReplaceAllString(s, "")
	if s == "" || s == "." {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatPrice renders 1678.73 as "1.678,73" (always two decimals).
func FormatPrice(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	n := len(intPart)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte(',')
	b.WriteString(decPart)
	return b.String()
}

// ParseStock keeps the integer part of a possibly decorated cell:
// "12,00" -> 12, "-3" -> -3, "s/d" -> 0.
func ParseStock(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if i := strings.IndexAny(s, ".,"); i >= 0 {
		s = s[:i]
	}
	s = rxKeepStock.ReplaceAllString(s, "")
	if s == "" || s == "-" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
