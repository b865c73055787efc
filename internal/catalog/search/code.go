package search

import (
	"regexp"
	"strings"
)

var reCodeSplit = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// reQueryParts captures alternating letter runs and digit runs of a raw
// query, e.g. "KTB 271-b" -> ["KTB", "271", "b"].
var reQueryParts = regexp.MustCompile(`[a-zA-Z]+|[0-9]+`)

// CleanCode reduces a product code to its ultra-clean comparable form:
// punctuation removed, digit segments stripped of leading zeros, letter
// segments lowercased, all concatenated. "LKTB-N0271" -> "lktbn271".
func CleanCode(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for _, seg := range reCodeSplit.Split(s, -1) {
		if seg == "" {
			continue
		}
		b.WriteString(cleanSegment(seg))
	}
	return b.String()
}

// QueryParts splits a raw query into its letter/digit segments, each already
// in ultra-clean form. Used by the ordered segmented code match.
func QueryParts(raw string) []string {
	parts := reQueryParts.FindAllString(raw, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, cleanSegment(p))
	}
	return out
}

func cleanSegment(seg string) string {
	if isDigits(seg) {
		t := strings.TrimLeft(seg, "0")
		if t == "" {
			return "0"
		}
		return t
	}
	return strings.ToLower(seg)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
