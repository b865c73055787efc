package search

import "strings"

// CompareCodes orders product codes case-insensitively with embedded
// numbers compared by value, so "BI372 10" < "BI372 20" < "BI810".
// Returns -1, 0 or 1.
func CompareCodes(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigitByte(ca) && isDigitByte(cb) {
			// compare whole digit runs numerically
			ia, na := digitRun(a, i)
			ib, nb := digitRun(b, j)
			if c := compareDigitRuns(na, nb); c != 0 {
				return c
			}
			i, j = ia, ib
			continue
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	default:
		return 0
	}
}

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }

// digitRun returns the index past the run and the run itself.
func digitRun(s string, i int) (int, string) {
	start := i
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}
	return i, s[start:i]
}

func compareDigitRuns(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}
		return 1
	}
	return strings.Compare(ta, tb)
}
