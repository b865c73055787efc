package ingest

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// FixEncoding repairs text from legacy exports where Windows-1252 bytes were
// shifted into the U+FF00 halfwidth block. Each such rune is mapped back to
// its original byte and decoded through the 1252 table.
func FixEncoding(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range s {
		if r >= 0xFF60 && r <= 0xFFFD {
			orig := r - 0xFF00
			if orig >= 0x20 && orig <= 0xFF {
				b.WriteRune(charmap.Windows1252.DecodeByte(byte(orig)))
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
