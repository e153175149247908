package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize strips runes that never belong in a schedule field:
// NUL and the other ASCII controls except '\t', '\n', '\r',
// DEL (0x7F), the C1 block U+0080..U+009F, and invalid UTF-8 bytes.
// Clean input is returned as is without allocating.
func Sanitize(s string) string {
	i := firstDirty(s)
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if keep(r, size) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// firstDirty returns the byte offset of the first rune Sanitize would drop, or len(s)
func firstDirty(s string) int {
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c < 0x7F {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if !keep(r, size) {
			return i
		}
		i += size
	}
	return len(s)
}

func keep(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size == 1:
		return false
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r < 0x20, r == 0x7F:
		return false
	case r >= 0x80 && r <= 0x9F:
		return false
	}
	return true
}
