package providers

import "strings"

// searchEscapeSet lists the characters the location search endpoint rejects
// when they appear unescaped.
const searchEscapeSet = "!@#$%^&*()=+{}[]|\\;':\",<>/? "

const upperhex = "0123456789ABCDEF"

// EscapeQuery percent-encodes a free-text location for the search endpoint.
// Characters in the escape set, control bytes and non-ASCII bytes become %XX;
// everything else passes through unchanged.
func EscapeQuery(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c >= 0x7f || strings.IndexByte(searchEscapeSet, c) >= 0 {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
