package main

import "strings"

// Path segments keep every RFC 3986 pchar; form parameters keep only the
// application/x-www-form-urlencoded safe set. net/url differs on both
// ('!', '(', ')' and '*' in paths, '~' and '*' in queries).
const (
	pathSegmentSafe   = "-._~!$'()*,;&=@:+"
	formParameterSafe = "-_.*"
	upperHex          = "0123456789ABCDEF"
)

// escapePathSegment percent-encodes s for use as a single URL path segment
func escapePathSegment(s string) string {
	return percentEscape(s, pathSegmentSafe, false)
}

// escapeFormParameter percent-encodes s for use as a query parameter value
func escapeFormParameter(s string) string {
	return percentEscape(s, formParameterSafe, true)
}

func percentEscape(s, safe string, plusForSpace bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isAlnum(c) || (c < 0x80 && strings.IndexByte(safe, c) >= 0):
			b.WriteByte(c)
		case c == ' ' && plusForSpace:
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0f])
		}
	}
	return b.String()
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
