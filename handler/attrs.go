package handler

import (
	"strconv"
	"strings"
	"unicode"
)

// appendPair appends " key=value" to b, quoting value when needed.
func appendPair(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	if needsQuoting(value) {
		b.WriteString(strconv.Quote(value))
		return
	}
	b.WriteString(value)
}

// needsQuoting reports whether s would be ambiguous unquoted in a key=value pair.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if unicode.IsSpace(r) || r == '"' || r == '=' || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}
