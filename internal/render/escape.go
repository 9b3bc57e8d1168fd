package render

import "strings"

var (
	attrEscaper = strings.NewReplacer(`"`, "&quot;")
	textEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")
)

// EscapeAttr escapes a value for a double-quoted HTML attribute.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// EscapeText escapes a value for HTML text content.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}
