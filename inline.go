package mdpdf

import "regexp"

// Inline markup emitted for emphasis spans.
const (
	BoldOpen    = "<b>"
	BoldClose   = "</b>"
	ItalicOpen  = "<i>"
	ItalicClose = "</i>"
)

var (
	boldSpan   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicSpan = regexp.MustCompile(`\*(.*?)\*`)
)

// FormatBold replaces each **text** pair with a bold span.
func FormatBold(s string) string {
	return boldSpan.ReplaceAllString(s, BoldOpen+"${1}"+BoldClose)
}

// FormatInline applies bold then italic substitution. Bold must run first
// so double asterisks are not consumed as two italic delimiters.
func FormatInline(s string) string {
	s = FormatBold(s)
	return italicSpan.ReplaceAllString(s, ItalicOpen+"${1}"+ItalicClose)
}
