package pdf

import (
	"strings"

	"pkt.systems/mdpdf"
)

type span struct {
	text   string
	bold   bool
	italic bool
}

var markupTags = []string{mdpdf.BoldOpen, mdpdf.BoldClose, mdpdf.ItalicOpen, mdpdf.ItalicClose}

// parseMarkup splits text carrying <b> and <i> tags into styled spans.
// Tags nest by depth; any other '<' is literal text.
func parseMarkup(text string) []span {
	var (
		spans        []span
		bold, italic int
		buf          strings.Builder
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		spans = append(spans, span{text: buf.String(), bold: bold > 0, italic: italic > 0})
		buf.Reset()
	}
	for i := 0; i < len(text); {
		if text[i] == '<' {
			if tag, ok := tagAt(text[i:]); ok {
				flush()
				switch tag {
				case mdpdf.BoldOpen:
					bold++
				case mdpdf.BoldClose:
					if bold > 0 {
						bold--
					}
				case mdpdf.ItalicOpen:
					italic++
				case mdpdf.ItalicClose:
					if italic > 0 {
						italic--
					}
				}
				i += len(tag)
				continue
			}
		}
		buf.WriteByte(text[i])
		i++
	}
	flush()
	return spans
}

func tagAt(s string) (string, bool) {
	for _, tag := range markupTags {
		if strings.HasPrefix(s, tag) {
			return tag, true
		}
	}
	return "", false
}

// fontStyle composes a gofpdf style string from block and span emphasis.
func fontStyle(bold, italic bool) string {
	switch {
	case bold && italic:
		return "BI"
	case bold:
		return "B"
	case italic:
		return "I"
	default:
		return ""
	}
}
