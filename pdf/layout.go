package pdf

import (
	"strings"
	"unicode"

	"pkt.systems/mdpdf"
)

// measurer returns the width of text in the given font style and size.
type measurer interface {
	measure(text, style string, size float64) float64
}

type fragment struct {
	text  string
	style string
	width float64
}

type word struct {
	frags []fragment
	width float64
}

type textLine struct {
	words []word
	width float64
	last  bool
}

// buildWords splits styled spans into words. A word may mix styles when
// emphasis starts or ends mid-word.
func buildWords(spans []span, base mdpdf.Style, size float64, m measurer) []word {
	var (
		words []word
		cur   word
		buf   strings.Builder
	)
	flushFrag := func(style string) {
		if buf.Len() == 0 {
			return
		}
		text := buf.String()
		w := m.measure(text, style, size)
		cur.frags = append(cur.frags, fragment{text: text, style: style, width: w})
		cur.width += w
		buf.Reset()
	}
	flushWord := func() {
		if len(cur.frags) > 0 {
			words = append(words, cur)
		}
		cur = word{}
	}
	for _, sp := range spans {
		style := fontStyle(base.Bold || sp.bold, base.Italic || sp.italic)
		for _, r := range sp.text {
			if unicode.IsSpace(r) {
				flushFrag(style)
				flushWord()
				continue
			}
			buf.WriteRune(r)
		}
		flushFrag(style)
	}
	flushWord()
	return words
}

// breakLines fills lines greedily up to avail. A word wider than avail gets
// a line of its own.
func breakLines(words []word, avail, space float64) []textLine {
	var (
		lines []textLine
		cur   textLine
	)
	for _, w := range words {
		if len(cur.words) == 0 {
			cur.words = append(cur.words, w)
			cur.width = w.width
			continue
		}
		if cur.width+space+w.width > avail {
			lines = append(lines, cur)
			cur = textLine{words: []word{w}, width: w.width}
			continue
		}
		cur.words = append(cur.words, w)
		cur.width += space + w.width
	}
	if len(cur.words) > 0 {
		cur.last = true
		lines = append(lines, cur)
	}
	return lines
}

// placeLine returns the x offset of each word relative to the line start.
// Justified lines spread the remaining space over the gaps, except the last
// line of a paragraph which is set flush left.
func placeLine(line textLine, align mdpdf.Align, avail, space float64) []float64 {
	xs := make([]float64, len(line.words))
	start, gap := 0.0, space
	switch align {
	case mdpdf.AlignCenter:
		start = (avail - line.width) / 2
	case mdpdf.AlignRight:
		start = avail - line.width
	case mdpdf.AlignJustify:
		if !line.last && len(line.words) > 1 && line.width < avail {
			gap = space + (avail-line.width)/float64(len(line.words)-1)
		}
	}
	if start < 0 {
		start = 0
	}
	x := start
	for i, w := range line.words {
		xs[i] = x
		x += w.width + gap
	}
	return xs
}
