package mdpdf

import (
	"regexp"
	"strings"
)

// LineKind is the classification of one trimmed source line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineHeading
	LineImage
	LineRule
	LineListItem
	LineParagraph
)

// Line is a classified source line. Level is set for headings, Alt and Path
// for images, Text for headings, list items and paragraphs.
type Line struct {
	Kind  LineKind
	Level int
	Text  string
	Alt   string
	Path  string
}

type lineMatcher func(line string) (Line, bool)

// Most specific header prefix first.
var headingPrefixes = [...]struct {
	prefix string
	level  int
}{
	{"#### ", 4},
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

// Whole line only. Alt ends at the first "]" and the path at the first ")".
var imageLine = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]*)\)$`)

var matchers = []lineMatcher{
	matchBlank,
	matchHeading,
	matchImage,
	matchRule,
	matchListItem,
}

// Classify trims line and returns its classification. Matchers run in order
// and the first match wins; anything unmatched is a paragraph.
func Classify(line string) Line {
	line = strings.TrimSpace(line)
	for _, m := range matchers {
		if l, ok := m(line); ok {
			return l
		}
	}
	return Line{Kind: LineParagraph, Text: line}
}

func matchBlank(line string) (Line, bool) {
	return Line{Kind: LineBlank}, line == ""
}

func matchHeading(line string) (Line, bool) {
	for _, h := range headingPrefixes {
		if strings.HasPrefix(line, h.prefix) {
			return Line{
				Kind:  LineHeading,
				Level: h.level,
				Text:  strings.TrimSpace(line[len(h.prefix):]),
			}, true
		}
	}
	return Line{}, false
}

func matchImage(line string) (Line, bool) {
	m := imageLine.FindStringSubmatch(line)
	if m == nil {
		return Line{}, false
	}
	return Line{Kind: LineImage, Alt: m[1], Path: strings.TrimSpace(m[2])}, true
}

func matchRule(line string) (Line, bool) {
	return Line{Kind: LineRule}, strings.HasPrefix(line, "---")
}

func matchListItem(line string) (Line, bool) {
	if !strings.HasPrefix(line, "- ") && !strings.HasPrefix(line, "* ") {
		return Line{}, false
	}
	return Line{Kind: LineListItem, Text: strings.TrimSpace(line[2:])}, true
}
