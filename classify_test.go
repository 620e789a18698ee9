package mdpdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		in   string
		want Line
	}{
		{"", Line{Kind: LineBlank}},
		{"   \t", Line{Kind: LineBlank}},
		{"# Title", Line{Kind: LineHeading, Level: 1, Text: "Title"}},
		{"## Sub", Line{Kind: LineHeading, Level: 2, Text: "Sub"}},
		{"### Head  ", Line{Kind: LineHeading, Level: 3, Text: "Head"}},
		{"  #### Deep", Line{Kind: LineHeading, Level: 4, Text: "Deep"}},
		{"##### Five", Line{Kind: LineParagraph, Text: "##### Five"}},
		{"#NoSpace", Line{Kind: LineParagraph, Text: "#NoSpace"}},
		{"![Alt text](img/a.png)", Line{Kind: LineImage, Alt: "Alt text", Path: "img/a.png"}},
		{"![](a.png)", Line{Kind: LineImage, Path: "a.png"}},
		{"see ![x](a.png)", Line{Kind: LineParagraph, Text: "see ![x](a.png)"}},
		{"![A](a.png) and ![B](b.png)", Line{Kind: LineParagraph, Text: "![A](a.png) and ![B](b.png)"}},
		{"![A](a.png) trailing", Line{Kind: LineParagraph, Text: "![A](a.png) trailing"}},
		{"---", Line{Kind: LineRule}},
		{"-----", Line{Kind: LineRule}},
		{"--- trailing", Line{Kind: LineRule}},
		{"- item", Line{Kind: LineListItem, Text: "item"}},
		{"*   spaced", Line{Kind: LineListItem, Text: "spaced"}},
		{"-item", Line{Kind: LineParagraph, Text: "-item"}},
		{"**Bold** start", Line{Kind: LineParagraph, Text: "**Bold** start"}},
		{"plain text", Line{Kind: LineParagraph, Text: "plain text"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.in), "Classify(%q)", tc.in)
	}
}

func TestFormatInline(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"**a** and *b*", "<b>a</b> and <i>b</i>"},
		{"**one** **two**", "<b>one</b> <b>two</b>"},
		{"lonely * star", "lonely * star"},
		{"**b***i*", "<b>b</b><i>i</i>"},
		{"no markup", "no markup"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatInline(tc.in), "FormatInline(%q)", tc.in)
	}
}

func TestFormatBoldLeavesItalic(t *testing.T) {
	assert.Equal(t, "<b>b</b> *i*", FormatBold("**b** *i*"))
}
