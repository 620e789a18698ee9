package mdpdf

import (
	"fmt"
	"strconv"
	"strings"
)

// Cm is one centimetre in points.
const Cm = 72 / 2.54

// Align is a horizontal text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// Style holds the visual attributes of a block kind. Sizes are in points.
type Style struct {
	Bold         bool
	Italic       bool
	Size         float64
	Leading      float64
	Color        [3]int
	Align        Align
	SpaceBefore  float64
	SpaceAfter   float64
	LeftIndent   float64
	BulletIndent float64
}

// Styles maps every text block kind to its style.
type Styles struct {
	Title       Style
	Subtitle    Style
	Heading     Style
	Subheading  Style
	Body        Style
	Bullet      Style
	Placeholder Style
	Caption     Style
}

// For returns the style used for kind.
func (s Styles) For(kind Kind) Style {
	switch kind {
	case KindTitle:
		return s.Title
	case KindSubtitle:
		return s.Subtitle
	case KindHeading:
		return s.Heading
	case KindSubheading:
		return s.Subheading
	case KindBullet:
		return s.Bullet
	case KindPlaceholder:
		return s.Placeholder
	case KindCaption:
		return s.Caption
	default:
		return s.Body
	}
}

const leadingFactor = 1.2

// Layout constants for non-text blocks.
const (
	MaxImageWidth  = 15 * Cm
	MaxImageHeight = 10 * Cm
	RuleWidth      = 15 * Cm
	RuleThickness  = 2.0
	RuleHeight     = 18.0

	blankSpacer = 6.0
	imageSpacer = 12.0
	ruleSpacer  = 10.0
)

// RuleColor is the separator line colour.
var RuleColor = mustHex("#3498db")

var defaultStyles = buildStyles()

// DefaultStyles returns the fixed style set.
func DefaultStyles() Styles {
	return defaultStyles
}

func buildStyles() Styles {
	body := textStyle(11, "#333333", AlignJustify, 0, 8)
	bullet := body
	bullet.SpaceAfter = 6
	bullet.LeftIndent = 20
	bullet.BulletIndent = 10

	title := textStyle(24, "#2c3e50", AlignCenter, 12, 12)
	title.Bold = true
	heading := textStyle(16, "#34495e", AlignLeft, 20, 12)
	heading.Bold = true
	subheading := textStyle(14, "#34495e", AlignLeft, 15, 8)
	subheading.Bold = true
	caption := textStyle(10, "#666666", AlignCenter, 6, 12)
	caption.Italic = true

	return Styles{
		Title:       title,
		Subtitle:    textStyle(18, "#2c3e50", AlignCenter, 10, 20),
		Heading:     heading,
		Subheading:  subheading,
		Body:        body,
		Bullet:      bullet,
		Placeholder: body,
		Caption:     caption,
	}
}

func textStyle(size float64, color string, align Align, before, after float64) Style {
	return Style{
		Size:        size,
		Leading:     size * leadingFactor,
		Color:       mustHex(color),
		Align:       align,
		SpaceBefore: before,
		SpaceAfter:  after,
	}
}

// ParseHexColor parses #rrggbb or #rgb into an RGB triple.
func ParseHexColor(s string) ([3]int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return [3]int{}, fmt.Errorf("invalid hex color %q", s)
	}
	var rgb [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return [3]int{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		rgb[i] = int(v)
	}
	return rgb, nil
}

func mustHex(s string) [3]int {
	rgb, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return rgb
}
