package mdpdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"go.yaml.in/yaml/v3"
)

// Outline formats.
const (
	OutlineText = "text"
	OutlineYAML = "yaml"
)

const (
	outlineKindWidth = 12
	minOutlineWidth  = 30
)

// WriteOutline prints the block sequence of doc. The text format lists one
// block per entry with text wrapped to width columns; the yaml format dumps
// the document model.
func WriteOutline(w io.Writer, doc Document, format string, width int) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", OutlineText:
		return writeTextOutline(w, doc, width)
	case OutlineYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("outline: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("outline: unknown format %q", format)
	}
}

func writeTextOutline(w io.Writer, doc Document, width int) error {
	if width < minOutlineWidth {
		width = minOutlineWidth
	}
	textWidth := width - outlineKindWidth
	for _, b := range doc.Blocks {
		detail := outlineDetail(b)
		head := fmt.Sprintf("%-*s", outlineKindWidth, b.Kind.String())
		if detail == "" {
			if _, err := fmt.Fprintln(w, strings.TrimRight(head, " ")); err != nil {
				return err
			}
			continue
		}
		wrapped := wordwrap.String(detail, textWidth)
		first, rest, _ := strings.Cut(wrapped, "\n")
		if _, err := fmt.Fprintln(w, head+first); err != nil {
			return err
		}
		if rest != "" {
			if _, err := fmt.Fprintln(w, indent.String(rest, outlineKindWidth)); err != nil {
				return err
			}
		}
	}
	return nil
}

func outlineDetail(b Block) string {
	switch b.Kind {
	case KindSpacer:
		return fmt.Sprintf("%gpt", b.Height)
	case KindImage:
		if b.Image == nil {
			return ""
		}
		return fmt.Sprintf("%s %s %.1fx%.1fpt", b.Image.Path, b.Image.Format, b.Image.Width, b.Image.Height)
	case KindRule:
		if b.Rule == nil {
			return ""
		}
		return fmt.Sprintf("%.1fpt x %gpt", b.Rule.Width, b.Rule.Thickness)
	case KindBullet:
		return "• " + b.Text
	default:
		return b.Text
	}
}
