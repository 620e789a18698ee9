package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pkt.systems/mdpdf"
)

// Config holds PDF rendering settings. Lengths are in points.
type Config struct {
	PageSize       string
	MarginLeft     float64
	MarginRight    float64
	MarginTop      float64
	MarginBottom   float64
	FontFamily     string
	RegularFont    string
	BoldFont       string
	ItalicFont     string
	BoldItalicFont string
	// CreationDate is written as both creation and modification date.
	// Zero means the time of rendering.
	CreationDate time.Time
	Title        string
	Author       string
	Subject      string
	Creator      string
}

const (
	coreFontFamily = "Helvetica"
	ttfFontFamily  = "mdpdf"
	defaultCreator = "mdpdf"
)

var pageSizes = []any{"A3", "A4", "A5", "Letter", "Legal"}

// DefaultConfig returns a baseline configuration: A4 with 2cm side margins,
// 2.5cm top and 2cm bottom margin, core Helvetica.
func DefaultConfig() Config {
	return Config{
		PageSize:     "A4",
		MarginLeft:   2 * mdpdf.Cm,
		MarginRight:  2 * mdpdf.Cm,
		MarginTop:    2.5 * mdpdf.Cm,
		MarginBottom: 2 * mdpdf.Cm,
		FontFamily:   coreFontFamily,
		Creator:      defaultCreator,
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = normalizePageSize(src.PageSize)
	}
	if src.MarginLeft > 0 {
		dst.MarginLeft = src.MarginLeft
	}
	if src.MarginRight > 0 {
		dst.MarginRight = src.MarginRight
	}
	if src.MarginTop > 0 {
		dst.MarginTop = src.MarginTop
	}
	if src.MarginBottom > 0 {
		dst.MarginBottom = src.MarginBottom
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if src.RegularFont != "" {
		dst.RegularFont = src.RegularFont
	}
	if src.BoldFont != "" {
		dst.BoldFont = src.BoldFont
	}
	if src.ItalicFont != "" {
		dst.ItalicFont = src.ItalicFont
	}
	if src.BoldItalicFont != "" {
		dst.BoldItalicFont = src.BoldItalicFont
	}
	if !src.CreationDate.IsZero() {
		dst.CreationDate = src.CreationDate
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Author != "" {
		dst.Author = src.Author
	}
	if src.Subject != "" {
		dst.Subject = src.Subject
	}
	if src.Creator != "" {
		dst.Creator = src.Creator
	}
}

func normalizePageSize(s string) string {
	s = strings.TrimSpace(s)
	for _, v := range pageSizes {
		if name := v.(string); strings.EqualFold(name, s) {
			return name
		}
	}
	return s
}

// Validate checks page size, margins and the font set.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.PageSize, validation.Required, validation.In(pageSizes...)),
		validation.Field(&c.MarginLeft, validation.Min(0.0)),
		validation.Field(&c.MarginRight, validation.Min(0.0)),
		validation.Field(&c.MarginTop, validation.Min(0.0)),
		validation.Field(&c.MarginBottom, validation.Min(0.0)),
		validation.Field(&c.FontFamily, validation.Required),
		validation.Field(&c.RegularFont, validation.By(c.fontSet)),
		validation.Field(&c.BoldItalicFont, validation.By(fontFile)),
	)
}

func (c Config) usesTTF() bool {
	return c.RegularFont != "" || c.BoldFont != "" || c.ItalicFont != ""
}

func (c Config) fontSet(any) error {
	if !c.usesTTF() {
		if c.BoldItalicFont != "" {
			return validation.NewError("mdpdf.pdf.font_set", "bold-italic font requires regular, bold and italic fonts")
		}
		if !isCoreFont(c.FontFamily) {
			return validation.NewError("mdpdf.pdf.core_font", "core font family required when font paths are empty")
		}
		return nil
	}
	if c.RegularFont == "" || c.BoldFont == "" || c.ItalicFont == "" {
		return validation.NewError("mdpdf.pdf.font_set", "regular, bold, and italic fonts must all be provided")
	}
	dir := filepath.Dir(c.RegularFont)
	for _, p := range []string{c.RegularFont, c.BoldFont, c.ItalicFont, c.BoldItalicFont} {
		if p == "" {
			continue
		}
		if err := fontFile(p); err != nil {
			return err
		}
		if filepath.Dir(p) != dir {
			return validation.NewError("mdpdf.pdf.font_dir", "font paths must be in the same directory")
		}
	}
	return nil
}

func fontFile(value any) error {
	path, _ := value.(string)
	if path == "" {
		return nil
	}
	if !strings.EqualFold(filepath.Ext(path), ".ttf") {
		return validation.NewError("mdpdf.pdf.font_ext", "expected .ttf font file")
	}
	info, err := os.Stat(path)
	if err != nil {
		return validation.NewError("mdpdf.pdf.font_missing", fmt.Sprintf("font missing: %v", err))
	}
	if info.IsDir() {
		return validation.NewError("mdpdf.pdf.font_dir", "font path is a directory")
	}
	return nil
}

func isCoreFont(name string) bool {
	switch name {
	case "Courier", "Helvetica", "Arial", "Times":
		return true
	default:
		return false
	}
}
