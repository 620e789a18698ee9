package pdf

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"pkt.systems/mdpdf"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Document mdpdf.Document
	Writer   io.Writer
	Config   Config
	Logger   mdpdf.Logger
}

// RenderStats describes a finished rendering.
type RenderStats struct {
	Pages  int
	Blocks int
}

// Render paginates the block sequence of req.Document and writes a PDF.
func Render(req RenderRequest) error {
	_, err := render(req)
	return err
}

func render(req RenderRequest) (RenderStats, error) {
	if req.Writer == nil {
		return RenderStats{}, fmt.Errorf("pdf render: writer is nil")
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	if err := cfg.Validate(); err != nil {
		return RenderStats{}, configInvalid(err)
	}

	pdf := gofpdf.New("P", "pt", cfg.PageSize, "")
	pdf.SetMargins(cfg.MarginLeft, cfg.MarginTop, cfg.MarginRight)
	pdf.SetAutoPageBreak(false, cfg.MarginBottom)
	pdf.SetCatalogSort(true)
	if !cfg.CreationDate.IsZero() {
		pdf.SetCreationDate(cfg.CreationDate)
		pdf.SetModificationDate(cfg.CreationDate)
	}

	family := cfg.FontFamily
	tr := func(s string) string { return s }
	if cfg.usesTTF() {
		family = ttfFontFamily
		pdf.SetFontLocation(filepath.Dir(cfg.RegularFont))
		pdf.AddUTF8Font(family, "", filepath.Base(cfg.RegularFont))
		pdf.AddUTF8Font(family, "B", filepath.Base(cfg.BoldFont))
		pdf.AddUTF8Font(family, "I", filepath.Base(cfg.ItalicFont))
		if cfg.BoldItalicFont != "" {
			pdf.AddUTF8Font(family, "BI", filepath.Base(cfg.BoldItalicFont))
		}
	} else {
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.SetFont(family, "", mdpdf.DefaultStyles().Body.Size)
	if err := pdf.Error(); err != nil {
		return RenderStats{}, renderFailed(fmt.Errorf("font setup: %w", err))
	}
	setMetadata(pdf, cfg, req.Document.Meta)

	r := newRenderer(pdf, cfg, family, tr, req.Logger)
	r.newPage()
	for i, b := range req.Document.Blocks {
		r.block(b)
		if err := pdf.Error(); err != nil {
			return RenderStats{}, renderFailed(fmt.Errorf("block %d (%s): %w", i, b.Kind, err))
		}
	}
	stats := RenderStats{Pages: pdf.PageNo(), Blocks: len(req.Document.Blocks)}
	if err := pdf.Output(req.Writer); err != nil {
		return RenderStats{}, renderFailed(fmt.Errorf("output: %w", err))
	}
	return stats, nil
}

func setMetadata(pdf *gofpdf.Fpdf, cfg Config, meta mdpdf.Metadata) {
	title := firstNonEmpty(cfg.Title, meta.Title)
	author := firstNonEmpty(cfg.Author, meta.Author)
	subject := firstNonEmpty(cfg.Subject, meta.Subject)
	if title != "" {
		pdf.SetTitle(title, true)
	}
	if author != "" {
		pdf.SetAuthor(author, true)
	}
	if subject != "" {
		pdf.SetSubject(subject, true)
	}
	if len(meta.Keywords) > 0 {
		pdf.SetKeywords(strings.Join(meta.Keywords, " "), true)
	}
	if cfg.Creator != "" {
		pdf.SetCreator(cfg.Creator, true)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type renderer struct {
	pdf    *gofpdf.Fpdf
	cfg    Config
	family string
	tr     func(string) string
	logger mdpdf.Logger
	left   float64
	frameW float64
	top    float64
	bottom float64
	y      float64
}

func newRenderer(pdf *gofpdf.Fpdf, cfg Config, family string, tr func(string) string, logger mdpdf.Logger) *renderer {
	if logger == nil {
		logger = mdpdf.NopLogger()
	}
	pageW, pageH := pdf.GetPageSize()
	return &renderer{
		pdf:    pdf,
		cfg:    cfg,
		family: family,
		tr:     tr,
		logger: logger,
		left:   cfg.MarginLeft,
		frameW: pageW - cfg.MarginLeft - cfg.MarginRight,
		top:    cfg.MarginTop,
		bottom: pageH - cfg.MarginBottom,
	}
}

func (r *renderer) newPage() {
	r.pdf.AddPage()
	r.y = r.top
}

func (r *renderer) atTop() bool {
	return r.y <= r.top
}

// ensure starts a new page unless h more points fit on the current one.
func (r *renderer) ensure(h float64) {
	if r.y+h > r.bottom && !r.atTop() {
		r.newPage()
	}
}

func (r *renderer) block(b mdpdf.Block) {
	switch {
	case b.Kind.IsText():
		r.text(b)
	case b.Kind == mdpdf.KindSpacer:
		r.spacer(b.Height)
	case b.Kind == mdpdf.KindImage:
		r.image(b)
	case b.Kind == mdpdf.KindRule:
		r.rule(b)
	}
}

func (r *renderer) spacer(h float64) {
	if r.y+h > r.bottom {
		r.newPage()
		return
	}
	r.y += h
}

func (r *renderer) measure(text, style string, size float64) float64 {
	r.pdf.SetFont(r.family, r.fontStyle(style), size)
	return r.pdf.GetStringWidth(r.tr(text))
}

// fontStyle maps BI to B when no bold-italic TTF is configured.
func (r *renderer) fontStyle(style string) string {
	if style == "BI" && r.cfg.usesTTF() && r.cfg.BoldItalicFont == "" {
		return "B"
	}
	return style
}

func (r *renderer) text(b mdpdf.Block) {
	st := b.Style
	if st.Size <= 0 {
		st = mdpdf.DefaultStyles().For(b.Kind)
	}
	leading := st.Leading
	if leading <= 0 {
		leading = st.Size * 1.2
	}
	if !r.atTop() {
		r.y += st.SpaceBefore
	}
	avail := r.frameW - st.LeftIndent
	words := buildWords(parseMarkup(b.Text), st, st.Size, r)
	space := r.measure(" ", fontStyle(st.Bold, st.Italic), st.Size)
	lines := breakLines(words, avail, space)

	r.pdf.SetTextColor(st.Color[0], st.Color[1], st.Color[2])
	for i, line := range lines {
		r.ensure(leading)
		baseline := r.y + leading*0.8
		x0 := r.left + st.LeftIndent
		if i == 0 && b.Kind == mdpdf.KindBullet {
			r.pdf.SetFont(r.family, fontStyle(st.Bold, st.Italic), st.Size)
			r.pdf.Text(r.left+st.BulletIndent, baseline, r.tr("•"))
		}
		xs := placeLine(line, st.Align, avail, space)
		for wi, w := range line.words {
			x := x0 + xs[wi]
			for _, f := range w.frags {
				r.pdf.SetFont(r.family, r.fontStyle(f.style), st.Size)
				r.pdf.Text(x, baseline, r.tr(f.text))
				x += f.width
			}
		}
		r.y += leading
	}
	r.y += st.SpaceAfter
}

func (r *renderer) rule(b mdpdf.Block) {
	rule := b.Rule
	if rule == nil {
		rule = &mdpdf.Rule{Width: mdpdf.RuleWidth, Thickness: mdpdf.RuleThickness, Color: mdpdf.RuleColor}
	}
	h := b.Height
	if h <= 0 {
		h = mdpdf.RuleHeight
	}
	r.ensure(h)
	w := rule.Width
	if w > r.frameW {
		w = r.frameW
	}
	x := r.left + (r.frameW-w)/2
	r.pdf.SetDrawColor(rule.Color[0], rule.Color[1], rule.Color[2])
	r.pdf.SetLineWidth(rule.Thickness)
	r.pdf.Line(x, r.y, x+w, r.y)
	r.y += h
}

func (r *renderer) image(b mdpdf.Block) {
	img := b.Image
	if img == nil {
		return
	}
	name, opts, ok := r.registerImage(img)
	if !ok {
		r.text(mdpdf.Block{
			Kind:  mdpdf.KindPlaceholder,
			Text:  (&mdpdf.AssetError{Kind: mdpdf.AssetUnloadable, Alt: img.Alt}).Placeholder(),
			Style: mdpdf.DefaultStyles().Placeholder,
		})
		return
	}
	w, h := fitWidth(img.Width, img.Height, r.frameW)
	r.ensure(h)
	x := r.left + (r.frameW-w)/2
	r.pdf.ImageOptions(name, x, r.y, w, h, false, opts, 0, "")
	r.y += h
}

// fitWidth scales w and h by the same factor so w does not exceed maxW.
func fitWidth(w, h, maxW float64) (float64, float64) {
	if w <= maxW || w <= 0 {
		return w, h
	}
	scale := maxW / w
	return maxW, h * scale
}
