package mdpdf

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TranslateRequest contains inputs for Markdown translation.
type TranslateRequest struct {
	Reader io.Reader
	// BaseDir resolves relative image references. Empty means the working
	// directory.
	BaseDir string
	Logger  Logger
	Options []TranslateOption
}

// TranslateFile reads the Markdown file at path and translates it, resolving
// images against the file's directory. A missing file yields an error
// matching ErrSourceNotFound; a read or decode failure one matching
// ErrSourceUnreadable.
func TranslateFile(path string, logger Logger, opts ...TranslateOption) (Document, error) {
	src, err := ReadSource(path)
	if err != nil {
		return Document{}, err
	}
	return translateBytes(src, filepath.Dir(path), logger, opts)
}

// ReadSource reads and validates a Markdown source file.
func ReadSource(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, sourceNotFound(path, err)
		}
		return nil, sourceUnreadable(path, err)
	}
	defer func() { _ = f.Close() }()
	info, err := f.Stat()
	if err != nil {
		return nil, sourceUnreadable(path, err)
	}
	if info.IsDir() {
		return nil, sourceUnreadable(path, errors.New("path is a directory"))
	}
	src, err := io.ReadAll(f)
	if err != nil {
		return nil, sourceUnreadable(path, err)
	}
	if err := ValidateInput(src); err != nil {
		return nil, sourceUnreadable(path, err)
	}
	return src, nil
}

// Translate converts Markdown from req.Reader into a block sequence.
func Translate(req TranslateRequest) (Document, error) {
	if req.Reader == nil {
		return Document{}, fmt.Errorf("translate: reader is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return Document{}, sourceUnreadable("<reader>", err)
	}
	if err := ValidateInput(src); err != nil {
		return Document{}, sourceUnreadable("<reader>", err)
	}
	return translateBytes(src, req.BaseDir, req.Logger, req.Options)
}

func translateBytes(src []byte, baseDir string, logger Logger, opts []TranslateOption) (Document, error) {
	cfg := newTranslateConfig(opts)
	src = trimBOM(src)
	var meta Metadata
	if cfg.frontMatter {
		m, body, err := ParseFrontMatter(src)
		if err != nil {
			return Document{}, sourceUnreadable("<front matter>", err)
		}
		meta, src = m, body
	}

	// A trailing newline yields a final blank line, which flushes any open
	// list and adds a spacer.
	t := newTranslator(baseDir, logger)
	for _, line := range strings.Split(string(src), "\n") {
		t.step(Classify(line))
	}
	t.finish()

	if meta.Title == "" {
		for _, b := range t.blocks {
			if b.Kind == KindTitle {
				meta.Title = b.Text
				break
			}
		}
	}
	return Document{Meta: meta, Blocks: t.blocks}, nil
}

type listState int

const (
	notInList listState = iota
	inList
)

type translator struct {
	baseDir string
	logger  Logger
	styles  Styles
	state   listState
	pending []string
	blocks  []Block
}

func newTranslator(baseDir string, logger Logger) *translator {
	return &translator{
		baseDir: baseDir,
		logger:  loggerOrNop(logger),
		styles:  DefaultStyles(),
	}
}

func (t *translator) step(line Line) {
	if line.Kind != LineListItem {
		t.flushList()
	}
	switch line.Kind {
	case LineBlank:
		t.spacer(blankSpacer)
	case LineHeading:
		t.text(headingKind(line.Level), line.Text)
	case LineImage:
		t.image(line.Alt, line.Path)
	case LineRule:
		t.spacer(ruleSpacer)
		t.blocks = append(t.blocks, Block{
			Kind:   KindRule,
			Height: RuleHeight,
			Rule:   &Rule{Width: RuleWidth, Thickness: RuleThickness, Color: RuleColor},
		})
		t.spacer(ruleSpacer)
	case LineListItem:
		t.state = inList
		t.pending = append(t.pending, FormatBold(line.Text))
	case LineParagraph:
		if strings.HasPrefix(line.Text, "**Date:**") {
			return
		}
		if text := FormatInline(line.Text); text != "" {
			t.text(KindBody, text)
		}
	}
}

func (t *translator) finish() {
	t.flushList()
}

func (t *translator) flushList() {
	if t.state != inList {
		return
	}
	for _, item := range t.pending {
		t.text(KindBullet, item)
	}
	t.pending = t.pending[:0]
	t.state = notInList
}

func (t *translator) text(kind Kind, text string) {
	t.blocks = append(t.blocks, Block{Kind: kind, Text: text, Style: t.styles.For(kind)})
}

func (t *translator) spacer(height float64) {
	t.blocks = append(t.blocks, Block{Kind: KindSpacer, Height: height})
}

func (t *translator) image(alt, ref string) {
	asset, err := ResolveImage(t.baseDir, alt, ref)
	if err != nil {
		var aerr *AssetError
		if !errors.As(err, &aerr) {
			aerr = &AssetError{Kind: AssetUnloadable, Alt: alt, Path: ref, Err: err}
		}
		t.logger.Warn(aerr.Error(), "alt", alt, "path", aerr.Path)
		t.text(KindPlaceholder, aerr.Placeholder())
		return
	}
	t.spacer(imageSpacer)
	t.blocks = append(t.blocks, Block{Kind: KindImage, Image: &asset})
	if alt != "" {
		t.text(KindCaption, alt)
	}
	t.spacer(imageSpacer)
}

func headingKind(level int) Kind {
	switch level {
	case 1:
		return KindTitle
	case 2:
		return KindSubtitle
	case 3:
		return KindHeading
	default:
		return KindSubheading
	}
}
