package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode"

	pdfreader "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/require"

	"pkt.systems/mdpdf"
)

var fixedDate = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.CreationDate = fixedDate
	return cfg
}

func translate(t testing.TB, src, baseDir string) mdpdf.Document {
	t.Helper()
	doc, err := mdpdf.Translate(mdpdf.TranslateRequest{
		Reader:  strings.NewReader(src),
		BaseDir: baseDir,
	})
	require.NoError(t, err, "translate")
	return doc
}

func renderBytes(t *testing.T, doc mdpdf.Document, cfg Config) ([]byte, RenderStats) {
	t.Helper()
	var out bytes.Buffer
	stats, err := render(RenderRequest{Document: doc, Writer: &out, Config: cfg})
	require.NoError(t, err, "render")
	return out.Bytes(), stats
}

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 52, G: 152, B: 219, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

// pdfText extracts the text of all pages with whitespace removed. Words are
// drawn individually, so spacing in the extracted text is not meaningful.
func pdfText(t *testing.T, data []byte) (string, int) {
	t.Helper()
	r, err := pdfreader.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err, "open pdf")
	plain, err := r.GetPlainText()
	require.NoError(t, err, "extract text")
	raw, err := io.ReadAll(plain)
	require.NoError(t, err, "read text")
	return stripSpace(string(raw)), r.NumPage()
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

type recordLogger struct {
	mdpdf.Logger
	infos    []string
	warnings []string
}

func newRecordLogger() *recordLogger {
	return &recordLogger{Logger: mdpdf.NopLogger()}
}

func (l *recordLogger) Info(msg string, _ ...any) { l.infos = append(l.infos, msg) }
func (l *recordLogger) Warn(msg string, _ ...any) { l.warnings = append(l.warnings, msg) }
