package mdpdf

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestFitImage(t *testing.T) {
	cases := []struct {
		name         string
		w, h         float64
		wantW, wantH float64
	}{
		{"wide", 30 * Cm, 5 * Cm, 15 * Cm, 2.5 * Cm},
		{"tall", 5 * Cm, 20 * Cm, 2.5 * Cm, 10 * Cm},
		{"small", 100, 50, 100, 50},
		{"exact", 15 * Cm, 10 * Cm, 15 * Cm, 10 * Cm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := FitImage(tc.w, tc.h)
			assert.InDelta(t, tc.wantW, w, 1e-9)
			assert.InDelta(t, tc.wantH, h, 1e-9)
		})
	}
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, filepath.Join("docs", "img", "a.png"), ResolvePath("docs", "img/a.png"))
	abs := filepath.Join(t.TempDir(), "a.png")
	assert.Equal(t, abs, ResolvePath("docs", abs))
}

func TestResolveImagePNG(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "a.png"), 64, 32)
	asset, err := ResolveImage(dir, "Alt", "a.png")
	require.NoError(t, err)
	assert.Equal(t, "PNG", asset.Format)
	assert.Equal(t, "Alt", asset.Alt)
	assert.Equal(t, 64.0, asset.Width)
	assert.Equal(t, 32.0, asset.Height)
}

func TestResolveImageSniffsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	img.Set(0, 0, color.White)
	require.NoError(t, jpeg.Encode(f, img, nil))
	require.NoError(t, f.Close())

	asset, err := ResolveImage(dir, "", "photo.png")
	require.NoError(t, err)
	assert.Equal(t, "JPG", asset.Format)
}

func TestResolveImageMissing(t *testing.T) {
	_, err := ResolveImage(t.TempDir(), "Gone", "gone.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAssetMissing)
	var aerr *AssetError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "[Image not found: Gone]", aerr.Placeholder())
}

func TestResolveImageUnloadable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.png"), []byte("\x89PNG\r\n\x1a\ntruncated"), 0o644))
	_, err := ResolveImage(dir, "X", "x.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAssetUnloadable)
	assert.NotErrorIs(t, err, ErrAssetMissing)
	var aerr *AssetError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "[Image: X]", aerr.Placeholder())
}

func TestResolveImageDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))
	_, err := ResolveImage(dir, "", "sub.png")
	assert.ErrorIs(t, err, ErrAssetUnloadable)
}
