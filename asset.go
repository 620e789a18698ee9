package mdpdf

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Image formats understood by the renderer. PNG, JPG and GIF are embedded
// directly; the rest are converted to PNG first.
var imageFormats = map[string]string{
	"image/png":  "PNG",
	"image/jpeg": "JPG",
	"image/gif":  "GIF",
	"image/bmp":  "BMP",
	"image/tiff": "TIFF",
	"image/webp": "WEBP",
}

// ResolvePath resolves an image reference against the source directory.
// Absolute references are returned unchanged.
func ResolvePath(baseDir, ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(baseDir, ref)
}

// ResolveImage locates, sniffs and sizes the image referenced by ref. The
// returned asset is already scaled to fit MaxImageWidth x MaxImageHeight.
// Failures are *AssetError values.
func ResolveImage(baseDir, alt, ref string) (ImageAsset, error) {
	path := ResolvePath(baseDir, ref)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ImageAsset{}, &AssetError{Kind: AssetMissing, Alt: alt, Path: path, Err: err}
		}
		return ImageAsset{}, &AssetError{Kind: AssetUnloadable, Alt: alt, Path: path, Err: err}
	}
	format, w, h, err := probeImage(path)
	if err != nil {
		return ImageAsset{}, &AssetError{Kind: AssetUnloadable, Alt: alt, Path: path, Err: err}
	}
	sw, sh := FitImage(w, h)
	return ImageAsset{Alt: alt, Path: path, Format: format, Width: sw, Height: sh}, nil
}

// probeImage returns the engine image type and the natural size in points,
// one pixel per point.
func probeImage(path string) (string, float64, float64, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", 0, 0, err
	}
	format, ok := imageFormats[mtype.String()]
	if !ok {
		return "", 0, 0, fmt.Errorf("unsupported image type %s", mtype.String())
	}
	f, err := os.Open(path)
	if err != nil {
		return "", 0, 0, err
	}
	defer func() { _ = f.Close() }()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return "", 0, 0, fmt.Errorf("decode %s: %w", format, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", 0, 0, fmt.Errorf("invalid image dimensions %dx%d", cfg.Width, cfg.Height)
	}
	return format, float64(cfg.Width), float64(cfg.Height), nil
}

// FitImage scales a natural size uniformly so it fits within MaxImageWidth
// and MaxImageHeight. Images are never upscaled.
func FitImage(width, height float64) (float64, float64) {
	scale := math.Min(math.Min(MaxImageWidth/width, MaxImageHeight/height), 1.0)
	return width * scale, height * scale
}
