package pdf

import (
	"bytes"
	"image"
	"image/png"
	"os"

	"github.com/jung-kurt/gofpdf"

	"pkt.systems/mdpdf"
)

// nativeFormats are embedded by gofpdf as-is.
var nativeFormats = map[string]bool{"PNG": true, "JPG": true, "GIF": true}

// registerImage makes img available to the document and returns the name
// to draw it with. Formats gofpdf cannot parse, and files it rejects such
// as interlaced PNGs, are decoded and re-encoded as plain PNG.
func (r *renderer) registerImage(img *mdpdf.ImageAsset) (string, gofpdf.ImageOptions, bool) {
	if nativeFormats[img.Format] {
		opts := gofpdf.ImageOptions{ImageType: img.Format, ReadDpi: false}
		if info := r.pdf.RegisterImageOptions(img.Path, opts); info != nil && !r.pdf.Err() {
			return img.Path, opts, true
		}
		r.logger.Debug("re-encoding image", "path", img.Path, "error", r.pdf.Error())
		r.pdf.ClearError()
	}

	name := img.Path + "#png"
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	buf, err := reencodePNG(img.Path)
	if err == nil {
		if info := r.pdf.RegisterImageOptionsReader(name, opts, buf); info != nil && !r.pdf.Err() {
			return name, opts, true
		}
		err = r.pdf.Error()
		r.pdf.ClearError()
	}
	r.logger.Warn("could not add image", "path", img.Path, "error", err)
	return "", opts, false
}

func reencodePNG(path string) (*bytes.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, src); err != nil {
		return nil, err
	}
	return &buf, nil
}
