package pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pkt.systems/mdpdf"
)

// ConvertRequest names a Markdown source and the PDF to produce from it.
type ConvertRequest struct {
	Source string
	Output string
	Config Config
	Logger mdpdf.Logger
	// Options are passed to the translator.
	Options []mdpdf.TranslateOption
}

// Result describes a written PDF.
type Result struct {
	Output string
	Bytes  int64
	Pages  int
	Blocks int
	// Replaced is set when an existing file at Output was overwritten.
	Replaced bool
}

// ConvertFile translates req.Source and renders it to req.Output. Source
// errors are reported before the output is touched. The PDF is written to a
// temporary file in the destination directory and renamed into place, so a
// failed conversion never leaves a partial file behind.
func ConvertFile(req ConvertRequest) (Result, error) {
	logger := req.Logger
	if logger == nil {
		logger = mdpdf.NopLogger()
	}
	if req.Source == "" {
		return Result{}, fmt.Errorf("pdf convert: source path is empty")
	}
	if req.Output == "" {
		return Result{}, fmt.Errorf("pdf convert: output path is empty")
	}

	logger.Info("Starting PDF conversion", "input", req.Source, "output", req.Output)
	doc, err := mdpdf.TranslateFile(req.Source, logger, req.Options...)
	if err != nil {
		return Result{}, err
	}
	_, statErr := os.Stat(req.Output)
	replaced := statErr == nil
	logger.Info("Converting to PDF...", "source", req.Source, "blocks", len(doc.Blocks))

	stats, size, err := writeAtomic(req.Output, func(f *os.File) (RenderStats, error) {
		return render(RenderRequest{Document: doc, Writer: f, Config: req.Config, Logger: logger})
	})
	if err != nil {
		return Result{}, err
	}
	if replaced {
		logger.Info("Replaced existing PDF", "output", req.Output)
	}
	logger.Info("PDF created", "output", req.Output, "bytes", size, "pages", stats.Pages)
	return Result{
		Output:   req.Output,
		Bytes:    size,
		Pages:    stats.Pages,
		Blocks:   stats.Blocks,
		Replaced: replaced,
	}, nil
}

func writeAtomic(path string, fill func(*os.File) (RenderStats, error)) (stats RenderStats, size int64, err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return RenderStats{}, 0, renderFailed(fmt.Errorf("create output dir: %w", err))
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return RenderStats{}, 0, renderFailed(fmt.Errorf("create temp file: %w", err))
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	stats, err = fill(tmp)
	if err != nil {
		return RenderStats{}, 0, err
	}
	if err = tmp.Sync(); err != nil {
		return RenderStats{}, 0, renderFailed(fmt.Errorf("sync: %w", err))
	}
	info, err := tmp.Stat()
	if err != nil {
		return RenderStats{}, 0, renderFailed(fmt.Errorf("stat: %w", err))
	}
	if err = tmp.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return RenderStats{}, 0, renderFailed(fmt.Errorf("close: %w", err))
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return RenderStats{}, 0, renderFailed(fmt.Errorf("chmod: %w", err))
	}
	if err = os.Rename(tmpName, path); err != nil {
		return RenderStats{}, 0, renderFailed(fmt.Errorf("rename: %w", err))
	}
	return stats, info.Size(), nil
}
