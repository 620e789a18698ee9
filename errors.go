package mdpdf

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

var (
	// ErrSourceNotFound reports a Markdown source path that does not exist.
	ErrSourceNotFound = errors.New("markdown source not found")
	// ErrSourceUnreadable reports a source that could not be read or decoded.
	ErrSourceUnreadable = errors.New("markdown source unreadable")
	// ErrAssetMissing reports an image reference that resolves to no file.
	ErrAssetMissing = errors.New("image not found")
	// ErrAssetUnloadable reports an image file that could not be decoded.
	ErrAssetUnloadable = errors.New("image could not be loaded")
)

// Text codes attached to whole-document failures.
const (
	CodeSourceNotFound   = "SOURCE_NOT_FOUND"
	CodeSourceUnreadable = "SOURCE_UNREADABLE"
)

// AssetKind distinguishes recoverable image failures.
type AssetKind int

const (
	AssetMissing AssetKind = iota + 1
	AssetUnloadable
)

// AssetError is returned by ResolveImage when an image cannot be used. The
// translator replaces the image with a placeholder block.
type AssetError struct {
	Kind AssetKind
	Alt  string
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	switch e.Kind {
	case AssetMissing:
		return fmt.Sprintf("image not found: %s", e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("could not add image %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("could not add image %s", e.Path)
	}
}

func (e *AssetError) Unwrap() error { return e.Err }

// Is matches the ErrAssetMissing and ErrAssetUnloadable sentinels.
func (e *AssetError) Is(target error) bool {
	switch target {
	case ErrAssetMissing:
		return e.Kind == AssetMissing
	case ErrAssetUnloadable:
		return e.Kind == AssetUnloadable
	}
	return false
}

// Placeholder returns the text shown in place of the image.
func (e *AssetError) Placeholder() string {
	if e.Kind == AssetMissing {
		return "[Image not found: " + e.Alt + "]"
	}
	return "[Image: " + e.Alt + "]"
}

func sourceNotFound(path string, err error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err),
		goerrors.CategoryNotFound, "markdown source not found").
		WithTextCode(CodeSourceNotFound)
}

func sourceUnreadable(path string, err error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err),
		goerrors.CategoryBadInput, "markdown source unreadable").
		WithTextCode(CodeSourceUnreadable)
}

// IsSourceNotFound reports whether err is a Source-not-found failure.
func IsSourceNotFound(err error) bool {
	return errors.Is(err, ErrSourceNotFound) || goerrors.IsCategory(err, goerrors.CategoryNotFound)
}

// IsSourceUnreadable reports whether err is a Source-unreadable failure.
func IsSourceUnreadable(err error) bool {
	return errors.Is(err, ErrSourceUnreadable) || goerrors.IsCategory(err, goerrors.CategoryBadInput)
}
