package pdf

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

var (
	// ErrRenderFailed reports a failure during layout or PDF emission.
	ErrRenderFailed = errors.New("pdf render failed")
	// ErrConfigInvalid reports a rejected Config.
	ErrConfigInvalid = errors.New("pdf config invalid")
)

// Text codes attached to rendering failures.
const (
	CodeRenderFailed  = "RENDER_FAILED"
	CodeConfigInvalid = "CONFIG_INVALID"
)

func renderFailed(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(fmt.Errorf("%w: %v", ErrRenderFailed, err),
		goerrors.CategoryInternal, "pdf render failed").
		WithTextCode(CodeRenderFailed)
}

// configInvalid keeps ozzo's per-field messages as validation errors.
func configInvalid(err error) error {
	return goerrors.FromOzzoValidation(err, ErrConfigInvalid.Error()).
		WithTextCode(CodeConfigInvalid)
}

// IsRenderFailed reports whether err is a rendering failure.
func IsRenderFailed(err error) bool {
	return errors.Is(err, ErrRenderFailed) || goerrors.IsCategory(err, goerrors.CategoryInternal)
}

// IsConfigInvalid reports whether err is a configuration failure.
func IsConfigInvalid(err error) bool {
	return errors.Is(err, ErrConfigInvalid) || goerrors.IsCategory(err, goerrors.CategoryValidation)
}
