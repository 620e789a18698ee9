package mdpdf

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

// ErrInvalidUTF8 reports invalid UTF-8 input.
var ErrInvalidUTF8 = errors.New("invalid utf-8 input")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ValidateInput returns an error if the input is not valid UTF-8. Control
// characters, NUL included, are valid text and pass through.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	return nil
}

func trimBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, utf8BOM)
}
