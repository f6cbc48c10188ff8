package challenge

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

// Documents shorter than minBinarySample bytes are only rejected for a NUL.
const (
	minBinarySample = 64
	maxControlPct   = 2
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// InputError locates the first byte that made a document unreadable as text.
// Line and Column are 1-based; Column counts runes.
type InputError struct {
	Line   int
	Column int
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v at line %d, column %d", e.Err, e.Line, e.Column)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ValidateInput returns an *InputError wrapping ErrInvalidUTF8 or
// ErrBinaryInput if src is not a UTF-8 text document. Control characters
// TOML forbids count toward the binary heuristic; a NUL always fails.
func ValidateInput(src []byte) error {
	var (
		firstControl *InputError
		control      int
		line, col    = 1, 1
	)
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			return &InputError{Line: line, Column: col, Err: ErrInvalidUTF8}
		case r == 0:
			return &InputError{Line: line, Column: col, Err: ErrBinaryInput}
		case isControl(r):
			control++
			if firstControl == nil {
				firstControl = &InputError{Line: line, Column: col, Err: ErrBinaryInput}
			}
		}
		i += size
		if r == '\n' {
			line, col = line+1, 1
			continue
		}
		col++
	}
	if firstControl != nil && len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return firstControl
	}
	return nil
}

func isControl(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	return r < 0x20 || r == 0x7F
}

func trimBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, utf8BOM)
}
