package challenge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FieldError is a single schema violation.
type FieldError struct {
	Path    string // dotted path such as "limits.0.name"; empty for the root
	Message string
}

func (e FieldError) Error() string {
	path := e.Path
	if path == "" {
		path = "root"
	}
	return path + ": " + e.Message
}

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Issues []FieldError
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		lines = append(lines, issue.Error())
	}
	return strings.Join(lines, "\n")
}

// Field returns the issues reported for path.
func (e *ValidationError) Field(path string) []FieldError {
	var out []FieldError
	for _, issue := range e.Issues {
		if issue.Path == path {
			out = append(out, issue)
		}
	}
	return out
}

// SyntaxError reports text that is not valid TOML. Its message is the
// parser's message, unchanged.
type SyntaxError struct {
	Line   int
	Column int
	err    error
}

func newSyntaxError(err error) *SyntaxError {
	se := &SyntaxError{err: err}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		se.Line, se.Column = de.Position()
	}
	return se
}

func (e *SyntaxError) Error() string {
	return e.err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.err
}

// ExportError reports that an in-memory document failed validation while
// being exported. This is a bug in whatever maintains the document, not bad
// user input; the full diagnostics are kept in Validation.
type ExportError struct {
	Validation *ValidationError
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("cannot export: data is invalid (%d issue(s)):\n%s", len(e.Validation.Issues), e.Validation.Error())
}

func (e *ExportError) Unwrap() error {
	return e.Validation
}
