package challenge

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// Result is a successfully imported document with its advisory warnings.
type Result struct {
	Challenge Challenge
	Warnings  []string
}

// ImportOption configures Import.
type ImportOption func(*importConfig)

type importConfig struct {
	knownRoles []string
}

// WithKnownRoles replaces the role list used for unknown-role warnings.
func WithKnownRoles(roles []string) ImportOption {
	return func(cfg *importConfig) {
		cfg.knownRoles = roles
	}
}

// Import parses a TOML document, validates and normalizes it, and computes
// its warnings.
//
// Errors are hard failures and no document is returned: an *InputError
// wrapping ErrInvalidUTF8 or ErrBinaryInput for input that is not text, *SyntaxError for malformed
// TOML, and *ValidationError for schema violations. Warnings never fail an
// import.
func Import(data []byte, opts ...ImportOption) (Result, error) {
	cfg := importConfig{knownRoles: KnownRoles}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	data = trimBOM(data)
	if err := ValidateInput(data); err != nil {
		return Result{}, err
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Result{}, newSyntaxError(err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	c, err := Validate(raw)
	if err != nil {
		return Result{}, err
	}
	return Result{Challenge: c, Warnings: WarningsWithRoles(c, cfg.knownRoles)}, nil
}

// ImportReader reads r to the end and imports it.
func ImportReader(r io.Reader, opts ...ImportOption) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read document: %w", err)
	}
	return Import(data, opts...)
}

// Export validates c and encodes the normalized document as TOML. A
// validation failure is returned as *ExportError since documents held in
// memory are expected to be valid at all times.
func Export(c Challenge) ([]byte, error) {
	normalized, err := Validate(c)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return nil, &ExportError{Validation: ve}
		}
		return nil, err
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetArraysMultiline(true)
	if err := enc.Encode(normalized); err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportTo writes the TOML form of c to w.
func ExportTo(w io.Writer, c Challenge) error {
	data, err := Export(c)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
