// Package apperror defines the application's error taxonomy. Every error
// that reaches the user carries a short advisory message; internal causes
// stay wrapped and are only ever logged, never shown.
package apperror

import (
	"errors"
	"fmt"
)

// ValidationError is a locally detected input problem: an empty analysis
// prompt or incomplete export data. Fully recoverable by user correction.
type ValidationError struct {
	Advisory string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return "validation failed"
}

// ModelError is an error the language model itself reported through the
// response schema. The advisory is surfaced verbatim.
type ModelError struct {
	Advisory string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model reported: %s", e.Advisory)
}

// ExtractionError covers transport failures and unparseable model output.
// Both collapse into one generic retry advisory; Err keeps the cause for
// internal logging.
type ExtractionError struct {
	Advisory string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ExportError is a failure while writing the spreadsheet file itself, after
// validation and projection succeeded.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s failed: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// AdvisoryOf extracts the user-facing advisory from an error, or "" when the
// error carries none.
func AdvisoryOf(err error) string {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.Advisory
	}
	var model *ModelError
	if errors.As(err, &model) {
		return model.Advisory
	}
	var extraction *ExtractionError
	if errors.As(err, &extraction) {
		return extraction.Advisory
	}
	return ""
}
