package model

import "errors"

// Sentinel errors shared across the analysis layers. Callers match with
// errors.Is; boundary layers (CLI, HTTP) map them to exit codes or status
// codes.
var (
	// ErrUnsupportedLanguage is returned for a language code outside the
	// registry-defined set. There is no fallback language.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrValidation is returned for out-of-range request parameters
	// (e.g. density_bias outside [0,1]).
	ErrValidation = errors.New("invalid parameter")

	// ErrModelLoad is returned when an NLP engine cannot be initialized.
	// This is fatal for the affected language and is not retried.
	ErrModelLoad = errors.New("nlp model load failed")

	// ErrMarkerData is returned when a marker bundle fails its integrity
	// check at load time, before any text is scored.
	ErrMarkerData = errors.New("malformed marker data")
)
