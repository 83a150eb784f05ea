package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so that callers can use
// errors.Is() while still printing a readable message.
var (
	// ErrEmptyInputPath is returned when the input path is blank.
	ErrEmptyInputPath = errors.New("invalid input: path must not be empty")

	// ErrEmptyOutputPath is returned when the output path is blank.
	ErrEmptyOutputPath = errors.New("invalid output: path must not be empty")

	// ErrUnknownFormat is returned when the report format is not html, markdown or json.
	ErrUnknownFormat = errors.New("unknown report format: must be html, markdown or json")

	// ErrUnknownTaxonomy is returned when the taxonomy is not a built-in one.
	ErrUnknownTaxonomy = errors.New("unknown severity taxonomy: must be standard or extended")
)
