// Package podcast defines the error categories shared by the pipeline
// stages. Each stage wraps one of these sentinels with fmt.Errorf and
// callers classify with errors.Is.
package podcast

import "errors"

var (
	// ErrValidation covers bad user input such as a blank source name.
	ErrValidation = errors.New("invalid input")

	// ErrExtraction covers web extraction failures: network errors,
	// malformed URLs, pages with no readable text.
	ErrExtraction = errors.New("web extraction failed")

	// ErrGeneration covers language model failures and responses that
	// yield no usable dialogue.
	ErrGeneration = errors.New("script generation failed")

	// ErrSynthesis covers text-to-speech failures for any turn.
	ErrSynthesis = errors.New("speech synthesis failed")

	// ErrConfiguration covers missing credentials for a selected feature.
	ErrConfiguration = errors.New("feature not configured")
)
