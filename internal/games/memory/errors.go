package memory

import (
	"errors"
	"fmt"
)

// Configuration errors returned by StartNewGame and GenerateDeck.
var (
	ErrNoFaces           = errors.New("at least one face is required")
	ErrDuplicateFace     = errors.New("faces must be unique")
	ErrEmptyFace         = errors.New("face must not be empty")
	ErrInvalidMaxGuesses = errors.New("max guesses must be greater than zero")
	ErrMalformedDeck     = errors.New("every face must appear exactly twice")
)

// Settings dialog errors.
var (
	ErrViewClosed   = errors.New("memory: settings view is not open")
	ErrUnknownField = errors.New("memory: unknown settings field")
)

// ConfigError reports a rejected game configuration.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("memory: invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
