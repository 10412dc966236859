// Package storage provides the SQLite vocabulary library.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bcanseco/rank-generator/internal/common"
	"github.com/bcanseco/rank-generator/internal/vocabulary"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidName  = errors.New("invalid vocabulary name")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateName ensures a library name can be written after "db:".
func validateName(name string) error {
	if err := validateString(name, "name"); err != nil {
		return err
	}
	if !common.IsIdentifier(name) {
		return fmt.Errorf("%w: %q (use letters, digits, '.', '-' or '_')", ErrInvalidName, name)
	}
	return nil
}

// validateVocabulary checks the word lists before they are written.
func validateVocabulary(vocab *vocabulary.Vocabulary) error {
	if vocab == nil {
		return fmt.Errorf("%w: vocabulary", ErrNilParameter)
	}
	return vocab.Validate()
}
