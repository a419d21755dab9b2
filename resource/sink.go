// Package resource writes key/value resource bundles.
package resource

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

//go:generate mockgen -source=$GOFILE -package mock_resource -destination=../test/mock/resource/$GOFILE

var (
	ErrEmptyKey        = errors.New("empty resource key")
	ErrDuplicateKey    = errors.New("duplicate resource key")
	ErrInvalidEncoding = errors.New("resource is not valid UTF-8")
	ErrGenerated       = errors.New("resource bundle already generated")
)

// Sink receives resources one at a time and persists them on Generate.
// Close releases the sink and must be safe to call after a failed
// AddResource or Generate.
type Sink interface {
	AddResource(key string, value string) error
	Generate() error
	Close() error
}

// keySet enforces the rules every sink shares.
type keySet map[string]struct{}

func (s keySet) admit(key string, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if !utf8.ValidString(key) {
		return fmt.Errorf("%w: key %q", ErrInvalidEncoding, key)
	}
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: value of %q", ErrInvalidEncoding, key)
	}
	if _, exists := s[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	s[key] = struct{}{}
	return nil
}
