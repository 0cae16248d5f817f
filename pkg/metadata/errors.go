/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package metadata

import (
	"errors"
	"fmt"
)

// Wraps err with formatted message. Result matches err with errors.Is.
func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

// Required value is absent
var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

// Supplied value violates structural precondition
var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

// Operation is forbidden by object lifecycle, e.g. building with consumed builder
var ErrConsumedError = errors.New("already used")

func ErrConsumed(msg string, args ...any) error {
	return EnrichError(ErrConsumedError, msg, args...)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

var ErrUnsupportedError = errors.New("unsupported")

func ErrUnsupported(msg string, args ...any) error {
	return EnrichError(ErrUnsupportedError, msg, args...)
}
