/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package blockdef

import (
	"errors"
	"fmt"

	"github.com/voedger/mdschema/pkg/metadata"
)

var ErrDirContainsNoDefinitions = errors.New("directory contains no block definitions")

func ErrSyntax(err error) error {
	return metadata.EnrichError(metadata.ErrInvalidError, "syntax error: %v", err)
}

// Prefixes err with source position
func errorAt(pos string, err error) error {
	return fmt.Errorf("%s: %w", pos, err)
}
