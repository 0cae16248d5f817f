/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package export

import (
	"errors"
	"fmt"

	"github.com/voedger/mdschema/pkg/metadata"
)

// Export data retrieval failed
var ErrExport = errors.New("export failed")

func ErrExportFailed(msg string, args ...any) error {
	return metadata.EnrichError(ErrExport, msg, args...)
}

// Returns export error caused by err. Result matches both ErrExport and err with errors.Is
func ErrExportCausedBy(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s: %w", ErrExport, s, err)
}
