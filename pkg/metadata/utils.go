/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package metadata

import "strings"

// Returns is string empty or consists of white spaces only.
func IsBlank(s string) bool { return isBlank(s) }

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
