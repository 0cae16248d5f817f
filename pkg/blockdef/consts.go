/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package blockdef

// Definition file extensions, lower case
const (
	DSLFileExt  = ".mbd"
	YAMLFileExt = ".yaml"
	YMLFileExt  = ".yml"
	JSONFileExt = ".json"
)

// Separates namespace prefix and local name in qualified field names, e.g. «geo.country»
const qualifiedNameSeparator = "."
