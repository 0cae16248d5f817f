/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package metadata

const (
	// Inserted between base URI and local name if base URI has no trailing separator
	PathSeparator = "/"

	// Hash-based namespaces end with this separator
	FragmentSeparator = "#"

	// Delimiter between prefix and local name in compact IRI
	CompactIRISeparator = ":"
)
