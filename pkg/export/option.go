/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package export

import "strings"

// Data retrieval option kind
type DataOption uint8

//go:generate stringer -type=DataOption -output=option_string.go

const (
	DataOption_null DataOption = iota

	// Retrieve dataset-level metadata only, without file-level metadata
	DataOption_DatasetMetadataOnly

	// Retrieve public files only, without restricted or embargoed ones
	DataOption_PublicFilesOnly

	DataOption_count
)

const dataOptionPrefix = "DataOption_"

func (o DataOption) IsValid() bool {
	return o > DataOption_null && o < DataOption_count
}

// Renders a DataOption in human-readable form, without «DataOption_» prefix
func (o DataOption) TrimString() string {
	return strings.TrimPrefix(o.String(), dataOptionPrefix)
}
