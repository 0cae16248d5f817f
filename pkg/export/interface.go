/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package export

import (
	"io"

	"github.com/goccy/go-json"
)

// # IDataProvider
//
// Provides dataset metadata for exporters which create new metadata export formats.
//
// All methods return ErrExport if data retrieval fails.
type IDataProvider interface {
	// Complete dataset metadata in Dataverse JSON format, dataset-level
	// metadata with basic metadata of each file.
	//
	// Respects DatasetMetadataOnly: file-level metadata is excluded.
	// Other options are ignored.
	DatasetJSON(DataContext) (json.RawMessage, error)

	// Dataset metadata in JSON-LD based OAI-ORE format.
	//
	// Respects DatasetMetadataOnly, other options are ignored.
	DatasetORE(DataContext) (json.RawMessage, error)

	// JSON array with detailed metadata of each dataset file, tabular and not.
	//
	// Respects DatasetMetadataOnly and PublicFilesOnly, pagination is ignored.
	DatasetFileDetails(DataContext) (json.RawMessage, error)

	// JSON array with detailed metadata of tabular files only.
	//
	// Respects PublicFilesOnly and pagination, DatasetMetadataOnly is ignored.
	TabularDataDetails(DataContext) (json.RawMessage, error)

	// Dataset metadata in schema.org JSON-LD. All options are ignored.
	DatasetSchemaDotOrg(DataContext) (json.RawMessage, error)

	// Dataset metadata in DataCite XML. All options are ignored.
	DataCiteXML(DataContext) (string, error)

	// Metadata in the format of exporter prerequisite and is it configured.
	// The prerequisite exporter receives the same context.
	PrerequisiteInput(DataContext) (io.Reader, bool, error)
}
