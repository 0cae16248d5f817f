/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package export

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"
)

// Keys of file-level metadata in dataset JSON and OAI-ORE documents
const (
	datasetVersionKey = "datasetVersion"
	filesKey          = "files"
	oreDescribesKey   = "ore:describes"
	oreAggregatesKey  = "ore:aggregates"
)

// Prepared export data. Empty JSON documents mean data is not available.
type StaticData struct {
	DatasetJSON         json.RawMessage
	DatasetORE          json.RawMessage
	DatasetFileDetails  json.RawMessage
	TabularDataDetails  json.RawMessage
	DatasetSchemaDotOrg json.RawMessage
	DataCiteXML         string

	// Nil means prerequisite is not configured
	Prerequisite []byte
}

// # StaticProvider
//
// Data provider over prepared documents. Useful to test exporters.
//
// File entries are considered not public if they have «"restricted": true»
// or not null «embargo».
type StaticProvider struct {
	data StaticData
}

func NewStaticProvider(data StaticData) *StaticProvider {
	return &StaticProvider{data: data}
}

func (p *StaticProvider) DatasetJSON(ctx DataContext) (json.RawMessage, error) {
	if len(p.data.DatasetJSON) == 0 {
		return nil, ErrExportFailed("dataset JSON is not available")
	}
	if !ctx.DatasetMetadataOnly() {
		return slices.Clone(p.data.DatasetJSON), nil
	}
	return stripKey(p.data.DatasetJSON, filesKey, datasetVersionKey)
}

func (p *StaticProvider) DatasetORE(ctx DataContext) (json.RawMessage, error) {
	if len(p.data.DatasetORE) == 0 {
		return nil, ErrExportFailed("dataset OAI-ORE is not available")
	}
	if !ctx.DatasetMetadataOnly() {
		return slices.Clone(p.data.DatasetORE), nil
	}
	return stripKey(p.data.DatasetORE, oreAggregatesKey, oreDescribesKey)
}

func (p *StaticProvider) DatasetFileDetails(ctx DataContext) (json.RawMessage, error) {
	if len(p.data.DatasetFileDetails) == 0 {
		return nil, ErrExportFailed("dataset file details are not available")
	}
	if ctx.DatasetMetadataOnly() {
		return json.RawMessage("[]"), nil
	}
	items, err := unmarshalArray(p.data.DatasetFileDetails)
	if err != nil {
		return nil, err
	}
	if ctx.PublicFilesOnly() {
		if items, err = publicOnly(items); err != nil {
			return nil, err
		}
	}
	return marshalArray(items)
}

func (p *StaticProvider) TabularDataDetails(ctx DataContext) (json.RawMessage, error) {
	if len(p.data.TabularDataDetails) == 0 {
		return nil, ErrExportFailed("tabular data details are not available")
	}
	items, err := unmarshalArray(p.data.TabularDataDetails)
	if err != nil {
		return nil, err
	}
	if ctx.PublicFilesOnly() {
		if items, err = publicOnly(items); err != nil {
			return nil, err
		}
	}
	res := page(items, ctx)
	if logger.IsVerbose() {
		logger.Verbose("tabular data details:", len(res), "of", len(items), "item(s),", ctx)
	}
	return marshalArray(res)
}

func (p *StaticProvider) DatasetSchemaDotOrg(DataContext) (json.RawMessage, error) {
	if len(p.data.DatasetSchemaDotOrg) == 0 {
		return nil, ErrExportFailed("schema.org metadata is not available")
	}
	return slices.Clone(p.data.DatasetSchemaDotOrg), nil
}

func (p *StaticProvider) DataCiteXML(DataContext) (string, error) {
	if p.data.DataCiteXML == "" {
		return "", ErrExportFailed("DataCite XML is not available")
	}
	return p.data.DataCiteXML, nil
}

func (p *StaticProvider) PrerequisiteInput(DataContext) (io.Reader, bool, error) {
	if p.data.Prerequisite == nil {
		return nil, false, nil
	}
	return bytes.NewReader(p.data.Prerequisite), true, nil
}

// Removes key from JSON object and from its nested objects with specified keys.
// Nested values which are not objects are kept as is
func stripKey(obj json.RawMessage, key string, nested ...string) (json.RawMessage, error) {
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(obj, &m); err != nil {
		return nil, ErrExportCausedBy(err, "JSON object expected")
	}
	delete(m, key)
	for _, n := range nested {
		v, ok := m[n]
		if !ok || !isObject(v) {
			continue
		}
		stripped, err := stripKey(v, key)
		if err != nil {
			return nil, err
		}
		m[n] = stripped
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, ErrExportCausedBy(err, "marshal JSON object")
	}
	return b, nil
}

func isObject(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == '{'
}

type fileAccess struct {
	Restricted bool            `json:"restricted"`
	Embargo    json.RawMessage `json:"embargo"`
}

func (a fileAccess) isPublic() bool {
	return !a.Restricted && (len(a.Embargo) == 0 || string(a.Embargo) == "null")
}

func publicOnly(items []json.RawMessage) ([]json.RawMessage, error) {
	res := make([]json.RawMessage, 0, len(items))
	for i, item := range items {
		a := fileAccess{}
		if err := json.Unmarshal(item, &a); err != nil {
			return nil, ErrExportCausedBy(err, "file entry %d", i)
		}
		if a.isPublic() {
			res = append(res, item)
		}
	}
	return res, nil
}

var _ IDataProvider = (*StaticProvider)(nil)
