/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package export

import (
	"errors"
	"io"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const (
	testDatasetJSON = `{
		"id": 42,
		"identifier": "doi:10.5072/FK2/ABC",
		"datasetVersion": {"versionNumber": 1, "files": [{"id": 1}, {"id": 2}]},
		"files": [{"id": 1}, {"id": 2}]
	}`
	testORE = `{
		"@context": {"ore": "http://www.openarchives.org/ore/terms/"},
		"ore:describes": {"title": "Sample", "ore:aggregates": [{"id": 1}]}
	}`
	testFileDetails = `[
		{"id": 1, "restricted": false},
		{"id": 2, "restricted": true},
		{"id": 3, "embargo": {"dateAvailable": "2099-01-01"}},
		{"id": 4, "embargo": null}
	]`
	testTabular = `[
		{"id": 10}, {"id": 11, "restricted": true}, {"id": 12}, {"id": 13}, {"id": 14}
	]`
)

func testProvider() *StaticProvider {
	return NewStaticProvider(StaticData{
		DatasetJSON:         json.RawMessage(testDatasetJSON),
		DatasetORE:          json.RawMessage(testORE),
		DatasetFileDetails:  json.RawMessage(testFileDetails),
		TabularDataDetails:  json.RawMessage(testTabular),
		DatasetSchemaDotOrg: json.RawMessage(`{"@type": "Dataset"}`),
		DataCiteXML:         `<resource/>`,
		Prerequisite:        []byte("<codeBook/>"),
	})
}

func mustContext(t *testing.T, b *DataContextBuilder) DataContext {
	ctx, err := b.Build()
	require.NoError(t, err)
	return ctx
}

func TestStaticProvider_DatasetJSON(t *testing.T) {
	require := require.New(t)
	p := testProvider()

	res, err := p.DatasetJSON(DefaultDataContext())
	require.NoError(err)
	require.JSONEq(testDatasetJSON, string(res))

	res, err = p.DatasetJSON(mustContext(t, NewDataContextBuilder().DatasetMetadataOnly()))
	require.NoError(err)
	require.JSONEq(`{
		"id": 42,
		"identifier": "doi:10.5072/FK2/ABC",
		"datasetVersion": {"versionNumber": 1}
	}`, string(res))

	t.Run("pagination is ignored", func(t *testing.T) {
		res, err := p.DatasetJSON(mustContext(t, NewDataContextBuilder().Offset(1).Length(1)))
		require.NoError(err)
		require.JSONEq(testDatasetJSON, string(res))
	})

	t.Run("result is a copy", func(t *testing.T) {
		res, err := p.DatasetJSON(DefaultDataContext())
		require.NoError(err)
		res[0] = 'x'
		res, err = p.DatasetJSON(DefaultDataContext())
		require.NoError(err)
		require.JSONEq(testDatasetJSON, string(res))
	})
}

func TestStaticProvider_DatasetORE(t *testing.T) {
	require := require.New(t)
	p := testProvider()

	res, err := p.DatasetORE(mustContext(t, NewDataContextBuilder().Options(DataOption_DatasetMetadataOnly)))
	require.NoError(err)
	require.JSONEq(`{
		"@context": {"ore": "http://www.openarchives.org/ore/terms/"},
		"ore:describes": {"title": "Sample"}
	}`, string(res))
}

func TestStaticProvider_DatasetFileDetails(t *testing.T) {
	require := require.New(t)
	p := testProvider()

	res, err := p.DatasetFileDetails(DefaultDataContext())
	require.NoError(err)
	require.JSONEq(testFileDetails, string(res))

	res, err = p.DatasetFileDetails(mustContext(t, NewDataContextBuilder().PublicFilesOnly().Length(1)))
	require.NoError(err)
	require.JSONEq(`[{"id": 1, "restricted": false}, {"id": 4, "embargo": null}]`, string(res))

	res, err = p.DatasetFileDetails(mustContext(t, NewDataContextBuilder().DatasetMetadataOnly()))
	require.NoError(err)
	require.JSONEq(`[]`, string(res))
}

func TestStaticProvider_TabularDataDetails(t *testing.T) {
	tests := []struct {
		name   string
		b      *DataContextBuilder
		expect string
	}{
		{"all", NewDataContextBuilder(), testTabular},
		{"metadata only is ignored", NewDataContextBuilder().DatasetMetadataOnly(), testTabular},
		{"public", NewDataContextBuilder().PublicFilesOnly(), `[{"id": 10}, {"id": 12}, {"id": 13}, {"id": 14}]`},
		{"page", NewDataContextBuilder().Offset(1).Length(2), `[{"id": 11, "restricted": true}, {"id": 12}]`},
		{"public page", NewDataContextBuilder().PublicFilesOnly().Offset(1).Length(2), `[{"id": 12}, {"id": 13}]`},
		{"offset beyond end", NewDataContextBuilder().Offset(100), `[]`},
		{"zero length", NewDataContextBuilder().Length(0), `[]`},
	}
	p := testProvider()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.TabularDataDetails(mustContext(t, tt.b))
			require.NoError(t, err)
			require.JSONEq(t, tt.expect, string(res))
		})
	}
}

func TestStaticProvider_Other(t *testing.T) {
	require := require.New(t)
	p := testProvider()

	res, err := p.DatasetSchemaDotOrg(DefaultDataContext())
	require.NoError(err)
	require.JSONEq(`{"@type": "Dataset"}`, string(res))

	xml, err := p.DataCiteXML(DefaultDataContext())
	require.NoError(err)
	require.Equal(`<resource/>`, xml)

	r, ok, err := p.PrerequisiteInput(DefaultDataContext())
	require.NoError(err)
	require.True(ok)
	b, err := io.ReadAll(r)
	require.NoError(err)
	require.Equal("<codeBook/>", string(b))
}

func TestStaticProvider_Errors(t *testing.T) {
	require := require.New(t)
	p := NewStaticProvider(StaticData{TabularDataDetails: json.RawMessage(`{"not": "array"}`)})
	ctx := DefaultDataContext()

	_, err := p.DatasetJSON(ctx)
	require.ErrorIs(err, ErrExport)
	_, err = p.DatasetORE(ctx)
	require.ErrorIs(err, ErrExport)
	_, err = p.DatasetFileDetails(ctx)
	require.ErrorIs(err, ErrExport)
	_, err = p.DatasetSchemaDotOrg(ctx)
	require.ErrorIs(err, ErrExport)
	_, err = p.DataCiteXML(ctx)
	require.ErrorIs(err, ErrExport)
	_, err = p.TabularDataDetails(ctx)
	require.ErrorIs(err, ErrExport)

	r, ok, err := p.PrerequisiteInput(ctx)
	require.NoError(err)
	require.False(ok)
	require.Nil(r)
}

func TestErrExportCausedBy(t *testing.T) {
	r := require.New(t)

	cause := errors.New("connection refused")
	err := ErrExportCausedBy(cause, "dataset %d", 42)
	r.ErrorIs(err, ErrExport)
	r.ErrorIs(err, cause)
	r.Equal("export failed: dataset 42: connection refused", err.Error())

	r.Equal("export failed: no data", ErrExportFailed("no data").Error())

	t.Run("message without args is not formatted", func(t *testing.T) {
		require := require.New(t)
		err := ErrExportCausedBy(cause, "100% failed")
		require.ErrorIs(err, cause)
		require.Equal("export failed: 100% failed: connection refused", err.Error())
	})
}
