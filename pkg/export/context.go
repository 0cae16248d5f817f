/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package export

import (
	"fmt"

	"github.com/voedger/mdschema/pkg/metadata"
)

// # DataContext
//
// Data retrieval options for export data providers. DataContext is immutable,
// use DataContextBuilder to construct it.
//
// Not all provider methods respect all options, see IDataProvider.
type DataContext struct {
	datasetMetadataOnly bool
	publicFilesOnly     bool
	offset, length      int
	hasOffset           bool
	hasLength           bool
}

// Returns context with all options off and no pagination
func DefaultDataContext() DataContext { return DataContext{} }

// Returns should file-level metadata be excluded
func (c DataContext) DatasetMetadataOnly() bool { return c.datasetMetadataOnly }

// Returns should restricted and embargoed files be excluded
func (c DataContext) PublicFilesOnly() bool { return c.publicFilesOnly }

// Returns pagination offset and is it specified
func (c DataContext) Offset() (int, bool) { return c.offset, c.hasOffset }

// Returns pagination length and is it specified
func (c DataContext) Length() (int, bool) { return c.length, c.hasLength }

// Returns is option turned on
func (c DataContext) Has(o DataOption) bool {
	switch o {
	case DataOption_DatasetMetadataOnly:
		return c.datasetMetadataOnly
	case DataOption_PublicFilesOnly:
		return c.publicFilesOnly
	}
	return false
}

func (c DataContext) String() string {
	s := fmt.Sprintf("DataContext[datasetMetadataOnly=%v, publicFilesOnly=%v", c.datasetMetadataOnly, c.publicFilesOnly)
	if c.hasOffset {
		s += fmt.Sprintf(", offset=%d", c.offset)
	}
	if c.hasLength {
		s += fmt.Sprintf(", length=%d", c.length)
	}
	return s + "]"
}

type DataContextBuilder struct {
	ctx     DataContext
	options []DataOption
}

func NewDataContextBuilder() *DataContextBuilder {
	return &DataContextBuilder{}
}

func (b *DataContextBuilder) DatasetMetadataOnly() *DataContextBuilder {
	b.ctx.datasetMetadataOnly = true
	return b
}

func (b *DataContextBuilder) PublicFilesOnly() *DataContextBuilder {
	b.ctx.publicFilesOnly = true
	return b
}

// Sets pagination offset, index of the first item to return
func (b *DataContextBuilder) Offset(offset int) *DataContextBuilder {
	b.ctx.offset, b.ctx.hasOffset = offset, true
	return b
}

// Sets pagination length, maximum number of items to return
func (b *DataContextBuilder) Length(length int) *DataContextBuilder {
	b.ctx.length, b.ctx.hasLength = length, true
	return b
}

// Turns on specified options
func (b *DataContextBuilder) Options(options ...DataOption) *DataContextBuilder {
	b.options = append(b.options, options...)
	return b
}

// Builds context.
//
// Returns ErrInvalidError if offset or length is negative or some option is unknown.
func (b *DataContextBuilder) Build() (DataContext, error) {
	ctx := b.ctx
	if ctx.hasOffset && ctx.offset < 0 {
		return DataContext{}, metadata.ErrInvalid("offset must not be negative, got %d", ctx.offset)
	}
	if ctx.hasLength && ctx.length < 0 {
		return DataContext{}, metadata.ErrInvalid("length must not be negative, got %d", ctx.length)
	}
	for _, o := range b.options {
		switch o {
		case DataOption_DatasetMetadataOnly:
			ctx.datasetMetadataOnly = true
		case DataOption_PublicFilesOnly:
			ctx.publicFilesOnly = true
		default:
			return DataContext{}, metadata.ErrInvalid("unknown data option %v", o)
		}
	}
	return ctx, nil
}
