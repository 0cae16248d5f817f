/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package export

import (
	"github.com/goccy/go-json"
)

// Applies context offset and length to JSON array.
//
// Offset beyond array end returns empty array. Returns ErrExport if arr is not a JSON array.
func Paginate(arr json.RawMessage, ctx DataContext) (json.RawMessage, error) {
	items, err := unmarshalArray(arr)
	if err != nil {
		return nil, err
	}
	return marshalArray(page(items, ctx))
}

func page(items []json.RawMessage, ctx DataContext) []json.RawMessage {
	if offset, ok := ctx.Offset(); ok {
		if offset >= len(items) {
			return items[:0]
		}
		items = items[offset:]
	}
	if length, ok := ctx.Length(); ok && length < len(items) {
		items = items[:length]
	}
	return items
}

func unmarshalArray(arr json.RawMessage) ([]json.RawMessage, error) {
	items := []json.RawMessage{}
	if err := json.Unmarshal(arr, &items); err != nil {
		return nil, ErrExportCausedBy(err, "JSON array expected")
	}
	return items, nil
}

func marshalArray(items []json.RawMessage) (json.RawMessage, error) {
	if items == nil {
		items = []json.RawMessage{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, ErrExportCausedBy(err, "marshal JSON array")
	}
	return b, nil
}
