/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package blockdef

import (
	"github.com/voedger/mdschema/pkg/metadata"
	"github.com/voedger/mdschema/pkg/metadata/description"
	"github.com/voedger/mdschema/pkg/metadata/l10n"
)

// # Block
//
// Metadata block: named set of fields sharing the block namespace.
type Block struct {
	Name         string
	Namespace    metadata.Namespace
	Fields       []*description.Field
	Translations l10n.Translations
}

// Returns top-level field with specified local name in block namespace.
func (b *Block) Field(localName string) (*description.Field, bool) {
	id, err := description.NewFieldID(b.Namespace, localName)
	if err != nil {
		return nil, false
	}
	return b.FieldByID(id)
}

// Returns top-level field with specified identifier.
func (b *Block) FieldByID(id description.FieldID) (*description.Field, bool) {
	for _, f := range b.Fields {
		if f.ID().Equal(id) {
			return f, true
		}
	}
	return nil, false
}

// Walks all block fields depth-first, see description.Field.Walk
func (b *Block) Walk(visit func(*description.Field) bool) bool {
	for _, f := range b.Fields {
		if !f.Walk(visit) {
			return false
		}
	}
	return true
}

// Returns localizer for block field display hints
func (b *Block) Localizer() (*l10n.Localizer, error) {
	return l10n.NewLocalizer(b.Translations)
}
