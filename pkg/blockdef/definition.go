/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package blockdef

import (
	"fmt"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/text/language"

	"github.com/voedger/mdschema/pkg/metadata"
	"github.com/voedger/mdschema/pkg/metadata/description"
	"github.com/voedger/mdschema/pkg/metadata/l10n"
)

// Returns block name. Block name is the prefix of block namespace
func (d *Definition) Name() string { return d.name }

// Returns name of the source definition was parsed from
func (d *Definition) Source() string { return d.source }

// Returns number of top-level fields
func (d *Definition) FieldCount() int { return len(d.fields) }

// Returns block namespace.
//
// Returns error if block name or namespace base is missed or not valid.
func (d *Definition) Namespace() (metadata.Namespace, error) {
	if d.name == "" {
		return metadata.Namespace{}, errorAt(d.pos, metadata.ErrMissed("block name"))
	}
	ns, err := metadata.ParseNamespace(d.base, d.name)
	if err != nil {
		return metadata.Namespace{}, errorAt(d.pos, fmt.Errorf("block «%s» namespace: %w", d.name, err))
	}
	return ns, nil
}

// Creates new builders for top-level fields. Each call returns a fresh builder tree.
//
// Returns error if definition is not valid:
//   - block name or namespace is missed or not valid,
//   - namespace prefix is declared twice or used without declaration,
//   - field name is missed or can not be resolved to URI, field type is unknown,
//   - compound field has no children, non-compound field has children,
//   - sibling fields have the same identifier,
//   - translation language is not valid BCP 47 tag.
//
// Errors are prefixed with source position of the offending statement.
func (d *Definition) Builders() ([]*description.Builder, error) {
	r, err := d.resolve()
	if err != nil {
		return nil, err
	}
	return r.builders, nil
}

// Returns translations of field display names and watermarks, see l10n.Translations
func (d *Definition) Translations() (l10n.Translations, error) {
	r, err := d.resolve()
	if err != nil {
		return nil, err
	}
	return r.translations, nil
}

// Builds block fields.
func (d *Definition) Build() (*Block, error) {
	r, err := d.resolve()
	if err != nil {
		return nil, err
	}

	block := &Block{
		Name:         d.name,
		Namespace:    r.namespace,
		Fields:       make([]*description.Field, 0, len(r.builders)),
		Translations: r.translations,
	}
	for i, b := range r.builders {
		f, err := b.Build()
		if err != nil {
			return nil, errorAt(d.fields[i].pos, err)
		}
		block.Fields = append(block.Fields, f)
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("block «%s» from %s built, %d field(s)", d.name, d.source, len(block.Fields)))
	}
	return block, nil
}

type resolved struct {
	namespace    metadata.Namespace
	namespaces   map[string]metadata.Namespace
	builders     []*description.Builder
	translations l10n.Translations
}

func (d *Definition) resolve() (*resolved, error) {
	ns, err := d.Namespace()
	if err != nil {
		return nil, err
	}

	r := &resolved{
		namespace:    ns,
		namespaces:   map[string]metadata.Namespace{d.name: ns},
		translations: l10n.Translations{},
	}

	for _, n := range d.namespaces {
		if _, exists := r.namespaces[n.prefix]; exists {
			return nil, errorAt(n.pos, metadata.ErrInvalid("namespace prefix «%s» is already declared", n.prefix))
		}
		ns, err := metadata.ParseNamespace(n.base, n.prefix)
		if err != nil {
			return nil, errorAt(n.pos, fmt.Errorf("namespace «%s»: %w", n.prefix, err))
		}
		r.namespaces[n.prefix] = ns
	}

	r.builders, err = r.siblings(d.fields)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Creates builders for sibling fields
func (r *resolved) siblings(fields []*fieldDef) ([]*description.Builder, error) {
	builders := make([]*description.Builder, 0, len(fields))
	declared := make(map[description.FieldKey]string, len(fields))
	for _, f := range fields {
		b, err := r.builder(f)
		if err != nil {
			return nil, err
		}
		id, _ := b.ID()
		if pos, exists := declared[id.Key()]; exists {
			return nil, errorAt(f.pos, metadata.ErrInvalid("field «%v» is already declared at %s", id, pos))
		}
		declared[id.Key()] = f.pos
		builders = append(builders, b)
	}
	return builders, nil
}

func (r *resolved) builder(f *fieldDef) (*description.Builder, error) {
	ns := r.namespace
	if f.prefix != "" {
		n, ok := r.namespaces[f.prefix]
		if !ok {
			return nil, errorAt(f.pos, metadata.ErrNotFound("namespace prefix «%s» is not declared", f.prefix))
		}
		ns = n
	}

	id, err := description.NewFieldID(ns, f.name)
	if err != nil {
		return nil, errorAt(f.pos, fmt.Errorf("field name: %w", err))
	}
	if _, err := id.URI(); err != nil {
		return nil, errorAt(f.pos, fmt.Errorf("field «%s»: %w", id.CompactIRI(), err))
	}

	if f.typ == "" {
		return nil, errorAt(f.pos, metadata.ErrMissed("type is required for field «%v»", id))
	}
	typ, err := description.ParseFieldType(f.typ)
	if err != nil {
		return nil, errorAt(f.pos, fmt.Errorf("field «%v»: %w", id, err))
	}
	if typ.IsCompound() && len(f.children) == 0 {
		return nil, errorAt(f.pos, metadata.ErrInvalid("compound field «%v» must have children defined", id))
	}
	if !typ.IsCompound() && len(f.children) > 0 {
		return nil, errorAt(f.pos, metadata.ErrInvalid("non-compound field «%v» cannot have children defined", id))
	}

	for _, t := range f.translations {
		lang, err := language.Parse(t.lang)
		if err != nil {
			return nil, errorAt(t.pos, metadata.EnrichError(metadata.ErrInvalidError, "field «%v» translation language «%s»: %v", id, t.lang, err))
		}
		if t.displayName != "" {
			r.translations.Add(l10n.DisplayNameKey(id), lang, t.displayName)
		}
		if t.watermark != "" {
			r.translations.Add(l10n.WatermarkKey(id), lang, t.watermark)
		}
	}

	b := description.NewBuilder().
		WithID(id).
		WithType(typ).
		WithDisplayName(f.displayName).
		WithWatermark(f.watermark)

	children, err := r.siblings(f.children)
	if err != nil {
		return nil, err
	}
	return b.WithChildren(children...), nil
}
