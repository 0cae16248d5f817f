/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package description

import (
	"fmt"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/mdschema/pkg/metadata"
)

// # Builder
//
// Builds Field. Required properties are identifier and type, display name,
// watermark and children are optional.
//
// Builder is single-use: after successful Build() it is consumed and any further
// build fails with ErrConsumedError. Child builders are consumed by their parent
// build and can not be built again, neither directly nor as a child of other parent.
//
// Consumption is atomic: if build of any field in the tree fails, no builder
// of the tree is consumed, and the tree may be fixed and built again.
//
// Builder is not safe for concurrent use.
type Builder struct {
	id          FieldID
	typ         FieldType
	displayName string
	watermark   string
	children    []*Builder
	consumed    bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Returns identifier and is it specified
func (b *Builder) ID() (FieldID, bool) { return b.id, !b.id.IsZero() }

// Returns type and is it specified
func (b *Builder) Type() (FieldType, bool) { return b.typ, b.typ != FieldType_null }

func (b *Builder) DisplayName() (string, bool) { return b.displayName, b.displayName != "" }

func (b *Builder) Watermark() (string, bool) { return b.watermark, b.watermark != "" }

// Returns copy of child builders. Changing returned slice does not affect builder.
func (b *Builder) Children() []*Builder { return slices.Clone(b.children) }

// Returns is builder used to build field, directly or as a child of other builder
func (b *Builder) IsConsumed() bool { return b.consumed }

// Sets (required) field identifier.
func (b *Builder) WithID(id FieldID) *Builder {
	b.id = id
	return b
}

// Sets (required) field identifier from namespace and local name.
//
// # Panics:
//   - if namespace is zero or local name is empty or blank, see NewFieldID
func (b *Builder) WithNamespacedID(ns metadata.Namespace, localName string) *Builder {
	id, err := NewFieldID(ns, localName)
	if err != nil {
		panic(err)
	}
	return b.WithID(id)
}

// Sets (required) field type.
func (b *Builder) WithType(t FieldType) *Builder {
	b.typ = t
	return b
}

// Sets (optional) display name. Empty string clears display name.
func (b *Builder) WithDisplayName(name string) *Builder {
	b.displayName = name
	return b
}

// Sets (optional) watermark, placeholder text for value editors. Empty string clears watermark.
func (b *Builder) WithWatermark(watermark string) *Builder {
	b.watermark = watermark
	return b
}

// Replaces child builders. Calling without arguments removes all children.
//
// Duplicated builders are added once.
//
// # Panics:
//   - if some child is nil
func (b *Builder) WithChildren(children ...*Builder) *Builder {
	b.children = nil
	for _, c := range children {
		b.AddChild(c)
	}
	return b
}

// Adds child builder. Adding the same builder again has no effect.
//
// # Panics:
//   - if child is nil
func (b *Builder) AddChild(child *Builder) *Builder {
	if child == nil {
		panic(metadata.ErrMissed("child builder for field «%v»", b.id))
	}
	if !slices.Contains(b.children, child) {
		b.children = append(b.children, child)
	}
	return b
}

// Builds field with its children.
//
// Returns error if:
//   - identifier or type is not specified (ErrMissedError),
//   - builder is already consumed (ErrConsumedError),
//   - compound field has no children or non-compound field has children (ErrInvalidError),
//   - some child build fails.
func (b *Builder) Build() (*Field, error) {
	return b.build(0)
}

// Builds field tree with root at specified generation.
// Consumes all builders of the tree if build succeeds.
func (b *Builder) build(generation int) (*Field, error) {
	pass := make(map[*Builder]struct{})

	f, err := b.buildNode(generation, pass)
	if err != nil {
		return nil, err
	}

	for used := range pass {
		used.consumed = true
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("field «%v» built, %d builder(s) consumed", f.id, len(pass)))
	}
	return f, nil
}

// Builds field from builder state. Builders entered during current build are collected into pass.
func (b *Builder) buildNode(generation int, pass map[*Builder]struct{}) (*Field, error) {
	if b.id.IsZero() {
		return nil, metadata.ErrMissed("field id is required")
	}
	if _, entered := pass[b]; b.consumed || entered {
		return nil, metadata.ErrConsumed("builder for field «%v» has already been used", b.id)
	}
	pass[b] = struct{}{}

	if b.typ == FieldType_null {
		return nil, metadata.ErrMissed("type is required for field «%v»", b.id)
	}
	if !b.typ.IsValid() {
		return nil, metadata.ErrInvalid("field «%v» has unknown type %v", b.id, b.typ)
	}
	if b.typ.IsCompound() && len(b.children) == 0 {
		return nil, metadata.ErrInvalid("compound field «%v» must have children defined", b.id)
	}
	if !b.typ.IsCompound() && len(b.children) > 0 {
		return nil, metadata.ErrInvalid("non-compound field «%v» cannot have children defined", b.id)
	}

	f := &Field{
		id:          b.id,
		typ:         b.typ,
		generation:  generation,
		displayName: b.displayName,
		watermark:   b.watermark,
	}

	if len(b.children) > 0 {
		f.children = make([]*Field, 0, len(b.children))
		f.index = make(map[FieldKey]*Field, len(b.children))
		for _, c := range b.children {
			child, err := c.buildNode(generation+1, pass)
			if err != nil {
				return nil, fmt.Errorf("field «%v»: %w", b.id, err)
			}
			if _, exists := f.index[child.Key()]; exists {
				// children is a set of fields, first added wins
				if logger.IsVerbose() {
					logger.Verbose(fmt.Sprintf("field «%v» has duplicated child «%v», skipped", b.id, child.id))
				}
				continue
			}
			f.children = append(f.children, child)
			f.index[child.Key()] = child
		}
	}

	return f, nil
}
