/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package description

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// # Field
//
// Metadata field definition: identity, type, nesting generation, display hints
// and child fields. Fields are created by Builder.Build() only and are immutable,
// so they may be freely shared between goroutines.
//
// # Identity
//
// Fields are equal if their identifiers are equal. Type, generation, children
// and display hints are not compared by Equal(): a field is the same field
// concept wherever it appears in a tree. Use StructurallyEqual() to compare
// whole subtrees.
type Field struct {
	id          FieldID
	typ         FieldType
	generation  int
	displayName string
	watermark   string

	// only children are linked, not parents, so the same field may be reused by many parents
	children []*Field
	index    map[FieldKey]*Field
}

func (f *Field) ID() FieldID { return f.id }

func (f *Field) Type() FieldType { return f.typ }

func (f *Field) IsCompound() bool { return f.typ.IsCompound() }

// Returns nesting level of the field: root is 0, every level of nesting increments by 1.
func (f *Field) Generation() int { return f.generation }

// Returns is field a root of its construction tree.
//
// Nothing prevents a root field to be reused as a child in other tree.
func (f *Field) IsRoot() bool { return f.generation == 0 }

func (f *Field) HasChildren() bool { return len(f.children) > 0 }

func (f *Field) ChildCount() int { return len(f.children) }

// Returns child fields in order they were added to builder.
//
// Returned slice is a copy, changing it does not affect the field.
// Returns empty slice for non-compound fields.
func (f *Field) Children() []*Field {
	return slices.Clone(f.children)
}

// Returns child field by identifier
func (f *Field) Child(id FieldID) (*Field, bool) {
	c, ok := f.index[id.Key()]
	return c, ok
}

// Returns display name and is it specified
func (f *Field) DisplayName() (string, bool) { return f.displayName, f.displayName != "" }

// Returns watermark (placeholder text) and is it specified
func (f *Field) Watermark() (string, bool) { return f.watermark, f.watermark != "" }

// Returns is fields have equal identifiers. Nothing else is compared.
func (f *Field) Equal(other *Field) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	return f.id.Equal(other.id)
}

// Returns field identity key. Fields with equal keys are Equal().
func (f *Field) Key() FieldKey { return f.id.Key() }

// Returns is fields have equal identifiers, types, generations, display hints
// and structurally equal children.
func (f *Field) StructurallyEqual(other *Field) bool {
	if f == other {
		return true
	}
	if f == nil || other == nil {
		return false
	}
	if !f.id.Equal(other.id) ||
		(f.typ != other.typ) ||
		(f.generation != other.generation) ||
		(f.displayName != other.displayName) ||
		(f.watermark != other.watermark) ||
		(len(f.children) != len(other.children)) {
		return false
	}
	for _, c := range f.children {
		oc, ok := other.index[c.Key()]
		if !ok || !c.StructurallyEqual(oc) {
			return false
		}
	}
	return true
}

// Visits field and its descendants in depth-first pre-order.
//
// Returns false if visit returns false for some field, walk is stopped then.
func (f *Field) Walk(visit func(*Field) bool) bool {
	if !visit(f) {
		return false
	}
	for _, c := range f.children {
		if !c.Walk(visit) {
			return false
		}
	}
	return true
}

func (f *Field) String() string {
	return fmt.Sprintf("Field[%v, type=%s, gen=%d]", f.id, f.typ.TrimString(), f.generation)
}
