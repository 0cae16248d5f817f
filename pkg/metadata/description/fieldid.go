/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package description

import (
	"net/url"

	"github.com/voedger/mdschema/pkg/metadata"
)

// # FieldID
//
// Identifies a field by namespace and local name.
//
// Two field identifiers are equal if both namespaces and local names are equal.
// Use Equal() or Key() to compare identifiers, not ==.
type FieldID struct {
	ns        metadata.Namespace
	localName string
}

// Comparable identity of FieldID, suitable for map keys
type FieldKey struct {
	Namespace string
	LocalName string
}

// Creates new field identifier.
//
// Returns ErrMissedError if namespace is zero or local name is empty,
// ErrInvalidError if local name is blank.
func NewFieldID(ns metadata.Namespace, localName string) (FieldID, error) {
	if ns.IsZero() {
		return FieldID{}, metadata.ErrMissed("field namespace")
	}
	if localName == "" {
		return FieldID{}, metadata.ErrMissed("field local name")
	}
	if metadata.IsBlank(localName) {
		return FieldID{}, metadata.ErrInvalid("field local name cannot be blank")
	}
	return FieldID{ns: ns, localName: localName}, nil
}

// Creates new field identifier.
//
// # Panics:
//   - if namespace or local name is not valid
func MustNewFieldID(ns metadata.Namespace, localName string) FieldID {
	id, err := NewFieldID(ns, localName)
	if err != nil {
		panic(err)
	}
	return id
}

func (id FieldID) Namespace() metadata.Namespace { return id.ns }

func (id FieldID) LocalName() string { return id.localName }

// Returns is identifier zero (not created by NewFieldID)
func (id FieldID) IsZero() bool { return id.localName == "" }

// Resolves identifier to fully expanded URI.
func (id FieldID) URI() (*url.URL, error) {
	return id.ns.Resolve(id.localName)
}

// Returns identifier in compact IRI form, e.g. "citation:title".
func (id FieldID) CompactIRI() string {
	return id.ns.CompactIRI(id.localName)
}

func (id FieldID) Equal(other FieldID) bool {
	return id.Key() == other.Key()
}

func (id FieldID) Key() FieldKey {
	return FieldKey{Namespace: id.ns.Key(), LocalName: id.localName}
}

// Returns fully expanded URI string. If URI can not be resolved then returns compact IRI.
func (id FieldID) String() string {
	u, err := id.URI()
	if err != nil {
		return id.CompactIRI()
	}
	return u.String()
}
