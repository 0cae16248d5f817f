/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package metadata

import (
	"net/url"
	"strings"
	"unicode"
)

// # Namespace
//
// Vocabulary for field identifiers: a base URI and a prefix for compact
// serialization and i18n lookups. Typically defined at the metadata block level.
//
// Namespaces are equal if their base URIs are equal, prefix is not a part of
// the identity. Scheme and host are compared case-insensitively.
// Use Equal() or Key() instead of == to compare namespaces.
type Namespace struct {
	base   string
	prefix string
	key    string
}

// Creates new namespace from base URI and prefix.
//
// Returns error if:
//   - base URI is nil or prefix is empty (ErrMissedError),
//   - base URI is not absolute (has no scheme) or prefix is blank (ErrInvalidError).
//
// Note that *url.URL can not hold an empty fragment, so "http://example.com#"
// turns into "http://example.com" here. Use ParseNamespace to keep trailing «#».
func NewNamespace(base *url.URL, prefix string) (Namespace, error) {
	if base == nil {
		return Namespace{}, ErrMissed("namespace base URI")
	}
	if !base.IsAbs() {
		return Namespace{}, ErrInvalid("namespace base URI «%v» must be absolute URI with a scheme", base)
	}
	if err := validPrefix(prefix); err != nil {
		return Namespace{}, err
	}
	s := base.String()
	return Namespace{base: s, prefix: prefix, key: identityKey(s)}, nil
}

// Creates new namespace from base URI string and prefix.
//
// Base URI string is kept as is, without any normalization.
//
// Returns error if:
//   - base URI or prefix is empty (ErrMissedError),
//   - base URI is blank, can not be parsed, contains characters not allowed
//     in URIs or is not absolute (ErrInvalidError),
//   - prefix is blank (ErrInvalidError).
func ParseNamespace(base, prefix string) (Namespace, error) {
	if base == "" {
		return Namespace{}, ErrMissed("namespace base URI")
	}
	if isBlank(base) {
		return Namespace{}, ErrInvalid("namespace base URI cannot be blank")
	}
	if err := checkURIChars(base); err != nil {
		return Namespace{}, err
	}
	u, err := url.Parse(base)
	if err != nil {
		return Namespace{}, EnrichError(ErrInvalidError, "invalid URI syntax «%s»: %v", base, err)
	}
	if !u.IsAbs() {
		return Namespace{}, ErrInvalid("namespace base URI «%s» must be absolute URI with a scheme", base)
	}
	if err := validPrefix(prefix); err != nil {
		return Namespace{}, err
	}
	return Namespace{base: base, prefix: prefix, key: identityKey(base)}, nil
}

// Parses namespace from string.
//
// # Panics:
//   - if base URI or prefix is not valid
func MustParseNamespace(base, prefix string) Namespace {
	ns, err := ParseNamespace(base, prefix)
	if err != nil {
		panic(err)
	}
	return ns
}

// Returns base URI string as it was specified on creation
func (ns Namespace) Base() string { return ns.base }

// Returns parsed copy of base URI. Returns nil for zero namespace.
func (ns Namespace) BaseURI() *url.URL {
	if ns.IsZero() {
		return nil
	}
	u, err := url.Parse(ns.base)
	if err != nil {
		// base is validated on creation
		panic(err)
	}
	return u
}

// Returns prefix
func (ns Namespace) Prefix() string { return ns.prefix }

// Returns is namespace zero (not created by NewNamespace or ParseNamespace)
func (ns Namespace) IsZero() bool { return ns.base == "" }

// Resolves local name to a full URI within this namespace.
//
// Supports both slash-based (http://example.org/ns/) and hash-based
// (http://example.org/ns#) URI patterns. If the base URI ends neither with «/»
// nor with «#», then «/» is inserted between base URI and local name.
//
// No percent-encoding or normalization is performed, result is simple
// concatenation parsed as URI.
//
// Returns ErrInvalidError if local name is empty, blank or result is not a valid URI,
// e.g. contains spaces.
func (ns Namespace) Resolve(localName string) (*url.URL, error) {
	if isBlank(localName) {
		return nil, ErrInvalid("local name must not be empty or blank")
	}
	base := ns.base
	if !strings.HasSuffix(base, PathSeparator) && !strings.HasSuffix(base, FragmentSeparator) {
		base += PathSeparator
	}
	if err := checkURIChars(base + localName); err != nil {
		return nil, err
	}
	u, err := url.Parse(base + localName)
	if err != nil {
		return nil, EnrichError(ErrInvalidError, "can not resolve «%s» in namespace «%v»: %v", localName, ns, err)
	}
	return u, nil
}

// Formats local name as compact IRI, e.g. "dc:title".
func (ns Namespace) CompactIRI(localName string) string {
	return ns.prefix + CompactIRISeparator + localName
}

// Returns is namespaces are equal. Only base URIs are compared, prefixes are ignored.
func (ns Namespace) Equal(other Namespace) bool {
	return ns.key == other.key
}

// Returns namespace identity key, suitable for maps. Key is base URI with
// lower-cased scheme and host.
func (ns Namespace) Key() string { return ns.key }

// Returns namespace in form "prefix -> base".
func (ns Namespace) String() string {
	return ns.prefix + " -> " + ns.base
}

func validPrefix(prefix string) error {
	if prefix == "" {
		return ErrMissed("namespace prefix")
	}
	if isBlank(prefix) {
		return ErrInvalid("namespace prefix cannot be blank")
	}
	return nil
}

// Characters not allowed anywhere in URI, in addition to spaces and controls
const uriIllegalChars = "\"<>\\^`{|}"

// Returns ErrInvalidError if s contains space, control or other character not allowed in URI.
// url.Parse escapes such characters instead of failing.
func checkURIChars(s string) error {
	for i, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(uriIllegalChars, r) {
			return ErrInvalid("illegal character %q at index %d in URI «%s»", r, i, s)
		}
	}
	return nil
}

// Lower-cases scheme and host of absolute URI, other parts are kept as is
func identityKey(uri string) string {
	colon := strings.IndexByte(uri, ':')
	if colon < 0 {
		return uri
	}
	key := strings.ToLower(uri[:colon]) + uri[colon:]
	start := colon + 1
	if !strings.HasPrefix(key[start:], "//") {
		return key
	}
	start += 2
	end := len(key)
	if i := strings.IndexAny(key[start:], "/?#"); i >= 0 {
		end = start + i
	}
	if at := strings.LastIndexByte(key[start:end], '@'); at >= 0 {
		start += at + 1
	}
	return key[:start] + strings.ToLower(key[start:end]) + key[end:]
}
