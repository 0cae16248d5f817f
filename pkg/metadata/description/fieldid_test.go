/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package description

import (
	"fmt"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/voedger/mdschema/pkg/metadata"
)

var (
	testNS  = metadata.MustParseNamespace("https://example.org/test/", "test")
	otherNS = metadata.MustParseNamespace("https://example.org/other/", "other")
)

func TestBasicUsage_FieldID(t *testing.T) {
	require := require.New(t)

	id, err := NewFieldID(testNS, "title")
	require.NoError(err)

	require.True(id.Namespace().Equal(testNS))
	require.Equal("title", id.LocalName())
	require.Equal("test:title", id.CompactIRI())
	require.Equal("https://example.org/test/title", fmt.Sprint(id))

	u, err := id.URI()
	require.NoError(err)
	require.Equal("https://example.org/test/title", u.String())
}

func TestNewFieldID_Errors(t *testing.T) {
	require := require.New(t)

	_, err := NewFieldID(metadata.Namespace{}, "title")
	require.ErrorIs(err, metadata.ErrMissedError)

	_, err = NewFieldID(testNS, "")
	require.ErrorIs(err, metadata.ErrMissedError)

	_, err = NewFieldID(testNS, " \t ")
	require.ErrorIs(err, metadata.ErrInvalidError)

	require.Panics(func() { MustNewFieldID(testNS, " ") })
}

func TestFieldID_URIErrors(t *testing.T) {
	require := require.New(t)

	id := MustNewFieldID(testNS, "author name")
	u, err := id.URI()
	require.ErrorIs(err, metadata.ErrInvalidError)
	require.Nil(u)
	require.Equal("test:author name", id.String(), "compact IRI if URI can not be resolved")
}

func TestFieldID_Equal(t *testing.T) {
	require := require.New(t)

	sameNS := metadata.MustParseNamespace("https://example.org/test/", "alias")

	id1 := MustNewFieldID(testNS, "title")
	id2 := MustNewFieldID(sameNS, "title")
	id3 := MustNewFieldID(otherNS, "title")
	id4 := MustNewFieldID(testNS, "name")

	require.True(id1.Equal(id2), "namespace prefix is not a part of identity")
	require.Equal(id1.Key(), id2.Key())
	require.False(id1.Equal(id3))
	require.False(id1.Equal(id4))

	set := map[FieldKey]FieldID{id1.Key(): id1}
	_, ok := set[id2.Key()]
	require.True(ok)

	require.True(FieldID{}.IsZero())
	require.False(id1.IsZero())
}

func TestFieldID_String_FallsBackToCompactIRI(t *testing.T) {
	id := MustNewFieldID(testNS, "%zz")
	_, err := id.URI()
	require.ErrorIs(t, err, metadata.ErrInvalidError)
	require.Equal(t, "test:%zz", id.String())
}

func TestFieldID_URIMatchesNamespaceResolve(t *testing.T) {
	require := require.New(t)

	f := fuzz.New().NilChance(0)
	var localName string
	for i := 0; i < 10000; i++ {
		f.Fuzz(&localName)
		if metadata.IsBlank(localName) {
			continue
		}
		for _, ns := range []metadata.Namespace{testNS, otherNS} {
			id, err := NewFieldID(ns, localName)
			require.NoError(err)

			want, wantErr := ns.Resolve(localName)
			got, gotErr := id.URI()
			if wantErr != nil {
				require.Error(gotErr, localName)
				continue
			}
			require.NoError(gotErr, localName)
			require.Equal(want.String(), got.String(), localName)
		}
	}
}
