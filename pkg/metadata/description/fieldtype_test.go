/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package description

import (
	"net/url"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/mdschema/pkg/metadata"
	"github.com/voedger/mdschema/pkg/metadata/primitives"
)

func TestFieldType_ValueType(t *testing.T) {
	tests := []struct {
		t    FieldType
		want reflect.Type
	}{
		{FieldType_Text, reflect.TypeOf("")},
		{FieldType_TextBox, reflect.TypeOf("")},
		{FieldType_String, reflect.TypeOf("")},
		{FieldType_Date, reflect.TypeOf(time.Time{})},
		{FieldType_Email, reflect.TypeOf(primitives.Email{})},
		{FieldType_URL, reflect.TypeOf(&url.URL{})},
		{FieldType_Fractional, reflect.TypeOf(float64(0))},
		{FieldType_NonFractional, reflect.TypeOf(int64(0))},
		{FieldType_Compound, nil},
		{FieldType_null, nil},
		{FieldType_count, nil},
	}
	for _, tt := range tests {
		t.Run(tt.t.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.t.ValueType())
		})
	}
}

func TestFieldType_ParseValue(t *testing.T) {
	t.Run("should parse valid literals", func(t *testing.T) {
		tests := []struct {
			t FieldType
			s string
		}{
			{FieldType_Text, "any text"},
			{FieldType_TextBox, "line 1\nline 2"},
			{FieldType_String, "kw"},
			{FieldType_Date, "2024-02-29"},
			{FieldType_Date, "2024-02-29T10:11:12Z"},
			{FieldType_Email, "John Doe <john@example.com>"},
			{FieldType_URL, "https://example.org/x"},
			{FieldType_Fractional, "3.14"},
			{FieldType_NonFractional, "-42"},
		}
		for _, tt := range tests {
			t.Run(tt.t.TrimString()+" "+tt.s, func(t *testing.T) {
				require := require.New(t)
				v, err := tt.t.ParseValue(tt.s)
				require.NoError(err)
				require.Equal(tt.t.ValueType(), reflect.TypeOf(v))
			})
		}
	})

	t.Run("should return values", func(t *testing.T) {
		require := require.New(t)

		d, err := FieldType_Date.ParseValue("2024-02-29")
		require.NoError(err)
		require.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

		n, err := FieldType_NonFractional.ParseValue(" 7 ")
		require.NoError(err)
		require.Equal(int64(7), n)
	})

	t.Run("should be errors", func(t *testing.T) {
		tests := []struct {
			t   FieldType
			s   string
			err error
		}{
			{FieldType_Date, "yesterday", metadata.ErrInvalidError},
			{FieldType_Email, "nobody", metadata.ErrInvalidError},
			{FieldType_URL, "relative/path", metadata.ErrInvalidError},
			{FieldType_URL, "http://[::1", metadata.ErrInvalidError},
			{FieldType_Fractional, "pi", metadata.ErrInvalidError},
			{FieldType_NonFractional, "1.5", metadata.ErrInvalidError},
			{FieldType_Compound, "x", metadata.ErrUnsupportedError},
			{FieldType_null, "x", metadata.ErrInvalidError},
		}
		for _, tt := range tests {
			t.Run(tt.t.String()+" "+tt.s, func(t *testing.T) {
				_, err := tt.t.ParseValue(tt.s)
				require.ErrorIs(t, err, tt.err)
			})
		}
	})
}

func TestParseFieldType(t *testing.T) {
	require := require.New(t)

	for ft := FieldType_null + 1; ft < FieldType_count; ft++ {
		for _, s := range []string{ft.String(), ft.TrimString()} {
			got, err := ParseFieldType(s)
			require.NoError(err, s)
			require.Equal(ft, got)
		}
	}

	got, err := ParseFieldType("COMPOUND")
	require.NoError(err)
	require.Equal(FieldType_Compound, got)

	got, err = ParseFieldType(" nonfractional ")
	require.NoError(err)
	require.Equal(FieldType_NonFractional, got)

	_, err = ParseFieldType("null")
	require.ErrorIs(err, metadata.ErrInvalidError)

	_, err = ParseFieldType("binary")
	require.ErrorIs(err, metadata.ErrInvalidError)
}

func TestFieldType_MarshalText(t *testing.T) {
	tests := []struct {
		name string
		t    FieldType
		want string
	}{
		{`1 —> "FieldType_Text"`, FieldType_Text, `FieldType_Text`},
		{`9 —> "FieldType_Compound"`, FieldType_Compound, `FieldType_Compound`},
		{`FieldType_count+1 —> 11`, FieldType_count + 1, strconv.FormatUint(uint64(FieldType_count+1), 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			got, err := tt.t.MarshalText()
			require.NoError(err)
			require.Equal(tt.want, string(got))
		})
	}

	t.Run("round trip", func(t *testing.T) {
		require := require.New(t)
		var ft FieldType
		require.NoError(ft.UnmarshalText([]byte("FieldType_Email")))
		require.Equal(FieldType_Email, ft)
		require.Error(ft.UnmarshalText([]byte("unknown")))
		require.Equal(FieldType_Email, ft)
	})

	t.Run("round trip of every marshalable value", func(t *testing.T) {
		for _, v := range []FieldType{FieldType_null, FieldType_Text, FieldType_Compound, FieldType_count, FieldType_count + 1, 255} {
			t.Run(v.String(), func(t *testing.T) {
				require := require.New(t)
				text, err := v.MarshalText()
				require.NoError(err)
				ft := FieldType_Email
				require.NoError(ft.UnmarshalText(text))
				require.Equal(v, ft)
			})
		}
	})

	t.Run("null type is not parsed as valid field type", func(t *testing.T) {
		require := require.New(t)
		_, err := ParseFieldType("FieldType_null")
		require.ErrorIs(err, metadata.ErrInvalidError)
		_, err = ParseFieldType("null")
		require.ErrorIs(err, metadata.ErrInvalidError)
	})
}

func TestFieldType_TrimString(t *testing.T) {
	require := require.New(t)
	require.Equal("Compound", FieldType_Compound.TrimString())
	require.Equal("FieldType(42)", FieldType(42).TrimString())
	require.True(FieldType_URL.IsValid())
	require.False(FieldType_null.IsValid())
	require.False(FieldType_count.IsValid())
}
