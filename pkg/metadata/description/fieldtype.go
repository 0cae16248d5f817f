/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package description

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/voedger/mdschema/pkg/metadata"
	"github.com/voedger/mdschema/pkg/metadata/primitives"
)

// Field types enumeration
type FieldType uint8

//go:generate stringer -type=FieldType -output=fieldtype_string.go

const (
	FieldType_null FieldType = iota

	// Single line text
	FieldType_Text

	// Multi-line text
	FieldType_TextBox

	// Short string, like identifier or keyword
	FieldType_String

	// Timestamp
	FieldType_Date

	// Email address with optional personal name
	FieldType_Email

	// Absolute URI
	FieldType_URL

	// Double-precision floating point number
	FieldType_Fractional

	// Integral number
	FieldType_NonFractional

	// Group of child fields, has no scalar value
	FieldType_Compound

	FieldType_count
)

const fieldTypePrefix = "FieldType_"

// Layouts accepted by FieldType_Date values
var DateLayouts = []string{time.RFC3339Nano, time.DateOnly}

var fieldTypeValueTypes = [FieldType_count]reflect.Type{
	FieldType_Text:          reflect.TypeOf(""),
	FieldType_TextBox:       reflect.TypeOf(""),
	FieldType_String:        reflect.TypeOf(""),
	FieldType_Date:          reflect.TypeOf(time.Time{}),
	FieldType_Email:         reflect.TypeOf(primitives.Email{}),
	FieldType_URL:           reflect.TypeOf((*url.URL)(nil)),
	FieldType_Fractional:    reflect.TypeOf(float64(0)),
	FieldType_NonFractional: reflect.TypeOf(int64(0)),
}

// Parses field type from string. Case-insensitive, «FieldType_» prefix is optional:
// "Compound", "COMPOUND" and "FieldType_Compound" are all the same.
func ParseFieldType(s string) (FieldType, error) {
	n := strings.TrimPrefix(strings.TrimSpace(s), fieldTypePrefix)
	for t := FieldType_null + 1; t < FieldType_count; t++ {
		if strings.EqualFold(n, t.TrimString()) {
			return t, nil
		}
	}
	return FieldType_null, metadata.ErrInvalid("unknown field type «%s»", s)
}

// Returns is type one of the enumerated field types
func (t FieldType) IsValid() bool {
	return t > FieldType_null && t < FieldType_count
}

func (t FieldType) IsCompound() bool { return t == FieldType_Compound }

// Returns type of the scalar value representation.
//
// Returns nil for compound and invalid types.
func (t FieldType) ValueType() reflect.Type {
	if t >= FieldType_count {
		return nil
	}
	return fieldTypeValueTypes[t]
}

// Converts literal to the value representation of the type.
//
// Returned value has ValueType() type. Compound fields have no scalar value,
// ErrUnsupportedError is returned for them.
func (t FieldType) ParseValue(s string) (any, error) {
	switch t {
	case FieldType_Text, FieldType_TextBox, FieldType_String:
		return s, nil
	case FieldType_Date:
		v := strings.TrimSpace(s)
		for _, layout := range DateLayouts {
			if d, err := time.Parse(layout, v); err == nil {
				return d, nil
			}
		}
		return nil, metadata.ErrInvalid("%v value «%s» is not a date", t.TrimString(), s)
	case FieldType_Email:
		e, err := primitives.ParseEmail(s)
		if err != nil {
			return nil, err
		}
		return e, nil
	case FieldType_URL:
		u, err := url.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, metadata.EnrichError(metadata.ErrInvalidError, "%v value «%s»: %v", t.TrimString(), s, err)
		}
		if !u.IsAbs() {
			return nil, metadata.ErrInvalid("%v value «%s» must be absolute URI", t.TrimString(), s)
		}
		return u, nil
	case FieldType_Fractional:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, metadata.EnrichError(metadata.ErrInvalidError, "%v value «%s»: %v", t.TrimString(), s, err)
		}
		return f, nil
	case FieldType_NonFractional:
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, metadata.EnrichError(metadata.ErrInvalidError, "%v value «%s»: %v", t.TrimString(), s, err)
		}
		return i, nil
	case FieldType_Compound:
		return nil, metadata.ErrUnsupported("%v field has no scalar value", t.TrimString())
	}
	return nil, metadata.ErrInvalid("field type %v", t)
}

func (t FieldType) MarshalText() ([]byte, error) {
	var s string
	if t < FieldType_count {
		s = t.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(t), base)
	}
	return []byte(s), nil
}

// Accepts any text produced by MarshalText, including null type name and numbers
func (t *FieldType) UnmarshalText(text []byte) error {
	s := string(text)
	if strings.EqualFold(strings.TrimPrefix(s, fieldTypePrefix), FieldType_null.TrimString()) {
		*t = FieldType_null
		return nil
	}
	const base, bitSize = 10, 8
	if n, err := strconv.ParseUint(s, base, bitSize); err == nil {
		*t = FieldType(n)
		return nil
	}
	v, err := ParseFieldType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Renders a FieldType in human-readable form, without «FieldType_» prefix,
// suitable for debugging or error messages
func (t FieldType) TrimString() string {
	return strings.TrimPrefix(t.String(), fieldTypePrefix)
}
