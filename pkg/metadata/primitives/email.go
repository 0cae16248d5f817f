/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package primitives

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/voedger/mdschema/pkg/metadata"
)

// local-part @ domain . TLD (at least 2 chars). Permissive, no RFC 822 validation.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]{2,}$`)

// # Email
//
// Email address with optional personal (display) name.
//
// Only basic structural validation is performed: no DNS checks, any charsets allowed.
// Addresses are compared case-insensitive, personal names are ignored by Equal().
type Email struct {
	address  string
	personal string
}

// Creates email from address.
//
// Address is trimmed. Returns ErrMissedError if address is empty and
// ErrInvalidError if address is blank or malformed.
func NewEmail(address string) (Email, error) {
	return NewEmailWithPersonal(address, "")
}

// Creates email from address and personal name, e.g. "John Doe".
//
// Personal name is trimmed, blank personal name is treated as absent.
func NewEmailWithPersonal(address, personal string) (Email, error) {
	if address == "" {
		return Email{}, metadata.ErrMissed("email address")
	}
	normalized := strings.TrimSpace(address)
	if normalized == "" {
		return Email{}, metadata.ErrInvalid("email address cannot be empty")
	}
	if !emailPattern.MatchString(normalized) {
		return Email{}, metadata.ErrInvalid("invalid email address format: '%s'", address)
	}
	return Email{address: normalized, personal: strings.TrimSpace(personal)}, nil
}

// Parses email from "address" or "Personal Name <address>" form.
func ParseEmail(s string) (Email, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasSuffix(trimmed, ">") {
		if i := strings.LastIndex(trimmed, "<"); i >= 0 {
			personal := strings.Trim(strings.TrimSpace(trimmed[:i]), `"`)
			return NewEmailWithPersonal(trimmed[i+1:len(trimmed)-1], personal)
		}
	}
	return NewEmail(s)
}

func (e Email) Address() string { return e.address }

// Returns personal name and is it specified
func (e Email) Personal() (string, bool) { return e.personal, e.personal != "" }

func (e Email) IsZero() bool { return e.address == "" }

// Returns formatted email with personal name if present, e.g.
//   - "user@example.com"
//   - "John Doe <user@example.com>"
func (e Email) String() string {
	if e.personal != "" {
		return e.personal + " <" + e.address + ">"
	}
	return e.address
}

// Returns RFC 2822 formatted string, suitable for email headers. Same as String().
func (e Email) RFC2822() string { return e.String() }

// Returns is addresses are equal, case-insensitive as per RFC 5321.
func (e Email) Equal(other Email) bool {
	return e.Key() == other.Key()
}

// Returns case-folded address, suitable for map keys.
func (e Email) Key() string {
	return cases.Fold().String(e.address)
}
