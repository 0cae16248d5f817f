/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package l10n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/voedger/mdschema/pkg/metadata"
	"github.com/voedger/mdschema/pkg/metadata/description"
)

// Suffix of watermark translation keys
const WatermarkKeySuffix = "#watermark"

// Translations: key -> language -> text.
//
// Keys are compact IRIs of fields for display names, see DisplayNameKey(),
// and compact IRIs with «#watermark» suffix for watermarks, see WatermarkKey().
type Translations map[string]map[language.Tag]string

// Adds translation. Returns t to chain calls.
func (t Translations) Add(key string, lang language.Tag, text string) Translations {
	m, ok := t[key]
	if !ok {
		m = make(map[language.Tag]string)
		t[key] = m
	}
	m[lang] = text
	return t
}

// Merges other translations into t. Translations of other win.
func (t Translations) Merge(other Translations) Translations {
	for key, m := range other {
		for lang, text := range m {
			t.Add(key, lang, text)
		}
	}
	return t
}

func DisplayNameKey(id description.FieldID) string { return id.CompactIRI() }

func WatermarkKey(id description.FieldID) string { return id.CompactIRI() + WatermarkKeySuffix }

// # Localizer
//
// Localizes field display hints.
//
// Translation is looked up for the requested language and then for its parents,
// e.g. for "de-CH" then for "de".
type Localizer struct {
	ctlg catalog.Catalog
}

// Creates localizer from translations.
func NewLocalizer(t Translations) (*Localizer, error) {
	b := catalog.NewBuilder()
	for key, m := range t {
		if metadata.IsBlank(key) {
			return nil, metadata.ErrInvalid("translation key cannot be blank")
		}
		for lang, text := range m {
			if err := b.SetString(lang, key, escape(text)); err != nil {
				return nil, metadata.EnrichError(metadata.ErrInvalidError, "translation «%s» for %v: %v", key, lang, err)
			}
		}
	}
	return &Localizer{ctlg: b}, nil
}

// Returns localized display name of the field.
//
// If there is no translation then field display name is returned, if field
// has no display name then its local name is returned.
func (l *Localizer) DisplayName(f *description.Field, lang language.Tag) string {
	fallback, ok := f.DisplayName()
	if !ok {
		fallback = f.ID().LocalName()
	}
	return l.lookup(lang, DisplayNameKey(f.ID()), fallback)
}

// Returns localized watermark of the field and is it exists.
//
// If there is no translation then field watermark is returned.
func (l *Localizer) Watermark(f *description.Field, lang language.Tag) (string, bool) {
	fallback, _ := f.Watermark()
	s := l.lookup(lang, WatermarkKey(f.ID()), fallback)
	return s, s != ""
}

func (l *Localizer) lookup(lang language.Tag, key, fallback string) string {
	p := message.NewPrinter(lang, message.Catalog(l.ctlg))
	return p.Sprintf(message.Key(key, escape(fallback)))
}

// texts are used as format strings by printer
func escape(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
