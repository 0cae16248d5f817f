/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package blockdef

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"github.com/voedger/mdschema/pkg/metadata"
)

func loadYAML(source string, data []byte) (*Definition, error) {
	doc := blockDoc{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, ErrSyntax(fmt.Errorf("%s: %w", source, err))
	}
	return definitionFromDoc(source, &doc, func(f *fieldDoc, _ string) string {
		return fmt.Sprintf("%s:%d:%d", source, f.line, f.column)
	})
}

func loadJSON(source string, data []byte) (*Definition, error) {
	doc := blockDoc{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrSyntax(fmt.Errorf("%s: %w", source, err))
	}
	// JSON decoder does not track positions, path to field is used instead
	return definitionFromDoc(source, &doc, func(_ *fieldDoc, path string) string {
		return source + ":" + path
	})
}

// Returns source position of field with specified path, e.g. «fields[1].children[0]»
type docPosFunc func(f *fieldDoc, path string) string

func definitionFromDoc(source string, doc *blockDoc, pos docPosFunc) (*Definition, error) {
	def := &Definition{
		source: source,
		pos:    source,
		name:   doc.Block,
		base:   doc.Namespace,
	}

	prefixes := maps.Keys(doc.Namespaces)
	sort.Strings(prefixes)
	for _, p := range prefixes {
		def.namespaces = append(def.namespaces, namespaceDef{
			pos:    fmt.Sprintf("%s:namespaces.%s", source, p),
			prefix: p,
			base:   doc.Namespaces[p],
		})
	}

	for i, f := range doc.Fields {
		fd, err := fieldFromDoc(f, fmt.Sprintf("fields[%d]", i), pos)
		if err != nil {
			return nil, err
		}
		def.fields = append(def.fields, fd)
	}
	return def, nil
}

func fieldFromDoc(doc *fieldDoc, path string, pos docPosFunc) (*fieldDef, error) {
	if doc == nil {
		return nil, metadata.ErrMissed("%s: field expected", path)
	}
	f := &fieldDef{
		pos:         pos(doc, path),
		typ:         doc.Type,
		displayName: doc.DisplayName,
		watermark:   doc.Watermark,
	}
	if prefix, name, ok := strings.Cut(doc.Name, qualifiedNameSeparator); ok {
		f.prefix, f.name = prefix, name
	} else {
		f.name = doc.Name
	}

	langs := maps.Keys(doc.Translations)
	sort.Strings(langs)
	for _, lang := range langs {
		t := doc.Translations[lang]
		f.translations = append(f.translations, translationDef{
			pos:         f.pos,
			lang:        lang,
			displayName: t.DisplayName,
			watermark:   t.Watermark,
		})
	}

	for i, c := range doc.Children {
		child, err := fieldFromDoc(c, fmt.Sprintf("%s.children[%d]", path, i), pos)
		if err != nil {
			return nil, err
		}
		f.children = append(f.children, child)
	}
	return f, nil
}
