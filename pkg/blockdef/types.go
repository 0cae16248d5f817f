/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package blockdef

import (
	"io/fs"

	"github.com/alecthomas/participle/v2/lexer"
	"gopkg.in/yaml.v3"
)

type IReadFS interface {
	fs.ReadDirFS
	fs.ReadFileFS
}

// # Definition
//
// Definition of metadata block, parsed from DSL, YAML or JSON source.
//
// Definition is not validated until Builders() or Build() is called.
type Definition struct {
	source     string
	pos        string
	name       string
	base       string
	namespaces []namespaceDef
	fields     []*fieldDef
}

type namespaceDef struct {
	pos    string
	prefix string
	base   string
}

type fieldDef struct {
	pos          string
	prefix       string
	name         string
	typ          string
	displayName  string
	watermark    string
	translations []translationDef
	children     []*fieldDef
}

type translationDef struct {
	pos         string
	lang        string
	displayName string
	watermark   string
}

// DSL syntax tree

type blockAST struct {
	Pos        lexer.Position
	Name       string         `parser:"'BLOCK' @Ident"`
	Namespace  string         `parser:"'NAMESPACE' @String ';'"`
	Statements []statementAST `parser:"@@*"`
}

type statementAST struct {
	Namespace *namespaceStmt `parser:"( @@"`
	Field     *fieldStmt     `parser:"| @@ ) ';'"`
}

type namespaceStmt struct {
	Pos    lexer.Position
	Prefix string `parser:"'NAMESPACE' @Ident"`
	Base   string `parser:"@String"`
}

type fieldStmt struct {
	Pos          lexer.Position
	Name         qualifiedName     `parser:"'FIELD' @@"`
	Type         string            `parser:"@Ident"`
	DisplayName  *string           `parser:"('DISPLAY' @String)?"`
	Watermark    *string           `parser:"('WATERMARK' @String)?"`
	Translations []*translationAST `parser:"@@*"`
	Children     []*fieldStmt      `parser:"('(' @@ (',' @@)* ')')?"`
}

type qualifiedName struct {
	Prefix string `parser:"(@Ident '.')?"`
	Name   string `parser:"@Ident"`
}

type translationAST struct {
	Pos         lexer.Position
	Lang        string  `parser:"'LANG' @String"`
	DisplayName *string `parser:"('DISPLAY' @String)?"`
	Watermark   *string `parser:"('WATERMARK' @String)?"`
}

// YAML and JSON documents

type blockDoc struct {
	Block      string            `json:"block" yaml:"block"`
	Namespace  string            `json:"namespace" yaml:"namespace"`
	Namespaces map[string]string `json:"namespaces,omitempty" yaml:"namespaces,omitempty"`
	Fields     []*fieldDoc       `json:"fields" yaml:"fields"`
}

type fieldDoc struct {
	line, column int

	Name         string              `json:"name" yaml:"name"`
	Type         string              `json:"type" yaml:"type"`
	DisplayName  string              `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Watermark    string              `json:"watermark,omitempty" yaml:"watermark,omitempty"`
	Translations map[string]textsDoc `json:"translations,omitempty" yaml:"translations,omitempty"`
	Children     []*fieldDoc         `json:"children,omitempty" yaml:"children,omitempty"`
}

type textsDoc struct {
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Watermark   string `json:"watermark,omitempty" yaml:"watermark,omitempty"`
}

// Remembers node position to report errors
func (f *fieldDoc) UnmarshalYAML(value *yaml.Node) error {
	type plain fieldDoc
	if err := value.Decode((*plain)(f)); err != nil {
		return err
	}
	f.line, f.column = value.Line, value.Column
	return nil
}
