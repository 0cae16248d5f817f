/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package blockdef

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var dslParser = participle.MustBuild[blockAST](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--.*`},
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
		{Name: "Punct", Pattern: `[;,().]`},
		{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
	})),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
)

func parseDSL(source, content string) (*Definition, error) {
	ast, err := dslParser.ParseString(source, content)
	if err != nil {
		return nil, ErrSyntax(err)
	}

	def := &Definition{
		source: source,
		pos:    ast.Pos.String(),
		name:   ast.Name,
		base:   ast.Namespace,
	}
	for _, stmt := range ast.Statements {
		switch {
		case stmt.Namespace != nil:
			def.namespaces = append(def.namespaces, namespaceDef{
				pos:    stmt.Namespace.Pos.String(),
				prefix: stmt.Namespace.Prefix,
				base:   stmt.Namespace.Base,
			})
		case stmt.Field != nil:
			def.fields = append(def.fields, fieldFromStmt(stmt.Field))
		}
	}
	return def, nil
}

func fieldFromStmt(stmt *fieldStmt) *fieldDef {
	f := &fieldDef{
		pos:         stmt.Pos.String(),
		prefix:      stmt.Name.Prefix,
		name:        stmt.Name.Name,
		typ:         stmt.Type,
		displayName: deref(stmt.DisplayName),
		watermark:   deref(stmt.Watermark),
	}
	for _, t := range stmt.Translations {
		f.translations = append(f.translations, translationDef{
			pos:         t.Pos.String(),
			lang:        t.Lang,
			displayName: deref(t.DisplayName),
			watermark:   deref(t.Watermark),
		})
	}
	for _, c := range stmt.Children {
		f.children = append(f.children, fieldFromStmt(c))
	}
	return f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
