/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/text/language"

	"github.com/voedger/mdschema/pkg/blockdef"
	"github.com/voedger/mdschema/pkg/metadata/description"
	"github.com/voedger/mdschema/pkg/metadata/l10n"
)

func newTreeCmd() *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "prints fields tree of the block definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := buildBlock(args[0])
			if err != nil {
				return err
			}
			var loc *l10n.Localizer
			tag := language.Und
			if lang != "" {
				if tag, err = language.Parse(lang); err != nil {
					return err
				}
				if loc, err = block.Localizer(); err != nil {
					return err
				}
			}
			_, err = cmd.OutOrStdout().Write([]byte(renderTree(block, loc, tag)))
			return err
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "display names language, BCP 47 tag, e.g. «de»")
	return cmd
}

func buildBlock(fileName string) (*blockdef.Block, error) {
	def, err := blockdef.ParseFile(fileName)
	if err != nil {
		return nil, err
	}
	block, err := def.Build()
	if err != nil {
		return nil, err
	}
	logger.Verbose("block", block.Name, "loaded from", fileName)
	return block, nil
}

// Renders block fields, one line per field:
//
//	<indent><generation> <compact IRI> <type> [«<display name>»]
//
// Localizer may be nil, then display names are not localized.
func renderTree(block *blockdef.Block, loc *l10n.Localizer, lang language.Tag) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(block.Name)
	_, _ = buf.WriteString(" <")
	_, _ = buf.WriteString(block.Namespace.Base())
	_, _ = buf.WriteString(">\n")

	block.Walk(func(f *description.Field) bool {
		_, _ = buf.WriteString(strings.Repeat("  ", f.Generation()+1))
		_, _ = buf.WriteString(strconv.Itoa(f.Generation()))
		_ = buf.WriteByte(' ')
		_, _ = buf.WriteString(f.ID().CompactIRI())
		_ = buf.WriteByte(' ')
		_, _ = buf.WriteString(f.Type().TrimString())

		name, ok := f.DisplayName()
		if loc != nil {
			name, ok = loc.DisplayName(f, lang), true
		}
		if ok {
			_, _ = buf.WriteString(" «")
			_, _ = buf.WriteString(name)
			_, _ = buf.WriteString("»")
		}
		_ = buf.WriteByte('\n')
		return true
	})

	return buf.String()
}
