/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/mdschema/pkg/metadata/description"
)

func newURIsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uris <file>",
		Short: "prints compact IRI and URI of each field of the block definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := buildBlock(args[0])
			if err != nil {
				return err
			}
			block.Walk(func(f *description.Field) bool {
				uri, e := f.ID().URI()
				if e != nil {
					err = fmt.Errorf("field «%s»: %w", f.ID().CompactIRI(), e)
					return false
				}
				fmt.Fprintln(cmd.OutOrStdout(), f.ID().CompactIRI(), uri)
				return true
			})
			return err
		},
	}
}
