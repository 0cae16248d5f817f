/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/mdschema/pkg/metadata/description"
)

var errValidationFailed = errors.New("validation failed")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "validates block definition files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, fileName := range args {
				block, err := buildBlock(fileName)
				if err != nil {
					failed++
					logger.Error(err)
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", fileName, err)
					continue
				}
				cnt := 0
				block.Walk(func(*description.Field) bool {
					cnt++
					return true
				})
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, block «%s», %d field(s)\n", fileName, block.Name, cnt)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d file(s)", errValidationFailed, failed, len(args))
			}
			return nil
		},
	}
}
