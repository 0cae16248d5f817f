/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	return cobrau.ExecCommandAndCatchInterrupt(newRootCmd(args, ver))
}

// Root command with verbose and trace flags and version command, see cobrau.PrepareRootCmd
func newRootCmd(args []string, ver string) *cobra.Command {
	rootCmd := cobrau.PrepareRootCmd(
		"mdschema",
		"metadata block schema utility",
		args,
		ver,
		newTreeCmd(),
		newURIsCmd(),
		newValidateCmd(),
	)
	return rootCmd
}
