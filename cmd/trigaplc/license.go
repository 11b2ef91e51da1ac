// cmd/trigaplc/license.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const licenseNotice = `trigaplc    Copyright (C) 2024 Thalles Campagnani
This program comes with ABSOLUTELY NO WARRANTY;
This is free software, and you are welcome to redistribute it
under certain conditions; For more details read the file LICENSE
that came together with the program.`

func NewLicenseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "license",
		Short: "Print the license notice",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), licenseNotice)
		},
	}
}
