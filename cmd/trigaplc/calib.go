// cmd/trigaplc/calib.go
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tamzrod/triga-plc/internal/calib"
	"github.com/tamzrod/triga-plc/internal/channel"
)

func NewCalibCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calib",
		Short: "Inspect calibration files",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show [file]",
			Short: "Print the effective calibration (defaults overlaid by file)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := ""
				if len(args) == 1 {
					path = args[0]
				}
				set, err := calib.Load(path)
				if err != nil {
					return err
				}
				return calib.Encode(cmd.OutOrStdout(), set)
			},
		},
		&cobra.Command{
			Use:   "check <file>",
			Short: "Parse and validate a calibration file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				// Load falls back to defaults on a missing file; check must not.
				if _, err := os.Stat(args[0]); err != nil {
					return err
				}
				set, err := calib.Load(args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %s\n", color.GreenString("ok"), args[0])
				for _, c := range channel.All() {
					if set.Uncalibrated(c) {
						fmt.Fprintf(out, "  %s %s (%s)\n", color.YellowString("uncalibrated"), c, c.Shape())
					}
				}
				return nil
			},
		},
	)

	return cmd
}
