// cmd/trigaplc/read.go
package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tamzrod/triga-plc/internal/acquire"
	"github.com/tamzrod/triga-plc/internal/calib"
	"github.com/tamzrod/triga-plc/internal/channel"
	"github.com/tamzrod/triga-plc/internal/config"
	"github.com/tamzrod/triga-plc/internal/record"
	"github.com/tamzrod/triga-plc/internal/status"
)

func NewReadCommand() *cobra.Command {
	var (
		count     int
		unitID    uint8
		timeoutMs int
		transport string
		interval  time.Duration
		only      []string
	)

	cmd := &cobra.Command{
		Use:   "read <address> [calibration-file]",
		Short: "Read the PLC channels and print raw and converted values",
		Long: `Read the PLC channels a number of times and print raw and converted values.

The address is host[:port] for tcp (port 502 by default) or a serial device for rtu.
Without a calibration file the built-in defaults are used.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			calibPath := ""
			if len(args) == 2 {
				calibPath = args[1]
			}

			set, err := calib.Load(calibPath)
			if err != nil {
				return err
			}

			channels, err := parseChannels(only)
			if err != nil {
				return err
			}

			cfg := &config.Config{
				PLC: config.PLCConfig{
					Endpoint:  args[0],
					Transport: transport,
					UnitID:    unitID,
					TimeoutMs: timeoutMs,
				},
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			config.Normalize(cfg)

			session, err := acquire.Build(cfg)
			if err != nil {
				return err
			}
			defer session.Close()

			out := cmd.OutOrStdout()
			var prev time.Time
			for i := 0; i < count; i++ {
				if i > 0 && interval > 0 {
					time.Sleep(interval)
				}
				raw, conv, err := session.AcquireConverted(set)
				printCycle(out, raw, conv, prev, channels)
				if err != nil {
					fmt.Fprintf(out, "  %s %v\n", color.RedString("conversion:"), err)
				}
				prev = raw.Time
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&count, "count", "n", 1, "number of reads")
	f.Uint8Var(&unitID, "unit-id", 1, "modbus unit id")
	f.IntVar(&timeoutMs, "timeout-ms", config.DefaultTimeoutMs, "per request timeout in milliseconds")
	f.StringVar(&transport, "transport", "tcp", "modbus transport (tcp, rtu)")
	f.DurationVar(&interval, "interval", 0, "pause between reads")
	f.StringSliceVarP(&only, "channel", "c", nil, "only print these channels (default all)")

	return cmd
}

func parseChannels(names []string) ([]channel.Channel, error) {
	if len(names) == 0 {
		return channel.All(), nil
	}
	out := make([]channel.Channel, 0, len(names))
	for _, n := range names {
		c, ok := channel.Parse(strings.TrimSpace(n))
		if !ok {
			return nil, fmt.Errorf("unknown channel %q", n)
		}
		out = append(out, c)
	}
	return out, nil
}

func statusString(st status.Status) string {
	switch st {
	case status.Ok:
		return color.GreenString(st.String())
	case status.ReadError:
		return color.YellowString(st.String())
	case status.Disconnected:
		return color.RedString(st.String())
	default:
		return st.String()
	}
}

// printCycle prints one acquisition. prev is the timestamp of the previous
// acquisition and is used for the inter-read delay column.
func printCycle(w io.Writer, raw, conv record.Record, prev time.Time, channels []channel.Channel) {
	var delta time.Duration
	if !prev.IsZero() {
		delta = raw.Time.Sub(prev)
	}

	fmt.Fprintf(w, "%s [%dµs] %s\n",
		raw.Time.Format("15:04:05.000"),
		delta.Microseconds(),
		statusString(raw.Status),
	)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  CHANNEL\tRAW\tCONVERTED\t")
	for _, c := range channels {
		fmt.Fprintf(tw, "  %s\t%g\t%g\t\n", c, raw.Get(c), conv.Get(c))
	}
	_ = tw.Flush()
}
