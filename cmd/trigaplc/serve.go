// cmd/trigaplc/serve.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tamzrod/triga-plc/internal/acquire"
	"github.com/tamzrod/triga-plc/internal/api"
	"github.com/tamzrod/triga-plc/internal/calib"
	"github.com/tamzrod/triga-plc/internal/config"
)

func NewServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Acquire periodically and serve the latest records over HTTP",
		RunE: func(_ *cobra.Command, _ []string) error {
			return serve(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "/etc/trigaplc/trigaplc.yaml", "config file path")

	return cmd
}

func serve(configPath string) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	config.Normalize(cfg)

	set, err := calib.Load(cfg.Calibration.File)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Session + API
	// --------------------

	session, err := acquire.Build(cfg)
	if err != nil {
		return err
	}
	defer session.Close()

	store := api.NewStore()
	srv := api.NewServer(store, set, session.ID().String())

	// ---- channel between session and store ----
	out := make(chan acquire.Cycle)

	go session.Run(ctx, time.Duration(cfg.Poll.IntervalMs)*time.Millisecond, set, out)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case c := <-out:
				if c.Err != nil {
					logrus.WithError(c.Err).Warn("calibration could not convert every channel")
				}
				store.Update(c)
			}
		}
	}()

	logrus.WithFields(logrus.Fields{
		"endpoint":    cfg.PLC.Endpoint,
		"interval":    time.Duration(cfg.Poll.IntervalMs) * time.Millisecond,
		"calibration": cfg.Calibration.File,
	}).Info("acquisition started")

	return srv.ListenAndServe(ctx, cfg.API.Listen)
}
