package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/reachkit/reachable"
	"github.com/reachkit/reachable/config"
	"github.com/spf13/cobra"
)

// watchCmd runs periodic checks for all configured targets.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch configured targets until interrupted",
	Long: `Watch all targets from the configuration file.

Each target is checked on its own schedule; status transitions and
check errors are logged as JSON on stderr. The command runs until
interrupted (Ctrl+C) or it receives SIGTERM, then shuts down without
waiting for checks that are still in flight.

Example:
  reachable watch -c config.yaml
  reachable watch --config /etc/reachable/config.yaml`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = watchCmd.MarkFlagRequired("config")
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Info("config loaded",
		"targets", len(cfg.Targets),
		"interval", cfg.Interval.Duration().String(),
		"policy", cfg.Policy,
	)

	// every check outcome lands here, per the configured notify policies
	report := func(target reachable.Target, newStatus, oldStatus reachable.Status, err error) {
		attrs := []any{
			"target", target.ID(),
			"status", newStatus.String(),
			"previous", oldStatus.String(),
		}
		if err != nil {
			logger.Warn("check failed", append(attrs, "error", err.Error())...)
			return
		}
		logger.Info("status reported", attrs...)
	}

	probes, err := config.BuildProbes(cfg, report)
	if err != nil {
		return fmt.Errorf("failed to build probes: %w", err)
	}

	scheduler, err := reachable.NewScheduler(reachable.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	// cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := scheduler.Start(ctx, probes...); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	<-ctx.Done()
	scheduler.Stop()
	logger.Info("watch stopped")
	return nil
}
