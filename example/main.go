// Command example demonstrates library usage of reachable: two network
// targets and one user-defined target, watched for thirty seconds.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/reachkit/reachable"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	icmp, err := reachable.NewICMPTarget("localhost")
	if err != nil {
		logger.Error("failed to create icmp target", "error", err)
		os.Exit(1)
	}

	tcp, err := reachable.ParseTCPTarget("localhost:22",
		reachable.WithConnectTimeout(2*time.Second),
	)
	if err != nil {
		logger.Error("failed to create tcp target", "error", err)
		os.Exit(1)
	}

	// a user-defined target: flips between available and not available
	flip := false
	custom, err := reachable.NewFuncTarget("coin-flip", func() (reachable.Status, error) {
		flip = !flip
		if flip {
			return reachable.StatusAvailable, nil
		}
		return reachable.StatusNotAvailable, nil
	})
	if err != nil {
		logger.Error("failed to create func target", "error", err)
		os.Exit(1)
	}

	report := func(t reachable.Target, newStatus, oldStatus reachable.Status, err error) {
		if err != nil {
			logger.Warn("check failed", "target", t.ID(), "error", err)
			return
		}
		logger.Info("status reported",
			"target", t.ID(),
			"status", newStatus.String(),
			"previous", oldStatus.String(),
		)
	}

	var probes []*reachable.Probe
	for _, target := range []reachable.Target{icmp, tcp, custom} {
		probe, err := reachable.NewProbe(target, report, 5*time.Second,
			reachable.WithNotifyPolicy(reachable.NotifyOnStatusChange),
		)
		if err != nil {
			logger.Error("failed to create probe", "target", target.ID(), "error", err)
			os.Exit(1)
		}
		probes = append(probes, probe)
	}

	scheduler, err := reachable.NewScheduler(reachable.WithLogger(logger))
	if err != nil {
		logger.Error("failed to create scheduler", "error", err)
		os.Exit(1)
	}

	if err := scheduler.Start(context.Background(), probes...); err != nil {
		logger.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}

	time.Sleep(30 * time.Second)
	scheduler.Stop()
}
