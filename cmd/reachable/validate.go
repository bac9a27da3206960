package main

import (
	"fmt"

	"github.com/reachkit/reachable/config"
	"github.com/spf13/cobra"
)

// validateCmd validates a config file without running any checks.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a reachable configuration file without checking anything.

This command parses the YAML and validates all fields. It's useful for
CI/CD pipelines or pre-deployment checks.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  reachable validate -c config.yaml
  reachable validate --config /etc/reachable/config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	icmpTargets := 0
	tcpTargets := 0
	for _, t := range cfg.Targets {
		if t.ICMP != "" {
			icmpTargets++
		} else {
			tcpTargets++
		}
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Interval: %s\n", cfg.Interval.Duration())
	fmt.Printf("  Policy:   %s\n", cfg.Policy)
	fmt.Printf("  Targets:  %d icmp + %d tcp = %d total\n",
		icmpTargets, tcpTargets, icmpTargets+tcpTargets)

	return nil
}
