package main

import (
	"fmt"
	"os"
	"time"

	"github.com/reachkit/reachable"
	"github.com/spf13/cobra"
)

// checkCmd performs a single availability check and exits.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Perform a one-shot availability check",
	Long: `Check a single target once and print its status.

Exactly one of --icmp or --tcp must be given.

Exit codes:
  0 - Target is available
  1 - Target is not available
  2 - The check could not be carried out (e.g. name lookup failed)

Example:
  reachable check --icmp example.com
  reachable check --tcp example.com:443 --timeout 3s
  reachable check --icmp example.com --resolve ipv6`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("icmp", "", "host to check with ICMP echo requests")
	checkCmd.Flags().String("tcp", "", "host:port to check with a TCP connection attempt")
	checkCmd.Flags().String("resolve", "any", "address family: any, ipv4, ipv6")
	checkCmd.Flags().Duration("timeout", 0, "TCP connect timeout (tcp targets only)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	icmpHost, _ := cmd.Flags().GetString("icmp")
	tcpAddr, _ := cmd.Flags().GetString("tcp")
	resolve, _ := cmd.Flags().GetString("resolve")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	target, err := buildCheckTarget(icmpHost, tcpAddr, resolve, timeout)
	if err != nil {
		return err
	}

	status, err := target.CheckAvailability()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", target.ID(), err)
		os.Exit(2)
	}

	fmt.Printf("%s: %s\n", target.ID(), status)
	if status != reachable.StatusAvailable {
		os.Exit(1)
	}
	return nil
}

func buildCheckTarget(icmpHost, tcpAddr, resolve string, timeout time.Duration) (reachable.Target, error) {
	if (icmpHost == "") == (tcpAddr == "") {
		return nil, fmt.Errorf("exactly one of --icmp or --tcp is required")
	}

	policy, err := parseResolve(resolve)
	if err != nil {
		return nil, err
	}
	opts := []reachable.TargetOption{reachable.WithResolvePolicy(policy)}

	if icmpHost != "" {
		if timeout != 0 {
			return nil, fmt.Errorf("--timeout applies to tcp targets only")
		}
		return reachable.NewICMPTarget(icmpHost, opts...)
	}

	if timeout != 0 {
		opts = append(opts, reachable.WithConnectTimeout(timeout))
	}
	return reachable.ParseTCPTarget(tcpAddr, opts...)
}

func parseResolve(resolve string) (reachable.ResolvePolicy, error) {
	switch resolve {
	case "any":
		return reachable.ResolveAny, nil
	case "ipv4":
		return reachable.ResolveIPv4, nil
	case "ipv6":
		return reachable.ResolveIPv6, nil
	default:
		return reachable.ResolveAny, fmt.Errorf("resolve must be any, ipv4, or ipv6, got %q", resolve)
	}
}
